package resumes

import (
	"time"

	"jobmatch-backend/internal/extract"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID   string          `json:"resumeId"`
	FileName   string          `json:"fileName"`
	MimeType   string          `json:"mimeType"`
	SizeBytes  int64           `json:"sizeBytes"`
	Profile    extract.Profile `json:"profile"`
	UploadedAt time.Time       `json:"uploadedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:   resume.ID,
		FileName:   resume.FileName,
		MimeType:   resume.MimeType,
		SizeBytes:  resume.SizeBytes,
		Profile:    resume.Profile,
		UploadedAt: resume.CreatedAt,
	}
}
