package resumes

import (
	"time"

	"jobmatch-backend/internal/compat"
	"jobmatch-backend/internal/extract"
)

// Resume represents an uploaded resume owned by a user, together with the
// text and structured fields extracted from it.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	RawText    string
	Profile    extract.Profile
	CreatedAt  time.Time
}

// CompatProfile converts the stored resume into the shape the matcher
// consumes.
func (r Resume) CompatProfile() compat.ResumeProfile {
	p := compat.ResumeProfile{
		Skills:  r.Profile.Skills,
		RawText: r.RawText,
	}
	for _, e := range r.Profile.Experience {
		p.Experience = append(p.Experience, compat.ExperienceEntry{
			Title:       e.Title,
			Company:     e.Company,
			Description: e.Description,
		})
	}
	for _, e := range r.Profile.Education {
		p.Education = append(p.Education, compat.EducationEntry{Degree: e.Degree})
	}
	return p
}
