package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/extract"
	"jobmatch-backend/internal/shared/storage/object"
	"jobmatch-backend/internal/shared/telemetry"
	"jobmatch-backend/internal/shared/util"
)

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  ResumesRepo
}

// Upload saves the file to object storage, extracts its text and structured
// fields, and records the resume.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, ErrInvalidInput
	}
	fileName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, err
	}
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, err
	}

	text, err := extractText(ctx, data, mimeType, fileName)
	if err != nil {
		return Resume{}, err
	}

	// Keep the extracted text beside the original upload so it can be
	// re-parsed without re-running the extractor.
	if _, _, _, err := s.Store.Save(ctx, userId, fileName+".extracted.txt", strings.NewReader(text)); err != nil {
		telemetry.Error("resume.extracted_text_save_failed", map[string]any{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		RawText:    text,
		Profile:    extract.ParseFields(text),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id":  resume.ID,
		"user_id":    userId,
		"mime_type":  mimeType,
		"size_bytes": size,
		"skills":     len(resume.Profile.Skills),
	})

	return resume, nil
}

// extractText handles PDF and DOCX via the extractor; plain text passes
// through as-is.
func extractText(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if strings.HasPrefix(mimeType, "text/") {
		return string(data), nil
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported mime type") {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, mimeType)
		}
		return "", err
	}
	return text, nil
}

// Current returns the latest resume for a user.
func (s *Service) Current(ctx context.Context, userId string) (Resume, error) {
	if userId == "" {
		return Resume{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	if userId == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// List returns resumes for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// Delete removes a resume for a user. The stored file stays in object
// storage for later recovery.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	if userId == "" || resumeID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userId, resumeID)
}
