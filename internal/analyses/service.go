package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/ats"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/telemetry"
)

// Service runs ATS compatibility analyses and records the results.
type Service struct {
	Repo     AnalysesRepo
	Resumes  *resumes.Service
	Jobs     *jobs.Service
	Analyzer *ats.Analyzer
}

// NewService constructs a Service with a default analyzer.
func NewService(repo AnalysesRepo, resumeSvc *resumes.Service, jobSvc *jobs.Service) *Service {
	return &Service{
		Repo:     repo,
		Resumes:  resumeSvc,
		Jobs:     jobSvc,
		Analyzer: ats.NewAnalyzer(nil),
	}
}

// CreateInput carries the fields accepted when requesting an analysis.
// Either JobDescription or JobID must be set; JobDescription wins when both
// are present. An empty ResumeID selects the user's current resume.
type CreateInput struct {
	ResumeID       string
	JobID          string
	JobDescription string
}

// Create resolves the resume and job text, runs the analyzer, and persists
// the outcome.
func (s *Service) Create(ctx context.Context, userId string, in CreateInput) (Analysis, error) {
	if userId == "" {
		return Analysis{}, ErrInvalidInput
	}
	jobDescription := strings.TrimSpace(in.JobDescription)
	if jobDescription == "" && in.JobID != "" {
		job, err := s.Jobs.Get(ctx, userId, in.JobID)
		if err != nil {
			if errors.Is(err, jobs.ErrNotFound) {
				return Analysis{}, ErrJobNotFound
			}
			return Analysis{}, err
		}
		jobDescription = strings.TrimSpace(job.Description + "\n" + job.Requirements)
	}
	if jobDescription == "" {
		return Analysis{}, fmt.Errorf("%w: jobDescription or jobId is required", ErrInvalidInput)
	}

	resume, err := s.resolveResume(ctx, userId, in.ResumeID)
	if err != nil {
		return Analysis{}, err
	}
	if strings.TrimSpace(resume.RawText) == "" {
		return Analysis{}, fmt.Errorf("%w: resume has no extractable text", ErrInvalidInput)
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	result := s.Analyzer.Analyze(resume.RawText, jobDescription)

	elapsed := time.Since(started)
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Milliseconds()))

	completedAt := time.Now().UTC()
	analysis := Analysis{
		ID:             uuid.NewString(),
		UserID:         userId,
		ResumeID:       resume.ID,
		JobDescription: jobDescription,
		Status:         StatusCompleted,
		Score:          result.ATSScore,
		Result:         result,
		CreatedAt:      time.Now().UTC(),
		CompletedAt:    &completedAt,
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}
	metrics.IncAnalysisCompleted()

	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": analysis.ID,
		"user_id":     userId,
		"resume_id":   resume.ID,
		"score":       result.ATSScore,
		"duration_ms": elapsed.Milliseconds(),
	})

	return analysis, nil
}

func (s *Service) resolveResume(ctx context.Context, userId, resumeID string) (resumes.Resume, error) {
	if resumeID == "" {
		resume, err := s.Resumes.Current(ctx, userId)
		if err != nil {
			if errors.Is(err, resumes.ErrNotFound) {
				return resumes.Resume{}, ErrNoResume
			}
			return resumes.Resume{}, err
		}
		return resume, nil
	}
	resume, err := s.Resumes.Get(ctx, userId, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, ErrNoResume
		}
		return resumes.Resume{}, err
	}
	return resume, nil
}

// Get returns an analysis by ID for a user.
func (s *Service) Get(ctx context.Context, userId, analysisID string) (Analysis, error) {
	if userId == "" || analysisID == "" {
		return Analysis{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, analysisID)
}

// List returns analyses for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Analysis, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}
