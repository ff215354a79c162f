package matches

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/compat"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/metrics"
	"jobmatch-backend/internal/shared/telemetry"
)

// Service runs resume-to-job compatibility matches and records the results.
type Service struct {
	Repo    MatchesRepo
	Resumes *resumes.Service
	Jobs    *jobs.Service
	Matcher *compat.Matcher
}

// NewService constructs a Service with a default matcher.
func NewService(repo MatchesRepo, resumeSvc *resumes.Service, jobSvc *jobs.Service) *Service {
	return &Service{
		Repo:    repo,
		Resumes: resumeSvc,
		Jobs:    jobSvc,
		Matcher: compat.NewMatcher(),
	}
}

// Create resolves the resume and job, computes the match, and persists the
// outcome. When resumeID is empty the user's current resume is used.
func (s *Service) Create(ctx context.Context, userId, resumeID, jobID string) (Match, error) {
	if userId == "" || jobID == "" {
		return Match{}, ErrInvalidInput
	}

	resume, err := s.resolveResume(ctx, userId, resumeID)
	if err != nil {
		return Match{}, err
	}

	job, err := s.Jobs.Get(ctx, userId, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Match{}, ErrJobNotFound
		}
		return Match{}, err
	}

	metrics.IncMatchStarted()
	started := time.Now()

	result := s.Matcher.Score(resume.CompatProfile(), job.Posting())

	elapsed := time.Since(started)
	metrics.ObserveMatchDurationMs(float64(elapsed.Milliseconds()))

	match := Match{
		ID:        uuid.NewString(),
		UserID:    userId,
		ResumeID:  resume.ID,
		JobID:     job.ID,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, match); err != nil {
		metrics.IncMatchFailed()
		return Match{}, err
	}
	metrics.IncMatchCompleted()

	telemetry.Info("match.completed", map[string]any{
		"match_id":    match.ID,
		"user_id":     userId,
		"resume_id":   resume.ID,
		"job_id":      job.ID,
		"overall":     result.OverallScore,
		"duration_ms": elapsed.Milliseconds(),
	})

	return match, nil
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

// Recommendations scores the resume against the user's active job postings
// and returns those at or above minScore, best first. An empty resumeID
// falls back to the user's current resume.
func (s *Service) Recommendations(ctx context.Context, userId, resumeID string, limit int, minScore float64) ([]Recommendation, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	resume, err := s.resolveResume(ctx, userId, resumeID)
	if err != nil {
		return nil, err
	}

	postings, err := s.Jobs.List(ctx, userId, 100, 0)
	if err != nil {
		return nil, err
	}

	profile := resume.CompatProfile()
	out := make([]Recommendation, 0, len(postings))
	for _, job := range postings {
		if !job.IsActive {
			continue
		}
		result := s.Matcher.Score(profile, job.Posting())
		if result.OverallScore < minScore {
			continue
		}
		out = append(out, Recommendation{Job: job, Result: result})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Result.OverallScore > out[j].Result.OverallScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns a match by ID for a user.
func (s *Service) Get(ctx context.Context, userId, matchID string) (Match, error) {
	if userId == "" || matchID == "" {
		return Match{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, matchID)
}

// List returns matches for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Match, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}
