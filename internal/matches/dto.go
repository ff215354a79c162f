package matches

import (
	"time"

	"jobmatch-backend/internal/compat"
)

// MatchResponse is the outward-facing representation of a match.
type MatchResponse struct {
	MatchID   string            `json:"matchId"`
	ResumeID  string            `json:"resumeId"`
	JobID     string            `json:"jobId"`
	Result    compat.MatchScore `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toResponse(match Match) MatchResponse {
	return MatchResponse{
		MatchID:   match.ID,
		ResumeID:  match.ResumeID,
		JobID:     match.JobID,
		Result:    match.Result,
		CreatedAt: match.CreatedAt,
	}
}

// RecommendationResponse summarizes how well one job posting fits a resume.
type RecommendationResponse struct {
	JobID         string   `json:"jobId"`
	Title         string   `json:"title"`
	Company       string   `json:"company,omitempty"`
	OverallScore  float64  `json:"overallScore"`
	SkillScore    float64  `json:"skillScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

func toRecommendationResponse(rec Recommendation) RecommendationResponse {
	return RecommendationResponse{
		JobID:         rec.Job.ID,
		Title:         rec.Job.Title,
		Company:       rec.Job.Company,
		OverallScore:  rec.Result.OverallScore,
		SkillScore:    rec.Result.SkillScore,
		MatchedSkills: rec.Result.MatchedSkills,
		MissingSkills: rec.Result.MissingSkills,
	}
}
