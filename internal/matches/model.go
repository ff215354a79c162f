package matches

import (
	"time"

	"jobmatch-backend/internal/compat"
	"jobmatch-backend/internal/jobs"
)

// Match is one compatibility match of a resume against a saved job posting.
type Match struct {
	ID        string
	UserID    string
	ResumeID  string
	JobID     string
	Result    compat.MatchScore
	CreatedAt time.Time
}

// Recommendation pairs a job posting with the match computed for it.
type Recommendation struct {
	Job    jobs.Job
	Result compat.MatchScore
}
