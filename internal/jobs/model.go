package jobs

import (
	"time"

	"jobmatch-backend/internal/compat"
)

// Job represents a saved job posting owned by a user.
type Job struct {
	ID              string
	UserID          string
	Title           string
	Company         string
	Location        string
	Description     string
	Requirements    string
	RequiredSkills  []string
	PreferredSkills []string
	Keywords        []string
	ExperienceLevel string
	SalaryMin       float64
	SalaryMax       float64
	IsActive        bool
	CreatedAt       time.Time
}

// Posting converts the stored job into the shape the matcher consumes.
func (j Job) Posting() compat.JobPosting {
	return compat.JobPosting{
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,
		Keywords:        j.Keywords,
		ExperienceLevel: j.ExperienceLevel,
	}
}
