package jobs

import "time"

// JobResponse is the outward-facing representation of a job posting.
type JobResponse struct {
	JobID           string    `json:"jobId"`
	Title           string    `json:"title"`
	Company         string    `json:"company,omitempty"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	RequiredSkills  []string  `json:"requiredSkills"`
	PreferredSkills []string  `json:"preferredSkills"`
	Keywords        []string  `json:"keywords"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	SalaryMin       float64   `json:"salaryMin,omitempty"`
	SalaryMax       float64   `json:"salaryMax,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toResponse(job Job) JobResponse {
	return JobResponse{
		JobID:           job.ID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Description:     job.Description,
		Requirements:    job.Requirements,
		RequiredSkills:  ensureList(job.RequiredSkills),
		PreferredSkills: ensureList(job.PreferredSkills),
		Keywords:        ensureList(job.Keywords),
		ExperienceLevel: job.ExperienceLevel,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		IsActive:        job.IsActive,
		CreatedAt:       job.CreatedAt,
	}
}

func ensureList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
