package job

import "time"

// MaxSkills caps the skills list on every record, regardless of how many
// the source markup or the keyword scan yields.
const MaxSkills = 5

// Job is the canonical listing record every source adapter emits.
// Title, Company and Location are guaranteed non-empty for any record that
// leaves an adapter; everything else carries a per-source default when the
// markup did not yield it.
type Job struct {
	JobID              string    `json:"job_id"`
	Title              string    `json:"job_title"`
	Company            string    `json:"company_name"`
	Location           string    `json:"location"`
	JobType            string    `json:"job_type"`
	Salary             string    `json:"salary"`
	ExperienceRequired string    `json:"experience_required"`
	Skills             []string  `json:"skills"`
	Description        string    `json:"job_description"`
	PostedDate         string    `json:"posted_date"`
	ApplyLink          string    `json:"apply_link"`
	Source             string    `json:"source"`
	RemoteFriendly     bool      `json:"remote_friendly"`
	CompanyLogoURL     *string   `json:"company_logo_url,omitempty"`
	Industry           *string   `json:"industry,omitempty"`
	EducationRequired  *string   `json:"education_required,omitempty"`
	ScrapedAt          time.Time `json:"scraped_at"`
}

// AggregatedResult is the per-request output of the aggregation pipeline.
// SourceBreakdown holds pre-dedup counts per adapter; TotalCount is the
// post-dedup length of Jobs. It is never persisted.
type AggregatedResult struct {
	Jobs            []Job          `json:"jobs"`
	TotalCount      int            `json:"total_count"`
	SourceBreakdown map[string]int `json:"source_breakdown"`
	LastUpdated     time.Time      `json:"last_updated"`
}
