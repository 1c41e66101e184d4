package model

// JobPosting is one job with the canonical skills extracted from its description.
// Title and Location are carried through for presentation but never used by the
// analysis itself.
type JobPosting struct {
	ID       string   `json:"job_id"`
	Title    string   `json:"title,omitempty"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills_detected"`
	// Description is raw posting text for callers that let the extraction
	// adapter fill Skills; the analysis itself never reads it.
	Description string `json:"description,omitempty"`
}

// UserProfile is the set of skills the user declares. The engine never mutates it.
type UserProfile struct {
	Skills []string `json:"skills"`
}
