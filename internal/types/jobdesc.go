package types

// JobInput is the form input for generating a job description.
type JobInput struct {
	Title            string   `json:"title"`
	Department       string   `json:"department,omitempty"`
	Seniority        string   `json:"seniority"`
	Location         string   `json:"location"`
	Remote           bool     `json:"remote,omitempty"`
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	SalaryBand       string   `json:"salary_band,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	CompanyBlurb     string   `json:"company_blurb,omitempty"`
}

// PostPreview is the formatted payload a posting platform would receive.
// Actual delivery is stubbed; only previews are produced.
type PostPreview struct {
	Platform string `json:"platform"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Posted   bool   `json:"posted"`
}
