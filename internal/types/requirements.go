// Package types defines the data structures exchanged between the analysis
// engine, the HTTP API and the scoring history store.
package types

// DefaultSector is the label used when no industry sector can be inferred.
// The scorer treats it the same as an absent sector requirement.
const DefaultSector = "General Services"

// TenderRequirements is the structured view of a tender extracted from its
// unstructured text. Collections are always non-nil; absent facts are the
// zero value of their field.
type TenderRequirements struct {
	// RequiredCertifications lists detected certifications, either a bare
	// code ("SARS") or a code with level ("CIDB: 7").
	RequiredCertifications []string `json:"required_certifications"`

	// MinExperienceYears is the highest year count stated anywhere in the
	// text, or 0 when no experience requirement was found.
	MinExperienceYears int `json:"min_experience_years"`

	// RequiredRegions holds canonical province names mentioned in the text.
	RequiredRegions []string `json:"required_regions"`

	IndustrySector string `json:"industry_sector"`

	// TechnicalRequirements and SubmissionRequirements are informational
	// sentence extracts, deduplicated, in document order.
	TechnicalRequirements  []string `json:"technical_requirements"`
	SubmissionRequirements []string `json:"submission_requirements"`

	BudgetEstimate string `json:"budget_estimate,omitempty"`
	DeadlineText   string `json:"deadline_text,omitempty"`
}

// DefaultRequirements returns the value produced for degenerate input: empty
// collections, zero experience and the default sector.
func DefaultRequirements() TenderRequirements {
	return TenderRequirements{
		RequiredCertifications: []string{},
		RequiredRegions:        []string{},
		IndustrySector:         DefaultSector,
		TechnicalRequirements:  []string{},
		SubmissionRequirements: []string{},
	}
}
