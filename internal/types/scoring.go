package types

// Confidence levels attached to a ScoringResult.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// ChecklistItem is a single evaluated requirement with its outcome.
type ChecklistItem struct {
	Criterion string `json:"criterion"`
	Met       bool   `json:"met"`
}

// Breakdown carries the unweighted per-category scores, each in [0,100].
type Breakdown struct {
	Certifications     float64 `json:"certifications"`
	Experience         float64 `json:"experience"`
	GeographicCoverage float64 `json:"geographic_coverage"`
	SectorMatch        float64 `json:"sector_match"`
	Capacity           float64 `json:"capacity"`
}

// ScoringResult is the terminal output of the suitability scorer.
type ScoringResult struct {
	// SuitabilityScore is the weighted aggregate, clamped to [0,100].
	SuitabilityScore float64 `json:"suitability_score"`

	// Checklist lists every evaluated requirement in category order, with no
	// duplicate criterion strings.
	Checklist []ChecklistItem `json:"checklist"`

	Breakdown Breakdown `json:"breakdown"`

	// Recommendation is one of the five fixed tiers keyed off the score.
	Recommendation string `json:"recommendation"`

	// ConfidenceLevel is ConfidenceLow, ConfidenceMedium or ConfidenceHigh.
	ConfidenceLevel string `json:"confidence_level"`
}

// ChecklistMet reports whether the named criterion appears in the checklist
// with a met outcome.
func (r *ScoringResult) ChecklistMet(criterion string) bool {
	for _, item := range r.Checklist {
		if item.Criterion == criterion {
			return item.Met
		}
	}
	return false
}

// AnalysisResult is the composite display payload produced when a tender is
// analyzed in one pass: requirements, sector, complexity, summary and the
// derived key points. Only Requirements feeds the scorer.
type AnalysisResult struct {
	Requirements    TenderRequirements `json:"requirements"`
	IndustrySector  string             `json:"industry_sector"`
	ComplexityScore int                `json:"complexity_score"`
	Summary         string             `json:"summary"`
	KeyPoints       KeyPoints          `json:"key_points"`

	// EstimatedTimeline is a coarse delivery window derived from complexity
	// and sector, such as "45 days".
	EstimatedTimeline string `json:"estimated_timeline"`
}

// KeyPoints is the structured display digest of an analyzed tender.
type KeyPoints struct {
	Objective           string   `json:"objective"`
	Deadline            string   `json:"deadline"`
	BudgetRange         string   `json:"budget_range"`
	EligibilityCriteria []string `json:"eligibility_criteria"`
}
