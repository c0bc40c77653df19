package engine

import (
	"fmt"
	"strings"

	"github.com/thabo/tender-insight/internal/types"
)

// AnalyzeTender runs the full display pipeline over one tender: requirement
// extraction, sector classification, complexity, summary and the derived key
// points. Only the requirements feed later scoring; the rest enriches what a
// bidder sees.
func (e *Engine) AnalyzeTender(text, title string) types.AnalysisResult {
	req := e.extractor.Extract(text, title)
	score := e.estimator.Estimate(text)

	return types.AnalysisResult{
		Requirements:      req,
		IndustrySector:    req.IndustrySector,
		ComplexityScore:   score,
		Summary:           e.summarizer.Summarize(text, DefaultSummaryLength),
		KeyPoints:         buildKeyPoints(title, req),
		EstimatedTimeline: estimateTimeline(score, req.IndustrySector),
	}
}

// buildKeyPoints assembles the eligibility digest from extracted
// requirements, falling back to the generic criteria when nothing was found.
func buildKeyPoints(title string, req types.TenderRequirements) types.KeyPoints {
	kp := types.KeyPoints{
		Objective:   "Procurement of services as specified",
		Deadline:    "As per tender documentation",
		BudgetRange: "To be specified",
	}
	if strings.TrimSpace(title) != "" {
		kp.Objective = fmt.Sprintf("Procurement of %s", strings.TrimSpace(title))
	}
	if req.DeadlineText != "" {
		kp.Deadline = req.DeadlineText
	}
	if req.BudgetEstimate != "" {
		kp.BudgetRange = req.BudgetEstimate
	} else if band, ok := sectorBudgetBands[req.IndustrySector]; ok {
		kp.BudgetRange = band
	}

	criteria := make([]string, 0, 4)
	if req.MinExperienceYears > 0 {
		criteria = append(criteria, fmt.Sprintf("Minimum %d years experience", req.MinExperienceYears))
	}
	if len(req.RequiredCertifications) > 0 {
		criteria = append(criteria, req.RequiredCertifications...)
	}
	if len(req.RequiredRegions) > 0 {
		criteria = append(criteria, fmt.Sprintf("Operations in %s", strings.Join(req.RequiredRegions, ", ")))
	}
	if len(criteria) == 0 {
		criteria = []string{
			"Relevant industry experience",
			"Valid business registration",
			"Tax compliance status",
		}
	}
	kp.EligibilityCriteria = criteria
	return kp
}

// sectorBudgetBands holds typical contract value ranges per sector, shown
// when the text states no amount.
var sectorBudgetBands = map[string]string{
	"Construction": "R500K - R50M",
	"IT Services":  "R100K - R10M",
	"Security":     "R200K - R5M",
	"Cleaning":     "R100K - R2M",
	"Transport":    "R150K - R8M",
	"Healthcare":   "R300K - R15M",
	"Education":    "R100K - R5M",
	"Agriculture":  "R200K - R10M",
}

// baseTimelineDays holds typical delivery windows per sector, in days.
var baseTimelineDays = map[string]float64{
	"Construction": 90,
	"IT Services":  60,
	"Security":     45,
	"Cleaning":     30,
	"Transport":    45,
	"Healthcare":   60,
	"Education":    75,
	"Agriculture":  50,
}

// estimateTimeline maps complexity and sector onto a coarse delivery band.
func estimateTimeline(complexityScore int, sector string) string {
	base, ok := baseTimelineDays[sector]
	if !ok {
		base = 60
	}
	adjusted := base * float64(complexityScore) / 50

	switch {
	case adjusted < 30:
		return "30 days"
	case adjusted < 60:
		return "45 days"
	case adjusted < 90:
		return "60 days"
	default:
		return "90+ days"
	}
}
