// Package scoring combines extracted tender requirements with a company
// profile into a 0-100 suitability score, a pass/fail checklist and a
// recommendation tier.
package scoring

import (
	"fmt"
	"math"

	"github.com/thabo/tender-insight/internal/classify"
	"github.com/thabo/tender-insight/internal/types"
)

// Weights holds the five category weights plus the partial-credit bonus for
// an exact certification level match. The category weights must sum to 1.0.
type Weights struct {
	Certifications float64 `json:"certifications"`
	Experience     float64 `json:"experience"`
	Geographic     float64 `json:"geographic"`
	Sector         float64 `json:"sector"`
	Capacity       float64 `json:"capacity"`

	// LevelMatchBonus is the extra credit (in matched-certification units)
	// granted when the required level substring also matches the recorded
	// value. Best-effort heuristic, tunable rather than guaranteed.
	LevelMatchBonus float64 `json:"level_match_bonus"`
}

// DefaultWeights returns the production weight table.
func DefaultWeights() Weights {
	return Weights{
		Certifications:  0.30,
		Experience:      0.25,
		Geographic:      0.20,
		Sector:          0.15,
		Capacity:        0.10,
		LevelMatchBonus: 0.5,
	}
}

// Validate checks that the five category weights sum to 1.0.
func (w Weights) Validate() error {
	sum := w.Certifications + w.Experience + w.Geographic + w.Sector + w.Capacity
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("category weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// Scorer evaluates company/tender fit. Stateless after construction and safe
// for concurrent use.
type Scorer struct {
	weights    Weights
	classifier *classify.Classifier
}

// New returns a Scorer with the given weights. The classifier supplies the
// related-term taxonomy for the sector category so classification and
// scoring stay on one keyword table.
func New(weights Weights, classifier *classify.Classifier) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights, classifier: classifier}, nil
}

// NewDefault returns a Scorer over the default weights and taxonomy.
func NewDefault() *Scorer {
	s, err := New(DefaultWeights(), classify.NewDefault())
	if err != nil {
		panic(err) // unreachable: default weights sum to 1.0
	}
	return s
}

// Score evaluates the profile against the requirements. It never returns an
// error: internal failures degrade to the sentinel result with score 0 and
// an explanatory recommendation.
func (s *Scorer) Score(profile types.CompanyProfile, req types.TenderRequirements) (result types.ScoringResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ErrorResult(fmt.Sprintf("%v", r))
		}
	}()

	certScore, certItems := s.scoreCertifications(profile, req)
	expScore, expItems := scoreExperience(profile, req)
	geoScore, geoItems := scoreGeographic(profile, req)
	sectorScore, sectorItems := s.scoreSector(profile, req)
	capScore, capItems := scoreCapacity(profile)

	total := certScore*s.weights.Certifications +
		expScore*s.weights.Experience +
		geoScore*s.weights.Geographic +
		sectorScore*s.weights.Sector +
		capScore*s.weights.Capacity

	final := clamp(math.Round(total), 0, 100)

	checklist := mergeChecklists(certItems, expItems, geoItems, sectorItems, capItems)

	return types.ScoringResult{
		SuitabilityScore: final,
		Checklist:        checklist,
		Breakdown: types.Breakdown{
			Certifications:     certScore,
			Experience:         expScore,
			GeographicCoverage: geoScore,
			SectorMatch:        sectorScore,
			Capacity:           capScore,
		},
		Recommendation:  Recommendation(final),
		ConfidenceLevel: confidenceLevel(final, checklist),
	}
}

// ErrorResult is the sentinel a caller receives when scoring failed
// internally. Callers check for it instead of catching anything.
func ErrorResult(reason string) types.ScoringResult {
	return types.ScoringResult{
		SuitabilityScore: 0,
		Checklist: []types.ChecklistItem{
			{Criterion: "Error occurred during scoring", Met: false},
		},
		Recommendation:  fmt.Sprintf("Unable to calculate score: %s", reason),
		ConfidenceLevel: types.ConfidenceLow,
	}
}

// Recommendation maps a final score onto the five fixed tiers.
func Recommendation(score float64) string {
	switch {
	case score >= 90:
		return "Excellent match - highly recommended to bid"
	case score >= 75:
		return "Strong suitability - good candidate for submission"
	case score >= 60:
		return "Moderate suitability - consider bidding after addressing key gaps"
	case score >= 40:
		return "Limited suitability - significant gaps exist"
	default:
		return "Low suitability - not recommended for bidding"
	}
}

// confidenceLevel grades how definitive the evaluation was. Every checklist
// item is a hard boolean, so evaluation is always complete once there is
// anything to evaluate; confidence then varies with the score alone.
func confidenceLevel(score float64, checklist []types.ChecklistItem) string {
	if len(checklist) == 0 {
		return types.ConfidenceLow
	}
	if score > 70 {
		return types.ConfidenceHigh
	}
	return types.ConfidenceMedium
}

// mergeChecklists concatenates category checklists in category order,
// dropping any repeated criterion so each appears once per result.
func mergeChecklists(lists ...[]types.ChecklistItem) []types.ChecklistItem {
	merged := make([]types.ChecklistItem, 0, 8)
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, item := range list {
			if _, dup := seen[item.Criterion]; dup {
				continue
			}
			seen[item.Criterion] = struct{}{}
			merged = append(merged, item)
		}
	}
	return merged
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
