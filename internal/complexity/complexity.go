// Package complexity estimates how demanding a tender is to respond to,
// from text length and the density of procurement-technical vocabulary.
package complexity

import (
	"strings"

	"github.com/thabo/tender-insight/internal/taxonomy"
)

// Neutral is the score returned for empty input.
const Neutral = 50

// Estimator computes complexity scores over a fixed technical-term list.
type Estimator struct {
	terms []string
}

// New returns an Estimator counting the given terms.
func New(terms []string) *Estimator {
	return &Estimator{terms: terms}
}

// NewDefault returns an Estimator over the built-in technical-term list.
func NewDefault() *Estimator {
	return New(taxonomy.TechnicalTerms())
}

// Estimate returns a complexity score in [0,100]. Empty text scores Neutral.
// The base is 50 scaled by text length (capped at 2x for texts over 2000
// characters); each distinct technical term present adds 5.
func (e *Estimator) Estimate(text string) int {
	if strings.TrimSpace(text) == "" {
		return Neutral
	}

	lengthFactor := float64(len(text)) / 1000
	if lengthFactor > 2 {
		lengthFactor = 2
	}
	score := 50 * lengthFactor

	lower := strings.ToLower(text)
	for _, term := range e.terms {
		if strings.Contains(lower, term) {
			score += 5
		}
	}

	if score > 100 {
		return 100
	}
	return int(score)
}
