// Package classify assigns an industry sector label to free tender text
// using keyword-frequency voting over a fixed taxonomy.
package classify

import (
	"strings"

	"github.com/thabo/tender-insight/internal/taxonomy"
	"github.com/thabo/tender-insight/internal/types"
)

// Classifier scores text against a sector keyword taxonomy. It is stateless
// after construction and safe for concurrent use.
type Classifier struct {
	sectors taxonomy.Sectors
	labels  []string
}

// New returns a Classifier over the given taxonomy.
func New(sectors taxonomy.Sectors) *Classifier {
	return &Classifier{sectors: sectors, labels: sectors.Labels()}
}

// NewDefault returns a Classifier over the built-in taxonomy.
func NewDefault() *Classifier {
	return New(taxonomy.DefaultSectors())
}

// Classify returns the sector whose keywords score highest in the text, or
// types.DefaultSector when nothing scores. Each present keyword contributes
// 1 + 0.5 per occurrence. Ties go to the alphabetically-first label.
func (c *Classifier) Classify(text string) string {
	return c.ClassifyWeighted("", text)
}

// ClassifyWeighted scores title and body together, with every keyword that
// also appears in the title earning a +3 bonus. Title text is counted as part
// of the body, matching how tender titles prefix their descriptions.
func (c *Classifier) ClassifyWeighted(title, body string) string {
	combined := strings.ToLower(strings.TrimSpace(title + " " + body))
	if combined == "" {
		return types.DefaultSector
	}
	titleLower := strings.ToLower(title)

	best, bestScore := types.DefaultSector, 0.0
	for _, label := range c.labels {
		score := 0.0
		for _, keyword := range c.sectors[label] {
			if !strings.Contains(combined, keyword) {
				continue
			}
			score += 1 + 0.5*float64(strings.Count(combined, keyword))
			if titleLower != "" && strings.Contains(titleLower, keyword) {
				score += 3
			}
		}
		// strict comparison keeps the alphabetically-first label on ties
		if score > bestScore {
			best, bestScore = label, score
		}
	}
	return best
}

// RelatedTerms returns the keyword list behind a sector label, matching
// case-insensitively on the label. The scorer uses it for related-sector
// credit so classification and scoring share one taxonomy.
func (c *Classifier) RelatedTerms(label string) []string {
	label = strings.ToLower(label)
	for _, candidate := range c.labels {
		if strings.Contains(strings.ToLower(candidate), label) || strings.Contains(label, strings.ToLower(candidate)) {
			return c.sectors[candidate]
		}
	}
	return nil
}
