// Package extraction mines structured requirements out of unstructured
// tender text: certifications, experience, geography, budget, deadlines and
// topical requirement sentences. Extraction never fails; degenerate input
// yields the documented all-defaults TenderRequirements.
package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/classify"
	"github.com/thabo/tender-insight/internal/taxonomy"
	"github.com/thabo/tender-insight/internal/types"
)

type certMatcher struct {
	code     string
	patterns []*regexp.Regexp
}

// Extractor turns tender text into TenderRequirements. Safe for concurrent
// use; the logger only records extraction progress.
type Extractor struct {
	classifier *classify.Classifier
	certs      []certMatcher
	provinces  []string
	log        *zap.Logger
}

// New builds an Extractor over the given classifier and certification
// registry. A nil logger disables logging.
func New(classifier *classify.Classifier, registry []taxonomy.Certification, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	certs := make([]certMatcher, 0, len(registry))
	for _, cert := range registry {
		m := certMatcher{code: cert.Code}
		for _, pattern := range cert.Patterns {
			m.patterns = append(m.patterns, regexp.MustCompile(`(?i)`+pattern))
		}
		certs = append(certs, m)
	}
	return &Extractor{
		classifier: classifier,
		certs:      certs,
		provinces:  taxonomy.Provinces(),
		log:        log,
	}
}

// NewDefault returns an Extractor over the built-in taxonomy and registry.
func NewDefault(log *zap.Logger) *Extractor {
	return New(classify.NewDefault(), taxonomy.DefaultCertifications(), log)
}

// Extract mines requirements from the tender description, optionally guided
// by its title. It never returns an error; empty input produces the
// all-defaults value.
func (e *Extractor) Extract(text, title string) types.TenderRequirements {
	req := types.DefaultRequirements()

	combined := strings.TrimSpace(title + " " + text)
	if combined == "" {
		return req
	}
	lower := strings.ToLower(combined)

	e.log.Debug("extracting tender requirements", zap.Int("text_length", len(lower)))

	req.RequiredCertifications = e.extractCertifications(lower)
	req.MinExperienceYears = extractExperience(lower)
	req.RequiredRegions = e.extractRegions(lower)
	req.IndustrySector = e.classifier.ClassifyWeighted(title, text)

	sentences := splitSentences(lower)
	req.TechnicalRequirements = matchingSentences(sentences, technicalIndicators)
	req.SubmissionRequirements = matchingSentences(sentences, submissionIndicators)

	req.BudgetEstimate = extractBudget(lower)
	req.DeadlineText = extractDeadline(lower)

	e.log.Debug("extraction complete",
		zap.Int("certifications", len(req.RequiredCertifications)),
		zap.Int("regions", len(req.RequiredRegions)),
		zap.Int("min_experience_years", req.MinExperienceYears),
		zap.String("sector", req.IndustrySector),
	)
	return req
}

// extractCertifications walks the registry in order. For each code the first
// matching pattern wins; a non-empty first capture group becomes the level.
func (e *Extractor) extractCertifications(text string) []string {
	found := make([]string, 0, len(e.certs))
	for _, cert := range e.certs {
		for _, pattern := range cert.patterns {
			m := pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			entry := cert.code
			if len(m) > 1 && strings.TrimSpace(m[1]) != "" {
				entry = fmt.Sprintf("%s: %s", cert.code, strings.TrimSpace(m[1]))
			}
			found = append(found, entry)
			break
		}
	}
	return found
}

// extractExperience returns the maximum year count matched by any pattern.
func extractExperience(text string) int {
	maxYears := 0
	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return maxYears
}

func (e *Extractor) extractRegions(text string) []string {
	regions := make([]string, 0, len(e.provinces))
	for _, province := range e.provinces {
		if strings.Contains(text, strings.ToLower(province)) {
			regions = append(regions, province)
		}
	}
	return regions
}

func extractBudget(text string) string {
	for _, pattern := range budgetPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		switch {
		case amount > 1_000_000:
			return fmt.Sprintf("R%.1fM", amount/1_000_000)
		case amount > 1_000:
			return fmt.Sprintf("R%.0fK", amount/1_000)
		default:
			return "R" + groupThousands(fmt.Sprintf("%.0f", amount))
		}
	}
	return ""
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	return groupThousands(digits[:len(digits)-3]) + "," + digits[len(digits)-3:]
}

func extractDeadline(text string) string {
	for _, pattern := range deadlinePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func splitSentences(text string) []string {
	raw := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(raw))
	for _, sentence := range raw {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 10 {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

// matchingSentences keeps every sentence containing one of the indicator
// keywords, deduplicated, in document order.
func matchingSentences(sentences, indicators []string) []string {
	matched := make([]string, 0)
	seen := make(map[string]struct{})
	for _, sentence := range sentences {
		if _, dup := seen[sentence]; dup {
			continue
		}
		for _, indicator := range indicators {
			if strings.Contains(sentence, indicator) {
				matched = append(matched, sentence)
				seen[sentence] = struct{}{}
				break
			}
		}
	}
	return matched
}
