// Package summarize produces extractive summaries of tender documents by
// scoring sentences on procurement keyword tiers and position, then emitting
// the strongest sentences in their original order.
package summarize

import (
	"regexp"
	"sort"
	"strings"
)

// EmptyMessage is returned when there is no content to summarize at all.
const EmptyMessage = "No content available for summarization."

// Keywords holds the three scoring tiers. High-tier hits score +3 plus +1
// per occurrence, medium +2, low -1.
type Keywords struct {
	High   []string
	Medium []string
	Low    []string
}

// DefaultKeywords returns the built-in tiers tuned for South African tender
// documents.
func DefaultKeywords() Keywords {
	return Keywords{
		High: []string{
			"required", "must", "shall", "mandatory", "essential",
			"deadline", "submission", "closing date", "due date",
			"eligibility", "qualification", "certification",
			"experience", "minimum", "compliance", "cidb", "bbbee",
		},
		Medium: []string{
			"tender", "bid", "contract", "scope", "objective",
			"budget", "amount", "value", "price", "cost",
			"project", "services", "deliverables",
			"department", "government", "procurement",
		},
		Low: []string{
			"background", "introduction", "purpose", "aim",
			"contact", "information", "details",
		},
	}
}

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// Summarizer scores and selects sentences using a fixed keyword table. Safe
// for concurrent use.
type Summarizer struct {
	keywords Keywords
}

// New returns a Summarizer over the given keyword tiers.
func New(keywords Keywords) *Summarizer {
	return &Summarizer{keywords: keywords}
}

// NewDefault returns a Summarizer over the built-in tiers.
func NewDefault() *Summarizer {
	return New(DefaultKeywords())
}

type scoredSentence struct {
	text  string
	score int
	pos   int
}

// Summarize returns an extractive summary no longer than maxLen characters.
// A negative maxLen is treated as 0. Text shorter than 50 characters comes
// back unchanged (or EmptyMessage when blank). Texts of three meaningful
// sentences or fewer are truncated rather than summarized.
func (s *Summarizer) Summarize(text string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if strings.TrimSpace(text) == "" {
		if text == "" {
			return EmptyMessage
		}
		return text
	}
	if len(strings.TrimSpace(text)) < 50 {
		return text
	}

	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	sentences := splitSentences(text)

	if len(sentences) <= 3 {
		return truncate(text, maxLen)
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		scored = append(scored, scoredSentence{
			text:  sentence,
			score: s.scoreSentence(sentence, i),
			pos:   i,
		})
	}

	// stable sort keeps earlier sentences first among equals
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	top := make([]scoredSentence, 0, 5)
	for _, candidate := range scored {
		if candidate.score <= 0 || len(top) == 5 {
			break
		}
		top = append(top, candidate)
	}
	if len(top) == 0 {
		for i := 0; i < 4 && i < len(sentences); i++ {
			top = append(top, scoredSentence{text: sentences[i], pos: i})
		}
	}

	// re-sort the selection by document order so the summary reads coherently
	sort.Slice(top, func(i, j int) bool { return top[i].pos < top[j].pos })
	if len(top) > 4 {
		top = top[:4]
	}

	parts := make([]string, len(top))
	for i, sentence := range top {
		parts[i] = sentence.text
	}
	summary := strings.Join(parts, " ")

	if len(summary) > maxLen {
		summary = trimToWordBoundary(summary, maxLen) + "..."
	}
	return summary
}

func (s *Summarizer) scoreSentence(sentence string, pos int) int {
	score := 0
	lower := strings.ToLower(sentence)

	for _, keyword := range s.keywords.High {
		if strings.Contains(lower, keyword) {
			score += 3 + strings.Count(lower, keyword)
		}
	}
	for _, keyword := range s.keywords.Medium {
		if strings.Contains(lower, keyword) {
			score += 2
		}
	}
	for _, keyword := range s.keywords.Low {
		if strings.Contains(lower, keyword) {
			score--
		}
	}

	// leading sentences usually carry the tender's object and closing terms
	switch {
	case pos < 3:
		score += 3
	case pos < 6:
		score++
	}

	if n := len(sentence); n >= 50 && n <= 200 {
		score += 2
	}
	return score
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

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

func trimToWordBoundary(text string, maxLen int) string {
	if maxLen >= len(text) {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		return cut[:idx]
	}
	return cut
}
