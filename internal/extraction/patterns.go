package extraction

import "regexp"

// Pattern tables mined from real South African tender notices. Experience
// patterns each capture a year count; the extractor keeps the maximum across
// every match rather than the first, since notices often restate the
// requirement ("3 years general, minimum of 5 years similar works").
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*years?\s*experience`),
	regexp.MustCompile(`minimum\s*of\s*(\d+)\s*years`),
	regexp.MustCompile(`at least\s*(\d+)\s*years`),
	regexp.MustCompile(`(\d+)\s*years?\s*in.*?experience`),
	regexp.MustCompile(`experience.*?(\d+)\s*years`),
}

// Budget patterns accept R / Rand / ZAR amounts with optional thousands
// separators, preferring amounts anchored by a budget cue word.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:budget|amount|value).*?r\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`\br\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`rand\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`zar\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
}

var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`closing\s*date.*?(\d{1,2}\s+\w+\s+\d{4})`),
	regexp.MustCompile(`deadline.*?(\d{1,2}\s+\w+\s+\d{4})`),
	regexp.MustCompile(`submission\s*date.*?(\d{1,2}\s+\w+\s+\d{4})`),
	regexp.MustCompile(`due.*?(\d{1,2}\s+\w+\s+\d{4})`),
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Topic keyword sets for the informational sentence scans.
var technicalIndicators = []string{
	"software", "hardware", "equipment", "system", "network",
	"infrastructure", "tools", "machinery", "vehicles", "facilities",
	"technology", "digital", "automation",
}

var submissionIndicators = []string{
	"proposal", "quotation", "bid", "tender", "document",
	"submission", "application", "form", "certificate",
}
