// Package ingestion normalizes tender text handed over by the external
// document pipeline before it reaches the analysis engine. It performs no
// downloading or format conversion; PDFs and DOCX are already plain text (or
// HTML) by the time they arrive here.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	spacesRe     = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes whitespace while preserving paragraph structure:
// line endings become LF, runs of spaces collapse, and more than two
// consecutive blank lines are reduced to two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, spacesRe.ReplaceAllString(strings.TrimSpace(line), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// TextFromHTML extracts readable text from an HTML payload, dropping script
// and style content, then cleans it. Some portals publish tender notices as
// HTML attachments; the document pipeline passes those through unchanged.
func TextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
		sb.WriteString("\n")
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// document without a body tag; fall back to the whole tree
		text = doc.Text()
	}
	return CleanText(text), nil
}

// Normalize prepares an incoming payload for the engine: HTML payloads are
// converted to text, everything else is cleaned as-is.
func Normalize(payload string) string {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">") {
		if text, err := TextFromHTML(trimmed); err == nil && text != "" {
			return text
		}
	}
	return CleanText(payload)
}
