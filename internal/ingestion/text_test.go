package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "", CleanText(""))

	// line endings normalized, space runs collapsed
	got := CleanText("first  line\r\nsecond\tline\rthird   line")
	assert.Equal(t, "first line\nsecond line\nthird line", got)

	// at most two consecutive newlines survive
	got = CleanText("paragraph one\n\n\n\n\nparagraph two")
	assert.Equal(t, "paragraph one\n\nparagraph two", got)

	// surrounding whitespace trimmed
	assert.Equal(t, "content", CleanText("   \n content \n  "))
}

func TestTextFromHTML_StripsMarkupAndScripts(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
	<body>
	<script>alert("ignore me");</script>
	<h1>Tender Notice</h1>
	<p>Closing date: <b>15 March 2026</b></p>
	</body></html>`

	text, err := TextFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Tender Notice")
	assert.Contains(t, text, "Closing date: 15 March 2026")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<p>")
}

func TestTextFromHTML_FragmentWithoutBody(t *testing.T) {
	text, err := TextFromHTML("<div>Supply of cleaning materials</div>")
	require.NoError(t, err)
	assert.Contains(t, text, "Supply of cleaning materials")
}

func TestNormalize_DetectsHTML(t *testing.T) {
	got := Normalize("<html><body><p>Tender for road works</p></body></html>")
	assert.Equal(t, "Tender for road works", got)
}

func TestNormalize_PlainTextPassesThroughCleaning(t *testing.T) {
	got := Normalize("Tender   for road works\r\nin Gauteng")
	assert.Equal(t, "Tender for road works\nin Gauteng", got)
}

func TestNormalize_AngleBracketTextIsNotTreatedAsHTML(t *testing.T) {
	// comparison text that merely starts with "<" still cleans as plain text
	got := Normalize("< 5 years experience is insufficient")
	assert.Equal(t, "< 5 years experience is insufficient", got)
}
