package taxonomy

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_AlphabeticalOrder(t *testing.T) {
	labels := DefaultSectors().Labels()

	require.NotEmpty(t, labels)
	assert.True(t, sort.StringsAreSorted(labels))
	assert.Contains(t, labels, "Construction")
	assert.Contains(t, labels, "Agriculture")
}

func TestDefaultSectors_KeywordsAreLowercase(t *testing.T) {
	for label, keywords := range DefaultSectors() {
		require.NotEmpty(t, keywords, "sector %s", label)
		for _, keyword := range keywords {
			assert.Equal(t, strings.ToLower(keyword), keyword,
				"sector %s keyword %q must be lowercase for matching", label, keyword)
		}
	}
}

func TestDefaultCertifications_PatternsCompile(t *testing.T) {
	for _, cert := range DefaultCertifications() {
		require.NotEmpty(t, cert.Code)
		require.NotEmpty(t, cert.Patterns, "certification %s", cert.Code)
		for _, pattern := range cert.Patterns {
			_, err := regexp.Compile(`(?i)` + pattern)
			assert.NoError(t, err, "certification %s pattern %q", cert.Code, pattern)
		}
	}
}

func TestProvinces_CanonicalNames(t *testing.T) {
	provinces := Provinces()

	assert.Len(t, provinces, 9)
	assert.Contains(t, provinces, "Gauteng")
	assert.Contains(t, provinces, "KwaZulu-Natal")
}

func TestTechnicalTerms_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, TechnicalTerms())
}
