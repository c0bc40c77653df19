package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thabo/tender-insight/internal/taxonomy"
	"github.com/thabo/tender-insight/internal/types"
)

func TestClassify_ConstructionText(t *testing.T) {
	c := NewDefault()

	sector := c.Classify("Tender for the construction of roads and bridges, including earthworks and paving. CIDB grading applies.")
	assert.Equal(t, "Construction", sector)
}

func TestClassify_EmptyTextReturnsDefault(t *testing.T) {
	c := NewDefault()

	assert.Equal(t, types.DefaultSector, c.Classify(""))
	assert.Equal(t, types.DefaultSector, c.Classify("   "))
}

func TestClassify_NoKeywordsReturnsDefault(t *testing.T) {
	c := NewDefault()

	sector := c.Classify("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, types.DefaultSector, sector)
}

func TestClassify_OccurrenceCountBreaksDominance(t *testing.T) {
	c := NewDefault()

	// "cleaning" repeated should outvote a single healthcare mention
	sector := c.Classify("cleaning cleaning cleaning services for the clinic")
	assert.Equal(t, "Cleaning", sector)
}

func TestClassify_TieGoesToAlphabeticallyFirstSector(t *testing.T) {
	c := NewDefault()

	// one single-occurrence keyword from Agriculture and one from Education
	// score identically; Agriculture sorts first
	sector := c.Classify("farming and teaching")
	assert.Equal(t, "Agriculture", sector)
}

func TestClassifyWeighted_TitleBonusFlipsResult(t *testing.T) {
	c := NewDefault()

	body := "delivery of equipment to the hospital and clinic for patient treatment"
	// body alone is healthcare-dominated
	assert.Equal(t, "Healthcare", c.Classify(body))

	// a transport-heavy title outweighs the body signal
	sector := c.ClassifyWeighted("Courier and freight logistics services", body)
	assert.Equal(t, "Transport", sector)
}

func TestClassify_CustomTaxonomy(t *testing.T) {
	c := New(taxonomy.Sectors{
		"Forestry": {"timber", "sawmill"},
	})

	assert.Equal(t, "Forestry", c.Classify("supply of timber to the sawmill"))
	assert.Equal(t, types.DefaultSector, c.Classify("general supplies"))
}

func TestRelatedTerms_MatchesLabelCaseInsensitively(t *testing.T) {
	c := NewDefault()

	terms := c.RelatedTerms("construction")
	assert.Contains(t, terms, "civil")

	assert.Nil(t, c.RelatedTerms("unknown sector"))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewDefault()
	text := "security guard patrol services with cctv monitoring"

	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}
