// Package engine wires the classifier, complexity estimator, summarizer,
// extractor and scorer into one analysis facade. Every operation is a pure
// function over its inputs; concurrent calls need no coordination.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/classify"
	"github.com/thabo/tender-insight/internal/complexity"
	"github.com/thabo/tender-insight/internal/extraction"
	"github.com/thabo/tender-insight/internal/scoring"
	"github.com/thabo/tender-insight/internal/summarize"
	"github.com/thabo/tender-insight/internal/taxonomy"
	"github.com/thabo/tender-insight/internal/types"
)

// DefaultSummaryLength caps analysis summaries, in characters.
const DefaultSummaryLength = 300

// Options overrides the engine's built-in tables. Nil/empty fields keep the
// defaults; this is how config-file taxonomies and weights are injected
// instead of living as package globals.
type Options struct {
	Sectors         taxonomy.Sectors
	Certifications  []taxonomy.Certification
	SummaryKeywords *summarize.Keywords
	Weights         *scoring.Weights
	Logger          *zap.Logger
}

// Engine is the terminal analysis surface. Construct once, share freely.
type Engine struct {
	classifier *classify.Classifier
	estimator  *complexity.Estimator
	summarizer *summarize.Summarizer
	extractor  *extraction.Extractor
	scorer     *scoring.Scorer
}

// New builds an Engine, applying any overrides in opts.
func New(opts Options) (*Engine, error) {
	sectors := opts.Sectors
	if sectors == nil {
		sectors = taxonomy.DefaultSectors()
	}
	registry := opts.Certifications
	if registry == nil {
		registry = taxonomy.DefaultCertifications()
	}
	keywords := summarize.DefaultKeywords()
	if opts.SummaryKeywords != nil {
		keywords = *opts.SummaryKeywords
	}
	weights := scoring.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	classifier := classify.New(sectors)
	scorer, err := scoring.New(weights, classifier)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}

	return &Engine{
		classifier: classifier,
		estimator:  complexity.NewDefault(),
		summarizer: summarize.New(keywords),
		extractor:  extraction.New(classifier, registry, opts.Logger),
		scorer:     scorer,
	}, nil
}

// NewDefault builds an Engine on the built-in tables.
func NewDefault(log *zap.Logger) *Engine {
	e, err := New(Options{Logger: log})
	if err != nil {
		panic(err) // unreachable with default options
	}
	return e
}

// ClassifyIndustry returns the sector label for the text.
func (e *Engine) ClassifyIndustry(text string) string {
	return e.classifier.Classify(text)
}

// EstimateComplexity returns a complexity score in [0,100].
func (e *Engine) EstimateComplexity(text string) int {
	return e.estimator.Estimate(text)
}

// Summarize returns an extractive summary no longer than maxLen characters.
func (e *Engine) Summarize(text string, maxLen int) string {
	return e.summarizer.Summarize(text, maxLen)
}

// ExtractRequirements mines structured requirements from tender text.
func (e *Engine) ExtractRequirements(text, title string) types.TenderRequirements {
	return e.extractor.Extract(text, title)
}

// ScoreSuitability evaluates a company profile against requirements.
func (e *Engine) ScoreSuitability(profile types.CompanyProfile, req types.TenderRequirements) types.ScoringResult {
	return e.scorer.Score(profile, req)
}
