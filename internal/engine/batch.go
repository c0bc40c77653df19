package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/thabo/tender-insight/internal/types"
)

// batchConcurrency bounds parallel scorings in a batch.
const batchConcurrency = 8

// TenderText is one tender in a batch request: a caller-side reference plus
// the raw text the external document pipeline produced.
type TenderText struct {
	Ref   string `json:"ref"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// BatchScore pairs a tender reference with its scoring outcome.
type BatchScore struct {
	Ref    string              `json:"ref"`
	Result types.ScoringResult `json:"result"`
}

// ScoreBatch extracts and scores every tender against one profile
// concurrently. Each scoring call is independent and side-effect free, so
// the only coordination is the result slice, indexed per goroutine. The
// context cancels remaining work; partial results are discarded on error.
func (e *Engine) ScoreBatch(ctx context.Context, profile types.CompanyProfile, tenders []TenderText) ([]BatchScore, error) {
	results := make([]BatchScore, len(tenders))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, tender := range tenders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := e.extractor.Extract(tender.Text, tender.Title)
			results[i] = BatchScore{
				Ref:    tender.Ref,
				Result: e.scorer.Score(profile, req),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
