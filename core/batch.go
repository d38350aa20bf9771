package core

import (
	"fmt"
	"sync"

	"github.com/crawlscore/crawlscore/internal/contract"
	"github.com/crawlscore/crawlscore/schema"
)

// BatchInput is one file queued for batch scoring. LoadErr carries an
// upstream loader failure so the batch can record it without aborting.
type BatchInput struct {
	FileID  string
	Dataset *schema.Dataset
	LoadErr error
}

// RunBatch scores every input independently on a bounded worker pool and
// returns one outcome per input. A failure on one file never prevents the
// others from scoring, and outcomes keep input order regardless of
// completion order. Files share nothing but the read-only config, so the
// pool needs no locking beyond the slice indexing by input position.
func RunBatch(cfg *contract.Config, inputs []BatchInput) *schema.BatchResult {
	outcomes := make([]schema.FileOutcome, len(inputs))

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int, in BatchInput) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = scoreOne(cfg, in)
		}(i, inputs[i])
	}
	wg.Wait()

	return &schema.BatchResult{
		Outcomes: outcomes,
		Summary:  summarize(outcomes),
	}
}

// scoreOne resolves a single input to its terminal outcome, scored or failed.
func scoreOne(cfg *contract.Config, in BatchInput) (out schema.FileOutcome) {
	out = schema.FileOutcome{FileID: in.FileID}

	// A panic while scoring one file must not take the batch down.
	defer func() {
		if r := recover(); r != nil {
			out.Result = nil
			out.Error = fmt.Sprintf("scoring panicked: %v", r)
		}
	}()

	if in.LoadErr != nil {
		out.Error = in.LoadErr.Error()
		return out
	}
	result, err := ScoreDataset(cfg, in.Dataset)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Result = result
	return out
}

// summarize computes batch statistics over the scored outcomes only.
// It returns nil when nothing scored: with no data the statistics are
// absent, not zero.
func summarize(outcomes []schema.FileOutcome) *schema.BatchSummary {
	summary := &schema.BatchSummary{}
	sum := 0
	for _, o := range outcomes {
		if o.Failed() {
			summary.Failed++
			continue
		}
		score := o.Result.Score
		if summary.Scored == 0 || score > summary.Best {
			summary.Best = score
			summary.BestFile = o.FileID
		}
		if summary.Scored == 0 || score < summary.Worst {
			summary.Worst = score
			summary.WorstFile = o.FileID
		}
		sum += score
		summary.Scored++
	}
	if summary.Scored == 0 {
		return nil
	}
	summary.Average = float64(sum) / float64(summary.Scored)
	return summary
}
