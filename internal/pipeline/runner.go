package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"niche-lab/internal/domain"
	"niche-lab/internal/ingest"
	"niche-lab/internal/logger"
)

// Runner executes subcategory analyses concurrently over a fixed worker
// pool. Subcategories are independent, so one failing input never stops
// the batch.
type Runner struct {
	workers int
	log     logger.Logger
}

// NewRunner creates a Runner. workers <= 0 selects one worker per CPU;
// log may be nil.
func NewRunner(workers int, log logger.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{workers: workers, log: log}
}

// BatchResult collects per-subcategory outcomes of one batch run.
type BatchResult struct {
	Results []*domain.ResultBundle
	Errors  []string // one entry per failed subcategory
}

// Run processes all inputs and returns results ranked best-first. The
// ordering is deterministic regardless of worker scheduling. Run stops
// dispatching when ctx is cancelled; already-running analyses finish.
func (r *Runner) Run(ctx context.Context, inputs []ingest.SubcategoryInput) *BatchResult {
	jobs := make(chan ingest.SubcategoryInput)
	result := &BatchResult{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input := range jobs {
				bundle, err := Process(input)
				mu.Lock()
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", input.Name, err))
					mu.Unlock()
					r.log.Warn("subcategory failed", logger.String("subcategory", input.Name), logger.Err(err))
					continue
				}
				result.Results = append(result.Results, bundle)
				mu.Unlock()
				r.log.Info("subcategory analyzed",
					logger.String("subcategory", input.Name),
					logger.Float64("score_pct", bundle.Score.Percentage),
					logger.String("action", string(bundle.Recommendation.Action)))
			}
		}()
	}

dispatch:
	for _, input := range inputs {
		select {
		case jobs <- input:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	Rank(result.Results)
	sort.Strings(result.Errors)
	return result
}

// Rank orders bundles best-first: percentage, then raw total, then name.
// Percentage leads so that base-scale and extended-scale results stay
// comparable in one ranking.
func Rank(results []*domain.ResultBundle) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score.Percentage != results[j].Score.Percentage {
			return results[i].Score.Percentage > results[j].Score.Percentage
		}
		if results[i].Score.TotalScore != results[j].Score.TotalScore {
			return results[i].Score.TotalScore > results[j].Score.TotalScore
		}
		return results[i].Subcategory < results[j].Subcategory
	})
}
