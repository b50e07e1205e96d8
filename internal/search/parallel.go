package search

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// CompareParallel runs each named strategy in its own worker goroutine over
// the same input and collects the per-strategy results in input order. Each
// worker stays internally sequential; a panic or unknown name is isolated
// into a worker-failed result and never aborts the batch.
func CompareParallel(
	ctx context.Context,
	names []string,
	groups map[string]*models.CourseGroup,
	mandatoryCodes []string,
	optionalCodes []string,
	cfg Config,
) []*Result {
	cfg = cfg.Normalize()
	results := make([]*Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(slot int, algorithm string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					cfg.Logger.Error("strategy worker panicked",
						zap.String("algorithm", algorithm),
						zap.Any("panic", r),
					)
					results[slot] = &Result{
						Algorithm:   algorithm,
						Status:      StatusWorkerFailed,
						Diagnostics: []string{fmt.Sprintf("worker panic: %v", r)},
					}
				}
			}()

			strategy, err := New(algorithm)
			if err != nil {
				results[slot] = &Result{
					Algorithm:   algorithm,
					Status:      StatusWorkerFailed,
					Diagnostics: []string{err.Error()},
				}
				return
			}
			results[slot] = Generate(ctx, strategy, groups, mandatoryCodes, optionalCodes, cfg)
		}(i, name)
	}
	wg.Wait()
	return results
}
