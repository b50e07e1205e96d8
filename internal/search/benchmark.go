package search

import (
	"context"
	"time"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// BenchmarkEntry is one strategy's outcome in a sequential comparison.
type BenchmarkEntry struct {
	Algorithm string        `json:"algorithm"`
	Result    *Result       `json:"result"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Benchmark runs the named strategies one after another over the same input
// and reports per-strategy results with wall time. Unknown names produce an
// invalid-input entry instead of aborting the batch.
func Benchmark(
	ctx context.Context,
	names []string,
	groups map[string]*models.CourseGroup,
	mandatoryCodes []string,
	optionalCodes []string,
	cfg Config,
) []BenchmarkEntry {
	entries := make([]BenchmarkEntry, 0, len(names))
	for _, name := range names {
		strategy, err := New(name)
		if err != nil {
			entries = append(entries, BenchmarkEntry{
				Algorithm: name,
				Result: &Result{
					Algorithm:   name,
					Status:      StatusInvalidInput,
					Diagnostics: []string{err.Error()},
				},
			})
			continue
		}
		start := time.Now()
		result := Generate(ctx, strategy, groups, mandatoryCodes, optionalCodes, cfg)
		entries = append(entries, BenchmarkEntry{
			Algorithm: name,
			Result:    result,
			Elapsed:   time.Since(start),
		})
	}
	return entries
}
