// Package search hosts the timetabling engine: the shared strategy contract,
// the per-run container, result finalization, and the family of
// interchangeable search strategies (complete, informed, local, population,
// and constraint-programming). Strategies receive pre-built group options
// and own nothing beyond their traversal order and heuristics; business
// failures travel through Result.Status, never through errors or panics.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/constraint"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// Strategy is the single extension point of the framework. Run receives the
// prepared search and returns candidate schedules; the framework validates,
// dedups, bounds, and sorts them afterwards. Implementations must stay
// within the run's cooperative deadline by polling run.Expired.
type Strategy interface {
	Metadata() models.AlgorithmMetadata
	Run(run *Run) []*models.Schedule
}

// Status classifies the outcome of a generate call.
type Status string

const (
	StatusOK                Status = "ok"
	StatusInvalidInput      Status = "invalid-input"
	StatusNoValidSelections Status = "no-valid-selections"
	StatusNoResults         Status = "no-results"
	StatusWorkerFailed      Status = "worker-failed"
)

// Config is the per-run configuration. The zero value is usable: Normalize
// fills every unset knob with its default.
type Config struct {
	MaxResults     int
	MaxCredits     float64
	AllowConflicts bool
	MaxConflicts   int
	Timeout        time.Duration
	Seed           int64
	Preferences    *models.Preferences
	Replacement    constraint.ReplacementTarget
	Logger         *zap.Logger

	// Strategy knobs. Each strategy reads only its own subset.
	DepthIncrement  int
	MaxIterations   int
	InitialTemp     float64
	CoolingRate     float64
	StagnationLimit int
	PopulationSize  int
	Generations     int
	CrossoverRate   float64
	MutationRate    float64
	SwarmSize       int
	Inertia         float64
	Cognitive       float64
	Social          float64
	TabuTenure      int
	Restarts        int
}

// Normalize returns a copy with defaults applied. A zero Seed is replaced
// with the current time, so explicit seeds replay and implicit ones vary.
func (c Config) Normalize() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = 10
	}
	if c.MaxConflicts < 0 {
		c.MaxConflicts = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.DepthIncrement <= 0 {
		c.DepthIncrement = 1
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 1000
	}
	if c.InitialTemp <= 0 {
		c.InitialTemp = 1000
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		c.CoolingRate = 0.95
	}
	if c.StagnationLimit <= 0 {
		c.StagnationLimit = 50
	}
	if c.PopulationSize <= 0 {
		c.PopulationSize = 40
	}
	if c.Generations <= 0 {
		c.Generations = 60
	}
	if c.CrossoverRate <= 0 {
		c.CrossoverRate = 0.7
	}
	if c.MutationRate <= 0 {
		c.MutationRate = 0.1
	}
	if c.SwarmSize <= 0 {
		c.SwarmSize = 30
	}
	if c.Inertia <= 0 {
		c.Inertia = 0.4
	}
	if c.Cognitive <= 0 {
		c.Cognitive = 0.3
	}
	if c.Social <= 0 {
		c.Social = 0.2
	}
	if c.TabuTenure <= 0 {
		c.TabuTenure = 25
	}
	if c.Restarts < 0 {
		c.Restarts = 0
	}
	return c
}

// Result is the caller-facing outcome of one strategy run.
type Result struct {
	Algorithm   string             `json:"algorithm"`
	Status      Status             `json:"status"`
	Schedules   []*models.Schedule `json:"-"`
	Stats       Stats              `json:"stats"`
	Diagnostics []string           `json:"diagnostics,omitempty"`
}

// Generate is the framework entry point: it validates the input, builds the
// PreparedSearch, fails fast on infeasible mandatory groups, delegates to
// the strategy, and finalizes the candidates. Infeasibility and exhaustion
// come back as statuses with diagnostics; Generate never returns an error.
func Generate(
	ctx context.Context,
	strategy Strategy,
	groups map[string]*models.CourseGroup,
	mandatoryCodes []string,
	optionalCodes []string,
	cfg Config,
) *Result {
	cfg = cfg.Normalize()
	result := &Result{Algorithm: strategy.Metadata().Name}

	if len(groups) == 0 {
		result.Status = StatusInvalidInput
		result.Diagnostics = append(result.Diagnostics, "course catalog is empty")
		return result
	}
	if len(mandatoryCodes) == 0 {
		result.Status = StatusInvalidInput
		result.Diagnostics = append(result.Diagnostics, "mandatory course set is empty")
		return result
	}

	prepared, diagnostics := Prepare(groups, mandatoryCodes, optionalCodes, cfg.Replacement)
	if len(diagnostics) > 0 {
		result.Status = StatusNoValidSelections
		result.Diagnostics = diagnostics
		return result
	}
	if !cfg.AllowConflicts {
		for _, code := range prepared.MandatoryCodes() {
			if !hasConflictFreeSelection(prepared.Selections[code]) {
				result.Status = StatusNoValidSelections
				result.Diagnostics = append(result.Diagnostics,
					fmt.Sprintf("mandatory course %s has no conflict-free section combination", code))
			}
		}
		if result.Status == StatusNoValidSelections {
			return result
		}
	}
	if cfg.MaxCredits > 0 && prepared.MinMandatoryCredits() > cfg.MaxCredits {
		result.Status = StatusNoValidSelections
		result.Diagnostics = append(result.Diagnostics, "minimum required credits exceed cap")
		return result
	}

	run := newRun(ctx, prepared, cfg)
	start := time.Now()
	candidates := strategy.Run(run)
	run.Stats.Elapsed = time.Since(start)

	result.Schedules = finalize(run, candidates)
	result.Stats = run.Stats
	if len(result.Schedules) == 0 {
		result.Status = StatusNoResults
		result.Diagnostics = append(result.Diagnostics, "no schedule satisfied the final validity checks")
	} else {
		result.Status = StatusOK
	}

	cfg.Logger.Debug("search finished",
		zap.String("algorithm", result.Algorithm),
		zap.String("status", string(result.Status)),
		zap.Int("schedules", len(result.Schedules)),
		zap.Int("nodes", result.Stats.NodesExplored),
		zap.Int("pruned", result.Stats.BranchesPruned),
		zap.Bool("timed_out", result.Stats.TimedOut),
		zap.Duration("elapsed", result.Stats.Elapsed),
	)
	return result
}

// hasConflictFreeSelection reports whether at least one of the group's
// selections is internally conflict-free. With conflicts disallowed, a
// mandatory group failing this can never appear in a valid schedule.
func hasConflictFreeSelection(selections []models.Selection) bool {
	for _, sel := range selections {
		if models.CountConflicts(sel) == 0 {
			return true
		}
	}
	return false
}

// finalize drops invalid candidates, dedups by signature, keeps at most
// MaxResults by replacing the current worst kept schedule whenever a better
// one arrives, and sorts by the run ordering.
func finalize(run *Run, candidates []*models.Schedule) []*models.Schedule {
	kept := make([]*models.Schedule, 0, run.Config.MaxResults)
	seen := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		if candidate == nil || !run.ValidFinal(candidate) {
			continue
		}
		if seen[candidate.Signature()] {
			continue
		}
		seen[candidate.Signature()] = true

		if len(kept) < run.Config.MaxResults {
			kept = append(kept, candidate)
			continue
		}
		worst := 0
		for i := 1; i < len(kept); i++ {
			if run.Better(kept[worst], kept[i]) {
				worst = i
			}
		}
		if run.Better(candidate, kept[worst]) {
			kept[worst] = candidate
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return run.Better(kept[i], kept[j]) })
	return kept
}
