package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/scoring"
)

// Stats is the per-run statistics block a strategy fills while it works.
// It is owned by the run and returned to the caller; strategies never keep
// cross-call state.
type Stats struct {
	NodesExplored  int           `json:"nodes_explored"`
	BranchesPruned int           `json:"branches_pruned"`
	Iterations     int           `json:"iterations"`
	Restarts       int           `json:"restarts"`
	Elapsed        time.Duration `json:"elapsed"`
	TimedOut       bool          `json:"timed_out"`
}

// Run carries everything one strategy invocation needs: the prepared search,
// the normalized config, the statistics block, the cooperative deadline, and
// a seeded random source for the stochastic strategies.
type Run struct {
	Prepared *PreparedSearch
	Config   Config
	Stats    Stats

	ctx      context.Context
	deadline time.Time
	rng      *rand.Rand
	logger   *zap.Logger
}

func newRun(ctx context.Context, prepared *PreparedSearch, cfg Config) *Run {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Run{
		Prepared: prepared,
		Config:   cfg,
		ctx:      ctx,
		deadline: time.Now().Add(cfg.Timeout),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   cfg.Logger,
	}
}

// Rand is the run-scoped random source. Seeded from Config.Seed, so
// stochastic strategies replay exactly under the same seed.
func (r *Run) Rand() *rand.Rand {
	return r.rng
}

// Logger returns the run logger, never nil.
func (r *Run) Logger() *zap.Logger {
	return r.logger
}

// Expired is the cooperative budget check strategies call inside their inner
// loops. Crossing the wall-clock deadline or the caller context truncates
// the search and is recorded in Stats, never treated as an error.
func (r *Run) Expired() bool {
	if r.Stats.TimedOut {
		return true
	}
	if r.ctx.Err() != nil || time.Now().After(r.deadline) {
		r.Stats.TimedOut = true
		return true
	}
	return false
}

// ConflictBudget is the number of conflicts a candidate may carry: zero when
// conflicts are disallowed, MaxConflicts when bounded, unbounded otherwise.
func (r *Run) ConflictBudget() int {
	if !r.Config.AllowConflicts {
		return 0
	}
	if r.Config.MaxConflicts > 0 {
		return r.Config.MaxConflicts
	}
	return math.MaxInt
}

// ValidPartial reports whether a partial section assignment can still lead
// to a valid schedule: the credit sum must stay under the cap and the
// conflict count within budget.
func (r *Run) ValidPartial(sections []*models.Section) bool {
	if r.Config.MaxCredits > 0 && models.TotalCredits(sections) > r.Config.MaxCredits {
		return false
	}
	return models.CountConflicts(sections) <= r.ConflictBudget()
}

// ValidFinal applies the hard final-validity checks: credit cap, conflict
// budget, full mandatory coverage, and (under strict preferences) entirely
// empty desired free days.
func (r *Run) ValidFinal(s *models.Schedule) bool {
	if s == nil {
		return false
	}
	if r.Config.MaxCredits > 0 && s.TotalCredits() > r.Config.MaxCredits {
		return false
	}
	if s.ConflictCount() > r.ConflictBudget() {
		return false
	}
	for code := range r.Prepared.Mandatory {
		if !s.CoversMainCode(code) {
			return false
		}
	}
	prefs := r.Config.Preferences
	if prefs != nil && prefs.StrictFreeDays {
		for _, day := range prefs.FreeDays {
			if s.OccupiesDay(day) {
				return false
			}
		}
	}
	return true
}

// Score evaluates the schedule against the run preferences; zero when no
// preferences were supplied.
func (r *Run) Score(s *models.Schedule) float64 {
	return scoring.Score(s, r.Config.Preferences)
}

// Better reports whether a outranks b under the run's result ordering: by
// preference score when preferences are supplied, otherwise by fewer
// conflicts and then higher credit load.
func (r *Run) Better(a, b *models.Schedule) bool {
	if r.Config.Preferences != nil {
		return r.Score(a) > r.Score(b)
	}
	if a.ConflictCount() != b.ConflictCount() {
		return a.ConflictCount() < b.ConflictCount()
	}
	return a.TotalCredits() > b.TotalCredits()
}
