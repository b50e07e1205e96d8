package search

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

func TestConfigNormalizeAppliesDefaults(t *testing.T) {
	cfg := Config{MaxConflicts: -3, Restarts: -1, CoolingRate: 1.5}.Normalize()

	assert.Equal(t, 10, cfg.MaxResults)
	assert.Equal(t, 0, cfg.MaxConflicts)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.NotZero(t, cfg.Seed)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, 1, cfg.DepthIncrement)
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.InDelta(t, 1000.0, cfg.InitialTemp, 1e-9)
	assert.InDelta(t, 0.95, cfg.CoolingRate, 1e-9)
	assert.Equal(t, 50, cfg.StagnationLimit)
	assert.Equal(t, 40, cfg.PopulationSize)
	assert.Equal(t, 60, cfg.Generations)
	assert.InDelta(t, 0.7, cfg.CrossoverRate, 1e-9)
	assert.InDelta(t, 0.1, cfg.MutationRate, 1e-9)
	assert.Equal(t, 30, cfg.SwarmSize)
	assert.InDelta(t, 0.4, cfg.Inertia, 1e-9)
	assert.InDelta(t, 0.3, cfg.Cognitive, 1e-9)
	assert.InDelta(t, 0.2, cfg.Social, 1e-9)
	assert.Equal(t, 25, cfg.TabuTenure)
	assert.Equal(t, 0, cfg.Restarts)
}

func TestConfigNormalizePreservesExplicitValues(t *testing.T) {
	cfg := Config{
		MaxResults:    5,
		MaxConflicts:  2,
		Timeout:       time.Minute,
		Seed:          42,
		MaxIterations: 7,
	}.Normalize()

	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, 2, cfg.MaxConflicts)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.MaxIterations)
}

func TestRunConflictBudget(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{name: "disallowed", cfg: Config{Seed: 1}, want: 0},
		{name: "bounded", cfg: Config{Seed: 1, AllowConflicts: true, MaxConflicts: 2}, want: 2},
		{name: "unbounded", cfg: Config{Seed: 1, AllowConflicts: true}, want: math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, tt.cfg)
			assert.Equal(t, tt.want, run.ConflictBudget())
		})
	}
}

func TestRunValidPartial(t *testing.T) {
	clean := sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1))
	heavy := sec("MA201/1", "MA201", 4, models.SectionTypeLecture, ts(models.Tuesday, 1))
	clash := sec("PH150/1", "PH150", 1, models.SectionTypeLecture, ts(models.Monday, 1))

	strict := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 1, MaxCredits: 5})
	assert.True(t, strict.ValidPartial([]*models.Section{clean}))
	assert.False(t, strict.ValidPartial([]*models.Section{clean, heavy}), "7 credits exceed the cap")
	assert.False(t, strict.ValidPartial([]*models.Section{clean, clash}), "conflicts are disallowed")

	tolerant := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 1, AllowConflicts: true})
	assert.True(t, tolerant.ValidPartial([]*models.Section{clean, clash}))
}

func TestRunValidFinal(t *testing.T) {
	lecture := sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1))
	labWed := sec("CS101/L1", "CS101", 1, models.SectionTypeLab, ts(models.Wednesday, 2))
	labThu := sec("CS101/L2", "CS101", 1, models.SectionTypeLab, ts(models.Thursday, 2))
	stranger := sec("MA201/1", "MA201", 3, models.SectionTypeLecture, ts(models.Tuesday, 1))
	clash := sec("PH150/1", "PH150", 1, models.SectionTypeLecture, ts(models.Monday, 1))

	run := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 1})
	assert.False(t, run.ValidFinal(nil))
	assert.True(t, run.ValidFinal(models.NewSchedule([]*models.Section{lecture, labWed})))
	assert.False(t, run.ValidFinal(models.NewSchedule([]*models.Section{stranger})),
		"mandatory coverage is required")
	assert.False(t, run.ValidFinal(models.NewSchedule([]*models.Section{lecture, labWed, clash})),
		"conflicts are disallowed")

	capped := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 1, MaxCredits: 3.5})
	assert.False(t, capped.ValidFinal(models.NewSchedule([]*models.Section{lecture, labWed})))

	strictDays := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{
		Seed: 1,
		Preferences: &models.Preferences{
			FreeDays:       []models.Day{models.Wednesday},
			StrictFreeDays: true,
		},
	})
	assert.False(t, strictDays.ValidFinal(models.NewSchedule([]*models.Section{lecture, labWed})))
	assert.True(t, strictDays.ValidFinal(models.NewSchedule([]*models.Section{lecture, labThu})))
}

func TestRunBetterOrdering(t *testing.T) {
	calm := models.NewSchedule([]*models.Section{
		sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1)),
	})
	loaded := models.NewSchedule([]*models.Section{
		sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1)),
		sec("MA201/1", "MA201", 3, models.SectionTypeLecture, ts(models.Monday, 2)),
	})
	clashing := models.NewSchedule([]*models.Section{
		sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1)),
		sec("MA201/1", "MA201", 3, models.SectionTypeLecture, ts(models.Monday, 1)),
	})

	plain := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 1, AllowConflicts: true})
	assert.True(t, plain.Better(loaded, clashing), "fewer conflicts win first")
	assert.True(t, plain.Better(loaded, calm), "equal conflicts fall back to credit load")
	assert.False(t, plain.Better(calm, loaded))

	fridayOff := models.NewSchedule([]*models.Section{
		sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Monday, 1)),
	})
	fridayBusy := models.NewSchedule([]*models.Section{
		sec("CS101/1", "CS101", 3, models.SectionTypeLecture, ts(models.Friday, 1)),
	})
	scored := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{
		Seed:        1,
		Preferences: &models.Preferences{FreeDays: []models.Day{models.Friday}},
	})
	assert.True(t, scored.Better(fridayOff, fridayBusy), "preference score decides")
	assert.False(t, scored.Better(fridayBusy, fridayOff))
}

func TestRunExpired(t *testing.T) {
	prepared, diags := Prepare(labChoiceCatalog(), []string{"CS101"}, nil, "")
	require.Empty(t, diags)

	fresh := newRun(context.Background(), prepared, Config{Seed: 1, Timeout: time.Hour}.Normalize())
	assert.False(t, fresh.Expired())
	assert.False(t, fresh.Stats.TimedOut)

	// A negative timeout puts the deadline in the past.
	past := newRun(context.Background(), prepared, Config{Seed: 1, Timeout: -time.Second})
	assert.True(t, past.Expired())
	assert.True(t, past.Stats.TimedOut)
	assert.True(t, past.Expired(), "the timed-out flag is sticky")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	canceled := newRun(ctx, prepared, Config{Seed: 1, Timeout: time.Hour}.Normalize())
	assert.True(t, canceled.Expired())
}

func TestRunRandReplaysUnderSameSeed(t *testing.T) {
	first := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 99})
	second := newTestRun(t, labChoiceCatalog(), []string{"CS101"}, Config{Seed: 99})

	for i := 0; i < 8; i++ {
		assert.Equal(t, first.Rand().Int63(), second.Rand().Int63())
	}
	assert.NotNil(t, first.Logger())
}

// --- Fixtures ---

func newTestRun(t *testing.T, groups map[string]*models.CourseGroup, mandatory []string, cfg Config) *Run {
	t.Helper()
	prepared, diags := Prepare(groups, mandatory, nil, "")
	require.Empty(t, diags)
	return newRun(context.Background(), prepared, cfg.Normalize())
}
