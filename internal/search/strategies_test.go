package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

func TestCompleteStrategiesEnumerateLabChoices(t *testing.T) {
	// The catalog admits exactly two valid schedules, one per lab section.
	names := []string{"dfs", "bfs", "iddfs", "cp-backtracking", "a-star", "dijkstra"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			strategy, err := New(name)
			require.NoError(t, err)

			result := Generate(context.Background(), strategy, labChoiceCatalog(), []string{"CS101"}, nil, Config{Seed: 7})

			assert.Equal(t, name, result.Algorithm)
			require.Equal(t, StatusOK, result.Status)
			require.Len(t, result.Schedules, 2)
			assert.Positive(t, result.Stats.NodesExplored)

			signatures := map[string]bool{}
			for _, schedule := range result.Schedules {
				signatures[schedule.Signature()] = true
			}
			assert.True(t, signatures["CS101/1|CS101/L1"])
			assert.True(t, signatures["CS101/1|CS101/L2"])
		})
	}
}

func TestGreedyReturnsOneSchedule(t *testing.T) {
	result := Generate(context.Background(), NewGreedy(), labChoiceCatalog(), []string{"CS101"}, nil, Config{Seed: 7})

	require.Equal(t, StatusOK, result.Status)
	require.Len(t, result.Schedules, 1)
	assert.True(t, result.Schedules[0].CoversMainCode("CS101"))
}

func TestConflictBudgetScenarios(t *testing.T) {
	groups := overlapCatalog()
	mandatory := []string{"CS101", "MA201"}

	blocked := Generate(context.Background(), NewDFS(), groups, mandatory, nil, Config{Seed: 7})
	assert.Equal(t, StatusNoResults, blocked.Status)
	assert.Empty(t, blocked.Schedules)

	tolerant := Generate(context.Background(), NewDFS(), groups, mandatory, nil, Config{
		Seed:           7,
		AllowConflicts: true,
		MaxConflicts:   1,
	})
	require.Equal(t, StatusOK, tolerant.Status)
	require.Len(t, tolerant.Schedules, 1)
	assert.Equal(t, 1, tolerant.Schedules[0].ConflictCount())
	assert.InDelta(t, 7.0, tolerant.Schedules[0].TotalCredits(), 1e-9)
}

func TestStochasticStrategiesReplayUnderSameSeed(t *testing.T) {
	names := []string{
		"simulated-annealing",
		"hill-climbing",
		"tabu-search",
		"genetic",
		"particle-swarm",
		"hybrid-genetic-annealing",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			first := runNamed(t, name, Config{Seed: 42})
			second := runNamed(t, name, Config{Seed: 42})

			assert.Equal(t, first.Status, second.Status)
			assert.Equal(t, signaturesOf(first), signaturesOf(second))
		})
	}
}

func TestOptimizersSatisfyHardRules(t *testing.T) {
	names := []string{
		"simulated-annealing",
		"hill-climbing",
		"tabu-search",
		"genetic",
		"particle-swarm",
		"hybrid-genetic-annealing",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			result := runNamed(t, name, Config{Seed: 11})

			require.Equal(t, StatusOK, result.Status)
			require.NotEmpty(t, result.Schedules)
			for _, schedule := range result.Schedules {
				assert.Zero(t, schedule.ConflictCount())
				for _, code := range richMandatory() {
					assert.True(t, schedule.CoversMainCode(code), "mandatory %s must be covered", code)
				}
			}
		})
	}
}

func TestStrictFreeDayIsHonored(t *testing.T) {
	cfg := Config{
		Seed: 5,
		Preferences: &models.Preferences{
			FreeDays:       []models.Day{models.Thursday},
			StrictFreeDays: true,
		},
	}

	exhaustive := Generate(context.Background(), NewDFS(), strictDayCatalog(), []string{"CS101"}, nil, cfg)
	require.Equal(t, StatusOK, exhaustive.Status)
	require.Len(t, exhaustive.Schedules, 2)
	for _, schedule := range exhaustive.Schedules {
		assert.False(t, schedule.OccupiesDay(models.Thursday))
	}
	// The lone Monday lecture scores above the two-day variant.
	assert.Equal(t, "CS101/1", exhaustive.Schedules[0].Signature())

	annealed := Generate(context.Background(), NewSimulatedAnnealing(), strictDayCatalog(), []string{"CS101"}, nil, cfg)
	require.Equal(t, StatusOK, annealed.Status)
	require.Len(t, annealed.Schedules, 1)
	assert.False(t, annealed.Schedules[0].OccupiesDay(models.Thursday))
	assert.Equal(t, "CS101/1|MA201/1", annealed.Schedules[0].Signature())
}

// --- Fixtures ---

func runNamed(t *testing.T, name string, cfg Config) *Result {
	t.Helper()
	strategy, err := New(name)
	require.NoError(t, err)
	return Generate(context.Background(), strategy, richCatalog(), richMandatory(), nil, cfg)
}

func signaturesOf(result *Result) []string {
	signatures := make([]string, 0, len(result.Schedules))
	for _, schedule := range result.Schedules {
		signatures = append(signatures, schedule.Signature())
	}
	return signatures
}
