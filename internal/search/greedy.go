package search

import (
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/heuristics"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// Greedy makes a single forward pass over the groups, taking the
// cheapest-ranked option that keeps the partial assignment valid. Fast and
// myopic: it returns at most one schedule and may miss feasible ones a
// backtracking strategy would find.
type Greedy struct{}

// NewGreedy returns the greedy strategy.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (s *Greedy) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "greedy",
		Category:            models.CategoryInformedSearch,
		Complexity:          "O(g·o·log o)",
		SupportsPreferences: true,
		SupportsParallel:    true,
	}
}

func (s *Greedy) Run(run *Run) []*models.Schedule {
	var sections []*models.Section

	for depth := 0; depth < run.Prepared.Depth(); depth++ {
		if run.Expired() {
			return nil
		}
		ranked := heuristics.RankOptions(run.Prepared.OptionsAt(depth), run.Config.Preferences)

		chosen := false
		for _, candidate := range ranked {
			run.Stats.NodesExplored++
			if candidate.Option.Skip {
				chosen = true
				break
			}
			next := extend(sections, candidate.Option.Sections)
			if run.ValidPartial(next) {
				sections = next
				chosen = true
				break
			}
			run.Stats.BranchesPruned++
		}
		if !chosen {
			return nil
		}
	}

	schedule := models.NewSchedule(sections)
	if !run.ValidFinal(schedule) {
		return nil
	}
	return []*models.Schedule{schedule}
}
