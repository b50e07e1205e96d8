package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// Hybrid chains the two metaheuristics: the genetic algorithm breeds a pool
// of candidates, the annealing optimizer refines each, and only refined
// results that stay valid are kept.
type Hybrid struct{}

// NewHybrid returns the combined genetic + annealing strategy.
func NewHybrid() *Hybrid {
	return &Hybrid{}
}

func (s *Hybrid) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "hybrid-genetic-annealing",
		Category:            models.CategoryPopulation,
		Complexity:          "O(generations·population·g + i)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

func (s *Hybrid) Run(run *Run) []*models.Schedule {
	_, pool := runGenetic(run)
	if limit := 2 * run.Config.MaxResults; len(pool) > limit {
		pool = pool[:limit]
	}

	optimizer := NewAnnealingOptimizer(run.Config)
	var results []*models.Schedule
	for _, candidate := range pool {
		if run.Expired() {
			break
		}
		refined := optimizer.Optimize(run, candidate)
		schedule := refined.schedule()
		if run.ValidFinal(schedule) {
			results = append(results, schedule)
		}
	}
	return results
}
