package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// BFS explores the same tree as DFS through a FIFO frontier of
// (group index, partial sections) states, emitting feasible leaves in
// breadth order. The shallow frontier shape makes it the natural candidate
// for future frontier-level parallelism.
type BFS struct{}

// NewBFS returns the breadth-first strategy.
func NewBFS() *BFS {
	return &BFS{}
}

func (s *BFS) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "bfs",
		Category:         models.CategoryCompleteSearch,
		Complexity:       "O(b^d)",
		Optimal:          true,
		SupportsParallel: true,
	}
}

type bfsState struct {
	depth    int
	sections []*models.Section
}

func (s *BFS) Run(run *Run) []*models.Schedule {
	var results []*models.Schedule
	queue := []bfsState{{depth: 0}}

	for len(queue) > 0 {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			break
		}
		state := queue[0]
		queue = queue[1:]

		if state.depth == run.Prepared.Depth() {
			schedule := models.NewSchedule(state.sections)
			if run.ValidFinal(schedule) {
				results = append(results, schedule)
			}
			continue
		}

		for _, opt := range run.Prepared.OptionsAt(state.depth) {
			run.Stats.NodesExplored++
			next := state.sections
			if !opt.Skip {
				next = extend(state.sections, opt.Sections)
				if !run.ValidPartial(next) {
					run.Stats.BranchesPruned++
					continue
				}
			}
			queue = append(queue, bfsState{depth: state.depth + 1, sections: next})
		}
	}
	return results
}
