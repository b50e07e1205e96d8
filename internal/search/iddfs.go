package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// IDDFS repeats a depth-bounded DFS, raising the bound by DepthIncrement
// each pass until it reaches the full group count. Only leaves at the true
// final depth become schedules; the shallower passes probe the tree without
// emitting, so the result set matches DFS on the final pass.
type IDDFS struct{}

// NewIDDFS returns the iterative-deepening strategy.
func NewIDDFS() *IDDFS {
	return &IDDFS{}
}

func (s *IDDFS) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "iddfs",
		Category:         models.CategoryCompleteSearch,
		Complexity:       "O(b^d)",
		Optimal:          true,
		SupportsParallel: true,
	}
}

func (s *IDDFS) Run(run *Run) []*models.Schedule {
	var results []*models.Schedule
	finalDepth := run.Prepared.Depth()

	var bounded func(depth, limit int, sections []*models.Section)
	bounded = func(depth, limit int, sections []*models.Section) {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			return
		}
		if depth == finalDepth {
			schedule := models.NewSchedule(sections)
			if run.ValidFinal(schedule) {
				results = append(results, schedule)
			}
			return
		}
		if depth == limit {
			return
		}
		for _, opt := range run.Prepared.OptionsAt(depth) {
			if len(results) >= run.Config.MaxResults || run.Expired() {
				return
			}
			run.Stats.NodesExplored++
			next := sections
			if !opt.Skip {
				next = extend(sections, opt.Sections)
				if !run.ValidPartial(next) {
					run.Stats.BranchesPruned++
					continue
				}
			}
			bounded(depth+1, limit, next)
		}
	}

	for limit := run.Config.DepthIncrement; ; limit += run.Config.DepthIncrement {
		if limit > finalDepth {
			limit = finalDepth
		}
		run.Stats.Iterations++
		bounded(0, limit, nil)
		if limit == finalDepth || len(results) >= run.Config.MaxResults || run.Expired() {
			break
		}
	}
	return results
}
