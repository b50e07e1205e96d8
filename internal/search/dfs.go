package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// DFS enumerates assignments depth-first along the prepared group order,
// mandatory groups before optional ones. It returns the first MaxResults
// feasible leaves in traversal order, so results are deterministic but not
// cost-optimal.
type DFS struct{}

// NewDFS returns the depth-first strategy.
func NewDFS() *DFS {
	return &DFS{}
}

func (s *DFS) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "dfs",
		Category:         models.CategoryCompleteSearch,
		Complexity:       "O(b^d)",
		Optimal:          true,
		SupportsParallel: true,
	}
}

func (s *DFS) Run(run *Run) []*models.Schedule {
	var results []*models.Schedule

	var walk func(depth int, sections []*models.Section)
	walk = func(depth int, sections []*models.Section) {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			return
		}
		if depth == run.Prepared.Depth() {
			schedule := models.NewSchedule(sections)
			if run.ValidFinal(schedule) {
				results = append(results, schedule)
			}
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
			walk(depth+1, next)
		}
	}

	walk(0, nil)
	return results
}

// extend clones the partial assignment with the option's sections appended.
// Branching copies only the extended list; the shared prefix stays intact.
func extend(sections []*models.Section, added models.Selection) []*models.Section {
	next := make([]*models.Section, 0, len(sections)+len(added))
	next = append(next, sections...)
	next = append(next, added...)
	return next
}
