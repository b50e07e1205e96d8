package search

import (
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// Backtracking is the constraint-programming strategy: groups are assigned
// in minimum-remaining-values order (fewest options first), each group's
// options are tried smallest selection first, and before an option commits,
// every later mandatory group is forward-checked for at least one option
// compatible with the tentative partial. A failed check backtracks
// immediately instead of descending.
type Backtracking struct{}

// NewBacktracking returns the constraint-programming strategy.
func NewBacktracking() *Backtracking {
	return &Backtracking{}
}

func (s *Backtracking) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "cp-backtracking",
		Category:         models.CategoryConstraint,
		Complexity:       "O(b^d)",
		Optimal:          true,
		SupportsParallel: true,
	}
}

func (s *Backtracking) Run(run *Run) []*models.Schedule {
	order := mrvOrder(run.Prepared)
	options := make(map[string][]models.Option, len(order))
	for _, code := range order {
		options[code] = sortedBySize(run.Prepared.Options[code])
	}

	var results []*models.Schedule
	var walk func(idx int, sections []*models.Section)
	walk = func(idx int, sections []*models.Section) {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			return
		}
		if idx == len(order) {
			schedule := models.NewSchedule(sections)
			if run.ValidFinal(schedule) {
				results = append(results, schedule)
			}
			return
		}

		for _, opt := range options[order[idx]] {
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
			if !forwardCheck(run, order, options, idx+1, next) {
				run.Stats.BranchesPruned++
				continue
			}
			walk(idx+1, next)
		}
	}

	walk(0, nil)
	return results
}

// mrvOrder sorts all groups, mandatory and optional together, by ascending
// option count with ties broken by code.
func mrvOrder(prepared *PreparedSearch) []string {
	order := make([]string, len(prepared.GroupOrder))
	copy(order, prepared.GroupOrder)
	sort.SliceStable(order, func(i, j int) bool {
		oi, oj := len(prepared.Options[order[i]]), len(prepared.Options[order[j]])
		if oi != oj {
			return oi < oj
		}
		return order[i] < order[j]
	})
	return order
}

func sortedBySize(options []models.Option) []models.Option {
	out := make([]models.Option, len(options))
	copy(out, options)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size() < out[j].Size() })
	return out
}

// forwardCheck confirms every not-yet-assigned mandatory group still has at
// least one option compatible with the tentative partial assignment.
func forwardCheck(run *Run, order []string, options map[string][]models.Option, from int, sections []*models.Section) bool {
	for i := from; i < len(order); i++ {
		code := order[i]
		if !run.Prepared.IsMandatory(code) {
			continue
		}
		compatible := false
		for _, opt := range options[code] {
			if run.ValidPartial(extend(sections, opt.Sections)) {
				compatible = true
				break
			}
		}
		if !compatible {
			return false
		}
	}
	return true
}
