package search

import (
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/heuristics"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// assignment is the genotype the local-search and population strategies
// mutate: one chosen option per group, indexed by the prepared group order.
type assignment []models.Option

func (a assignment) clone() assignment {
	out := make(assignment, len(a))
	copy(out, a)
	return out
}

func (a assignment) with(depth int, opt models.Option) assignment {
	out := a.clone()
	out[depth] = opt
	return out
}

func (a assignment) sections() []*models.Section {
	var sections []*models.Section
	for _, opt := range a {
		if !opt.Skip {
			sections = append(sections, opt.Sections...)
		}
	}
	return sections
}

func (a assignment) schedule() *models.Schedule {
	return models.NewSchedule(a.sections())
}

// firstValidAssignment takes, per group in order, the first option whose
// extension keeps the partial assignment valid. Returns nil when a mandatory
// group has no usable option.
func firstValidAssignment(run *Run) assignment {
	result := make(assignment, run.Prepared.Depth())
	var sections []*models.Section

	for depth := 0; depth < run.Prepared.Depth(); depth++ {
		chosen := false
		for _, opt := range run.Prepared.OptionsAt(depth) {
			if opt.Skip {
				result[depth] = opt
				chosen = true
				break
			}
			next := extend(sections, opt.Sections)
			if run.ValidPartial(next) {
				result[depth] = opt
				sections = next
				chosen = true
				break
			}
		}
		if !chosen {
			return nil
		}
	}
	return result
}

// randomAssignment builds an individual by shuffled-attempt selection: each
// group's options are tried in random order until one keeps the partial
// valid. A mandatory group with no fitting option falls back to its first
// option regardless, leaving repair to the cost pressure; an optional group
// falls back to skip.
func randomAssignment(run *Run) assignment {
	rng := run.Rand()
	result := make(assignment, run.Prepared.Depth())
	var sections []*models.Section

	for depth := 0; depth < run.Prepared.Depth(); depth++ {
		options := run.Prepared.OptionsAt(depth)
		order := rng.Perm(len(options))

		chosen := false
		for _, i := range order {
			opt := options[i]
			if opt.Skip {
				result[depth] = opt
				chosen = true
				break
			}
			next := extend(sections, opt.Sections)
			if run.ValidPartial(next) {
				result[depth] = opt
				sections = next
				chosen = true
				break
			}
		}
		if chosen {
			continue
		}
		code := run.Prepared.GroupAt(depth)
		if run.Prepared.IsMandatory(code) && len(options) > 0 {
			result[depth] = options[0]
			sections = extend(sections, options[0].Sections)
		} else {
			result[depth] = models.SkipOption()
		}
	}
	return result
}

// assignmentCost is the shared minimization objective of the stochastic
// strategies: invalid schedules cost 1e9, valid ones the negated preference
// score, or the conflict-penalty estimate when no preferences are supplied.
const infeasibleCost = 1e9

func assignmentCost(run *Run, a assignment) float64 {
	return scheduleCost(run, a.schedule())
}

func scheduleCost(run *Run, s *models.Schedule) float64 {
	if !run.ValidFinal(s) {
		return infeasibleCost
	}
	if run.Config.Preferences != nil {
		return -run.Score(s)
	}
	return heuristics.ConflictPenalty(s)
}
