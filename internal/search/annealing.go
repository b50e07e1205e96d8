package search

import (
	"math"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/heuristics"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/scoring"
)

const (
	// hardViolationPenalty prices a weekly/daily cap or strict-free-day break
	// inside the annealing cost. Large enough that no soft gain outweighs it.
	hardViolationPenalty = 10000

	minTemperature  = 1e-3
	reheatFactor    = 0.5
	reheatThreshold = 0.1
	maxRepairPasses = 10
)

// CostFunc maps a candidate schedule to a minimization cost for the
// annealing optimizer.
type CostFunc func(run *Run, s *models.Schedule) float64

// AnnealingCost is the default objective: unused credit budget plus heavily
// weighted conflicts, offset by the preference score, with a hard penalty
// for cap violations.
func AnnealingCost(run *Run, s *models.Schedule) float64 {
	cost := 100 * float64(s.ConflictCount())
	if run.Config.MaxCredits > 0 {
		if gap := run.Config.MaxCredits - s.TotalCredits(); gap > 0 {
			cost += gap
		}
	}
	if prefs := run.Config.Preferences; prefs != nil {
		cost -= scoring.Score(s, prefs)
		if scoring.ViolatesCaps(s, prefs) {
			cost += hardViolationPenalty
		}
	}
	return cost
}

// MultiObjectiveCost blends conflicts, unused credit budget, idle gaps, and
// day spread under caller weights. Used by the multi-objective annealing
// variant.
func MultiObjectiveCost(conflictWeight, creditGapWeight, gapWeight, compressionWeight float64) CostFunc {
	return func(run *Run, s *models.Schedule) float64 {
		sum := scoring.Summarize(s)
		cost := conflictWeight * float64(sum.ConflictCount)
		if run.Config.MaxCredits > 0 {
			if gap := run.Config.MaxCredits - s.TotalCredits(); gap > 0 {
				cost += creditGapWeight * gap
			}
		}
		cost += gapWeight * float64(sum.TotalGaps)
		cost += compressionWeight * float64(sum.DaysUsed)
		return cost
	}
}

// AnnealingOptimizer refines an assignment by randomized single-group
// replacement under a geometric cooling schedule. It is reusable outside the
// strategy adapter; the hybrid strategy feeds it genetic-algorithm output.
type AnnealingOptimizer struct {
	InitialTemp     float64
	CoolingRate     float64
	MaxIterations   int
	StagnationLimit int
	Cost            CostFunc
}

// NewAnnealingOptimizer builds an optimizer from the run configuration with
// the default cost.
func NewAnnealingOptimizer(cfg Config) *AnnealingOptimizer {
	return &AnnealingOptimizer{
		InitialTemp:     cfg.InitialTemp,
		CoolingRate:     cfg.CoolingRate,
		MaxIterations:   cfg.MaxIterations,
		StagnationLimit: cfg.StagnationLimit,
		Cost:            AnnealingCost,
	}
}

// Optimize walks the neighborhood from start: each step replaces one random
// group's choice with a random concrete alternative, accepting improvements
// always and regressions with probability exp(-delta/T). Temperature cools
// geometrically; prolonged stagnation at low temperature triggers one reheat
// to half the initial temperature, and stagnation below the temperature
// floor stops the walk early. Returns the best assignment seen.
func (o *AnnealingOptimizer) Optimize(run *Run, start assignment) assignment {
	if len(start) == 0 {
		return start
	}
	cost := o.Cost
	if cost == nil {
		cost = AnnealingCost
	}

	current := start.clone()
	currentCost := cost(run, current.schedule())
	best := current
	bestCost := currentCost

	temperature := o.InitialTemp
	stagnation := 0

	for iter := 0; iter < o.MaxIterations; iter++ {
		if run.Expired() {
			break
		}
		run.Stats.Iterations++

		neighbor := randomMove(run, current)
		neighborCost := cost(run, neighbor.schedule())
		delta := neighborCost - currentCost
		if delta < 0 || run.Rand().Float64() < math.Exp(-delta/temperature) {
			current = neighbor
			currentCost = neighborCost
		}

		if currentCost < bestCost {
			best = current
			bestCost = currentCost
			stagnation = 0
		} else {
			stagnation++
		}

		temperature *= o.CoolingRate
		if stagnation >= o.StagnationLimit {
			if temperature < minTemperature {
				break
			}
			if temperature < reheatThreshold*o.InitialTemp {
				temperature = reheatFactor * o.InitialTemp
				stagnation = 0
				run.Stats.Restarts++
			}
		}
	}
	return best
}

// randomMove swaps one random group's choice for a random concrete option of
// the same group. Groups without a concrete alternative yield a null move.
func randomMove(run *Run, a assignment) assignment {
	rng := run.Rand()
	depth := rng.Intn(len(a))

	var concrete []models.Option
	for _, opt := range run.Prepared.OptionsAt(depth) {
		if !opt.Skip {
			concrete = append(concrete, opt)
		}
	}
	if len(concrete) == 0 {
		return a
	}
	return a.with(depth, concrete[rng.Intn(len(concrete))])
}

// SimulatedAnnealing seeds the optimizer with a greedy assignment and runs
// repair passes when the annealed result still carries conflicts.
type SimulatedAnnealing struct{}

// NewSimulatedAnnealing returns the annealing strategy.
func NewSimulatedAnnealing() *SimulatedAnnealing {
	return &SimulatedAnnealing{}
}

func (s *SimulatedAnnealing) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "simulated-annealing",
		Category:            models.CategoryLocalSearch,
		Complexity:          "O(iterations)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

func (s *SimulatedAnnealing) Run(run *Run) []*models.Schedule {
	seed := greedyAssignment(run)
	if seed == nil {
		seed = firstValidAssignment(run)
	}
	if seed == nil {
		return nil
	}

	best := NewAnnealingOptimizer(run.Config).Optimize(run, seed)
	if best.schedule().ConflictCount() > run.ConflictBudget() {
		best = localRepair(run, best)
		best = globalRepair(run, best)
	}

	schedule := best.schedule()
	if !run.ValidFinal(schedule) {
		return nil
	}
	return []*models.Schedule{schedule}
}

// greedyAssignment mirrors the greedy strategy's forward pass but records
// the chosen options, giving the optimizer a sensible starting point.
func greedyAssignment(run *Run) assignment {
	result := make(assignment, run.Prepared.Depth())
	var sections []*models.Section

	for depth := 0; depth < run.Prepared.Depth(); depth++ {
		ranked := heuristics.RankOptions(run.Prepared.OptionsAt(depth), run.Config.Preferences)

		chosen := false
		for _, candidate := range ranked {
			if candidate.Option.Skip {
				result[depth] = candidate.Option
				chosen = true
				break
			}
			next := extend(sections, candidate.Option.Sections)
			if run.ValidPartial(next) {
				result[depth] = candidate.Option
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

// localRepair makes up to maxRepairPasses over the groups in priority order,
// swapping a group's choice only when the swap changes which section types
// the choice carries and the schedule's conflict count strictly drops.
func localRepair(run *Run, a assignment) assignment {
	for pass := 0; pass < maxRepairPasses; pass++ {
		improved := false
		for depth := range a {
			if run.Expired() {
				return a
			}
			baseline := a.schedule().ConflictCount()
			if baseline == 0 {
				return a
			}
			current := a[depth]
			for _, alt := range run.Prepared.OptionsAt(depth) {
				if alt.Skip || sameOption(alt, current) || !togglesTypeMix(current, alt) {
					continue
				}
				candidate := a.with(depth, alt)
				if candidate.schedule().ConflictCount() < baseline {
					a = candidate
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}
	return a
}

// globalRepair substitutes one section at a time across the whole
// assignment, first improvement on the conflict count, preserving each
// selection's type shape.
func globalRepair(run *Run, a assignment) assignment {
	baseline := a.schedule().ConflictCount()
	if baseline <= run.ConflictBudget() {
		return a
	}

	for depth := 0; depth < len(a); depth++ {
		opt := a[depth]
		if opt.Skip {
			continue
		}
		group := run.Prepared.Groups[run.Prepared.GroupAt(depth)]
		for i := 0; i < len(opt.Sections); i++ {
			for _, alt := range group.Sections {
				if run.Expired() {
					return a
				}
				section := a[depth].Sections[i]
				if alt.Type != section.Type || alt.Code == section.Code {
					continue
				}
				swapped := make(models.Selection, len(a[depth].Sections))
				copy(swapped, a[depth].Sections)
				swapped[i] = alt

				candidate := a.with(depth, models.SelectionOption(swapped))
				if count := candidate.schedule().ConflictCount(); count < baseline {
					a = candidate
					baseline = count
					if baseline == 0 {
						return a
					}
				}
			}
		}
	}
	return a
}

func sameOption(x, y models.Option) bool {
	if x.Skip || y.Skip {
		return x.Skip == y.Skip
	}
	return x.Sections.String() == y.Sections.String()
}

// togglesTypeMix reports whether two options differ in which section types
// they carry, the trigger condition for local repair swaps.
func togglesTypeMix(x, y models.Option) bool {
	return typeMix(x) != typeMix(y)
}

func typeMix(opt models.Option) [3]bool {
	var mix [3]bool
	if opt.Skip {
		return mix
	}
	for _, section := range opt.Sections {
		switch section.Type {
		case models.SectionTypeLecture:
			mix[0] = true
		case models.SectionTypeProblemSession:
			mix[1] = true
		case models.SectionTypeLab:
			mix[2] = true
		}
	}
	return mix
}
