package search

import (
	"math"
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

const (
	mutationBoost   = 1.5
	mutationDecay   = 0.8
	mutationCeiling = 0.8
	lowVariance     = 1.0
	highVariance    = 10.0
)

// Genetic evolves a population of assignments: tournament selection,
// per-group coin-flip crossover, adaptive per-group mutation, and top-fifth
// elitism. Infeasible individuals survive in the pool under a huge cost so
// the population can climb back into feasibility.
type Genetic struct{}

// NewGenetic returns the genetic-algorithm strategy.
func NewGenetic() *Genetic {
	return &Genetic{}
}

func (s *Genetic) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "genetic",
		Category:            models.CategoryPopulation,
		Complexity:          "O(generations·population·g)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

func (s *Genetic) Run(run *Run) []*models.Schedule {
	best, _ := runGenetic(run)
	if best == nil {
		return nil
	}
	schedule := best.schedule()
	if !run.ValidFinal(schedule) {
		return nil
	}
	return []*models.Schedule{schedule}
}

// runGenetic is the engine shared by the genetic strategy and the hybrid:
// it returns the best assignment seen across all generations and the final
// population sorted by ascending cost.
func runGenetic(run *Run) (assignment, []assignment) {
	popSize := run.Config.PopulationSize
	population := make([]assignment, popSize)
	for i := range population {
		population[i] = randomAssignment(run)
	}

	rate := run.Config.MutationRate
	initialRate := rate

	var bestEver assignment
	bestCost := math.Inf(1)

	evaluate := func(pop []assignment) []float64 {
		costs := make([]float64, len(pop))
		for i, individual := range pop {
			costs[i] = assignmentCost(run, individual)
			run.Stats.NodesExplored++
		}
		return costs
	}

	costs := evaluate(population)
	for gen := 0; gen < run.Config.Generations; gen++ {
		if run.Expired() {
			break
		}
		run.Stats.Iterations++

		for i, cost := range costs {
			if cost < bestCost {
				bestCost = cost
				bestEver = population[i].clone()
			}
		}

		// Adaptive mutation: a converged pool mutates harder, a scattered
		// pool settles back toward the configured rate.
		switch v := variance(costs); {
		case v < lowVariance:
			rate = math.Min(rate*mutationBoost, mutationCeiling)
		case v > highVariance:
			rate = math.Max(rate*mutationDecay, initialRate)
		}

		order := costOrder(costs)
		eliteCount := popSize / 5
		if eliteCount < 1 {
			eliteCount = 1
		}

		next := make([]assignment, 0, popSize)
		for i := 0; i < eliteCount && i < popSize; i++ {
			next = append(next, population[order[i]].clone())
		}
		for len(next) < popSize {
			parent1 := tournament(run, population, costs)
			parent2 := tournament(run, population, costs)
			child1, child2 := crossover(run, parent1, parent2)
			mutate(run, child1, rate)
			mutate(run, child2, rate)
			next = append(next, child1)
			if len(next) < popSize {
				next = append(next, child2)
			}
		}

		population = next
		costs = evaluate(population)
	}

	for i, cost := range costs {
		if cost < bestCost {
			bestCost = cost
			bestEver = population[i].clone()
		}
	}

	order := costOrder(costs)
	pool := make([]assignment, len(population))
	for i, idx := range order {
		pool[i] = population[idx]
	}
	return bestEver, pool
}

// tournament picks two random individuals and returns the cheaper one.
func tournament(run *Run, population []assignment, costs []float64) assignment {
	rng := run.Rand()
	a := rng.Intn(len(population))
	b := rng.Intn(len(population))
	if costs[b] < costs[a] {
		return population[b]
	}
	return population[a]
}

// crossover clones both parents and, at the configured rate, swaps genes
// between the clones on a per-group coin flip.
func crossover(run *Run, parent1, parent2 assignment) (assignment, assignment) {
	child1 := parent1.clone()
	child2 := parent2.clone()
	if run.Rand().Float64() < run.Config.CrossoverRate {
		for depth := range child1 {
			if run.Rand().Intn(2) == 0 {
				child1[depth], child2[depth] = child2[depth], child1[depth]
			}
		}
	}
	return child1, child2
}

// mutate re-picks each group's option uniformly at the given rate.
func mutate(run *Run, individual assignment, rate float64) {
	rng := run.Rand()
	for depth := range individual {
		if rng.Float64() >= rate {
			continue
		}
		options := run.Prepared.OptionsAt(depth)
		if len(options) > 0 {
			individual[depth] = options[rng.Intn(len(options))]
		}
	}
}

func variance(costs []float64) float64 {
	if len(costs) == 0 {
		return 0
	}
	var mean float64
	for _, c := range costs {
		mean += c
	}
	mean /= float64(len(costs))

	var sum float64
	for _, c := range costs {
		d := c - mean
		sum += d * d
	}
	return sum / float64(len(costs))
}

func costOrder(costs []float64) []int {
	order := make([]int, len(costs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return costs[order[i]] < costs[order[j]] })
	return order
}
