package search

import (
	"math"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// ParticleSwarm encodes a candidate as one option index per group. Each
// iteration decodes and scores every particle, then rewires each dimension
// probabilistically: keep (inertia), copy the personal best (cognitive),
// copy the swarm best (social), or re-roll uniformly.
type ParticleSwarm struct{}

// NewParticleSwarm returns the particle-swarm strategy.
func NewParticleSwarm() *ParticleSwarm {
	return &ParticleSwarm{}
}

func (s *ParticleSwarm) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "particle-swarm",
		Category:            models.CategoryPopulation,
		Complexity:          "O(i·swarm·g)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

type particle struct {
	position []int
	bestPos  []int
	bestCost float64
}

func (s *ParticleSwarm) Run(run *Run) []*models.Schedule {
	depth := run.Prepared.Depth()
	rng := run.Rand()

	swarm := make([]*particle, run.Config.SwarmSize)
	for i := range swarm {
		position := make([]int, depth)
		for d := 0; d < depth; d++ {
			position[d] = rng.Intn(len(run.Prepared.OptionsAt(d)))
		}
		swarm[i] = &particle{position: position, bestCost: math.Inf(1)}
	}

	var globalBest []int
	globalCost := math.Inf(1)

	for iter := 0; iter < run.Config.MaxIterations; iter++ {
		if run.Expired() {
			break
		}
		run.Stats.Iterations++

		for _, p := range swarm {
			run.Stats.NodesExplored++
			cost := s.evaluate(run, p.position)
			if cost < p.bestCost {
				p.bestCost = cost
				p.bestPos = append([]int(nil), p.position...)
			}
			if cost < globalCost {
				globalCost = cost
				globalBest = append([]int(nil), p.position...)
			}
		}
		if globalBest == nil {
			continue
		}

		for _, p := range swarm {
			for d := 0; d < depth; d++ {
				r := rng.Float64()
				switch {
				case r < run.Config.Inertia:
					// keep the current index
				case r < run.Config.Inertia+run.Config.Cognitive && p.bestPos != nil:
					p.position[d] = p.bestPos[d]
				case r < run.Config.Inertia+run.Config.Cognitive+run.Config.Social:
					p.position[d] = globalBest[d]
				default:
					p.position[d] = rng.Intn(len(run.Prepared.OptionsAt(d)))
				}
			}
		}
	}

	if globalBest == nil {
		return nil
	}
	decoded, ok := s.decode(run, globalBest)
	if !ok {
		return nil
	}
	schedule := decoded.schedule()
	if !run.ValidFinal(schedule) {
		return nil
	}
	return []*models.Schedule{schedule}
}

// evaluate decodes a position and prices it; positions whose partials go
// invalid mid-decode are rejected with the infeasible cost.
func (s *ParticleSwarm) evaluate(run *Run, position []int) float64 {
	decoded, ok := s.decode(run, position)
	if !ok {
		return infeasibleCost
	}
	return scheduleCost(run, decoded.schedule())
}

// decode maps option indexes to an assignment, validating each partial
// extension along the way.
func (s *ParticleSwarm) decode(run *Run, position []int) (assignment, bool) {
	result := make(assignment, len(position))
	var sections []*models.Section

	for d, idx := range position {
		opt := run.Prepared.OptionsAt(d)[idx]
		result[d] = opt
		if opt.Skip {
			continue
		}
		sections = extend(sections, opt.Sections)
		if !run.ValidPartial(sections) {
			return nil, false
		}
	}
	return result, true
}
