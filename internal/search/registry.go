package search

import (
	"fmt"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// registration binds a strategy name to its constructor. The table is built
// at compile time; there is no runtime registration.
type registration struct {
	name  string
	build func() Strategy
}

var registrations = []registration{
	{"dfs", func() Strategy { return NewDFS() }},
	{"bfs", func() Strategy { return NewBFS() }},
	{"iddfs", func() Strategy { return NewIDDFS() }},
	{"greedy", func() Strategy { return NewGreedy() }},
	{"a-star", func() Strategy { return NewAStar() }},
	{"dijkstra", func() Strategy { return NewDijkstra() }},
	{"simulated-annealing", func() Strategy { return NewSimulatedAnnealing() }},
	{"hill-climbing", func() Strategy { return NewHillClimbing() }},
	{"tabu-search", func() Strategy { return NewTabuSearch() }},
	{"genetic", func() Strategy { return NewGenetic() }},
	{"particle-swarm", func() Strategy { return NewParticleSwarm() }},
	{"hybrid-genetic-annealing", func() Strategy { return NewHybrid() }},
	{"cp-backtracking", func() Strategy { return NewBacktracking() }},
}

// Names lists every registered strategy in registration order.
func Names() []string {
	names := make([]string, len(registrations))
	for i, reg := range registrations {
		names[i] = reg.name
	}
	return names
}

// New builds a fresh instance of the named strategy.
func New(name string) (Strategy, error) {
	for _, reg := range registrations {
		if reg.name == name {
			return reg.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q", name)
}

// Algorithms returns the metadata of every registered strategy in
// registration order.
func Algorithms() []models.AlgorithmMetadata {
	metadata := make([]models.AlgorithmMetadata, len(registrations))
	for i, reg := range registrations {
		metadata[i] = reg.build().Metadata()
	}
	return metadata
}
