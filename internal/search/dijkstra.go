package search

import (
	"container/heap"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// Dijkstra is the uniform-cost sibling of AStar: the same queue structure
// without the lookahead term. A state key maps to its cheapest known cost
// and more expensive re-entries are discarded.
type Dijkstra struct{}

// NewDijkstra returns the uniform-cost strategy.
func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

func (s *Dijkstra) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "dijkstra",
		Category:         models.CategoryInformedSearch,
		Complexity:       "O(b^d·log n)",
		SupportsParallel: true,
	}
}

func (s *Dijkstra) Run(run *Run) []*models.Schedule {
	finalDepth := run.Prepared.Depth()
	queue := &nodeQueue{}
	heap.Init(queue)

	best := make(map[string]float64)
	seq := 0
	push := func(sections []*models.Section, depth int) {
		cost := partialCost(sections)
		key := stateKey(depth, sections)
		if known, ok := best[key]; ok && known <= cost {
			return
		}
		best[key] = cost
		heap.Push(queue, &searchNode{
			sections: sections,
			depth:    depth,
			cost:     cost,
			priority: cost,
			seq:      seq,
		})
		seq++
	}
	push(nil, 0)

	var results []*models.Schedule
	for queue.Len() > 0 {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			break
		}
		node := heap.Pop(queue).(*searchNode)

		// A cheaper entry for this state may have been pushed after this one.
		if known, ok := best[stateKey(node.depth, node.sections)]; ok && node.cost > known {
			continue
		}

		if node.depth == finalDepth {
			schedule := models.NewSchedule(node.sections)
			if run.ValidFinal(schedule) {
				results = append(results, schedule)
			}
			continue
		}

		for _, opt := range run.Prepared.OptionsAt(node.depth) {
			run.Stats.NodesExplored++
			next := node.sections
			if !opt.Skip {
				next = extend(node.sections, opt.Sections)
				if !run.ValidPartial(next) {
					run.Stats.BranchesPruned++
					continue
				}
			}
			push(next, node.depth+1)
		}
	}
	return results
}
