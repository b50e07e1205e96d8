package search

import (
	"container/heap"
	"sort"
	"strconv"
	"strings"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/heuristics"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// remainingGroupWeight is the per-unassigned-group lookahead added to a
// state's priority. It is a descriptive guide, not an admissible bound: the
// conflict-penalty cost includes day-spread terms that can shrink when a
// section is added, so the traversal is A*-shaped without a shortest-path
// optimality guarantee.
const remainingGroupWeight = 25

// AStar expands partial assignments from a priority queue ordered by the
// conflict penalty of the tentative schedule plus a lookahead proportional
// to the groups still unassigned. Equal priorities pop in insertion order.
type AStar struct{}

// NewAStar returns the A*-shaped strategy.
func NewAStar() *AStar {
	return &AStar{}
}

func (s *AStar) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:             "a-star",
		Category:         models.CategoryInformedSearch,
		Complexity:       "O(b^d·log n)",
		SupportsParallel: true,
	}
}

type searchNode struct {
	sections []*models.Section
	depth    int
	cost     float64
	priority float64
	seq      int
	index    int
}

// nodeQueue is a min-heap over (priority, insertion sequence).
type nodeQueue []*searchNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x interface{}) {
	node := x.(*searchNode)
	node.index = len(*q)
	*q = append(*q, node)
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// stateKey identifies a search state by its depth and the sorted set of
// chosen section codes, so equivalent partials reached through different
// option orders collapse.
func stateKey(depth int, sections []*models.Section) string {
	codes := make([]string, len(sections))
	for i, section := range sections {
		codes[i] = section.Code
	}
	sort.Strings(codes)
	return strconv.Itoa(depth) + "|" + strings.Join(codes, "+")
}

func partialCost(sections []*models.Section) float64 {
	return heuristics.ConflictPenalty(models.NewSchedule(sections))
}

func (s *AStar) Run(run *Run) []*models.Schedule {
	finalDepth := run.Prepared.Depth()
	queue := &nodeQueue{}
	heap.Init(queue)

	seq := 0
	push := func(sections []*models.Section, depth int) {
		cost := partialCost(sections)
		heap.Push(queue, &searchNode{
			sections: sections,
			depth:    depth,
			cost:     cost,
			priority: cost + remainingGroupWeight*float64(finalDepth-depth),
			seq:      seq,
		})
		seq++
	}
	push(nil, 0)

	var results []*models.Schedule
	visited := make(map[string]bool)

	for queue.Len() > 0 {
		if len(results) >= run.Config.MaxResults || run.Expired() {
			break
		}
		node := heap.Pop(queue).(*searchNode)

		key := stateKey(node.depth, node.sections)
		if visited[key] {
			continue
		}
		visited[key] = true

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
			if visited[stateKey(node.depth+1, next)] {
				continue
			}
			push(next, node.depth+1)
		}
	}
	return results
}
