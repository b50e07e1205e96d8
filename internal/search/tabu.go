package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// TabuSearch explores the same swap neighborhood as hill climbing but
// evaluates the entire neighborhood each iteration and always moves to the
// best non-tabu candidate, even downhill. Visited schedule signatures sit in
// a fixed-length FIFO list to keep the walk from cycling.
type TabuSearch struct{}

// NewTabuSearch returns the tabu-search strategy.
func NewTabuSearch() *TabuSearch {
	return &TabuSearch{}
}

func (s *TabuSearch) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "tabu-search",
		Category:            models.CategoryLocalSearch,
		Complexity:          "O(i·g·o)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

func (s *TabuSearch) Run(run *Run) []*models.Schedule {
	current := firstValidAssignment(run)
	if current == nil {
		return nil
	}

	var best *models.Schedule
	if schedule := current.schedule(); run.ValidFinal(schedule) {
		best = schedule
	}

	tabu := newTabuList(run.Config.TabuTenure)
	tabu.add(current.schedule().Signature())

	for iter := 0; iter < run.Config.MaxIterations; iter++ {
		if run.Expired() {
			break
		}
		run.Stats.Iterations++

		var bestNeighbor assignment
		var bestNeighborSchedule *models.Schedule
		for depth := 0; depth < len(current); depth++ {
			for _, alt := range run.Prepared.OptionsAt(depth) {
				if sameOption(alt, current[depth]) {
					continue
				}
				run.Stats.NodesExplored++

				candidate := current.with(depth, alt)
				schedule := candidate.schedule()
				if tabu.contains(schedule.Signature()) {
					continue
				}
				if bestNeighbor == nil || run.Better(schedule, bestNeighborSchedule) {
					bestNeighbor = candidate
					bestNeighborSchedule = schedule
				}
			}
		}
		if bestNeighbor == nil {
			break
		}

		current = bestNeighbor
		tabu.add(bestNeighborSchedule.Signature())
		if run.ValidFinal(bestNeighborSchedule) && (best == nil || run.Better(bestNeighborSchedule, best)) {
			best = bestNeighborSchedule
		}
	}

	if best == nil {
		return nil
	}
	return []*models.Schedule{best}
}

// tabuList is a fixed-capacity FIFO of schedule signatures with O(1)
// membership checks.
type tabuList struct {
	capacity int
	order    []string
	members  map[string]bool
}

func newTabuList(capacity int) *tabuList {
	return &tabuList{
		capacity: capacity,
		members:  make(map[string]bool, capacity),
	}
}

func (t *tabuList) add(signature string) {
	if t.members[signature] {
		return
	}
	t.order = append(t.order, signature)
	t.members[signature] = true
	if len(t.order) > t.capacity {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.members, oldest)
	}
}

func (t *tabuList) contains(signature string) bool {
	return t.members[signature]
}
