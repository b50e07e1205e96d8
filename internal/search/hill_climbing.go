package search

import "github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"

// HillClimbing starts from the first feasible assignment and repeatedly
// scans every group-by-option swap, adopting the first strictly improving
// valid one and restarting the scan. It stops after a full pass without
// improvement, at the iteration cap, or at the deadline.
type HillClimbing struct{}

// NewHillClimbing returns the hill-climbing strategy.
func NewHillClimbing() *HillClimbing {
	return &HillClimbing{}
}

func (s *HillClimbing) Metadata() models.AlgorithmMetadata {
	return models.AlgorithmMetadata{
		Name:                "hill-climbing",
		Category:            models.CategoryLocalSearch,
		Complexity:          "O(i·g·o)",
		SupportsPreferences: true,
		SupportsParallel:    true,
		Optimizer:           true,
	}
}

func (s *HillClimbing) Run(run *Run) []*models.Schedule {
	current := firstValidAssignment(run)
	if current == nil {
		return nil
	}
	currentSchedule := current.schedule()

	for run.Stats.Iterations < run.Config.MaxIterations {
		improved := false
	scan:
		for depth := 0; depth < len(current); depth++ {
			for _, alt := range run.Prepared.OptionsAt(depth) {
				if run.Expired() || run.Stats.Iterations >= run.Config.MaxIterations {
					break scan
				}
				if sameOption(alt, current[depth]) {
					continue
				}
				run.Stats.Iterations++

				candidate := current.with(depth, alt)
				candidateSchedule := candidate.schedule()
				if !run.ValidFinal(candidateSchedule) {
					continue
				}
				if !run.ValidFinal(currentSchedule) || run.Better(candidateSchedule, currentSchedule) {
					current = candidate
					currentSchedule = candidateSchedule
					improved = true
					run.Stats.Restarts++
					break scan
				}
			}
		}
		if !improved || run.Expired() {
			break
		}
	}

	if !run.ValidFinal(currentSchedule) {
		return nil
	}
	return []*models.Schedule{currentSchedule}
}
