// Package scoring derives weekly statistics from candidate schedules and
// folds them into a single preference-weighted score. Everything here is a
// pure function of the schedule; strategies call into it on every candidate,
// so the summaries stay allocation-light.
package scoring

import (
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// ScheduleLike is the minimal surface scoring needs from a candidate.
// *models.Schedule satisfies it; tests may substitute lighter fakes.
type ScheduleLike interface {
	TotalCredits() float64
	ConflictCount() int
	Sections() []*models.Section
}

// Summary captures the per-week shape of a schedule.
type Summary struct {
	PeriodsByDay  map[models.Day][]int
	DaysUsed      int
	TotalSlots    int
	TotalGaps     int
	AdjacentPairs int
	LongestRun    int
	BusiestDay    int
	ConflictCount int
}

// Summarize walks the schedule's sections once and derives day occupancy,
// gap, and block statistics.
func Summarize(s ScheduleLike) Summary {
	byDay := make(map[models.Day]map[int]bool)
	for _, section := range s.Sections() {
		for _, slot := range section.Slots {
			if byDay[slot.Day] == nil {
				byDay[slot.Day] = make(map[int]bool)
			}
			byDay[slot.Day][slot.Period] = true
		}
	}

	sum := Summary{
		PeriodsByDay:  make(map[models.Day][]int, len(byDay)),
		ConflictCount: s.ConflictCount(),
	}
	for day, periods := range byDay {
		sorted := make([]int, 0, len(periods))
		for period := range periods {
			sorted = append(sorted, period)
		}
		sort.Ints(sorted)
		sum.PeriodsByDay[day] = sorted

		sum.DaysUsed++
		sum.TotalSlots += len(sorted)
		if len(sorted) > sum.BusiestDay {
			sum.BusiestDay = len(sorted)
		}

		run := 1
		for i := 1; i < len(sorted); i++ {
			diff := sorted[i] - sorted[i-1]
			if diff == 1 {
				sum.AdjacentPairs++
				run++
			} else {
				sum.TotalGaps += diff - 1
				run = 1
			}
			if run > sum.LongestRun {
				sum.LongestRun = run
			}
		}
		if len(sorted) == 1 && sum.LongestRun == 0 {
			sum.LongestRun = 1
		}
	}
	return sum
}

// FreeDays lists the days with no scheduled sections, in day order.
func FreeDays(s ScheduleLike) []models.Day {
	sum := Summarize(s)
	var free []models.Day
	for d := models.Monday; d <= models.Sunday; d++ {
		if len(sum.PeriodsByDay[d]) == 0 {
			free = append(free, d)
		}
	}
	return free
}

// Score folds the summary into a single preference-weighted value; higher is
// better. A nil Preferences yields zero, and callers without preferences rank
// by (conflicts, credits) instead. Zero-valued weights are treated as the
// default even weighting so an unset Weights block does not silence every
// objective.
func Score(s ScheduleLike, prefs *models.Preferences) float64 {
	if prefs == nil {
		return 0
	}
	weights := prefs.Weights
	if weights == (models.ObjectiveWeights{}) {
		weights = models.DefaultWeights()
	}

	sum := Summarize(s)
	score := 0.0

	for _, day := range prefs.FreeDays {
		occupied := len(sum.PeriodsByDay[day])
		if occupied == 0 {
			score += weights.FreeDay * 10
		} else if !prefs.StrictFreeDays {
			partial := 10 - 2*float64(occupied)
			if partial > 0 {
				score += weights.FreeDay * partial
			}
		}
	}

	score += weights.Compactness * 5 * float64(models.DaysPerWeek-sum.DaysUsed)
	score -= weights.GapPenalty * 2 * float64(sum.TotalGaps)
	score += weights.Consecutive * float64(sum.AdjacentPairs)
	score -= weights.ConflictPenalty * 25 * float64(sum.ConflictCount)

	if prefs.MaxDailySlots > 0 {
		for _, periods := range sum.PeriodsByDay {
			if len(periods) > prefs.MaxDailySlots {
				score -= 50
			}
		}
	}
	if prefs.MaxWeeklySlots > 0 && sum.TotalSlots > prefs.MaxWeeklySlots {
		score -= 50
	}

	return score
}

// ViolatesCaps reports whether the schedule breaks the hard weekly/daily slot
// caps or a strict free day. The annealing cost model treats these as
// near-infinite penalties rather than score deductions.
func ViolatesCaps(s ScheduleLike, prefs *models.Preferences) bool {
	if prefs == nil {
		return false
	}
	sum := Summarize(s)
	if prefs.MaxWeeklySlots > 0 && sum.TotalSlots > prefs.MaxWeeklySlots {
		return true
	}
	if prefs.MaxDailySlots > 0 {
		for _, periods := range sum.PeriodsByDay {
			if len(periods) > prefs.MaxDailySlots {
				return true
			}
		}
	}
	if prefs.StrictFreeDays {
		for _, day := range prefs.FreeDays {
			if len(sum.PeriodsByDay[day]) > 0 {
				return true
			}
		}
	}
	return false
}
