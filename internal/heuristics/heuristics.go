// Package heuristics provides the cost estimates the informed and local
// search strategies share. Lower is always better.
package heuristics

import (
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/scoring"
)

// ConflictPenalty estimates how expensive a (possibly partial) schedule is:
// conflicts dominate, then idle gaps, then the number of days touched.
func ConflictPenalty(schedule *models.Schedule) float64 {
	summary := scoring.Summarize(schedule)
	return 100*float64(summary.ConflictCount) +
		10*float64(summary.TotalGaps) +
		5*float64(summary.DaysUsed)
}

// RankedOption pairs an option with its standalone cost.
type RankedOption struct {
	Option models.Option
	Cost   float64
}

// skipCost sits between an obviously clean selection and a conflicted one,
// so skipping stays attractive only when the concrete choices look bad.
const skipCost = 50

// RankOptions orders a group's options cheapest first. Each concrete option
// is costed in isolation: by negated preference score when preferences are
// given, by ConflictPenalty otherwise. Ties keep the original option order.
func RankOptions(options []models.Option, prefs *models.Preferences) []RankedOption {
	ranked := make([]RankedOption, 0, len(options))
	for _, opt := range options {
		ranked = append(ranked, RankedOption{Option: opt, Cost: OptionCost(opt, prefs)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Cost < ranked[j].Cost })
	return ranked
}

// OptionCost evaluates a single option standalone.
func OptionCost(opt models.Option, prefs *models.Preferences) float64 {
	if opt.Skip {
		return skipCost
	}
	schedule := models.NewSchedule(opt.Sections)
	if prefs != nil {
		return -scoring.Score(schedule, prefs)
	}
	return ConflictPenalty(schedule)
}
