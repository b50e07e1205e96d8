package models

// ObjectiveWeights scales the individual scoring objectives. A weight of zero
// disables the objective; DefaultWeights enables everything evenly.
type ObjectiveWeights struct {
	FreeDay         float64 `json:"free_day"`
	Compactness     float64 `json:"compactness"`
	GapPenalty      float64 `json:"gap_penalty"`
	Consecutive     float64 `json:"consecutive"`
	ConflictPenalty float64 `json:"conflict_penalty"`
}

// DefaultWeights weighs every objective at 1.0.
func DefaultWeights() ObjectiveWeights {
	return ObjectiveWeights{
		FreeDay:         1,
		Compactness:     1,
		GapPenalty:      1,
		Consecutive:     1,
		ConflictPenalty: 1,
	}
}

// Preferences configures the soft side of a run: desired free days, load
// caps, and per-objective weights. Supplied once per run and read-only.
//
// StrictFreeDays makes the desired free days a hard final-validity rule: a
// schedule touching one of them is rejected outright. Without it the free
// days only contribute to the score (quasi semantics, partial credit for
// lightly-loaded days).
type Preferences struct {
	FreeDays       []Day            `json:"free_days"`
	StrictFreeDays bool             `json:"strict_free_days"`
	MaxDailySlots  int              `json:"max_daily_slots"`
	MaxWeeklySlots int              `json:"max_weekly_slots"`
	Weights        ObjectiveWeights `json:"weights"`
}

// WantsFreeDay reports whether the day is on the desired free-day list.
func (p *Preferences) WantsFreeDay(d Day) bool {
	if p == nil {
		return false
	}
	for _, day := range p.FreeDays {
		if day == d {
			return true
		}
	}
	return false
}
