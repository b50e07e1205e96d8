package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

func TestSummarizeWeekShape(t *testing.T) {
	// Monday 1,2,4 (one gap, one adjacent pair), Wednesday 3.
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3,
			slot(models.Monday, 1), slot(models.Monday, 2), slot(models.Wednesday, 3)),
		makeSection("MA201/1", "MA201", 4, slot(models.Monday, 4)),
	})

	sum := Summarize(s)

	require.Equal(t, []int{1, 2, 4}, sum.PeriodsByDay[models.Monday])
	require.Equal(t, []int{3}, sum.PeriodsByDay[models.Wednesday])
	assert.Equal(t, 2, sum.DaysUsed)
	assert.Equal(t, 4, sum.TotalSlots)
	assert.Equal(t, 1, sum.TotalGaps, "period 3 on Monday is free")
	assert.Equal(t, 1, sum.AdjacentPairs)
	assert.Equal(t, 2, sum.LongestRun)
	assert.Equal(t, 3, sum.BusiestDay)
	assert.Zero(t, sum.ConflictCount)
}

func TestSummarizeMergesDuplicateSlots(t *testing.T) {
	// Two sections on MONDAY:1 occupy a single period but register a conflict.
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
		makeSection("MA201/1", "MA201", 4, slot(models.Monday, 1)),
	})

	sum := Summarize(s)

	assert.Equal(t, []int{1}, sum.PeriodsByDay[models.Monday])
	assert.Equal(t, 1, sum.TotalSlots)
	assert.Equal(t, 1, sum.ConflictCount)
}

func TestFreeDays(t *testing.T) {
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1), slot(models.Thursday, 2)),
	})

	free := FreeDays(s)

	assert.Equal(t, []models.Day{
		models.Tuesday, models.Wednesday, models.Friday, models.Saturday, models.Sunday,
	}, free)
}

func TestScoreWithoutPreferencesIsZero(t *testing.T) {
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
	})
	assert.Zero(t, Score(s, nil))
}

func TestScoreFreeDayBonus(t *testing.T) {
	// Single Monday slot; Friday fully free, Monday lightly loaded.
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
	})

	base := Score(s, &models.Preferences{})
	withFree := Score(s, &models.Preferences{FreeDays: []models.Day{models.Friday}})
	withQuasi := Score(s, &models.Preferences{FreeDays: []models.Day{models.Monday}})

	assert.InDelta(t, 10, withFree-base, 1e-9, "a fully free desired day is worth 10")
	assert.InDelta(t, 8, withQuasi-base, 1e-9, "one occupied period keeps partial credit")

	strict := Score(s, &models.Preferences{
		FreeDays:       []models.Day{models.Monday},
		StrictFreeDays: true,
	})
	assert.InDelta(t, base, strict, 1e-9, "strict mode gives no partial credit")
}

func TestScoreGapAndConflictPenalties(t *testing.T) {
	gappy := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1), slot(models.Monday, 4)),
	})
	tight := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1), slot(models.Monday, 2)),
	})

	prefs := &models.Preferences{}
	assert.Greater(t, Score(tight, prefs), Score(gappy, prefs))

	conflicted := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
		makeSection("MA201/1", "MA201", 4, slot(models.Monday, 1)),
	})
	clean := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
		makeSection("MA201/1", "MA201", 4, slot(models.Monday, 2)),
	})
	assert.Greater(t, Score(clean, prefs), Score(conflicted, prefs))
}

func TestScoreZeroWeightsFallBackToDefaults(t *testing.T) {
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1)),
	})

	unset := Score(s, &models.Preferences{})
	explicit := Score(s, &models.Preferences{Weights: models.DefaultWeights()})

	assert.InDelta(t, explicit, unset, 1e-9)
}

func TestScoreCapDeductions(t *testing.T) {
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3,
			slot(models.Monday, 1), slot(models.Monday, 2), slot(models.Monday, 3)),
	})

	base := Score(s, &models.Preferences{})
	capped := Score(s, &models.Preferences{MaxDailySlots: 2})
	assert.InDelta(t, -50, capped-base, 1e-9)

	weekly := Score(s, &models.Preferences{MaxWeeklySlots: 2})
	assert.InDelta(t, -50, weekly-base, 1e-9)
}

func TestViolatesCaps(t *testing.T) {
	s := models.NewSchedule([]*models.Section{
		makeSection("CS101/1", "CS101", 3, slot(models.Monday, 1), slot(models.Monday, 2)),
	})

	tests := []struct {
		name  string
		prefs *models.Preferences
		want  bool
	}{
		{name: "nil preferences", prefs: nil, want: false},
		{name: "within caps", prefs: &models.Preferences{MaxDailySlots: 2, MaxWeeklySlots: 4}, want: false},
		{name: "daily cap broken", prefs: &models.Preferences{MaxDailySlots: 1}, want: true},
		{name: "weekly cap broken", prefs: &models.Preferences{MaxWeeklySlots: 1}, want: true},
		{
			name: "strict free day occupied",
			prefs: &models.Preferences{
				FreeDays:       []models.Day{models.Monday},
				StrictFreeDays: true,
			},
			want: true,
		},
		{
			name: "non-strict free day occupied",
			prefs: &models.Preferences{
				FreeDays: []models.Day{models.Monday},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ViolatesCaps(s, tc.prefs))
		})
	}
}

// --- Fixtures ---

func makeSection(code, mainCode string, credits float64, slots ...models.TimeSlot) *models.Section {
	return &models.Section{
		Code:     code,
		MainCode: mainCode,
		Credits:  credits,
		Type:     models.SectionTypeLecture,
		Slots:    slots,
	}
}

func slot(day models.Day, period int) models.TimeSlot {
	return models.TimeSlot{Day: day, Period: period}
}
