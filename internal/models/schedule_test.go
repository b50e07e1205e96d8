package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleDerivedValues(t *testing.T) {
	cs := makeSection("CS101/1", "CS101", 3, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
		TimeSlot{Day: Wednesday, Period: 3},
	)
	ma := makeSection("MA201/1", "MA201", 4, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
	)
	ph := makeSection("PH150/1", "PH150", 3, SectionTypeLecture,
		TimeSlot{Day: Friday, Period: 2},
	)

	s := NewSchedule([]*Section{ph, cs, ma})

	require.Equal(t, 3, s.Len())
	assert.Equal(t, 10.0, s.TotalCredits())
	assert.Equal(t, 1, s.ConflictCount(), "MONDAY:1 is claimed twice")

	assert.True(t, s.OccupiesDay(Monday))
	assert.True(t, s.OccupiesDay(Friday))
	assert.False(t, s.OccupiesDay(Tuesday))

	assert.True(t, s.CoversMainCode("CS101"))
	assert.True(t, s.CoversMainCode("MA201"))
	assert.False(t, s.CoversMainCode("CH110"))

	got := make([]string, 0, s.Len())
	for _, section := range s.Sections() {
		got = append(got, section.Code)
	}
	assert.Equal(t, []string{"CS101/1", "MA201/1", "PH150/1"}, got, "sections come back in code order")
}

func TestScheduleSignatureIsOrderIndependent(t *testing.T) {
	a := makeSection("CS101/1", "CS101", 3, SectionTypeLecture, TimeSlot{Day: Monday, Period: 1})
	b := makeSection("MA201/1", "MA201", 4, SectionTypeLecture, TimeSlot{Day: Tuesday, Period: 1})

	first := NewSchedule([]*Section{a, b})
	second := NewSchedule([]*Section{b, a})

	assert.Equal(t, "CS101/1|MA201/1", first.Signature())
	assert.Equal(t, first.Signature(), second.Signature())
}

func TestCountConflictsCountsDistinctSlots(t *testing.T) {
	a := makeSection("CS101/1", "CS101", 3, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
		TimeSlot{Day: Monday, Period: 2},
	)
	b := makeSection("MA201/1", "MA201", 4, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
		TimeSlot{Day: Monday, Period: 2},
	)
	c := makeSection("PH150/1", "PH150", 3, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
	)

	assert.Zero(t, CountConflicts([]*Section{a}))
	assert.Equal(t, 2, CountConflicts([]*Section{a, b}), "two shared slots are two conflicts")
	assert.Equal(t, 2, CountConflicts([]*Section{a, b, c}), "a third claimant does not add a conflict")
}

func TestTotalCreditsSumsSections(t *testing.T) {
	sections := []*Section{
		makeSection("CS101/1", "CS101", 3, SectionTypeLecture),
		makeSection("MA201/1", "MA201", 4.5, SectionTypeLecture),
	}
	assert.Equal(t, 7.5, TotalCredits(sections))
	assert.Zero(t, TotalCredits(nil))
}
