package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Day
	}{
		{name: "canonical", input: "MONDAY", want: Monday},
		{name: "lower case", input: "friday", want: Friday},
		{name: "mixed case with spaces", input: "  WedNesday ", want: Wednesday},
		{name: "sunday", input: "SUNDAY", want: Sunday},
		{name: "unknown", input: "FUNDAY", want: 0},
		{name: "empty", input: "", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDay(tc.input))
		})
	}
}

func TestDayStringRoundTrip(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		require.True(t, d.Valid())
		assert.Equal(t, d, ParseDay(d.String()))
	}
	assert.False(t, Day(0).Valid())
	assert.False(t, Day(8).Valid())
	assert.Equal(t, "DAY(0)", Day(0).String())
}

func TestTimeSlotString(t *testing.T) {
	slot := TimeSlot{Day: Thursday, Period: 3}
	assert.Equal(t, "THURSDAY:3", slot.String())
}

func TestSectionOccupiesSlot(t *testing.T) {
	section := makeSection("CS101/1", "CS101", 3, SectionTypeLecture,
		TimeSlot{Day: Monday, Period: 1},
		TimeSlot{Day: Wednesday, Period: 2},
	)

	assert.True(t, section.OccupiesSlot(TimeSlot{Day: Monday, Period: 1}))
	assert.False(t, section.OccupiesSlot(TimeSlot{Day: Monday, Period: 2}))
	assert.False(t, section.OccupiesSlot(TimeSlot{Day: Tuesday, Period: 1}))
}

func TestSectionConflictsWith(t *testing.T) {
	base := makeSection("CS101/1", "CS101", 3, SectionTypeLecture, TimeSlot{Day: Monday, Period: 1})
	overlapping := makeSection("MA201/1", "MA201", 4, SectionTypeLecture, TimeSlot{Day: Monday, Period: 1})
	disjoint := makeSection("PH150/1", "PH150", 3, SectionTypeLecture, TimeSlot{Day: Tuesday, Period: 1})

	assert.True(t, base.ConflictsWith(overlapping))
	assert.True(t, overlapping.ConflictsWith(base))
	assert.False(t, base.ConflictsWith(disjoint))
	assert.False(t, base.ConflictsWith(nil))
}

func TestSectionEqual(t *testing.T) {
	a := makeSection("CS101/1", "CS101", 3, SectionTypeLecture)
	b := makeSection("CS101/1", "CS101", 3, SectionTypeLab)
	c := makeSection("CS101/2", "CS101", 3, SectionTypeLecture)

	assert.True(t, a.Equal(b), "identity is the section code")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

// --- Fixtures ---

func makeSection(code, mainCode string, credits float64, typ SectionType, slots ...TimeSlot) *Section {
	return &Section{
		Code:     code,
		MainCode: mainCode,
		Name:     mainCode + " course",
		Credits:  credits,
		Type:     typ,
		Slots:    slots,
	}
}
