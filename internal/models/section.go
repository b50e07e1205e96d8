package models

import (
	"fmt"
	"strings"
)

// SectionType classifies how a section meets.
type SectionType string

const (
	SectionTypeLecture        SectionType = "lecture"
	SectionTypeProblemSession SectionType = "ps"
	SectionTypeLab            SectionType = "lab"
)

// Day indexes a weekday, Monday first, matching the catalog convention.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek bounds the scheduling grid.
const DaysPerWeek = 7

var dayNames = map[Day]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
	Saturday:  "SATURDAY",
	Sunday:    "SUNDAY",
}

var dayIndexes = map[string]Day{
	"MONDAY":    Monday,
	"TUESDAY":   Tuesday,
	"WEDNESDAY": Wednesday,
	"THURSDAY":  Thursday,
	"FRIDAY":    Friday,
	"SATURDAY":  Saturday,
	"SUNDAY":    Sunday,
}

// String returns the canonical upper-case day name.
func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DAY(%d)", int(d))
}

// Valid reports whether the day falls inside the weekly grid.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay resolves a day name, case-insensitively. Unknown names yield 0.
func ParseDay(name string) Day {
	return dayIndexes[strings.ToUpper(strings.TrimSpace(name))]
}

// TimeSlot is one (day, period) cell of the weekly grid. Periods are 1-based.
type TimeSlot struct {
	Day    Day `json:"day"`
	Period int `json:"period"`
}

// String renders the slot as DAY:PERIOD.
func (t TimeSlot) String() string {
	return fmt.Sprintf("%s:%d", t.Day, t.Period)
}

// Section is one concrete offering of a course. Sections are immutable once
// loaded; identity is the section code.
type Section struct {
	Code       string      `json:"code"`
	MainCode   string      `json:"main_code"`
	Name       string      `json:"name"`
	Credits    float64     `json:"credits"`
	Type       SectionType `json:"type"`
	Slots      []TimeSlot  `json:"slots"`
	Instructor string      `json:"instructor"`
}

// OccupiesSlot reports whether the section meets at the given cell.
func (s *Section) OccupiesSlot(slot TimeSlot) bool {
	for _, own := range s.Slots {
		if own == slot {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether two sections share any time slot.
func (s *Section) ConflictsWith(other *Section) bool {
	if s == nil || other == nil {
		return false
	}
	for _, slot := range s.Slots {
		if other.OccupiesSlot(slot) {
			return true
		}
	}
	return false
}

// Equal compares sections by code.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Code == other.Code
}
