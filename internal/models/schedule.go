package models

import (
	"sort"
	"strings"
)

// Schedule is one candidate weekly timetable: a set of sections drawn from
// one option per processed group. Totals and conflicts are derived at
// construction; a schedule is never mutated afterwards, candidates are simply
// rebuilt whenever a search step needs to evaluate a new assignment.
type Schedule struct {
	sections      []*Section
	totalCredits  float64
	conflictCount int
	occupiedDays  map[Day]bool
	mainCodes     map[string]bool
	signature     string
}

// NewSchedule builds a schedule from the given sections. The input slice is
// copied and sorted by code; derived invariants are computed eagerly so the
// value is always consistent.
func NewSchedule(sections []*Section) *Schedule {
	owned := make([]*Section, len(sections))
	copy(owned, sections)
	sort.Slice(owned, func(i, j int) bool { return owned[i].Code < owned[j].Code })

	s := &Schedule{
		sections:     owned,
		occupiedDays: make(map[Day]bool),
		mainCodes:    make(map[string]bool, len(owned)),
	}

	occupancy := make(map[TimeSlot]int)
	codes := make([]string, len(owned))
	for i, section := range owned {
		s.totalCredits += section.Credits
		s.mainCodes[section.MainCode] = true
		codes[i] = section.Code
		for _, slot := range section.Slots {
			occupancy[slot]++
			s.occupiedDays[slot.Day] = true
		}
	}
	for _, count := range occupancy {
		if count >= 2 {
			s.conflictCount++
		}
	}
	s.signature = strings.Join(codes, "|")
	return s
}

// Sections returns the member sections sorted by code. Callers must not
// modify the returned slice.
func (s *Schedule) Sections() []*Section {
	return s.sections
}

// TotalCredits is the credit sum across all member sections.
func (s *Schedule) TotalCredits() float64 {
	return s.totalCredits
}

// ConflictCount is the number of distinct time slots occupied by two or more
// sections.
func (s *Schedule) ConflictCount() int {
	return s.conflictCount
}

// OccupiesDay reports whether any section meets on the given day.
func (s *Schedule) OccupiesDay(d Day) bool {
	return s.occupiedDays[d]
}

// CoversMainCode reports whether the schedule contains a section of the
// course family.
func (s *Schedule) CoversMainCode(code string) bool {
	return s.mainCodes[code]
}

// MainCodes returns the set of covered course families.
func (s *Schedule) MainCodes() map[string]bool {
	return s.mainCodes
}

// Signature is the canonical identity of the schedule: the sorted section
// codes joined with "|". Used for result dedup and tabu bookkeeping.
func (s *Schedule) Signature() string {
	return s.signature
}

// Len returns the number of member sections.
func (s *Schedule) Len() int {
	return len(s.sections)
}

// CountConflicts computes the schedule conflict metric for a raw section
// list: the number of distinct time slots claimed by at least two sections.
// Partial-assignment pruning uses this without building a full Schedule.
func CountConflicts(sections []*Section) int {
	occupancy := make(map[TimeSlot]int)
	for _, section := range sections {
		for _, slot := range section.Slots {
			occupancy[slot]++
		}
	}
	conflicts := 0
	for _, count := range occupancy {
		if count >= 2 {
			conflicts++
		}
	}
	return conflicts
}

// TotalCredits sums credits over a raw section list.
func TotalCredits(sections []*Section) float64 {
	var total float64
	for _, section := range sections {
		total += section.Credits
	}
	return total
}
