package models

import "sort"

// CourseGroup bundles every section sharing a main course code. Groups are
// built once from the catalog and read-only afterwards; sections are kept
// sorted by code so downstream enumeration stays deterministic.
type CourseGroup struct {
	MainCode string
	Sections []*Section
}

// NewCourseGroup builds a group, sorting sections by code.
func NewCourseGroup(mainCode string, sections []*Section) *CourseGroup {
	owned := make([]*Section, len(sections))
	copy(owned, sections)
	sort.Slice(owned, func(i, j int) bool { return owned[i].Code < owned[j].Code })
	return &CourseGroup{MainCode: mainCode, Sections: owned}
}

func (g *CourseGroup) byType(t SectionType) []*Section {
	var result []*Section
	for _, section := range g.Sections {
		if section.Type == t {
			result = append(result, section)
		}
	}
	return result
}

// Lectures returns the lecture sections in code order.
func (g *CourseGroup) Lectures() []*Section {
	return g.byType(SectionTypeLecture)
}

// ProblemSessions returns the problem-session sections in code order.
func (g *CourseGroup) ProblemSessions() []*Section {
	return g.byType(SectionTypeProblemSession)
}

// Labs returns the lab sections in code order.
func (g *CourseGroup) Labs() []*Section {
	return g.byType(SectionTypeLab)
}

// HasLecture reports whether the group offers at least one lecture.
func (g *CourseGroup) HasLecture() bool {
	return len(g.Lectures()) > 0
}

// SortedGroupCodes returns the main codes of a group map in ascending order.
// Iterating catalogs through this keeps option building idempotent.
func SortedGroupCodes(groups map[string]*CourseGroup) []string {
	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
