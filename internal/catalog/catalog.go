// Package catalog turns raw section listings into the read-only course-group
// map the engine consumes. The engine contract is the in-memory map, not the
// file format.
package catalog

import (
	"fmt"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// BuildGroups partitions sections by main code into CourseGroups. Sections
// with an empty code or main code are rejected; duplicate section codes are
// rejected because section identity is the code.
func BuildGroups(sections []*models.Section) (map[string]*models.CourseGroup, error) {
	seen := make(map[string]bool, len(sections))
	byMain := make(map[string][]*models.Section)
	for _, section := range sections {
		if section.Code == "" || section.MainCode == "" {
			return nil, fmt.Errorf("catalog: section %q missing code or main code", section.Code)
		}
		if seen[section.Code] {
			return nil, fmt.Errorf("catalog: duplicate section code %q", section.Code)
		}
		seen[section.Code] = true
		byMain[section.MainCode] = append(byMain[section.MainCode], section)
	}

	groups := make(map[string]*models.CourseGroup, len(byMain))
	for mainCode, members := range byMain {
		groups[mainCode] = models.NewCourseGroup(mainCode, members)
	}
	return groups, nil
}
