// Package constraint enumerates, per course group, every legal section
// combination a search strategy may choose from. It owns the rules about
// which section types a selection needs and whether a group can be skipped;
// strategies never look at raw sections again after this point.
package constraint

import (
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// GroupConstraints records which auxiliary section types a group demands.
type GroupConstraints struct {
	MustHavePS  bool
	MustHaveLab bool
}

// ReplacementTarget switches the optional-group option shape for downstream
// repair passes.
type ReplacementTarget string

const (
	// ReplacementTargetNone keeps the full option list per optional group.
	ReplacementTargetNone ReplacementTarget = ""
	// ReplacementTargetCourse collapses each optional group to its first
	// concrete selection, turning repair moves into whole-group swaps.
	ReplacementTargetCourse ReplacementTarget = "course"
)

// AutoGenerateConstraints derives per-main-code requirements purely from the
// presence of auxiliary sections: a group offering problem sessions requires
// one, a group offering labs requires one.
func AutoGenerateConstraints(sections []*models.Section) map[string]GroupConstraints {
	result := make(map[string]GroupConstraints)
	for _, section := range sections {
		cons := result[section.MainCode]
		switch section.Type {
		case models.SectionTypeProblemSession:
			cons.MustHavePS = true
		case models.SectionTypeLab:
			cons.MustHaveLab = true
		}
		result[section.MainCode] = cons
	}
	return result
}

// GenerateValidGroupSelections enumerates the cartesian product of the
// group's lectures with its problem-session and lab choices. A required
// auxiliary type contributes every matching section; an unrequired one adds
// an "absent" choice ahead of the sections. Groups without a lecture have no
// valid selections.
func GenerateValidGroupSelections(group *models.CourseGroup, cons GroupConstraints) []models.Selection {
	lectures := group.Lectures()
	if len(lectures) == 0 {
		return nil
	}
	psChoices := auxiliaryChoices(group.ProblemSessions(), cons.MustHavePS)
	labChoices := auxiliaryChoices(group.Labs(), cons.MustHaveLab)

	var selections []models.Selection
	for _, lecture := range lectures {
		for _, ps := range psChoices {
			for _, lab := range labChoices {
				selection := models.Selection{lecture}
				if ps != nil {
					selection = append(selection, ps)
				}
				if lab != nil {
					selection = append(selection, lab)
				}
				selections = append(selections, selection)
			}
		}
	}
	return selections
}

// auxiliaryChoices returns the candidate sections of one auxiliary type, with
// a leading nil ("not taken") unless the type is required. A required type
// with no sections yields no choices at all, which empties the product.
func auxiliaryChoices(sections []*models.Section, required bool) []*models.Section {
	if required {
		return sections
	}
	choices := make([]*models.Section, 0, len(sections)+1)
	choices = append(choices, nil)
	choices = append(choices, sections...)
	return choices
}

// BuildGroupOptions produces, per group, the valid selections and the option
// list a strategy iterates. Mandatory groups get one option per selection;
// optional groups get a leading skip option. With ReplacementTargetCourse an
// optional group collapses to its first concrete selection so repair passes
// swap whole courses instead of single sections.
func BuildGroupOptions(
	groups map[string]*models.CourseGroup,
	mandatoryCodes map[string]bool,
	target ReplacementTarget,
) (map[string][]models.Selection, map[string][]models.Option) {
	var allSections []*models.Section
	for _, code := range models.SortedGroupCodes(groups) {
		allSections = append(allSections, groups[code].Sections...)
	}
	constraints := AutoGenerateConstraints(allSections)

	selections := make(map[string][]models.Selection, len(groups))
	options := make(map[string][]models.Option, len(groups))
	for _, code := range models.SortedGroupCodes(groups) {
		group := groups[code]
		groupSelections := GenerateValidGroupSelections(group, constraints[code])
		selections[code] = groupSelections

		switch {
		case mandatoryCodes[code]:
			opts := make([]models.Option, 0, len(groupSelections))
			for _, sel := range groupSelections {
				opts = append(opts, models.SelectionOption(sel))
			}
			options[code] = opts
		case target == ReplacementTargetCourse:
			if len(groupSelections) > 0 {
				options[code] = []models.Option{models.SelectionOption(groupSelections[0])}
			} else {
				options[code] = []models.Option{models.SkipOption()}
			}
		default:
			opts := make([]models.Option, 0, len(groupSelections)+1)
			opts = append(opts, models.SkipOption())
			for _, sel := range groupSelections {
				opts = append(opts, models.SelectionOption(sel))
			}
			options[code] = opts
		}
	}
	return selections, options
}

// ConflictMatrix maps each section code to the codes it overlaps in time.
// Intended for diagnostics and capacity analysis, not the hot search path.
func ConflictMatrix(sections []*models.Section) map[string]map[string]bool {
	matrix := make(map[string]map[string]bool, len(sections))
	for _, section := range sections {
		matrix[section.Code] = make(map[string]bool)
	}
	for i, a := range sections {
		for _, b := range sections[i+1:] {
			if a.ConflictsWith(b) {
				matrix[a.Code][b.Code] = true
				matrix[b.Code][a.Code] = true
			}
		}
	}
	return matrix
}

// GreedyIndependentSet packs a maximal set of mutually non-conflicting
// sections, preferring low-conflict sections and breaking ties by code so
// the result is stable across runs.
func GreedyIndependentSet(sections []*models.Section) []*models.Section {
	matrix := ConflictMatrix(sections)

	ordered := make([]*models.Section, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := len(matrix[ordered[i].Code]), len(matrix[ordered[j].Code])
		if di != dj {
			return di < dj
		}
		return ordered[i].Code < ordered[j].Code
	})

	var packed []*models.Section
	excluded := make(map[string]bool)
	for _, candidate := range ordered {
		if excluded[candidate.Code] {
			continue
		}
		packed = append(packed, candidate)
		for neighbor := range matrix[candidate.Code] {
			excluded[neighbor] = true
		}
	}
	sort.Slice(packed, func(i, j int) bool { return packed[i].Code < packed[j].Code })
	return packed
}
