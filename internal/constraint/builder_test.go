package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

func TestAutoGenerateConstraints(t *testing.T) {
	cons := AutoGenerateConstraints([]*models.Section{
		makeSection("CS101/1", "CS101", models.SectionTypeLecture),
		makeSection("CS101/L1", "CS101", models.SectionTypeLab),
		makeSection("MA201/1", "MA201", models.SectionTypeLecture),
		makeSection("MA201/P1", "MA201", models.SectionTypeProblemSession),
		makeSection("PH150/1", "PH150", models.SectionTypeLecture),
	})

	assert.Equal(t, GroupConstraints{MustHaveLab: true}, cons["CS101"])
	assert.Equal(t, GroupConstraints{MustHavePS: true}, cons["MA201"])
	assert.Equal(t, GroupConstraints{}, cons["PH150"])
}

func TestGenerateValidGroupSelectionsRequiredAuxiliaries(t *testing.T) {
	group := models.NewCourseGroup("CS101", []*models.Section{
		makeSection("CS101/1", "CS101", models.SectionTypeLecture),
		makeSection("CS101/2", "CS101", models.SectionTypeLecture),
		makeSection("CS101/L1", "CS101", models.SectionTypeLab),
		makeSection("CS101/L2", "CS101", models.SectionTypeLab),
	})

	selections := GenerateValidGroupSelections(group, GroupConstraints{MustHaveLab: true})

	require.Len(t, selections, 4, "2 lectures x 2 labs")
	for _, sel := range selections {
		require.Len(t, sel, 2)
		assert.Equal(t, models.SectionTypeLecture, sel[0].Type)
		assert.Equal(t, models.SectionTypeLab, sel[1].Type)
	}
}

func TestGenerateValidGroupSelectionsOptionalAuxiliary(t *testing.T) {
	group := models.NewCourseGroup("CS101", []*models.Section{
		makeSection("CS101/1", "CS101", models.SectionTypeLecture),
		makeSection("CS101/P1", "CS101", models.SectionTypeProblemSession),
	})

	// PS offered but not required: taking it and not taking it are both legal.
	selections := GenerateValidGroupSelections(group, GroupConstraints{})

	require.Len(t, selections, 2)
	assert.Len(t, selections[0], 1, "lecture alone comes first")
	assert.Len(t, selections[1], 2)
}

func TestGenerateValidGroupSelectionsDegenerateGroups(t *testing.T) {
	noLecture := models.NewCourseGroup("CS101", []*models.Section{
		makeSection("CS101/L1", "CS101", models.SectionTypeLab),
	})
	assert.Empty(t, GenerateValidGroupSelections(noLecture, GroupConstraints{}))

	// Lab required by constraints but none offered: the product is empty.
	lectureOnly := models.NewCourseGroup("MA201", []*models.Section{
		makeSection("MA201/1", "MA201", models.SectionTypeLecture),
	})
	assert.Empty(t, GenerateValidGroupSelections(lectureOnly, GroupConstraints{MustHaveLab: true}))
}

func TestBuildGroupOptionsMandatoryVersusOptional(t *testing.T) {
	groups := groupFixture(t)
	mandatory := map[string]bool{"CS101": true}

	selections, options := BuildGroupOptions(groups, mandatory, ReplacementTargetNone)

	require.Len(t, selections["CS101"], 2, "2 lectures x 1 required lab")
	require.Len(t, options["CS101"], 2)
	for _, opt := range options["CS101"] {
		assert.False(t, opt.Skip, "mandatory groups never get a skip option")
	}

	require.Len(t, options["MA201"], 2, "skip plus one selection")
	assert.True(t, options["MA201"][0].Skip, "skip leads the optional option list")
	assert.False(t, options["MA201"][1].Skip)
}

func TestBuildGroupOptionsReplacementCourseTarget(t *testing.T) {
	groups := groupFixture(t)

	_, options := BuildGroupOptions(groups, map[string]bool{"CS101": true}, ReplacementTargetCourse)

	require.Len(t, options["MA201"], 1, "optional group collapses to one selection")
	assert.False(t, options["MA201"][0].Skip)
	assert.Equal(t, []string{"MA201/1"}, options["MA201"][0].Sections.Codes())
}

func TestBuildGroupOptionsIsIdempotent(t *testing.T) {
	groups := groupFixture(t)
	mandatory := map[string]bool{"CS101": true}

	first, firstOpts := BuildGroupOptions(groups, mandatory, ReplacementTargetNone)
	second, secondOpts := BuildGroupOptions(groups, mandatory, ReplacementTargetNone)

	require.Equal(t, len(first), len(second))
	for code := range first {
		require.Equal(t, len(first[code]), len(second[code]), code)
		for i := range first[code] {
			assert.Equal(t, first[code][i].String(), second[code][i].String())
		}
	}
	for code := range firstOpts {
		require.Equal(t, len(firstOpts[code]), len(secondOpts[code]), code)
	}
}

func TestConflictMatrix(t *testing.T) {
	a := makeSection("CS101/1", "CS101", models.SectionTypeLecture, slot(models.Monday, 1))
	b := makeSection("MA201/1", "MA201", models.SectionTypeLecture, slot(models.Monday, 1))
	c := makeSection("PH150/1", "PH150", models.SectionTypeLecture, slot(models.Tuesday, 1))

	matrix := ConflictMatrix([]*models.Section{a, b, c})

	assert.True(t, matrix["CS101/1"]["MA201/1"])
	assert.True(t, matrix["MA201/1"]["CS101/1"], "matrix is symmetric")
	assert.Empty(t, matrix["PH150/1"])
}

func TestGreedyIndependentSet(t *testing.T) {
	// Star graph: hub conflicts with both leaves, leaves are disjoint.
	hub := makeSection("CS101/1", "CS101", models.SectionTypeLecture,
		slot(models.Monday, 1), slot(models.Tuesday, 1))
	leafA := makeSection("MA201/1", "MA201", models.SectionTypeLecture, slot(models.Monday, 1))
	leafB := makeSection("PH150/1", "PH150", models.SectionTypeLecture, slot(models.Tuesday, 1))

	packed := GreedyIndependentSet([]*models.Section{hub, leafA, leafB})

	require.Len(t, packed, 2)
	assert.Equal(t, "MA201/1", packed[0].Code)
	assert.Equal(t, "PH150/1", packed[1].Code)
}

// --- Fixtures ---

func groupFixture(t *testing.T) map[string]*models.CourseGroup {
	t.Helper()
	return map[string]*models.CourseGroup{
		"CS101": models.NewCourseGroup("CS101", []*models.Section{
			makeSection("CS101/1", "CS101", models.SectionTypeLecture, slot(models.Monday, 1)),
			makeSection("CS101/2", "CS101", models.SectionTypeLecture, slot(models.Tuesday, 1)),
			makeSection("CS101/L1", "CS101", models.SectionTypeLab, slot(models.Friday, 1)),
		}),
		"MA201": models.NewCourseGroup("MA201", []*models.Section{
			makeSection("MA201/1", "MA201", models.SectionTypeLecture, slot(models.Wednesday, 2)),
		}),
	}
}

func makeSection(code, mainCode string, typ models.SectionType, slots ...models.TimeSlot) *models.Section {
	return &models.Section{
		Code:     code,
		MainCode: mainCode,
		Credits:  3,
		Type:     typ,
		Slots:    slots,
	}
}

func slot(day models.Day, period int) models.TimeSlot {
	return models.TimeSlot{Day: day, Period: period}
}
