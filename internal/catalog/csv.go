package catalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// sectionRow is the CSV projection of a section. Slot cells use the compact
// "MONDAY:3;MONDAY:4;WEDNESDAY:1" form.
type sectionRow struct {
	Code       string  `csv:"code"`
	MainCode   string  `csv:"main_code"`
	Name       string  `csv:"name"`
	Credits    float64 `csv:"credits"`
	Type       string  `csv:"type"`
	Slots      string  `csv:"slots"`
	Instructor string  `csv:"instructor"`
}

// LoadCSV reads a section catalog from r and builds the group map.
func LoadCSV(r io.Reader) (map[string]*models.CourseGroup, error) {
	var rows []*sectionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("catalog: parse csv: %w", err)
	}

	sections := make([]*models.Section, 0, len(rows))
	for _, row := range rows {
		section, err := row.toSection()
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return BuildGroups(sections)
}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string) (map[string]*models.CourseGroup, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer file.Close()
	return LoadCSV(file)
}

func (r *sectionRow) toSection() (*models.Section, error) {
	sectionType, err := parseSectionType(r.Type)
	if err != nil {
		return nil, fmt.Errorf("catalog: section %q: %w", r.Code, err)
	}
	slots, err := ParseSlotList(r.Slots)
	if err != nil {
		return nil, fmt.Errorf("catalog: section %q: %w", r.Code, err)
	}
	return &models.Section{
		Code:       strings.TrimSpace(r.Code),
		MainCode:   strings.TrimSpace(r.MainCode),
		Name:       strings.TrimSpace(r.Name),
		Credits:    r.Credits,
		Type:       sectionType,
		Slots:      slots,
		Instructor: strings.TrimSpace(r.Instructor),
	}, nil
}

func parseSectionType(raw string) (models.SectionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lecture", "":
		return models.SectionTypeLecture, nil
	case "ps", "problem-session", "recitation":
		return models.SectionTypeProblemSession, nil
	case "lab", "laboratory":
		return models.SectionTypeLab, nil
	default:
		return "", fmt.Errorf("unknown section type %q", raw)
	}
}

// ParseSlotList decodes a semicolon-separated "DAY:PERIOD" list.
func ParseSlotList(raw string) ([]models.TimeSlot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ";")
	slots := make([]models.TimeSlot, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pieces := strings.SplitN(part, ":", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("malformed slot %q", part)
		}
		day := models.ParseDay(pieces[0])
		if !day.Valid() {
			return nil, fmt.Errorf("unknown day in slot %q", part)
		}
		period, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
		if err != nil || period < 1 {
			return nil, fmt.Errorf("bad period in slot %q", part)
		}
		slots = append(slots, models.TimeSlot{Day: day, Period: period})
	}
	return slots, nil
}
