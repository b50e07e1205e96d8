package search

import (
	"fmt"
	"sort"

	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/constraint"
	"github.com/TurkishKEBAB/SchedularDeprecatedV1-sub001/internal/models"
)

// PreparedSearch is the read-only container every strategy traverses: the
// processed group order, the mandatory/optional partition, and the per-group
// option lists. Built once per run and never mutated afterwards, so
// concurrent runs over the same catalog need no locking.
type PreparedSearch struct {
	GroupOrder []string
	Groups     map[string]*models.CourseGroup
	Mandatory  map[string]bool
	Optional   map[string]bool
	Options    map[string][]models.Option
	Selections map[string][]models.Selection
}

// Prepare builds the search container. Mandatory groups come first in
// GroupOrder, then optional groups, each block sorted by ascending option
// count with ties broken by code. An empty optionalCodes list means every
// non-mandatory catalog group is optional.
//
// The returned diagnostics name each mandatory group without a single valid
// selection; a non-empty list means the whole search is infeasible.
func Prepare(
	groups map[string]*models.CourseGroup,
	mandatoryCodes []string,
	optionalCodes []string,
	target constraint.ReplacementTarget,
) (*PreparedSearch, []string) {
	mandatory := make(map[string]bool, len(mandatoryCodes))
	for _, code := range mandatoryCodes {
		mandatory[code] = true
	}

	optional := make(map[string]bool)
	if len(optionalCodes) == 0 {
		for code := range groups {
			if !mandatory[code] {
				optional[code] = true
			}
		}
	} else {
		for _, code := range optionalCodes {
			if _, known := groups[code]; known && !mandatory[code] {
				optional[code] = true
			}
		}
	}

	scoped := make(map[string]*models.CourseGroup, len(mandatory)+len(optional))
	for code, group := range groups {
		if mandatory[code] || optional[code] {
			scoped[code] = group
		}
	}

	selections, options := constraint.BuildGroupOptions(scoped, mandatory, target)

	var diagnostics []string
	for _, code := range sortedCodes(mandatory) {
		if len(selections[code]) == 0 {
			diagnostics = append(diagnostics,
				fmt.Sprintf("mandatory course %s has no valid section combination", code))
		}
	}

	prepared := &PreparedSearch{
		Groups:     scoped,
		Mandatory:  mandatory,
		Optional:   optional,
		Options:    options,
		Selections: selections,
	}
	prepared.GroupOrder = append(
		orderBlock(mandatory, options),
		orderBlock(optional, options)...,
	)
	return prepared, diagnostics
}

func sortedCodes(set map[string]bool) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func orderBlock(set map[string]bool, options map[string][]models.Option) []string {
	block := sortedCodes(set)
	sort.SliceStable(block, func(i, j int) bool {
		oi, oj := len(options[block[i]]), len(options[block[j]])
		if oi != oj {
			return oi < oj
		}
		return block[i] < block[j]
	})
	return block
}

// Depth is the number of groups a complete assignment walks through.
func (p *PreparedSearch) Depth() int {
	return len(p.GroupOrder)
}

// GroupAt returns the group code processed at the given depth.
func (p *PreparedSearch) GroupAt(depth int) string {
	return p.GroupOrder[depth]
}

// OptionsAt returns the option list of the group at the given depth.
func (p *PreparedSearch) OptionsAt(depth int) []models.Option {
	return p.Options[p.GroupOrder[depth]]
}

// IsMandatory reports whether the code belongs to the mandatory partition.
func (p *PreparedSearch) IsMandatory(code string) bool {
	return p.Mandatory[code]
}

// MandatoryCodes returns the mandatory partition in ascending code order.
func (p *PreparedSearch) MandatoryCodes() []string {
	return sortedCodes(p.Mandatory)
}

// MinMandatoryCredits sums, over the mandatory groups, the credit value of
// each group's cheapest selection. No schedule covering every mandatory
// course can cost less, which makes this the fail-fast bound against the
// credit cap.
func (p *PreparedSearch) MinMandatoryCredits() float64 {
	var total float64
	for code := range p.Mandatory {
		cheapest := 0.0
		for i, sel := range p.Selections[code] {
			credits := sel.Credits()
			if i == 0 || credits < cheapest {
				cheapest = credits
			}
		}
		total += cheapest
	}
	return total
}
