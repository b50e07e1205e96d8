package models

import "strings"

// Selection is one legal section combination for a group: exactly one
// lecture, optionally followed by a problem session and/or a lab.
type Selection []*Section

// Credits sums the credit value of the selection.
func (sel Selection) Credits() float64 {
	var total float64
	for _, section := range sel {
		total += section.Credits
	}
	return total
}

// Codes returns the section codes in selection order.
func (sel Selection) Codes() []string {
	codes := make([]string, len(sel))
	for i, section := range sel {
		codes[i] = section.Code
	}
	return codes
}

// String joins the selection's codes for diagnostics.
func (sel Selection) String() string {
	return strings.Join(sel.Codes(), "+")
}

// Option is either a concrete Selection or the explicit decision to skip the
// group. Skip is only ever emitted for optional groups; mandatory groups get
// selection options exclusively.
type Option struct {
	Skip     bool
	Sections Selection
}

// SkipOption returns the skip sentinel.
func SkipOption() Option {
	return Option{Skip: true}
}

// SelectionOption wraps a selection as a choosable option.
func SelectionOption(sel Selection) Option {
	return Option{Sections: sel}
}

// Credits is zero for skip, otherwise the selection's credit sum.
func (o Option) Credits() float64 {
	if o.Skip {
		return 0
	}
	return o.Sections.Credits()
}

// Size is the number of sections the option contributes.
func (o Option) Size() int {
	if o.Skip {
		return 0
	}
	return len(o.Sections)
}
