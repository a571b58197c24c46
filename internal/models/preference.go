// file: internal/models/preference.go
// version: 1.0.0
// guid: 9c4d1e7a-52b8-4f3c-a6d9-0e8b5f2a7c31

package models

import (
	"fmt"
	"math"
	"strings"
)

// Attribute identifies one scorable facet of a clothing item.
type Attribute string

const (
	AttrCategory   Attribute = "category"
	AttrColor      Attribute = "color"
	AttrStyle      Attribute = "style"
	AttrSeason     Attribute = "season"
	AttrMaterial   Attribute = "material"
	AttrOccasion   Attribute = "occasion"
	AttrGender     Attribute = "gender"
	AttrSize       Attribute = "size"
	AttrCondition  Attribute = "condition"
	AttrPriceRange Attribute = "price_range"
)

// AllAttributes lists every scorable attribute in the order the
// preference interview asks about them.
var AllAttributes = []Attribute{
	AttrCategory,
	AttrOccasion,
	AttrSeason,
	AttrColor,
	AttrStyle,
	AttrGender,
	AttrSize,
	AttrMaterial,
	AttrCondition,
	AttrPriceRange,
}

// IsList reports whether the attribute holds multiple values per item.
func (a Attribute) IsList() bool {
	return a == AttrSeason || a == AttrOccasion
}

// IsRange reports whether the attribute is the price range.
func (a Attribute) IsRange() bool {
	return a == AttrPriceRange
}

// Label returns a human-readable form of the attribute name, e.g.
// "price_range" becomes "price range".
func (a Attribute) Label() string {
	return strings.ReplaceAll(string(a), "_", " ")
}

// PriceRange bounds acceptable prices, inclusive on both ends.
// A Max of +Inf means no upper bound.
type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded reports whether the range has no upper limit.
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// String renders the range for display, e.g. "$5.00 to $20.00" or
// "$5.00 to no maximum".
func (r PriceRange) String() string {
	if r.Unbounded() {
		return fmt.Sprintf("$%.2f to no maximum", r.Min)
	}
	return fmt.Sprintf("$%.2f to $%.2f", r.Min, r.Max)
}

// Preference is a single stated want for one attribute. Exactly one of
// Scalar, List or Range is set; the zero value means "no preference".
type Preference struct {
	Scalar string
	List   []string
	Range  *PriceRange
}

// IsZero reports whether the preference states nothing.
func (p Preference) IsZero() bool {
	return p.Scalar == "" && len(p.List) == 0 && p.Range == nil
}

// PreferenceSet maps attributes to stated preferences. Attributes the
// user skipped are absent. The set is built incrementally during
// collection and treated as read-only by the match engine.
type PreferenceSet map[Attribute]Preference

// SetScalar records a single-valued preference. Empty values are
// ignored so a skipped question leaves the attribute absent.
func (ps PreferenceSet) SetScalar(attr Attribute, value string) {
	if value == "" {
		return
	}
	ps[attr] = Preference{Scalar: value}
}

// SetList records a multi-valued preference. Empty lists are ignored.
func (ps PreferenceSet) SetList(attr Attribute, values []string) {
	if len(values) == 0 {
		return
	}
	ps[attr] = Preference{List: values}
}

// SetRange records a price range preference.
func (ps PreferenceSet) SetRange(attr Attribute, r PriceRange) {
	ps[attr] = Preference{Range: &r}
}

// Empty reports whether no preference was stated at all.
func (ps PreferenceSet) Empty() bool {
	return len(ps) == 0
}
