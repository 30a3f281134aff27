// Package catalog is the single source of truth for the primitive shape
// of every offer field: type, length bounds, numeric ranges, decimal
// precision and enumerated code sets. Conditional requirements between
// fields do not live here; internal/rules layers those on top of the
// identities this package defines.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// ErrUnknownField is returned by Describe for an unregistered field id.
// A lookup miss is a programmer error, not a user error.
var ErrUnknownField = errors.New("unknown field")

// FieldID identifies one field of the offer record, section-qualified.
// Fields living inside repeated entries carry a "[]" marker; their
// verdicts aggregate over all entries of the section.
type FieldID string

// Kind is the primitive shape of a field value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBool
	KindTimestamp
	KindEnum
	KindEnumList
	KindStringList
)

var kindNames = map[Kind]string{
	KindString:     "string",
	KindInteger:    "integer",
	KindNumber:     "number",
	KindBool:       "bool",
	KindTimestamp:  "timestamp",
	KindEnum:       "enum",
	KindEnumList:   "enum-list",
	KindStringList: "string-list",
}

func (k Kind) String() string { return kindNames[k] }

// MarshalJSON renders the kind as its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + kindNames[k] + `"`), nil
}

// UnmarshalJSON parses a kind from its wire name.
func (k *Kind) UnmarshalJSON(b []byte) error {
	name := string(b)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	for v, n := range kindNames {
		if n == name {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", name)
}

// Machine-readable reason codes shared by the primitive checks and the
// rule engine. The UI maps these to localized messages.
const (
	ReasonTypeMismatch    = "type-mismatch"
	ReasonTooShort        = "too-short"
	ReasonTooLong         = "too-long"
	ReasonBadFormat       = "bad-format"
	ReasonBadTimestamp    = "bad-timestamp"
	ReasonOutOfRange      = "out-of-range"
	ReasonTooManyDecimals = "too-many-decimals"
	ReasonNotInEnum       = "not-in-enum"
	ReasonNotApplicable   = "field-not-applicable"
	ReasonForbidden       = "forbidden-for-selection"
	ReasonNotAllowed      = "not-allowed-for-selection"
	ReasonCardinality     = "cardinality"
	ReasonMinOverMax      = "min-greater-than-max"
	ReasonEmptyWindow     = "empty-validity-window"
	ReasonDateTooEarly    = "effective-date-too-early"
)

// Value is one observed value of a field. Entry is the index of the
// containing list entry, or -1 for scalar fields.
type Value struct {
	Entry int
	V     any
}

// Shape describes the primitive constraints of a field.
type Shape struct {
	ID      FieldID
	Section offer.Section
	Kind    Kind

	MinLen  int
	MaxLen  int
	Pattern string // applied to strings and string-list elements
	Min     *float64
	Max     *float64
	// Decimals caps the digits after the decimal point; 0 means integral
	// values only, -1 means unconstrained.
	Decimals int
	Enum     []string
	// Indeterminate admits the -1 sentinel on integer fields (offers
	// without a fixed term).
	Indeterminate bool
	Repeated      bool

	// Get extracts every present value of the field from a record.
	// An empty result means the field is absent.
	Get func(*offer.Offer) []Value
}

// Describe looks a field up by id.
func Describe(id FieldID) (Shape, error) {
	s, ok := byID[id]
	if !ok {
		return Shape{}, ErrUnknownField
	}
	return s, nil
}

// All returns every registered shape in catalog order. The slice is
// shared; callers must not mutate it.
func All() []Shape {
	return registry
}

// BySection returns the shapes belonging to one section, in catalog order.
func BySection(sec offer.Section) []Shape {
	var out []Shape
	for _, s := range registry {
		if s.Section == sec {
			out = append(out, s)
		}
	}
	return out
}

// CheckValue runs the primitive checks of a shape against one value and
// returns a reason code, or "" when the value passes. It never panics:
// an unexpected dynamic type reports type-mismatch.
func CheckValue(s Shape, v any) string {
	switch s.Kind {
	case KindString:
		str, ok := v.(string)
		if !ok {
			return ReasonTypeMismatch
		}
		return checkString(s, str)
	case KindInteger:
		n, ok := asInt(v)
		if !ok {
			return ReasonTypeMismatch
		}
		if s.Indeterminate && n == offer.DurationIndeterminate {
			return ""
		}
		return checkRange(s, float64(n))
	case KindNumber:
		f, ok := asFloat(v)
		if !ok {
			return ReasonTypeMismatch
		}
		if r := checkRange(s, f); r != "" {
			return r
		}
		if s.Decimals >= 0 && decimalDigits(f) > s.Decimals {
			return ReasonTooManyDecimals
		}
		return ""
	case KindBool:
		if _, ok := v.(bool); !ok {
			return ReasonTypeMismatch
		}
		return ""
	case KindTimestamp:
		str, ok := v.(string)
		if !ok {
			return ReasonTypeMismatch
		}
		if _, err := time.Parse(offer.TimestampLayout, str); err != nil {
			return ReasonBadTimestamp
		}
		return ""
	case KindEnum:
		str, ok := v.(string)
		if !ok {
			return ReasonTypeMismatch
		}
		if !inSet(s.Enum, str) {
			return ReasonNotInEnum
		}
		return ""
	case KindEnumList:
		list, ok := v.([]string)
		if !ok {
			return ReasonTypeMismatch
		}
		for _, el := range list {
			if !inSet(s.Enum, el) {
				return ReasonNotInEnum
			}
		}
		return ""
	case KindStringList:
		list, ok := v.([]string)
		if !ok {
			return ReasonTypeMismatch
		}
		for _, el := range list {
			if r := checkString(s, el); r != "" {
				return r
			}
		}
		return ""
	}
	return ReasonTypeMismatch
}

func checkString(s Shape, str string) string {
	n := len([]rune(str))
	if s.MinLen > 0 && n < s.MinLen {
		return ReasonTooShort
	}
	if s.MaxLen > 0 && n > s.MaxLen {
		return ReasonTooLong
	}
	if s.Pattern != "" && !patterns[s.Pattern].MatchString(str) {
		return ReasonBadFormat
	}
	return ""
}

func checkRange(s Shape, f float64) string {
	if s.Min != nil && f < *s.Min {
		return ReasonOutOfRange
	}
	if s.Max != nil && f > *s.Max {
		return ReasonOutOfRange
	}
	return ""
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// decimalDigits counts the digits after the decimal point in the
// shortest representation of f.
func decimalDigits(f float64) int {
	str := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(str, '.'); i >= 0 {
		return len(str) - i - 1
	}
	return 0
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
