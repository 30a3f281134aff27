package engine

import (
	"fmt"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// Status is the per-field outcome of a validation pass.
type Status int

const (
	StatusOk Status = iota
	StatusMissing
	StatusInvalid
	StatusNotApplicable
)

var statusNames = map[Status]string{
	StatusOk:            "ok",
	StatusMissing:       "missing",
	StatusInvalid:       "invalid",
	StatusNotApplicable: "not-applicable",
}

func (s Status) String() string { return statusNames[s] }

// MarshalJSON renders the status as its wire name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + statusNames[s] + `"`), nil
}

// UnmarshalJSON parses a status from its wire name.
func (s *Status) UnmarshalJSON(b []byte) error {
	name := string(b)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	for v, n := range statusNames {
		if n == name {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", name)
}

// FieldResult is the verdict for one catalog field. Entry is the index
// of the offending list entry when the field aggregates over a repeated
// section, -1 otherwise.
type FieldResult struct {
	Field  catalog.FieldID `json:"field"`
	Status Status          `json:"status"`
	Reason string          `json:"reason,omitempty"`
	Entry  int             `json:"entry"`
}

// SectionSummary aggregates a section's fields. Complete means every
// required-and-applicable field checked out; HasErrors means at least
// one invalid value is present.
type SectionSummary struct {
	Section   offer.Section `json:"section"`
	Complete  bool          `json:"complete"`
	HasErrors bool          `json:"hasErrors"`
}

// Verdict is the total, deterministic result of one validation pass:
// every catalog field in scope appears exactly once.
type Verdict struct {
	Fields   map[catalog.FieldID]FieldResult  `json:"fields"`
	Sections map[offer.Section]SectionSummary `json:"sections"`
}

// Ordered returns the field results in catalog order.
func (v Verdict) Ordered() []FieldResult {
	out := make([]FieldResult, 0, len(v.Fields))
	for _, s := range catalog.All() {
		if r, ok := v.Fields[s.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Clean reports whether the verdict carries no missing or invalid field,
// the precondition for regulatory export.
func (v Verdict) Clean() bool {
	for _, r := range v.Fields {
		if r.Status == StatusMissing || r.Status == StatusInvalid {
			return false
		}
	}
	return true
}
