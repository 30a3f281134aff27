// Package engine evaluates an offer record against the conditional rule
// set and produces a verdict. Evaluation is a pure function of the
// record snapshot: two passes, applicability first, effects second, so
// the verdict cannot depend on rule order.
package engine

import (
	"fmt"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
	"github.com/tate-it/energy-toolbox-sub003/internal/rules"
)

// Scope restricts a validation pass to one section or the whole record.
type Scope struct {
	section offer.Section
	all     bool
}

// FullRecord validates every section, as done once before export.
func FullRecord() Scope { return Scope{all: true} }

// SingleSection validates one section, as done on step navigation.
func SingleSection(sec offer.Section) Scope { return Scope{section: sec} }

func (s Scope) includes(sec offer.Section) bool {
	return s.all || s.section == sec
}

// Engine is a checked rule set ready for evaluation.
type Engine struct {
	set *rules.Set
}

// New builds an engine over the default rule catalog. The static
// self-check runs here: a contradictory or dangling rule set is a build
// defect and fails construction instead of surfacing against user data.
func New() (*Engine, error) {
	return NewWithSet(rules.Default())
}

// NewWithSet builds an engine over a custom rule set, checking it first.
func NewWithSet(set *rules.Set) (*Engine, error) {
	if err := set.Check(); err != nil {
		return nil, fmt.Errorf("rule set rejected: %w", err)
	}
	return &Engine{set: set}, nil
}

// effects accumulates what the triggered rules impose on one field.
type effects struct {
	required  bool
	forbidden bool
	allowed   []string
	restrict  bool
	cardMin   int
	cardMax   int
}

// Validate produces the verdict for a record snapshot. It is total over
// the fields in scope and never fails on user data: malformed values
// come back as invalid statuses.
func (e *Engine) Validate(o *offer.Offer, scope Scope) Verdict {
	if o == nil {
		o = &offer.Offer{}
	}

	applicable := e.applicabilityPass(o)
	imposed := e.effectsPass(o)

	verdict := Verdict{
		Fields:   make(map[catalog.FieldID]FieldResult),
		Sections: make(map[offer.Section]SectionSummary),
	}

	for _, shape := range catalog.All() {
		if !scope.includes(shape.Section) {
			continue
		}
		verdict.Fields[shape.ID] = checkField(o, shape, applicable[shape.ID], imposed[shape.ID])
	}

	e.applyEntryChecks(o, scope, applicable, verdict.Fields)
	summarize(&verdict, scope)
	return verdict
}

func (e *Engine) applicabilityPass(o *offer.Offer) map[catalog.FieldID]bool {
	applicable := make(map[catalog.FieldID]bool, len(catalog.All()))
	for _, shape := range catalog.All() {
		applicable[shape.ID] = true
	}
	for _, a := range e.set.Applicability {
		if a.When.Holds(o) {
			continue
		}
		if a.Section != "" {
			for _, shape := range catalog.BySection(a.Section) {
				applicable[shape.ID] = false
			}
		}
		for _, f := range a.Fields {
			applicable[f] = false
		}
	}
	return applicable
}

func (e *Engine) effectsPass(o *offer.Offer) map[catalog.FieldID]effects {
	imposed := make(map[catalog.FieldID]effects)
	for _, r := range e.set.Rules {
		if !r.When.Holds(o) {
			continue
		}
		for _, target := range r.Targets {
			eff := imposed[target]
			switch r.Effect.Kind {
			case rules.Required:
				eff.required = true
			case rules.Forbidden:
				eff.forbidden = true
			case rules.RestrictedTo:
				if eff.restrict {
					eff.allowed = intersect(eff.allowed, r.Effect.Allowed)
				} else {
					eff.restrict = true
					eff.allowed = r.Effect.Allowed
				}
			case rules.Cardinality:
				if r.Effect.Min > eff.cardMin {
					eff.cardMin = r.Effect.Min
				}
				if r.Effect.Max > 0 && (eff.cardMax == 0 || r.Effect.Max < eff.cardMax) {
					eff.cardMax = r.Effect.Max
				}
			}
			imposed[target] = eff
		}
	}
	return imposed
}

func checkField(o *offer.Offer, shape catalog.Shape, applicable bool, eff effects) FieldResult {
	vals := shape.Get(o)
	present := len(vals) > 0

	if !applicable {
		if present {
			return FieldResult{Field: shape.ID, Status: StatusInvalid,
				Reason: catalog.ReasonNotApplicable, Entry: vals[0].Entry}
		}
		return FieldResult{Field: shape.ID, Status: StatusNotApplicable, Entry: -1}
	}

	for _, v := range vals {
		if reason := catalog.CheckValue(shape, v.V); reason != "" {
			return FieldResult{Field: shape.ID, Status: StatusInvalid, Reason: reason, Entry: v.Entry}
		}
	}

	if eff.restrict {
		for _, v := range vals {
			for _, s := range valueStrings(v) {
				if !contains(eff.allowed, s) {
					return FieldResult{Field: shape.ID, Status: StatusInvalid,
						Reason: catalog.ReasonNotAllowed, Entry: v.Entry}
				}
			}
		}
	}

	if eff.forbidden && present {
		return FieldResult{Field: shape.ID, Status: StatusInvalid,
			Reason: catalog.ReasonForbidden, Entry: vals[0].Entry}
	}

	if eff.required && !present {
		return FieldResult{Field: shape.ID, Status: StatusMissing, Entry: -1}
	}

	if eff.cardMin > 0 || eff.cardMax > 0 {
		n := occurrences(vals)
		switch {
		case n == 0 && eff.cardMin > 0:
			return FieldResult{Field: shape.ID, Status: StatusMissing, Entry: -1}
		case n < eff.cardMin:
			return FieldResult{Field: shape.ID, Status: StatusInvalid,
				Reason: catalog.ReasonCardinality, Entry: -1}
		case eff.cardMax > 0 && n > eff.cardMax:
			return FieldResult{Field: shape.ID, Status: StatusInvalid,
				Reason: catalog.ReasonCardinality, Entry: -1}
		}
	}

	return FieldResult{Field: shape.ID, Status: StatusOk, Entry: -1}
}

func (e *Engine) applyEntryChecks(o *offer.Offer, scope Scope, applicable map[catalog.FieldID]bool, results map[catalog.FieldID]FieldResult) {
	for _, check := range e.set.EntryChecks {
		if !scope.includes(check.Section) || !sectionApplicable(e.set, o, check.Section) {
			continue
		}
		for _, f := range check.Run(o) {
			if !applicable[f.Field] {
				continue
			}
			current, ok := results[f.Field]
			if !ok {
				continue
			}
			merged := mergeFinding(current, f)
			results[f.Field] = merged
		}
	}
}

// mergeFinding folds an entry finding into the generic result for the
// same field. Invalid beats missing beats ok; an already-invalid result
// stands.
func mergeFinding(current FieldResult, f rules.Finding) FieldResult {
	if current.Status == StatusInvalid {
		return current
	}
	switch f.Status {
	case rules.FindingInvalid:
		current.Status = StatusInvalid
		current.Reason = f.Reason
		current.Entry = f.Entry
	case rules.FindingMissing:
		if current.Status == StatusOk {
			current.Status = StatusMissing
			current.Reason = ""
			current.Entry = f.Entry
		}
	}
	return current
}

func sectionApplicable(set *rules.Set, o *offer.Offer, sec offer.Section) bool {
	for _, a := range set.Applicability {
		if a.Section == sec && !a.When.Holds(o) {
			return false
		}
	}
	return true
}

func summarize(v *Verdict, scope Scope) {
	for _, sec := range offer.Sections {
		if !scope.includes(sec) {
			continue
		}
		summary := SectionSummary{Section: sec, Complete: true}
		for _, shape := range catalog.BySection(sec) {
			r := v.Fields[shape.ID]
			if r.Status == StatusInvalid {
				summary.HasErrors = true
				summary.Complete = false
			}
			if r.Status == StatusMissing {
				summary.Complete = false
			}
		}
		v.Sections[sec] = summary
	}
}

func valueStrings(v catalog.Value) []string {
	switch x := v.V.(type) {
	case string:
		return []string{x}
	case []string:
		return x
	}
	return nil
}

// occurrences counts how many values a field holds, flattening
// list-valued fields to their elements.
func occurrences(vals []catalog.Value) int {
	n := 0
	for _, v := range vals {
		if list, ok := v.V.([]string); ok {
			n += len(list)
		} else {
			n++
		}
	}
	return n
}

func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
