// Package rules declares every cross-field dependency of the offer
// record as data: applicability rules (is a field relevant at all given
// the top-level choices), effect rules (required / forbidden /
// restricted / cardinality) and entry checks for repeated sections.
// A single generic engine (internal/engine) evaluates the set, so the
// same verdict comes out regardless of which wizard step asked.
package rules

import (
	"errors"
	"fmt"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// ErrInconsistentRuleSet reports two rules giving conflicting
// required/forbidden verdicts for the same field under triggers that can
// hold at the same time. This is an authoring defect caught by Check at
// startup, never at validation time.
var ErrInconsistentRuleSet = errors.New("inconsistent rule set")

// CondOp compares one field of the record against a constant.
type CondOp int

const (
	OpEq CondOp = iota
	OpNotEq
	OpIn
	OpNotIn
	OpPresent
	OpAbsent
	OpContains
	OpNotContains
)

// Cond is one atomic condition over a record field. Comparisons read
// the field through the catalog accessor; multi-valued fields flatten
// to their element strings.
type Cond struct {
	Field  catalog.FieldID
	Op     CondOp
	Values []string
}

// Trigger is a conjunction of conditions. An empty trigger always holds.
type Trigger []Cond

// EffectKind is the tagged variant of a rule effect.
type EffectKind int

const (
	Required EffectKind = iota
	Forbidden
	RestrictedTo
	Cardinality
)

// Effect is what a rule imposes on its targets once triggered.
type Effect struct {
	Kind    EffectKind
	Allowed []string // RestrictedTo; intersected across rules
	Min     int      // Cardinality; 0 = no lower bound
	Max     int      // Cardinality; 0 = no upper bound
}

// Rule binds a trigger to an effect on one or more target fields.
type Rule struct {
	ID      string
	When    Trigger
	Targets []catalog.FieldID
	Effect  Effect
}

// Applicability marks a section or a set of fields as relevant only
// while its trigger holds. Targets without any applicability rule are
// always relevant; several rules on the same target conjoin.
type Applicability struct {
	ID      string
	Section offer.Section
	Fields  []catalog.FieldID
	When    Trigger
}

// FindingStatus is the outcome an entry check assigns to a field.
type FindingStatus int

const (
	FindingMissing FindingStatus = iota
	FindingInvalid
)

// Finding is one problem located inside a repeated-section entry.
type Finding struct {
	Field  catalog.FieldID
	Entry  int
	Status FindingStatus
	Reason string
}

// EntryCheck validates the internal consistency of the entries of one
// section: paired other-description fields, interval cardinality, date
// cutoffs. Checks only run while their section is applicable.
type EntryCheck struct {
	ID      string
	Section offer.Section
	Run     func(*offer.Offer) []Finding
}

// Set is a complete rule catalog.
type Set struct {
	Applicability []Applicability
	Rules         []Rule
	EntryChecks   []EntryCheck
}

// Holds evaluates a trigger against a record snapshot.
func (t Trigger) Holds(o *offer.Offer) bool {
	for _, c := range t {
		if !c.holds(o) {
			return false
		}
	}
	return true
}

func (c Cond) holds(o *offer.Offer) bool {
	vals := fieldStrings(o, c.Field)
	switch c.Op {
	case OpEq:
		return len(vals) == 1 && vals[0] == c.Values[0]
	case OpNotEq:
		return len(vals) != 1 || vals[0] != c.Values[0]
	case OpIn:
		return len(vals) == 1 && inSet(c.Values, vals[0])
	case OpNotIn:
		return len(vals) != 1 || !inSet(c.Values, vals[0])
	case OpPresent:
		return len(vals) > 0
	case OpAbsent:
		return len(vals) == 0
	case OpContains:
		for _, v := range vals {
			if inSet(c.Values, v) {
				return true
			}
		}
		return false
	case OpNotContains:
		for _, v := range vals {
			if inSet(c.Values, v) {
				return false
			}
		}
		return true
	}
	return false
}

// fieldStrings flattens the present values of a field to strings.
// Non-string values never participate in triggers.
func fieldStrings(o *offer.Offer, id catalog.FieldID) []string {
	shape, err := catalog.Describe(id)
	if err != nil {
		return nil
	}
	var out []string
	for _, v := range shape.Get(o) {
		switch x := v.V.(type) {
		case string:
			out = append(out, x)
		case []string:
			out = append(out, x...)
		}
	}
	return out
}

// Check verifies the set against the catalog: every referenced field
// must exist, and no two rules may impose required and forbidden on a
// shared target under triggers that can overlap. Restriction rules are
// exempt because their effects intersect.
func (s *Set) Check() error {
	for _, a := range s.Applicability {
		if err := checkFields(a.ID, a.Fields, a.When); err != nil {
			return err
		}
	}
	for _, r := range s.Rules {
		if err := checkFields(r.ID, r.Targets, r.When); err != nil {
			return err
		}
	}
	for i, r1 := range s.Rules {
		for _, r2 := range s.Rules[i+1:] {
			if !conflictingKinds(r1.Effect.Kind, r2.Effect.Kind) {
				continue
			}
			for _, t1 := range r1.Targets {
				for _, t2 := range r2.Targets {
					if t1 == t2 && overlap(r1.When, r2.When) {
						return fmt.Errorf("%w: %q and %q disagree on %s",
							ErrInconsistentRuleSet, r1.ID, r2.ID, t1)
					}
				}
			}
		}
	}
	return nil
}

func checkFields(ruleID string, fields []catalog.FieldID, when Trigger) error {
	for _, f := range fields {
		if _, err := catalog.Describe(f); err != nil {
			return fmt.Errorf("rule %q: target %s: %w", ruleID, f, err)
		}
	}
	for _, c := range when {
		if _, err := catalog.Describe(c.Field); err != nil {
			return fmt.Errorf("rule %q: condition on %s: %w", ruleID, c.Field, err)
		}
	}
	return nil
}

func conflictingKinds(a, b EffectKind) bool {
	return (a == Required && b == Forbidden) || (a == Forbidden && b == Required)
}

// overlap reports whether two triggers can hold on the same record.
// Conjunctions overlap unless some field carries contradictory atoms.
func overlap(a, b Trigger) bool {
	for _, ca := range a {
		for _, cb := range b {
			if ca.Field == cb.Field && contradict(ca, cb) {
				return false
			}
		}
	}
	return true
}

func contradict(a, b Cond) bool {
	if contradictOrdered(a, b) || contradictOrdered(b, a) {
		return true
	}
	return false
}

func contradictOrdered(a, b Cond) bool {
	switch a.Op {
	case OpEq:
		switch b.Op {
		case OpEq:
			return a.Values[0] != b.Values[0]
		case OpNotEq:
			return a.Values[0] == b.Values[0]
		case OpIn:
			return !inSet(b.Values, a.Values[0])
		case OpNotIn:
			return inSet(b.Values, a.Values[0])
		case OpAbsent:
			return true
		}
	case OpIn:
		if b.Op == OpIn {
			return disjoint(a.Values, b.Values)
		}
		if b.Op == OpAbsent {
			return true
		}
	case OpPresent:
		return b.Op == OpAbsent
	case OpContains:
		if b.Op == OpNotContains {
			// NotContains rejects any record whose field holds one of
			// its values; Contains demands one. Contradiction only when
			// Contains' whole value set is rejected.
			return subset(a.Values, b.Values)
		}
	}
	return false
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func disjoint(a, b []string) bool {
	for _, v := range a {
		if inSet(b, v) {
			return false
		}
	}
	return true
}

func subset(a, b []string) bool {
	for _, v := range a {
		if !inSet(b, v) {
			return false
		}
	}
	return true
}

// Condition constructors used by the rule table.

func eq(f catalog.FieldID, v string) Cond       { return Cond{Field: f, Op: OpEq, Values: []string{v}} }
func notEq(f catalog.FieldID, v string) Cond    { return Cond{Field: f, Op: OpNotEq, Values: []string{v}} }
func in(f catalog.FieldID, vs ...string) Cond   { return Cond{Field: f, Op: OpIn, Values: vs} }
func contains(f catalog.FieldID, v string) Cond { return Cond{Field: f, Op: OpContains, Values: []string{v}} }
func lacks(f catalog.FieldID, v string) Cond {
	return Cond{Field: f, Op: OpNotContains, Values: []string{v}}
}
