// Package wizard maps the eighteen wizard step identifiers onto
// validation scopes and answers whether the user may leave a step.
package wizard

import (
	"errors"
	"fmt"

	"github.com/tate-it/energy-toolbox-sub003/internal/catalog"
	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
)

// ErrUnknownStep is returned for a step id outside 1..18.
var ErrUnknownStep = errors.New("unknown step")

// Step is a 1-based wizard step identifier.
type Step int

// StepCount is the number of wizard steps.
const StepCount = 18

// SectionFor resolves a step to the section it edits.
func SectionFor(s Step) (offer.Section, error) {
	if s < 1 || s > StepCount {
		return "", fmt.Errorf("%w: %d", ErrUnknownStep, int(s))
	}
	return offer.Sections[s-1], nil
}

// Gate is the answer to "may the user advance past this step".
// Blocking errors are missing-when-required or invalid values; stale
// values on fields no longer applicable only warn.
type Gate struct {
	Step           Step                 `json:"step"`
	Section        offer.Section        `json:"section"`
	Allowed        bool                 `json:"allowed"`
	BlockingErrors []engine.FieldResult `json:"blockingErrors"`
	Warnings       []engine.FieldResult `json:"warnings"`
}

// CanAdvance validates the step's section against the current snapshot
// and decides whether navigation forward is allowed. Untouched optional
// sections carry no required fields, so they never block.
func CanAdvance(e *engine.Engine, o *offer.Offer, s Step) (Gate, error) {
	sec, err := SectionFor(s)
	if err != nil {
		return Gate{}, err
	}
	verdict := e.Validate(o, engine.SingleSection(sec))

	gate := Gate{Step: s, Section: sec, Allowed: true}
	for _, r := range verdict.Ordered() {
		switch {
		case r.Status == engine.StatusMissing:
			gate.BlockingErrors = append(gate.BlockingErrors, r)
		case r.Status == engine.StatusInvalid &&
			(r.Reason == catalog.ReasonNotApplicable || r.Reason == catalog.ReasonForbidden):
			// Stale input left over from an earlier selection; surfaced
			// so the UI can suggest clearing it, but navigation stays open.
			gate.Warnings = append(gate.Warnings, r)
		case r.Status == engine.StatusInvalid:
			gate.BlockingErrors = append(gate.BlockingErrors, r)
		}
	}
	gate.Allowed = len(gate.BlockingErrors) == 0
	return gate, nil
}
