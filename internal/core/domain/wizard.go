package domain

import (
	"encoding/json"
	"fmt"
)

// Step is a state of the campaign wizard.
type Step int

const (
	StepFormat    Step = iota + 1 // 1
	StepCreative                  // 2
	StepTargeting                 // 3
	StepSchedule                  // 4
	StepReview                    // 5
	StepSubmitted                 // terminal
)

var stepNames = map[Step]string{
	StepFormat:    "format",
	StepCreative:  "creative",
	StepTargeting: "targeting",
	StepSchedule:  "schedule",
	StepReview:    "review",
	StepSubmitted: "submitted",
}

var stepLabels = map[Step]string{
	StepFormat:    "Choose Format",
	StepCreative:  "Create Ad",
	StepTargeting: "Select Communities",
	StepSchedule:  "Schedule & Budget",
	StepReview:    "Review & Launch",
	StepSubmitted: "Submitted",
}

// String returns the machine name of the step.
func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Label returns the title shown in the progress indicator.
func (s Step) Label() string { return stepLabels[s] }

// Number is the 1-based position of the step in the wizard.
func (s Step) Number() int { return int(s) }

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Step) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for k, v := range stepNames {
		if v == name {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown wizard step %q", name)
}

// guards decide whether the wizard may leave a step forwards.
var guards = map[Step]func(Draft) bool{
	StepFormat:    func(d Draft) bool { return d.Creative.Format.Valid() },
	StepCreative:  func(d Draft) bool { return d.Creative.Complete() },
	StepTargeting: func(d Draft) bool { return len(d.Selection) > 0 },
	StepSchedule:  func(Draft) bool { return true },
	StepReview:    func(Draft) bool { return true },
}

// CanAdvance reports whether Continue is enabled for the draft's current
// step.
func (d Draft) CanAdvance() bool {
	g, ok := guards[d.Step]
	return ok && g(d)
}

func (d Draft) next() (Draft, error) {
	if d.Step == StepSubmitted {
		return d, ErrDraftSubmitted
	}
	if !d.CanAdvance() {
		return d, fmt.Errorf("%w: %s", ErrStepIncomplete, d.Step)
	}
	d.Step++
	if d.Step == StepSubmitted {
		at := d.UpdatedAt
		d.SubmittedAt = &at
	}
	return d, nil
}

func (d Draft) back() (Draft, error) {
	switch d.Step {
	case StepSubmitted:
		return d, ErrDraftSubmitted
	case StepFormat:
		return d, ErrNoPreviousStep
	}
	d.Step--
	return d, nil
}
