package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a campaign being built in the wizard. A draft is never changed
// in place: Apply returns the next version.
type Draft struct {
	ID          uuid.UUID  `json:"id"`
	Step        Step       `json:"step"`
	Creative    Creative   `json:"creative"`
	Selection   Selection  `json:"selection"`
	Schedule    Schedule   `json:"schedule"`
	Launch      Launch     `json:"launch"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// NewDraft returns a draft on the first step with no format, an empty
// creative and selection, and a seven day schedule starting on now's date.
func NewDraft(id uuid.UUID, now time.Time) Draft {
	now = now.UTC()
	return Draft{
		ID:        id,
		Step:      StepFormat,
		Creative:  NewCreative(),
		Selection: Selection{},
		Schedule:  DefaultSchedule(now),
		Launch:    DefaultLaunch(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Format is the chosen creative template.
func (d Draft) Format() Format { return d.Creative.Format }

// Submitted reports whether the wizard has finished.
func (d Draft) Submitted() bool { return d.Step == StepSubmitted }

// Budget prices the current selection over the current schedule.
func (d Draft) Budget() Budget { return NewBudget(d.Selection, d.Schedule) }

// Apply runs a on the draft and returns the result. On error the receiver
// is returned unchanged together with the error.
func (d Draft) Apply(a Action, now time.Time) (Draft, error) {
	if d.Submitted() {
		return d, ErrDraftSubmitted
	}
	next := d
	next.UpdatedAt = now.UTC()
	next, err := a.apply(next)
	if err != nil {
		return d, err
	}
	return next, nil
}
