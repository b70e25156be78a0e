package domain

import (
	"fmt"
	"time"
)

// LaunchOption is how the campaign goes live after review.
type LaunchOption string

const (
	LaunchNow      LaunchOption = "now"
	LaunchSchedule LaunchOption = "schedule"
	LaunchTemplate LaunchOption = "template"
	LaunchApproval LaunchOption = "approval"
)

// Valid reports whether o is a known option.
func (o LaunchOption) Valid() bool {
	switch o {
	case LaunchNow, LaunchSchedule, LaunchTemplate, LaunchApproval:
		return true
	}
	return false
}

// PaymentMethod is the payment choice on the review step. No payment is
// taken.
type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentPayPal  PaymentMethod = "paypal"
	PaymentInvoice PaymentMethod = "invoice"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentInvoice:
		return true
	}
	return false
}

// Launch holds the review step choices. ScheduledAt is only set with
// LaunchSchedule.
type Launch struct {
	Option        LaunchOption  `json:"option"`
	ScheduledAt   *time.Time    `json:"scheduled_at,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// DefaultLaunch launches immediately, paid by card.
func DefaultLaunch() Launch {
	return Launch{Option: LaunchNow, PaymentMethod: PaymentCard}
}

// WithOption selects a launch option. at is required for LaunchSchedule
// and ignored otherwise.
func (l Launch) WithOption(o LaunchOption, at *time.Time) (Launch, error) {
	if !o.Valid() {
		return l, fmt.Errorf("%w: %q", ErrInvalidLaunchOption, o)
	}
	if o == LaunchSchedule {
		if at == nil || at.IsZero() {
			return l, ErrScheduledAtRequired
		}
		t := at.UTC()
		l.ScheduledAt = &t
	} else {
		l.ScheduledAt = nil
	}
	l.Option = o
	return l, nil
}

// WithPaymentMethod selects the payment method.
func (l Launch) WithPaymentMethod(m PaymentMethod) (Launch, error) {
	if !m.Valid() {
		return l, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, m)
	}
	l.PaymentMethod = m
	return l, nil
}
