package domain

import "errors"

// Validation errors returned by the draft reducer. They describe a rejected
// user action; the draft is left as it was.
var (
	ErrInvalidFormat        = errors.New("unknown ad format")
	ErrFormatRequired       = errors.New("ad format must be selected first")
	ErrInvalidCallToAction  = errors.New("unknown call to action")
	ErrInvalidImageType     = errors.New("image must be jpeg or png")
	ErrImageTooLarge        = errors.New("image exceeds size limit")
	ErrUnknownStockImage    = errors.New("unknown stock image")
	ErrInvalidPreset        = errors.New("unknown duration preset")
	ErrInvalidSchedule      = errors.New("end date is before start date")
	ErrInvalidLaunchOption  = errors.New("unknown launch option")
	ErrScheduledAtRequired  = errors.New("scheduled launch needs a date and time")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrStepIncomplete       = errors.New("current step is incomplete")
	ErrNoPreviousStep       = errors.New("no previous step")
	ErrDraftSubmitted       = errors.New("draft already submitted")
	ErrUnknownAction        = errors.New("unknown action")
	ErrCommunityNotSelected = errors.New("community is not selected")
)
