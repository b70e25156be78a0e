package domain

import (
	"fmt"
	"time"
)

// Action is a user intent applied to a Draft by Draft.Apply.
type Action interface {
	apply(Draft) (Draft, error)
}

type (
	// SelectFormat picks the creative template.
	SelectFormat struct{ Format Format }
	// SetTitle replaces the headline.
	SetTitle struct{ Title string }
	// SetBody replaces the body text.
	SetBody struct{ Body string }
	// SetCallToAction replaces the button label.
	SetCallToAction struct{ CallToAction CallToAction }
	// SetDestination replaces the landing URL.
	SetDestination struct{ URL string }
	// SetImage stores an uploaded image.
	SetImage struct{ Image UploadedImage }
	// PickStockImage stores a stock image.
	PickStockImage struct{ StockID string }
	// ClearImage removes the image.
	ClearImage struct{}

	// ToggleCommunity adds or removes one community.
	ToggleCommunity struct{ Community Community }
	// DeselectCommunity removes a selected community by id. It serves
	// communities that have left the catalog.
	DeselectCommunity struct{ ID string }
	// SelectAllTech adds every technology community of Catalog.
	SelectAllTech struct{ Catalog []Community }
	// SelectTopEngagement adds the N most engaged communities of Catalog.
	// N <= 0 selects TopEngagementCount.
	SelectTopEngagement struct {
		Catalog []Community
		N       int
	}
	// ClearSelection empties the selection.
	ClearSelection struct{}

	// ApplyPreset sets a quick duration.
	ApplyPreset struct{ Preset Preset }
	// PickDate is a click on the calendar.
	PickDate struct{ Date time.Time }
	// SetSchedule assigns both dates.
	SetSchedule struct{ Start, End time.Time }

	// SetLaunchOption picks how the campaign goes live.
	SetLaunchOption struct {
		Option      LaunchOption
		ScheduledAt *time.Time
	}
	// SetPaymentMethod picks the payment method.
	SetPaymentMethod struct{ Method PaymentMethod }

	// Next is the Continue button.
	Next struct{}
	// Back is the Back button.
	Back struct{}

	// Batch applies its actions in order and stops at the first error.
	Batch []Action
)

func (b Batch) apply(d Draft) (Draft, error) {
	for _, a := range b {
		var err error
		if d, err = a.apply(d); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (a SelectFormat) apply(d Draft) (Draft, error) {
	c, err := d.Creative.WithFormat(a.Format)
	d.Creative = c
	return d, err
}

func (a SetTitle) apply(d Draft) (Draft, error) {
	c, err := d.Creative.WithTitle(a.Title)
	d.Creative = c
	return d, err
}

func (a SetBody) apply(d Draft) (Draft, error) {
	c, err := d.Creative.WithBody(a.Body)
	d.Creative = c
	return d, err
}

func (a SetCallToAction) apply(d Draft) (Draft, error) {
	c, err := d.Creative.WithCallToAction(a.CallToAction)
	d.Creative = c
	return d, err
}

func (a SetDestination) apply(d Draft) (Draft, error) {
	d.Creative = d.Creative.WithDestination(a.URL)
	return d, nil
}

func (a SetImage) apply(d Draft) (Draft, error) {
	d.Creative = d.Creative.WithImage(a.Image)
	return d, nil
}

func (a PickStockImage) apply(d Draft) (Draft, error) {
	img, err := FindStockImage(a.StockID)
	if err != nil {
		return d, err
	}
	d.Creative = d.Creative.WithStockImage(img)
	return d, nil
}

func (ClearImage) apply(d Draft) (Draft, error) {
	d.Creative = d.Creative.WithoutImage()
	return d, nil
}

func (a ToggleCommunity) apply(d Draft) (Draft, error) {
	d.Selection = d.Selection.Toggle(a.Community)
	return d, nil
}

func (a DeselectCommunity) apply(d Draft) (Draft, error) {
	if !d.Selection.Contains(a.ID) {
		return d, fmt.Errorf("%w: %q", ErrCommunityNotSelected, a.ID)
	}
	d.Selection = d.Selection.Remove(a.ID)
	return d, nil
}

func (a SelectAllTech) apply(d Draft) (Draft, error) {
	d.Selection = d.Selection.SelectAllTech(a.Catalog)
	return d, nil
}

func (a SelectTopEngagement) apply(d Draft) (Draft, error) {
	n := a.N
	if n <= 0 {
		n = TopEngagementCount
	}
	d.Selection = d.Selection.SelectTopEngagement(a.Catalog, n)
	return d, nil
}

func (ClearSelection) apply(d Draft) (Draft, error) {
	d.Selection = Selection{}
	return d, nil
}

func (a ApplyPreset) apply(d Draft) (Draft, error) {
	s, err := d.Schedule.ApplyPreset(a.Preset)
	d.Schedule = s
	return d, err
}

func (a PickDate) apply(d Draft) (Draft, error) {
	d.Schedule = d.Schedule.PickDate(a.Date)
	return d, nil
}

func (a SetSchedule) apply(d Draft) (Draft, error) {
	s, err := d.Schedule.SetRange(a.Start, a.End)
	d.Schedule = s
	return d, err
}

func (a SetLaunchOption) apply(d Draft) (Draft, error) {
	l, err := d.Launch.WithOption(a.Option, a.ScheduledAt)
	d.Launch = l
	return d, err
}

func (a SetPaymentMethod) apply(d Draft) (Draft, error) {
	l, err := d.Launch.WithPaymentMethod(a.Method)
	d.Launch = l
	return d, err
}

func (Next) apply(d Draft) (Draft, error) { return d.next() }

func (Back) apply(d Draft) (Draft, error) { return d.back() }
