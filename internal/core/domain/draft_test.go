package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.September, 2, 9, 0, 0, 0, time.UTC)

func apply(t *testing.T, d Draft, actions ...Action) Draft {
	t.Helper()
	for _, a := range actions {
		var err error
		d, err = d.Apply(a, now)
		require.NoError(t, err)
	}
	return d
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(uuid.New(), now)
	assert.Equal(t, StepFormat, d.Step)
	assert.Equal(t, FormatNone, d.Format())
	assert.Empty(t, d.Selection)
	assert.Equal(t, int64(7), d.Schedule.DurationDays())
	assert.Equal(t, LaunchNow, d.Launch.Option)
	assert.Equal(t, PaymentCard, d.Launch.PaymentMethod)
	assert.Nil(t, d.SubmittedAt)
}

func TestNextIsDisabledUntilFormatSelected(t *testing.T) {
	d := NewDraft(uuid.New(), now)
	assert.False(t, d.CanAdvance())

	_, err := d.Apply(Next{}, now)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	d = apply(t, d, SelectFormat{Format: FormatStandard})
	assert.True(t, d.CanAdvance())
}

func TestWizardGuards(t *testing.T) {
	catalog := testCatalog()
	d := apply(t, NewDraft(uuid.New(), now), SelectFormat{Format: FormatCompact}, Next{})
	require.Equal(t, StepCreative, d.Step)

	d = apply(t, d, SetTitle{Title: "Grand opening"}, SetBody{Body: "Come visit"})
	assert.False(t, d.CanAdvance(), "destination missing")
	d = apply(t, d, SetDestination{URL: "https://shop.example"}, Next{})
	require.Equal(t, StepTargeting, d.Step)

	assert.False(t, d.CanAdvance())
	d = apply(t, d, ToggleCommunity{Community: catalog[0]})
	assert.True(t, d.CanAdvance())
	d = apply(t, d, Next{})
	require.Equal(t, StepSchedule, d.Step)

	assert.True(t, d.CanAdvance())
	d = apply(t, d, Next{})
	require.Equal(t, StepReview, d.Step)
	assert.True(t, d.CanAdvance())

	d = apply(t, d, Next{})
	assert.Equal(t, StepSubmitted, d.Step)
	require.NotNil(t, d.SubmittedAt)
	assert.Equal(t, now, *d.SubmittedAt)
	assert.False(t, d.CanAdvance())

	_, err := d.Apply(Back{}, now)
	assert.ErrorIs(t, err, ErrDraftSubmitted)
	_, err = d.Apply(SetTitle{Title: "late"}, now)
	assert.ErrorIs(t, err, ErrDraftSubmitted)
}

func TestBackKeepsData(t *testing.T) {
	catalog := testCatalog()
	d := apply(t, NewDraft(uuid.New(), now),
		SelectFormat{Format: FormatPremium}, Next{},
		SetTitle{Title: "Title"}, SetBody{Body: "Body"}, SetDestination{URL: "https://x.example"}, Next{},
		SelectAllTech{Catalog: catalog}, Next{},
		ApplyPreset{Preset: Preset30Days},
	)
	require.Equal(t, StepSchedule, d.Step)

	back := apply(t, d, Back{}, Back{}, Back{})
	assert.Equal(t, StepFormat, back.Step)
	if diff := cmp.Diff(d.Creative, back.Creative); diff != "" {
		t.Errorf("creative changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, d.Selection.IDs(), back.Selection.IDs())
	assert.Equal(t, d.Schedule, back.Schedule)

	_, err := back.Apply(Back{}, now)
	assert.ErrorIs(t, err, ErrNoPreviousStep)
}

func TestApplyDoesNotModifyReceiver(t *testing.T) {
	catalog := testCatalog()
	d := apply(t, NewDraft(uuid.New(), now), SelectFormat{Format: FormatStandard}, ToggleCommunity{Community: catalog[0]})
	snapshot := d
	snapshot.Selection = append(Selection(nil), d.Selection...)

	_ = apply(t, d, ToggleCommunity{Community: catalog[1]}, SetTitle{Title: "changed"}, ApplyPreset{Preset: PresetOngoing})
	if diff := cmp.Diff(snapshot, d); diff != "" {
		t.Errorf("receiver modified (-want +got):\n%s", diff)
	}
}

func TestApplyErrorReturnsOriginal(t *testing.T) {
	d := apply(t, NewDraft(uuid.New(), now), SelectFormat{Format: FormatBanner})
	got, err := d.Apply(Batch{SetTitle{Title: "ok"}, SetCallToAction{CallToAction: "nope"}}, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidCallToAction)
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("draft changed on error (-want +got):\n%s", diff)
	}
}

func TestDraftBudgetScenario(t *testing.T) {
	a := community("A", "A", CategoryLocal, 1000, 100, 10, 3)
	b := community("B", "B", CategoryLocal, 2500, 200, 20, 3)
	d := apply(t, NewDraft(uuid.New(), now), ToggleCommunity{Community: a}, ToggleCommunity{Community: b}, ApplyPreset{Preset: Preset7Days})

	budget := d.Budget()
	assert.Equal(t, int64(3500), budget.DailyTotal)
	assert.Equal(t, int64(7), budget.DurationDays)
	assert.Equal(t, int64(24500), budget.CampaignTotal)
}

func TestLaunchOptions(t *testing.T) {
	d := NewDraft(uuid.New(), now)

	_, err := d.Apply(SetLaunchOption{Option: LaunchSchedule}, now)
	assert.ErrorIs(t, err, ErrScheduledAtRequired)

	at := now.Add(48 * time.Hour)
	d = apply(t, d, SetLaunchOption{Option: LaunchSchedule, ScheduledAt: &at}, SetPaymentMethod{Method: PaymentInvoice})
	require.NotNil(t, d.Launch.ScheduledAt)
	assert.Equal(t, at, *d.Launch.ScheduledAt)
	assert.Equal(t, PaymentInvoice, d.Launch.PaymentMethod)

	d = apply(t, d, SetLaunchOption{Option: LaunchApproval})
	assert.Nil(t, d.Launch.ScheduledAt)

	_, err = d.Apply(SetLaunchOption{Option: "later"}, now)
	assert.ErrorIs(t, err, ErrInvalidLaunchOption)
	_, err = d.Apply(SetPaymentMethod{Method: "cash"}, now)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestReview(t *testing.T) {
	catalog := testCatalog()
	d := apply(t, NewDraft(uuid.New(), now), SelectFormat{Format: FormatStandard}, ToggleCommunity{Community: catalog[0]}, ToggleCommunity{Community: catalog[2]})

	r := d.Review()
	assert.Equal(t, int64(12000+40000), r.Reach)
	assert.Equal(t, int64(1500+5200), r.ActiveAudience)
	assert.Equal(t, Budget{DailyTotal: 2500, DurationDays: 7, CampaignTotal: 17500}, r.Budget)
	assert.Equal(t, Range{Low: 175 * 250, High: 175 * 300}, r.Estimate.Impressions)
	assert.Equal(t, FormatStandard.Limits(), r.Limits)
}

func TestDraftJSONRoundTrip(t *testing.T) {
	catalog := testCatalog()
	at := now.Add(time.Hour)
	d := apply(t, NewDraft(uuid.New(), now),
		SelectFormat{Format: FormatCompact}, Next{},
		SetTitle{Title: "T"}, SetBody{Body: "B"}, SetDestination{URL: "https://x.example"},
		PickStockImage{StockID: "coffee-shop"},
		SelectTopEngagement{Catalog: catalog, N: 2},
		PickDate{Date: now.AddDate(0, 0, 3)},
		SetLaunchOption{Option: LaunchSchedule, ScheduledAt: &at},
	)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	var got Draft
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestDeselectCommunity(t *testing.T) {
	catalog := testCatalog()
	d := apply(t, NewDraft(uuid.New(), now),
		ToggleCommunity{Community: catalog[0]},
		ToggleCommunity{Community: catalog[1]},
		ToggleCommunity{Community: catalog[2]},
	)

	d = apply(t, d, DeselectCommunity{ID: "b"})
	assert.Equal(t, []string{"a", "c"}, d.Selection.IDs())

	got, err := d.Apply(DeselectCommunity{ID: "b"}, now)
	assert.ErrorIs(t, err, ErrCommunityNotSelected)
	assert.Equal(t, d, got)
}
