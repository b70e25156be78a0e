package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudget(t *testing.T) {
	a := community("A", "A", CategoryLocal, 1000, 100, 10, 3)
	b := community("B", "B", CategoryLocal, 2500, 200, 20, 3)
	sched := DefaultSchedule(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))

	got := NewBudget(Selection{a, b}, sched)
	assert.Equal(t, Budget{DailyTotal: 3500, DurationDays: 7, CampaignTotal: 24500}, got)
}

func TestBudgetEstimate(t *testing.T) {
	est := Budget{CampaignTotal: 24500}.Estimate()
	assert.Equal(t, Range{Low: 245 * 250, High: 245 * 300}, est.Impressions)
	assert.Equal(t, Range{Low: 1225, High: 2205}, est.Clicks)

	assert.Equal(t, Estimate{}, Budget{}.Estimate())
}

func TestBudgetEstimateKeepsCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  Estimate
	}{
		{3550, Estimate{Impressions: Range{Low: 8875, High: 10650}, Clicks: Range{Low: 177, High: 319}}},
		{199, Estimate{Impressions: Range{Low: 497, High: 597}, Clicks: Range{Low: 9, High: 17}}},
		{1, Estimate{Impressions: Range{Low: 2, High: 3}, Clicks: Range{Low: 0, High: 0}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Budget{CampaignTotal: tt.cents}.Estimate(), tt.cents)
	}
}
