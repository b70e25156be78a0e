package domain

// Budget is the cost breakdown of a campaign in cents.
type Budget struct {
	DailyTotal    int64 `json:"daily_total"`
	DurationDays  int64 `json:"duration_days"`
	CampaignTotal int64 `json:"campaign_total"`
}

// NewBudget prices sel over sched.
func NewBudget(sel Selection, sched Schedule) Budget {
	daily := sel.DailyCost()
	days := sched.DurationDays()
	return Budget{DailyTotal: daily, DurationDays: days, CampaignTotal: daily * days}
}

// Impressions per currency unit of campaign budget, and the click rates
// applied to them, in percent.
const (
	impressionsPerUnitLow  = 250
	impressionsPerUnitHigh = 300
	clickRateLowPct        = 2
	clickRateHighPct       = 3
)

// Range is an inclusive estimate.
type Range struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Estimate is the projected performance of a campaign.
type Estimate struct {
	Impressions Range `json:"impressions"`
	Clicks      Range `json:"clicks"`
}

// Estimate projects impressions and clicks for the campaign total. The
// products are taken in cents and rounded down once at the end.
func (b Budget) Estimate() Estimate {
	imp := Range{
		Low:  b.CampaignTotal * impressionsPerUnitLow / 100,
		High: b.CampaignTotal * impressionsPerUnitHigh / 100,
	}
	return Estimate{
		Impressions: imp,
		Clicks: Range{
			Low:  imp.Low * clickRateLowPct / 100,
			High: imp.High * clickRateHighPct / 100,
		},
	}
}
