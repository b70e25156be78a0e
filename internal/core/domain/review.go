package domain

// Review is the read-only summary shown on the last wizard step.
type Review struct {
	Format         Format    `json:"format"`
	Limits         Limits    `json:"limits"`
	Creative       Creative  `json:"creative"`
	Communities    Selection `json:"communities"`
	Schedule       Schedule  `json:"schedule"`
	Budget         Budget    `json:"budget"`
	Reach          int64     `json:"reach"`
	ActiveAudience int64     `json:"active_audience"`
	Estimate       Estimate  `json:"estimate"`
	Launch         Launch    `json:"launch"`
}

// Review summarises the draft.
func (d Draft) Review() Review {
	b := d.Budget()
	return Review{
		Format:         d.Creative.Format,
		Limits:         d.Creative.Format.Limits(),
		Creative:       d.Creative,
		Communities:    d.Selection,
		Schedule:       d.Schedule,
		Budget:         b,
		Reach:          d.Selection.Reach(),
		ActiveAudience: d.Selection.ActiveAudience(),
		Estimate:       b.Estimate(),
		Launch:         d.Launch,
	}
}
