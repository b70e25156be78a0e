package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
	"community-ads/internal/present"
)

const dateLayout = "2006-01-02"

type scheduleResponse struct {
	Start        string        `json:"start"`
	End          string        `json:"end"`
	DurationDays int64         `json:"duration_days"`
	Preset       domain.Preset `json:"preset,omitempty"`
	RangeOpen    bool          `json:"range_open"`
}

func newScheduleResponse(s domain.Schedule) scheduleResponse {
	return scheduleResponse{
		Start:        s.Start.Format(dateLayout),
		End:          s.End.Format(dateLayout),
		DurationDays: s.DurationDays(),
		Preset:       s.Preset,
		RangeOpen:    s.RangeOpen,
	}
}

type draftResponse struct {
	ID             string             `json:"id"`
	Step           string             `json:"step"`
	StepNumber     int                `json:"step_number"`
	StepLabel      string             `json:"step_label"`
	CanAdvance     bool               `json:"can_advance"`
	Format         domain.Format      `json:"format"`
	Limits         domain.Limits      `json:"limits"`
	Creative       domain.Creative    `json:"creative"`
	Communities    []domain.Community `json:"communities"`
	Schedule       scheduleResponse   `json:"schedule"`
	Launch         domain.Launch      `json:"launch"`
	Budget         domain.Budget      `json:"budget"`
	Reach          int64              `json:"reach"`
	ActiveAudience int64              `json:"active_audience"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	SubmittedAt    *time.Time         `json:"submitted_at,omitempty"`
}

func newDraftResponse(v *port.DraftView) draftResponse {
	d := v.Draft
	communities := []domain.Community(d.Selection)
	if communities == nil {
		communities = []domain.Community{}
	}
	return draftResponse{
		ID:             d.ID.String(),
		Step:           d.Step.String(),
		StepNumber:     d.Step.Number(),
		StepLabel:      d.Step.Label(),
		CanAdvance:     v.CanAdvance,
		Format:         d.Format(),
		Limits:         v.Limits,
		Creative:       d.Creative,
		Communities:    communities,
		Schedule:       newScheduleResponse(d.Schedule),
		Launch:         d.Launch,
		Budget:         v.Budget,
		Reach:          v.Reach,
		ActiveAudience: v.ActiveAudience,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		SubmittedAt:    d.SubmittedAt,
	}
}

type reviewDisplay struct {
	DailyTotal     string `json:"daily_total"`
	CampaignTotal  string `json:"campaign_total"`
	Reach          string `json:"reach"`
	ActiveAudience string `json:"active_audience"`
	Impressions    string `json:"impressions"`
	Clicks         string `json:"clicks"`
}

type reviewResponse struct {
	domain.Review
	Schedule scheduleResponse `json:"schedule"`
	Display  reviewDisplay    `json:"display"`
}

func newReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		Review:   *r,
		Schedule: newScheduleResponse(r.Schedule),
		Display: reviewDisplay{
			DailyTotal:     present.Currency(r.Budget.DailyTotal),
			CampaignTotal:  present.Currency(r.Budget.CampaignTotal),
			Reach:          present.Compact(r.Reach),
			ActiveAudience: present.Compact(r.ActiveAudience),
			Impressions:    present.Count(r.Estimate.Impressions.Low) + " - " + present.Count(r.Estimate.Impressions.High),
			Clicks:         present.Count(r.Estimate.Clicks.Low) + " - " + present.Count(r.Estimate.Clicks.High),
		},
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Only unexpected
// errors are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrDraftNotFound), errors.Is(err, port.ErrCommunityNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDraftSubmitted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case isValidationError(err):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("request error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

var validationErrors = []error{
	domain.ErrInvalidFormat,
	domain.ErrFormatRequired,
	domain.ErrInvalidCallToAction,
	domain.ErrInvalidImageType,
	domain.ErrImageTooLarge,
	domain.ErrUnknownStockImage,
	domain.ErrInvalidPreset,
	domain.ErrInvalidSchedule,
	domain.ErrInvalidLaunchOption,
	domain.ErrScheduledAtRequired,
	domain.ErrInvalidPaymentMethod,
	domain.ErrStepIncomplete,
	domain.ErrNoPreviousStep,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
