package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
)

type formatRequest struct {
	Format string `json:"format" validate:"required,oneof=compact standard banner premium"`
}

// creativeRequest updates only the fields that are present.
type creativeRequest struct {
	Title          *string `json:"title"`
	Body           *string `json:"body"`
	CallToAction   *string `json:"call_to_action"`
	DestinationURL *string `json:"destination_url" validate:"omitempty,max=2048"`
}

type stockImageRequest struct {
	StockID string `json:"stock_id" validate:"required"`
}

type bulkRequest struct {
	Op string `json:"op" validate:"required,oneof=all_tech top_engagement clear"`
}

type presetRequest struct {
	Preset string `json:"preset" validate:"required,oneof=7days 14days 30days ongoing"`
}

type pickRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type scheduleRequest struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

type launchRequest struct {
	Option        string     `json:"option" validate:"required,oneof=now schedule template approval"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	PaymentMethod string     `json:"payment_method" validate:"omitempty,oneof=card paypal invoice"`
}

// decode reads a JSON body into v and validates it. It writes HTTP 400 and
// returns false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid draft id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// apply runs cmd against the draft in the URL and writes the new draft.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, cmd port.Command) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Apply(r.Context(), id, cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newDraftResponse(view))
}

func action(a domain.Action) port.Command {
	return port.ActionCommand{Action: a}
}

func (h *Handler) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.CreateDraft(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/drafts/"+view.Draft.ID.String())
	h.writeJSON(w, http.StatusCreated, newDraftResponse(view))
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetDraft(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newDraftResponse(view))
}

func (h *Handler) handleSetFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, action(domain.SelectFormat{Format: domain.Format(req.Format)}))
}

// handleSetCreative applies all present fields in one update. Texts longer
// than the format allows are cut to the limit.
func (h *Handler) handleSetCreative(w http.ResponseWriter, r *http.Request) {
	var req creativeRequest
	if !h.decode(w, r, &req) {
		return
	}
	var batch domain.Batch
	if req.Title != nil {
		batch = append(batch, domain.SetTitle{Title: *req.Title})
	}
	if req.Body != nil {
		batch = append(batch, domain.SetBody{Body: *req.Body})
	}
	if req.CallToAction != nil {
		batch = append(batch, domain.SetCallToAction{CallToAction: domain.CallToAction(*req.CallToAction)})
	}
	if req.DestinationURL != nil {
		batch = append(batch, domain.SetDestination{URL: *req.DestinationURL})
	}
	h.apply(w, r, action(batch))
}

func (h *Handler) handlePickStockImage(w http.ResponseWriter, r *http.Request) {
	var req stockImageRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, action(domain.PickStockImage{StockID: req.StockID}))
}

func (h *Handler) handleClearImage(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, action(domain.ClearImage{}))
}

func (h *Handler) handleToggleCommunity(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, port.ToggleCommunityCommand{CommunityID: chi.URLParam(r, "cid")})
}

func (h *Handler) handleBulkSelect(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, port.BulkSelectCommand{Op: port.BulkOp(req.Op)})
}

func (h *Handler) handleSchedulePreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.apply(w, r, action(domain.ApplyPreset{Preset: domain.Preset(req.Preset)}))
}

func (h *Handler) handleSchedulePick(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, _ := time.Parse(dateLayout, req.Date)
	h.apply(w, r, action(domain.PickDate{Date: d}))
}

func (h *Handler) handleSetSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !h.decode(w, r, &req) {
		return
	}
	start, _ := time.Parse(dateLayout, req.Start)
	end, _ := time.Parse(dateLayout, req.End)
	h.apply(w, r, action(domain.SetSchedule{Start: start, End: end}))
}

func (h *Handler) handleSetLaunch(w http.ResponseWriter, r *http.Request) {
	var req launchRequest
	if !h.decode(w, r, &req) {
		return
	}
	batch := domain.Batch{domain.SetLaunchOption{Option: domain.LaunchOption(req.Option), ScheduledAt: req.ScheduledAt}}
	if req.PaymentMethod != "" {
		batch = append(batch, domain.SetPaymentMethod{Method: domain.PaymentMethod(req.PaymentMethod)})
	}
	h.apply(w, r, action(batch))
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, action(domain.Next{}))
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, action(domain.Back{}))
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}
	review, err := h.svc.Review(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newReviewResponse(review))
}
