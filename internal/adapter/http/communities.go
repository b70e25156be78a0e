package httpadapter

import (
	"net/http"
	"strconv"

	"community-ads/internal/core/domain"
)

// handleSearchCommunities filters the catalog. It accepts optional `q`,
// `category`, `size`, `engagement`, `min_price` and `max_price` (cents)
// query parameters. Unknown enum values or malformed prices result in
// HTTP 400.
func (h *Handler) handleSearchCommunities(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f = domain.CommunityFilter{
			Query:      q.Get("q"),
			Category:   domain.Category(q.Get("category")),
			Size:       domain.Size(q.Get("size")),
			Engagement: domain.Engagement(q.Get("engagement")),
		}
		err error
	)

	if f.Category != "" && !f.Category.Valid() {
		http.Error(w, "invalid 'category'", http.StatusBadRequest)
		return
	}
	if f.Size != "" && !f.Size.Valid() {
		http.Error(w, "invalid 'size'", http.StatusBadRequest)
		return
	}
	if f.Engagement != "" && !f.Engagement.Valid() {
		http.Error(w, "invalid 'engagement'", http.StatusBadRequest)
		return
	}
	if f.MinPrice, err = priceParam(q.Get("min_price")); err != nil {
		http.Error(w, "invalid 'min_price'", http.StatusBadRequest)
		return
	}
	if f.MaxPrice, err = priceParam(q.Get("max_price")); err != nil {
		http.Error(w, "invalid 'max_price'", http.StatusBadRequest)
		return
	}

	communities, err := h.svc.SearchCommunities(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, communities)
}

func priceParam(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (h *Handler) handleStockImages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.StockImages())
}

func (h *Handler) handleLocation(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"location": h.svc.Location()})
}
