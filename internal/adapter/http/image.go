package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"community-ads/internal/core/domain"
)

// multipartOverhead is the room left for multipart headers on top of the
// image size limit.
const multipartOverhead = 64 << 10

// handleUploadImage accepts a multipart form with an "image" file. The
// content type is sniffed from the bytes; anything other than jpeg or png,
// or larger than the configured limit, is rejected with HTTP 422 and the
// draft keeps its previous image.
func (h *Handler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	limit := int64(h.maxImageBytes)
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	file, _, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: limit %d", domain.ErrImageTooLarge, limit))
			return
		}
		http.Error(w, "missing 'image' file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}
	img, err := domain.NewUploadedImage(http.DetectContentType(data), data, h.maxImageBytes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.apply(w, r, action(domain.SetImage{Image: img}))
}
