package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultMaxImageBytes is the upload size limit applied when none is
// configured.
const DefaultMaxImageBytes = 512_000

// ImageSource tells where the creative image came from.
type ImageSource string

const (
	ImageNone   ImageSource = ""
	ImageUpload ImageSource = "upload"
	ImageStock  ImageSource = "stock"
)

// Creative is the ad being authored. Title and Body never exceed the
// limits of Format.
type Creative struct {
	Format         Format       `json:"format"`
	Title          string       `json:"title"`
	Body           string       `json:"body"`
	Image          string       `json:"image,omitempty"` // data URL or stock image URL
	ImageSource    ImageSource  `json:"image_source,omitempty"`
	CallToAction   CallToAction `json:"call_to_action"`
	DestinationURL string       `json:"destination_url"`
}

// NewCreative returns an empty creative with the default call to action.
func NewCreative() Creative {
	return Creative{CallToAction: CTALearnMore}
}

// Complete reports whether every required text field is filled.
func (c Creative) Complete() bool {
	return c.Title != "" && c.Body != "" && c.DestinationURL != ""
}

// WithFormat switches the template and clamps the texts to its limits.
func (c Creative) WithFormat(f Format) (Creative, error) {
	if !f.Valid() {
		return c, fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
	lim := f.Limits()
	c.Format = f
	c.Title = clamp(c.Title, lim.Title)
	c.Body = clamp(c.Body, lim.Body)
	return c, nil
}

// WithTitle stores title, dropping whatever does not fit the format.
func (c Creative) WithTitle(title string) (Creative, error) {
	if !c.Format.Valid() {
		return c, ErrFormatRequired
	}
	c.Title = clamp(title, c.Format.Limits().Title)
	return c, nil
}

// WithBody stores body, dropping whatever does not fit the format.
func (c Creative) WithBody(body string) (Creative, error) {
	if !c.Format.Valid() {
		return c, ErrFormatRequired
	}
	c.Body = clamp(body, c.Format.Limits().Body)
	return c, nil
}

// WithCallToAction sets the button label.
func (c Creative) WithCallToAction(a CallToAction) (Creative, error) {
	if !a.Valid() {
		return c, fmt.Errorf("%w: %q", ErrInvalidCallToAction, a)
	}
	c.CallToAction = a
	return c, nil
}

// WithDestination sets the landing URL.
func (c Creative) WithDestination(url string) Creative {
	c.DestinationURL = strings.TrimSpace(url)
	return c
}

// WithImage stores an uploaded image.
func (c Creative) WithImage(img UploadedImage) Creative {
	c.Image = img.DataURL()
	c.ImageSource = ImageUpload
	return c
}

// WithStockImage stores a stock image. Stock images are curated assets
// and skip the upload checks.
func (c Creative) WithStockImage(img StockImage) Creative {
	c.Image = img.URL
	c.ImageSource = ImageStock
	return c
}

// WithoutImage removes the image.
func (c Creative) WithoutImage() Creative {
	c.Image = ""
	c.ImageSource = ImageNone
	return c
}

// clamp cuts s to at most max runes.
func clamp(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// UploadedImage is an image that passed the upload checks.
type UploadedImage struct {
	ContentType string
	Data        []byte
}

// NewUploadedImage checks the content type and size of an upload. maxBytes
// <= 0 selects DefaultMaxImageBytes.
func NewUploadedImage(contentType string, data []byte, maxBytes int) (UploadedImage, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return UploadedImage{}, fmt.Errorf("%w: got %q", ErrInvalidImageType, contentType)
	}
	if len(data) > maxBytes {
		return UploadedImage{}, fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, len(data), maxBytes)
	}
	return UploadedImage{ContentType: contentType, Data: data}, nil
}

// DataURL encodes the image as a base64 data URL.
func (i UploadedImage) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// StockImage is one of the bundled images a creative can use instead of
// an upload.
type StockImage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// StockImages is the fixed stock image list.
var StockImages = []StockImage{
	{ID: "community-gathering", Label: "Community gathering", URL: "https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=1200"},
	{ID: "city-skyline", Label: "City skyline", URL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=1200"},
	{ID: "farmers-market", Label: "Farmers market", URL: "https://images.unsplash.com/photo-1488459716781-31db52582fe9?w=1200"},
	{ID: "coffee-shop", Label: "Coffee shop", URL: "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=1200"},
	{ID: "tech-workspace", Label: "Tech workspace", URL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=1200"},
	{ID: "park-event", Label: "Park event", URL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=1200"},
}

// FindStockImage looks up a stock image by id.
func FindStockImage(id string) (StockImage, error) {
	for _, img := range StockImages {
		if img.ID == id {
			return img, nil
		}
	}
	return StockImage{}, fmt.Errorf("%w: %q", ErrUnknownStockImage, id)
}
