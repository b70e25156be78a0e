package domain

// Format is one of the fixed creative templates. The zero value means no
// format has been chosen yet.
type Format string

const (
	FormatNone     Format = ""
	FormatCompact  Format = "compact"
	FormatStandard Format = "standard"
	FormatBanner   Format = "banner"
	FormatPremium  Format = "premium"
)

// Limits are the per-format creative constraints. Title and Body are
// maximum lengths in characters; the image size is the recommended
// rendering size in pixels.
type Limits struct {
	Title       int `json:"title"`
	Body        int `json:"body"`
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`
}

var formatLimits = map[Format]Limits{
	FormatCompact:  {Title: 40, Body: 80, ImageWidth: 300, ImageHeight: 250},
	FormatStandard: {Title: 60, Body: 120, ImageWidth: 600, ImageHeight: 400},
	FormatBanner:   {Title: 30, Body: 60, ImageWidth: 728, ImageHeight: 90},
	FormatPremium:  {Title: 80, Body: 200, ImageWidth: 1200, ImageHeight: 628},
}

// Formats returns the selectable formats in display order.
func Formats() []Format {
	return []Format{FormatCompact, FormatStandard, FormatBanner, FormatPremium}
}

// Valid reports whether f is a selectable format. FormatNone is not.
func (f Format) Valid() bool {
	_, ok := formatLimits[f]
	return ok
}

// Limits returns the constraints of f. FormatNone has zero limits, so no
// text fits.
func (f Format) Limits() Limits {
	return formatLimits[f]
}

// CallToAction is the label of the creative's button.
type CallToAction string

const (
	CTALearnMore CallToAction = "Learn More"
	CTAShopNow   CallToAction = "Shop Now"
	CTASignUp    CallToAction = "Sign Up"
	CTARegister  CallToAction = "Register"
	CTABookNow   CallToAction = "Book Now"
	CTAContactUs CallToAction = "Contact Us"
	CTADownload  CallToAction = "Download"
	CTAGetOffer  CallToAction = "Get Offer"
)

// CallsToAction returns the eight available labels.
func CallsToAction() []CallToAction {
	return []CallToAction{
		CTALearnMore, CTAShopNow, CTASignUp, CTARegister,
		CTABookNow, CTAContactUs, CTADownload, CTAGetOffer,
	}
}

// Valid reports whether a is one of the fixed labels.
func (a CallToAction) Valid() bool {
	for _, v := range CallsToAction() {
		if v == a {
			return true
		}
	}
	return false
}
