package domain

import (
	"errors"
	"fmt"
)

// Category groups communities by subject.
type Category string

const (
	CategoryTechnology Category = "technology"
	CategoryBusiness   Category = "business"
	CategoryLifestyle  Category = "lifestyle"
	CategorySports     Category = "sports"
	CategoryArts       Category = "arts"
	CategoryEducation  Category = "education"
	CategoryHealth     Category = "health"
	CategoryLocal      Category = "local"
)

var categories = []Category{
	CategoryTechnology,
	CategoryBusiness,
	CategoryLifestyle,
	CategorySports,
	CategoryArts,
	CategoryEducation,
	CategoryHealth,
	CategoryLocal,
}

// Categories returns all known categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range categories {
		if v == c {
			return true
		}
	}
	return false
}

// Size is a membership bracket.
type Size string

const (
	SizeSmall  Size = "small"  // fewer than 5k members
	SizeMedium Size = "medium" // 5k to 25k
	SizeLarge  Size = "large"  // 25k to 100k
	SizeXLarge Size = "xlarge" // more than 100k
)

// Valid reports whether s is a known size bracket.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXLarge:
		return true
	}
	return false
}

// SizeFor returns the bracket a community with the given member count
// belongs to.
func SizeFor(members int64) Size {
	switch {
	case members < 5_000:
		return SizeSmall
	case members < 25_000:
		return SizeMedium
	case members <= 100_000:
		return SizeLarge
	default:
		return SizeXLarge
	}
}

// Engagement is the textual engagement tier shown next to a community.
type Engagement string

const (
	EngagementLow      Engagement = "Low"
	EngagementMedium   Engagement = "Medium"
	EngagementHigh     Engagement = "High"
	EngagementVeryHigh Engagement = "Very High"
)

// Valid reports whether e is a known engagement tier.
func (e Engagement) Valid() bool {
	switch e {
	case EngagementLow, EngagementMedium, EngagementHigh, EngagementVeryHigh:
		return true
	}
	return false
}

// Community is a targetable audience segment. Records are loaded from the
// catalog and never modified afterwards.
// Price is the cost per day in cents.
type Community struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	Members        int64      `json:"members"`
	DailyActive    int64      `json:"daily_active"`
	EngagementRate int        `json:"engagement_rate"` // 1..5
	EngagementText Engagement `json:"engagement_text"`
	Topics         []string   `json:"topics"`
	Price          int64      `json:"price"`
	CTR            float64    `json:"ctr"` // percent
	Category       Category   `json:"category"`
	Size           Size       `json:"size"`
}

// ErrInvalidCommunity is returned by Community.Validate.
var ErrInvalidCommunity = errors.New("invalid community")

// Validate checks the catalog invariants of a community record.
func (c Community) Validate() error {
	switch {
	case c.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidCommunity)
	case c.Members < 0 || c.DailyActive < 0:
		return fmt.Errorf("%w %s: negative audience", ErrInvalidCommunity, c.ID)
	case c.EngagementRate < 1 || c.EngagementRate > 5:
		return fmt.Errorf("%w %s: engagement rate %d out of range", ErrInvalidCommunity, c.ID, c.EngagementRate)
	case !c.EngagementText.Valid():
		return fmt.Errorf("%w %s: engagement %q", ErrInvalidCommunity, c.ID, c.EngagementText)
	case c.Price <= 0:
		return fmt.Errorf("%w %s: price must be positive", ErrInvalidCommunity, c.ID)
	case !c.Category.Valid():
		return fmt.Errorf("%w %s: category %q", ErrInvalidCommunity, c.ID, c.Category)
	case !c.Size.Valid():
		return fmt.Errorf("%w %s: size %q", ErrInvalidCommunity, c.ID, c.Size)
	}
	return nil
}
