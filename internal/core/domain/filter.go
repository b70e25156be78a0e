package domain

import "strings"

// CommunityFilter narrows the catalog. Zero values disable a dimension.
// Price bounds are inclusive and expressed in cents.
type CommunityFilter struct {
	Query      string
	Category   Category
	Size       Size
	Engagement Engagement
	MinPrice   *int64
	MaxPrice   *int64
}

// FilterCommunities returns the communities matching every dimension of f,
// in catalog order. The query is matched as a literal substring, spaces
// included. The catalog slice is not modified.
func FilterCommunities(catalog []Community, f CommunityFilter) []Community {
	query := strings.ToLower(f.Query)
	out := make([]Community, 0, len(catalog))
	for _, c := range catalog {
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Size != "" && c.Size != f.Size {
			continue
		}
		if f.Engagement != "" && c.EngagementText != f.Engagement {
			continue
		}
		if f.MinPrice != nil && c.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && c.Price > *f.MaxPrice {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesQuery expects query to be lower-cased already.
func matchesQuery(c Community, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	for _, t := range c.Topics {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
