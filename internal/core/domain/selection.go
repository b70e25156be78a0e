package domain

import (
	"slices"
	"sort"
)

// TopEngagementCount is how many communities the "top engagement" bulk
// action selects.
const TopEngagementCount = 10

// Selection is the ordered set of communities chosen for a campaign,
// unique by ID. Methods never modify the receiver; they return a new
// Selection.
type Selection []Community

// Contains reports whether a community with the given id is selected.
func (s Selection) Contains(id string) bool {
	return s.index(id) >= 0
}

func (s Selection) index(id string) int {
	return slices.IndexFunc(s, func(c Community) bool { return c.ID == id })
}

// Toggle removes c if it is selected and appends it otherwise.
func (s Selection) Toggle(c Community) Selection {
	if s.Contains(c.ID) {
		return s.Remove(c.ID)
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, c)
}

// Remove drops the community with the given id. The rest keep their
// order.
func (s Selection) Remove(id string) Selection {
	i := s.index(id)
	if i < 0 {
		return s
	}
	out := make(Selection, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// Union appends the communities that are not selected yet, in argument
// order. Existing members keep their position.
func (s Selection) Union(cs ...Community) Selection {
	out := make(Selection, 0, len(s)+len(cs))
	out = append(out, s...)
	for _, c := range cs {
		if !out.Contains(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// SelectAllTech adds every technology community of the catalog.
func (s Selection) SelectAllTech(catalog []Community) Selection {
	return s.Union(FilterCommunities(catalog, CommunityFilter{Category: CategoryTechnology})...)
}

// SelectTopEngagement adds the n communities with the highest engagement
// rate. Ties keep catalog order.
func (s Selection) SelectTopEngagement(catalog []Community, n int) Selection {
	ranked := append([]Community(nil), catalog...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementRate > ranked[j].EngagementRate
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return s.Union(ranked...)
}

// IDs returns the selected community ids in selection order.
func (s Selection) IDs() []string {
	ids := make([]string, len(s))
	for i, c := range s {
		ids[i] = c.ID
	}
	return ids
}

// DailyCost is the sum of the daily prices in cents.
func (s Selection) DailyCost() int64 {
	var total int64
	for _, c := range s {
		total += c.Price
	}
	return total
}

// Reach is the sum of members across the selection.
func (s Selection) Reach() int64 {
	var total int64
	for _, c := range s {
		total += c.Members
	}
	return total
}

// ActiveAudience is the sum of daily active users across the selection.
func (s Selection) ActiveAudience() int64 {
	var total int64
	for _, c := range s {
		total += c.DailyActive
	}
	return total
}
