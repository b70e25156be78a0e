package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSelectionToggleTwiceRestores(t *testing.T) {
	catalog := testCatalog()
	start := Selection{catalog[0], catalog[2], catalog[4]}
	for _, c := range catalog {
		got := start.Toggle(c).Toggle(c)
		if c.ID == "a" || c.ID == "c" || c.ID == "e" {
			// removing and re-adding moves the member to the end
			assert.ElementsMatch(t, start.IDs(), got.IDs())
			continue
		}
		if diff := cmp.Diff(start.IDs(), got.IDs()); diff != "" {
			t.Fatalf("toggle twice %s (-want +got):\n%s", c.ID, diff)
		}
	}
}

func TestSelectionToggle(t *testing.T) {
	catalog := testCatalog()
	var s Selection
	s = s.Toggle(catalog[1]).Toggle(catalog[0]).Toggle(catalog[3])
	assert.Equal(t, []string{"b", "a", "d"}, s.IDs())

	removed := s.Toggle(catalog[0])
	assert.Equal(t, []string{"b", "d"}, removed.IDs())
	assert.Equal(t, []string{"b", "a", "d"}, s.IDs(), "receiver must not change")
}

func TestSelectionBulkOperationsAreUnions(t *testing.T) {
	catalog := testCatalog()
	s := Selection{catalog[4], catalog[1]}

	tech := s.SelectAllTech(catalog)
	assert.Equal(t, []string{"e", "b", "a", "c"}, tech.IDs())
	assert.Equal(t, tech.IDs(), tech.SelectAllTech(catalog).IDs(), "idempotent")

	top := Selection{catalog[5]}.SelectTopEngagement(catalog, 3)
	// rates: b=5, e=5, a=4; ties keep catalog order
	assert.Equal(t, []string{"f", "b", "e", "a"}, top.IDs())
}

func TestSelectionTopEngagementCapsAtCatalog(t *testing.T) {
	catalog := testCatalog()
	got := Selection{}.SelectTopEngagement(catalog, TopEngagementCount)
	assert.Len(t, got, len(catalog))
	assert.Equal(t, []string{"b", "e", "a", "c", "d", "f"}, got.IDs())
}

func TestSelectionAggregates(t *testing.T) {
	a := community("A", "A", CategoryLocal, 1000, 100, 10, 3)
	b := community("B", "B", CategoryLocal, 2500, 200, 20, 3)
	s := Selection{}.Toggle(a).Toggle(b)

	assert.Equal(t, int64(3500), s.DailyCost())
	assert.Equal(t, int64(300), s.Reach())
	assert.Equal(t, int64(30), s.ActiveAudience())
	assert.True(t, s.Contains("A"))
	assert.False(t, s.Contains("C"))
}
