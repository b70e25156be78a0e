package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeFor(t *testing.T) {
	assert.Equal(t, SizeSmall, SizeFor(0))
	assert.Equal(t, SizeSmall, SizeFor(4_999))
	assert.Equal(t, SizeMedium, SizeFor(5_000))
	assert.Equal(t, SizeLarge, SizeFor(25_000))
	assert.Equal(t, SizeLarge, SizeFor(100_000))
	assert.Equal(t, SizeXLarge, SizeFor(100_001))
}

func TestCommunityValidate(t *testing.T) {
	valid := community("a", "A", CategoryArts, 100, 10, 1, 3)
	assert.NoError(t, valid.Validate())

	tests := map[string]func(*Community){
		"empty id":      func(c *Community) { c.ID = "" },
		"negative":      func(c *Community) { c.Members = -1 },
		"rate too high": func(c *Community) { c.EngagementRate = 6 },
		"rate too low":  func(c *Community) { c.EngagementRate = 0 },
		"engagement":    func(c *Community) { c.EngagementText = "Meh" },
		"free":          func(c *Community) { c.Price = 0 },
		"category":      func(c *Community) { c.Category = "pets" },
		"size":          func(c *Community) { c.Size = "giant" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidCommunity)
		})
	}
}
