package domain

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreativeTitleIsCutToFormatLimit(t *testing.T) {
	c, err := NewCreative().WithFormat(FormatStandard)
	require.NoError(t, err)

	title := strings.Repeat("x", 65)
	c, err = c.WithTitle(title)
	require.NoError(t, err)
	assert.Equal(t, title[:60], c.Title)

	c, err = c.WithBody(strings.Repeat("y", 500))
	require.NoError(t, err)
	assert.Len(t, c.Body, 120)
}

func TestCreativeLimitsPerFormat(t *testing.T) {
	long := strings.Repeat("é", 300)
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			c, err := NewCreative().WithFormat(f)
			require.NoError(t, err)
			c, _ = c.WithTitle(long)
			c, _ = c.WithBody(long)
			assert.Equal(t, f.Limits().Title, utf8.RuneCountInString(c.Title))
			assert.Equal(t, f.Limits().Body, utf8.RuneCountInString(c.Body))
			assert.True(t, utf8.ValidString(c.Title))
		})
	}
}

func TestCreativeLimitsTable(t *testing.T) {
	assert.Equal(t, Limits{Title: 40, Body: 80, ImageWidth: 300, ImageHeight: 250}, FormatCompact.Limits())
	assert.Equal(t, 60, FormatStandard.Limits().Title)
	assert.Equal(t, 120, FormatStandard.Limits().Body)
	assert.Equal(t, 30, FormatBanner.Limits().Title)
	assert.Equal(t, 60, FormatBanner.Limits().Body)
	assert.Equal(t, 80, FormatPremium.Limits().Title)
	assert.Equal(t, 200, FormatPremium.Limits().Body)
	assert.Equal(t, Limits{}, FormatNone.Limits())
}

func TestCreativeTextNeedsFormat(t *testing.T) {
	_, err := NewCreative().WithTitle("hello")
	assert.ErrorIs(t, err, ErrFormatRequired)
	_, err = NewCreative().WithBody("hello")
	assert.ErrorIs(t, err, ErrFormatRequired)
}

func TestCreativeFormatChangeClampsText(t *testing.T) {
	c, _ := NewCreative().WithFormat(FormatPremium)
	c, _ = c.WithTitle(strings.Repeat("t", 80))
	c, _ = c.WithBody(strings.Repeat("b", 200))

	c, err := c.WithFormat(FormatBanner)
	require.NoError(t, err)
	assert.Len(t, c.Title, 30)
	assert.Len(t, c.Body, 60)

	_, err = c.WithFormat("huge")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCreativeCallToAction(t *testing.T) {
	assert.Len(t, CallsToAction(), 8)
	assert.Equal(t, CTALearnMore, NewCreative().CallToAction)

	c, err := NewCreative().WithCallToAction(CTAShopNow)
	require.NoError(t, err)
	assert.Equal(t, CTAShopNow, c.CallToAction)

	_, err = c.WithCallToAction("Buy!!")
	assert.ErrorIs(t, err, ErrInvalidCallToAction)
}

func TestNewUploadedImage(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 100)...)

	img, err := NewUploadedImage("image/png", png, 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.DataURL(), "data:image/png;base64,iVBORw0KGgo"))

	_, err = NewUploadedImage("image/gif", png, 0)
	assert.ErrorIs(t, err, ErrInvalidImageType)

	_, err = NewUploadedImage("image/png", make([]byte, 600*1024), 0)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = NewUploadedImage("image/jpeg", make([]byte, DefaultMaxImageBytes), 0)
	assert.NoError(t, err, "limit is inclusive")

	_, err = NewUploadedImage("image/jpeg", make([]byte, 2048), 1024)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestCreativeStockImage(t *testing.T) {
	img, err := FindStockImage("city-skyline")
	require.NoError(t, err)

	c := NewCreative().WithStockImage(img)
	assert.Equal(t, img.URL, c.Image)
	assert.Equal(t, ImageStock, c.ImageSource)

	c = c.WithoutImage()
	assert.Empty(t, c.Image)
	assert.Equal(t, ImageNone, c.ImageSource)

	_, err = FindStockImage("nope")
	assert.ErrorIs(t, err, ErrUnknownStockImage)
}

func TestCreativeComplete(t *testing.T) {
	c, _ := NewCreative().WithFormat(FormatCompact)
	assert.False(t, c.Complete())
	c, _ = c.WithTitle("Title")
	c, _ = c.WithBody("Body")
	assert.False(t, c.Complete())
	c = c.WithDestination("  https://example.com  ")
	assert.Equal(t, "https://example.com", c.DestinationURL)
	assert.True(t, c.Complete())
}
