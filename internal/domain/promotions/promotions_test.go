package promotions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percent(n int) *int { return &n }

func validPromotion() *Promotion {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Promotion{
		Title:           "Summer deal",
		Description:     "Twenty percent off every annual membership",
		DiscountType:    DiscountPercentage,
		DiscountPercent: percent(20),
		StartsAt:        start,
		EndsAt:          start.AddDate(0, 1, 0),
	}
}

func TestValidateAcceptsValidPromotion(t *testing.T) {
	assert.Nil(t, Validate(validPromotion()))

	offer := validPromotion()
	offer.DiscountType = DiscountOffer
	offer.DiscountPercent = nil
	offer.OfferText = "Free towel"
	assert.Nil(t, Validate(offer))
}

func TestValidateReportsEachField(t *testing.T) {
	p := validPromotion()
	p.Title = "ab"
	p.Description = "too short"
	p.EndsAt = p.StartsAt
	p.DiscountPercent = percent(150)

	errs := Validate(p)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "ends_at")
	assert.Contains(t, errs, "discount_percent")
}

func TestValidateOfferNeedsText(t *testing.T) {
	p := validPromotion()
	p.DiscountType = DiscountOffer

	assert.Contains(t, Validate(p), "offer_text")
}

func TestValidAt(t *testing.T) {
	p := validPromotion()
	p.Status = StatusActive

	assert.True(t, p.ValidAt(p.StartsAt))
	assert.True(t, p.ValidAt(p.StartsAt.Add(time.Hour)))
	assert.False(t, p.ValidAt(p.EndsAt))
	assert.False(t, p.ValidAt(p.StartsAt.Add(-time.Second)))

	p.Status = StatusInactive
	assert.False(t, p.ValidAt(p.StartsAt.Add(time.Hour)))
}

func TestCodecRoundTrip(t *testing.T) {
	c, err := NewCodec("gymspot-test")
	require.NoError(t, err)

	code, err := c.Encode(42)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(code), codeMinLength)

	id, err := c.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCodecRejectsForeignCodes(t *testing.T) {
	c, err := NewCodec("gymspot-test")
	require.NoError(t, err)
	other, err := NewCodec("another-salt")
	require.NoError(t, err)

	code, err := other.Encode(42)
	require.NoError(t, err)

	id, err := c.Decode(code)
	if err == nil {
		assert.NotEqual(t, int64(42), id)
	} else {
		assert.ErrorIs(t, err, ErrInvalidCode)
	}

	_, err = c.Decode("")
	assert.ErrorIs(t, err, ErrInvalidCode)
}
