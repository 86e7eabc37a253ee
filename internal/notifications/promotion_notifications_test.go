package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/9ssi7/exponent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	batches [][]*exponent.Message
	err     error
}

func (s *recordingSender) Publish(_ context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error) {
	s.batches = append(s.batches, msgs)
	return nil, s.err
}

type staticFavs []int64

func (f staticFavs) FavoritedBy(context.Context, int64) ([]int64, error) { return f, nil }

type staticTokens map[int64][]string

func (t staticTokens) TokensForUsers(_ context.Context, ids []int64) (map[int64][]string, error) {
	out := map[int64][]string{}
	for _, id := range ids {
		if v, ok := t[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

var notice = PromotionNotice{VenueID: 4, VenueName: "Fitness Zone", PromotionID: 9, Title: "20% off", Code: "ABCD2345"}

func TestSendPromotionNotification(t *testing.T) {
	sender := &recordingSender{}
	tokens := staticTokens{
		1: {"ExponentPushToken[a]", "ExponentPushToken[b]"},
		2: {"ExponentPushToken[c]"},
	}

	sent, err := SendPromotionNotification(context.Background(), sender, staticFavs{1, 2, 3}, tokens, notice)

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	require.Len(t, sender.batches, 1)

	msg := sender.batches[0][0]
	assert.Equal(t, "New offer at Fitness Zone", msg.Title)
	assert.Equal(t, "20% off", msg.Body)
	assert.Equal(t, "9", msg.Data["promotionId"])
}

func TestSendPromotionNotificationBatches(t *testing.T) {
	sender := &recordingSender{}
	tokens := staticTokens{}
	favs := staticFavs{}
	for i := int64(1); i <= 150; i++ {
		favs = append(favs, i)
		tokens[i] = []string{"ExponentPushToken[x]"}
	}

	sent, err := SendPromotionNotification(context.Background(), sender, favs, tokens, notice)

	require.NoError(t, err)
	assert.Equal(t, 150, sent)
	require.Len(t, sender.batches, 2)
	assert.Len(t, sender.batches[0], 100)
	assert.Len(t, sender.batches[1], 50)
}

func TestSendPromotionNotificationNoFavorites(t *testing.T) {
	sender := &recordingSender{}

	sent, err := SendPromotionNotification(context.Background(), sender, staticFavs{}, staticTokens{}, notice)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, sender.batches)
}

func TestSendPromotionNotificationPublishError(t *testing.T) {
	sender := &recordingSender{err: errors.New("expo down")}

	_, err := SendPromotionNotification(context.Background(), sender, staticFavs{1}, staticTokens{1: {"ExponentPushToken[a]"}}, notice)

	assert.Error(t, err)
}
