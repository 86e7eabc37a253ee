package notifications

import (
	"context"
	"fmt"
	"strconv"

	"github.com/9ssi7/exponent"
)

// Expo accepts at most 100 messages per request.
const publishBatchSize = 100

type FavoritesLister interface {
	FavoritedBy(ctx context.Context, venueID int64) ([]int64, error)
}

type TokenLister interface {
	TokensForUsers(ctx context.Context, userIDs []int64) (map[int64][]string, error)
}

type PromotionNotice struct {
	VenueID     int64
	VenueName   string
	PromotionID int64
	Title       string
	Code        string
}

// SendPromotionNotification pushes a new promotion to every user who
// favorited the venue. It returns the number of messages sent.
func SendPromotionNotification(ctx context.Context, push PushSender, favs FavoritesLister, tokens TokenLister, n PromotionNotice) (int, error) {
	userIDs, err := favs.FavoritedBy(ctx, n.VenueID)
	if err != nil {
		return 0, fmt.Errorf("error getting favoriting users: %w", err)
	}
	if len(userIDs) == 0 {
		return 0, nil
	}

	tokensMap, err := tokens.TokensForUsers(ctx, userIDs)
	if err != nil {
		return 0, fmt.Errorf("error getting push tokens: %w", err)
	}

	msgs := make([]*exponent.Message, 0, len(tokensMap))
	for _, list := range tokensMap {
		for _, t := range list {
			token := exponent.Token(t)
			msgs = append(msgs, &exponent.Message{
				To:    []*exponent.Token{&token},
				Title: fmt.Sprintf("New offer at %s", n.VenueName),
				Body:  n.Title,
				// deep link for the app
				Data: map[string]string{
					"type":        "promotion",
					"venueId":     strconv.FormatInt(n.VenueID, 10),
					"promotionId": strconv.FormatInt(n.PromotionID, 10),
					"code":        n.Code,
				},
			})
		}
	}

	sent := 0
	for start := 0; start < len(msgs); start += publishBatchSize {
		end := min(start+publishBatchSize, len(msgs))
		if _, err := push.Publish(ctx, msgs[start:end]); err != nil {
			return sent, fmt.Errorf("error sending promotion notifications: %w", err)
		}
		sent += end - start
	}
	return sent, nil
}
