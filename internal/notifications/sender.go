package notifications

import (
	"context"

	"github.com/9ssi7/exponent"
)

// PushSender is just an abstraction over any push sender,
// but here it's directly tied to the exponent SDK types.
type PushSender interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
}

// NoopSender drops every message. Used when no Expo access token is set.
type NoopSender struct{}

func (NoopSender) Publish(context.Context, []*exponent.Message) ([]*exponent.MessageResponse, error) {
	return nil, nil
}
