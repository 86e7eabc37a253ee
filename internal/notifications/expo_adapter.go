package notifications

import (
	"context"

	"github.com/9ssi7/exponent"
)

type ExpoAdapter struct {
	client *exponent.Client
}

func NewExpoAdapter(accessToken string) *ExpoAdapter {
	return &ExpoAdapter{client: exponent.NewClient(exponent.WithAccessToken(accessToken))}
}

func (a *ExpoAdapter) Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error) {
	return a.client.Publish(ctx, msgs)
}
