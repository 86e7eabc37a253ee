package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrGatewayNotRegistered = errors.New("payment gateway not registered")

type PaymentManager struct {
	mu       sync.RWMutex
	gateways map[string]PaymentGateway
}

func NewPaymentManager() *PaymentManager {
	return &PaymentManager{gateways: make(map[string]PaymentGateway)}
}

func (m *PaymentManager) RegisterGateway(name string, gateway PaymentGateway) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gateways[name] = gateway
}

func (m *PaymentManager) gateway(name string) (PaymentGateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.gateways[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGatewayNotRegistered, name)
	}
	return g, nil
}

func (m *PaymentManager) InitiatePayment(ctx context.Context, method string, req PaymentRequest) (PaymentResponse, error) {
	g, err := m.gateway(method)
	if err != nil {
		return PaymentResponse{}, err
	}
	return g.InitiatePayment(ctx, req)
}

func (m *PaymentManager) VerifyPayment(ctx context.Context, method string, req PaymentVerifyRequest) (PaymentVerifyResponse, error) {
	g, err := m.gateway(method)
	if err != nil {
		return PaymentVerifyResponse{}, err
	}
	return g.VerifyPayment(ctx, req)
}

func (m *PaymentManager) ParseWebhook(method string, payload []byte, signature string) (WebhookEvent, error) {
	g, err := m.gateway(method)
	if err != nil {
		return WebhookEvent{}, err
	}
	return g.ParseWebhook(payload, signature)
}
