package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRenderWelcome(t *testing.T) {
	subject, body, err := render(UserWelcomeTemplate, map[string]string{
		"Username":  "Salma",
		"SearchURL": "https://gymspot.ma/search",
	})
	require.NoError(t, err)

	assert.Equal(t, "Welcome to GymSpot!", subject)
	assert.Contains(t, body, "Hi Salma,")
	assert.Contains(t, body, `href="https://gymspot.ma/search"`)
}

func TestRenderReceiptEscapesInput(t *testing.T) {
	_, body, err := render(SubscriptionReceiptTmpl, map[string]string{
		"Username":      "<b>x</b>",
		"PlanName":      "Premium",
		"Amount":        "299.00",
		"Currency":      "MAD",
		"EndDate":       "2027-01-01",
		"TransactionID": "tx-1",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, body, "299.00 MAD")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestNewSMTPMailerRequiresHost(t *testing.T) {
	_, err := NewSMTPMailer("", 587, "", "", "noreply@gymspot.ma")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLogMailerRendersSubject(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLogMailer(zap.New(core).Sugar())

	status, err := m.Send(UserWelcomeTemplate, "Salma", "salma@example.com", map[string]string{
		"Username":  "Salma",
		"SearchURL": "https://gymspot.ma/search",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, status)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Welcome to GymSpot!", logs.All()[0].ContextMap()["subject"])
}
