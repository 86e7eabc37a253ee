package mailer

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
)

const (
	FromName                = "GymSpot"
	maxRetires              = 3
	UserWelcomeTemplate     = "user_welcome.tmpl"
	ResetPasswordTemplate   = "reset_password.tmpl"
	SubscriptionReceiptTmpl = "subscription_receipt.tmpl"
)

//go:embed "templates"
var FS embed.FS

var ErrNotConfigured = errors.New("mailer is not configured")

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}

// render executes the "subject" and "body" blocks of an embedded template.
func render(templateFile string, data any) (subject, body string, err error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}

	var s bytes.Buffer
	if err := tmpl.ExecuteTemplate(&s, "subject", data); err != nil {
		return "", "", err
	}

	var b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&b, "body", data); err != nil {
		return "", "", err
	}

	return s.String(), b.String(), nil
}
