package mailer

import (
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"
)

type SMTPMailer struct {
	fromEmail string
	dialer    *gomail.Dialer
}

func NewSMTPMailer(host string, port int, username, password, fromEmail string) (*SMTPMailer, error) {
	if host == "" || fromEmail == "" {
		return nil, ErrNotConfigured
	}

	d := gomail.NewDialer(host, port, username, password)
	d.Timeout = 10 * time.Second

	return &SMTPMailer{fromEmail: fromEmail, dialer: d}, nil
}

// Send renders templateFile and delivers it, retrying with a linear backoff.
// The returned int mirrors an HTTP status for callers that log it.
func (m *SMTPMailer) Send(templateFile, username, email string, data any) (int, error) {
	subject, body, err := render(templateFile, data)
	if err != nil {
		return -1, err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	var retryErr error
	for i := 0; i < maxRetires; i++ {
		retryErr = m.dialer.DialAndSend(msg)
		if retryErr == nil {
			return 200, nil
		}

		// linear backoff
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return -1, fmt.Errorf("failed to send email after %d attempts, error: %v", maxRetires, retryErr)
}
