package mailer

import "go.uber.org/zap"

// LogMailer renders messages and writes them to the log instead of sending
// them. main falls back to it when SMTP is not configured.
type LogMailer struct {
	logger *zap.SugaredLogger
}

func NewLogMailer(logger *zap.SugaredLogger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(templateFile, username, email string, data any) (int, error) {
	subject, _, err := render(templateFile, data)
	if err != nil {
		return -1, err
	}
	m.logger.Infow("email not sent, smtp disabled", "to", email, "name", username, "subject", subject)
	return 200, nil
}
