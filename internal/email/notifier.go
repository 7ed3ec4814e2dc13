package email

import (
	"fmt"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// Notifier уведомляет владельца сайта о новой заявке.
// Отправка best-effort: ошибка логируется вызывающей стороной и
// никогда не влияет на результат интейка.
type Notifier interface {
	NotifyNewSubmission(submission *models.ContactSubmission) error
}

// SMTPNotifier шлет письмо через SMTP
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewNotifier возвращает SMTP-нотификатор, либо no-op если SMTP
// не сконфигурирован.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.Email.SMTPHost == "" || cfg.Email.NotifyEmail == "" {
		return &NoopNotifier{}
	}

	from := cfg.Email.FromEmail
	if from == "" {
		from = cfg.Email.SMTPUsername
	}

	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:   from,
		to:     cfg.Email.NotifyEmail,
	}
}

func (n *SMTPNotifier) NotifyNewSubmission(submission *models.ContactSubmission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("New contact submission #%d: %s", submission.ID, submission.Subject))
	m.SetHeader("Reply-To", submission.Email)
	m.SetBody("text/plain", fmt.Sprintf(
		"From: %s <%s>\n\n%s\n",
		submission.Name, submission.Email, submission.Message,
	))

	return n.dialer.DialAndSend(m)
}

// NoopNotifier используется когда SMTP не настроен
type NoopNotifier struct{}

func (n *NoopNotifier) NotifyNewSubmission(*models.ContactSubmission) error {
	return nil
}
