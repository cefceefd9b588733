package infra

import (
	"fmt"
	"net/smtp"

	"github.com/amalfamous/QuickCRM/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending transactional emails. It
// implements the service.Notifier contract: one attempt per send, the caller
// decides what a failure means (for the pipeline: nothing).
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
