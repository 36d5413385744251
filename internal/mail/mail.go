// Package mail delivers outbound account mail.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// Message is a plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a message or reports why it could not.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds relay settings.
type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

// New returns an SMTP mailer, or a LogMailer when no host is configured.
func New(cfg SMTPConfig, logger *slog.Logger) Mailer {
	if cfg.Host == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(cfg)
}

// SMTPMailer relays through an SMTP server, using PLAIN auth when a user is
// configured and STARTTLS when the server offers it.
type SMTPMailer struct {
	cfg     SMTPConfig
	deliver func(ctx context.Context, msg *gomail.Msg) error
}

// NewSMTPMailer creates an SMTP mailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg}
	m.deliver = m.dialAndSend
	return m
}

// Send delivers msg. The dial and the SMTP exchange both stop when ctx is done.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.deliver(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg Message) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.From(m.cfg.Sender); err != nil {
		return nil, fmt.Errorf("mail sender: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("mail recipient: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return out, nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *gomail.Msg) error {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.User),
			gomail.WithPassword(m.cfg.Pass),
		)
	}
	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// LogMailer writes mail to the logger instead of sending it. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs msg and never fails.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("mail not sent, no MAIL_HOST configured",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

// VerificationMessage builds the account verification mail.
func VerificationMessage(projectName, domain, to, token string) Message {
	link := strings.TrimRight(domain, "/") + "/accounts/verify/" + token
	return Message{
		To:      to,
		Subject: projectName + " - Please Verify Your Email Address",
		Body: "Thank you for registering with " + projectName + ".\r\n\r\n" +
			"Please verify your email address by following this link:\r\n" +
			link + "\r\n\r\n" +
			"If you did not create an account, you can ignore this message.\r\n",
	}
}
