package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/osa911/contactapi/internal/config"
)

// DefaultSMTPTimeout bounds connect, greeting and every socket operation of a session
const DefaultSMTPTimeout = 10 * time.Second

// SMTPMailer sends email through an SMTP relay.
// A fresh client is dialed for every message, so concurrent sends never share a session.
type SMTPMailer struct {
	config config.SMTPConfig
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSMTPTimeout
	}
	return &SMTPMailer{config: cfg}
}

// Send dials the relay, delivers one message and closes the session
func (m *SMTPMailer) Send(ctx context.Context, email *Email) error {
	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := m.newClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To.Email, err)
	}

	return nil
}

// Verify connects and authenticates against the relay without sending anything
func (m *SMTPMailer) Verify(ctx context.Context) error {
	client, err := m.newClient()
	if err != nil {
		return err
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to SMTP server %s:%d: %w", m.config.Host, m.config.Port, err)
	}

	return client.Close()
}

func (m *SMTPMailer) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTimeout(m.config.Timeout),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         m.config.Host,
			InsecureSkipVerify: m.config.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		}),
	}

	// Port 465 speaks TLS from the first byte, everything else upgrades with STARTTLS
	if m.config.ImplicitTLS() {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	if m.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
		)
	}

	client, err := mail.NewClient(m.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

func (m *SMTPMailer) buildMessage(email *Email) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithCharset(mail.CharsetUTF8))

	if err := msg.FromFormat(email.From.Name, email.From.Email); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", email.From.Email, err)
	}
	if err := msg.AddToFormat(email.To.Name, email.To.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", email.To.Email, err)
	}
	if len(email.Cc) > 0 {
		if err := msg.Cc(email.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	if email.ReplyTo != nil {
		if err := msg.ReplyToFormat(email.ReplyTo.Name, email.ReplyTo.Email); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", email.ReplyTo.Email, err)
		}
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	return msg, nil
}
