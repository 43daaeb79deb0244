package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/osa911/contactapi/internal/logging"
	"github.com/osa911/contactapi/internal/models"
	"github.com/osa911/contactapi/internal/templates"
)

var tracer = otel.Tracer("github.com/osa911/contactapi/internal/service")

// ContactServiceConfig holds the addresses the contact service sends from and to
type ContactServiceConfig struct {
	From       Address
	AdminEmail string
	AdminCC    []string
	// Missing lists required settings that are empty; submissions fail until it is empty
	Missing []string
}

// ContactService turns a validated submission into two delivered emails
type ContactService struct {
	cfg      ContactServiceConfig
	mailer   Mailer
	renderer *templates.Renderer
	now      func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(cfg ContactServiceConfig, mailer Mailer, renderer *templates.Renderer) *ContactService {
	return &ContactService{
		cfg:      cfg,
		mailer:   mailer,
		renderer: renderer,
		now:      time.Now,
	}
}

// Configured reports whether mail settings are complete
func (s *ContactService) Configured() bool {
	return len(s.cfg.Missing) == 0 && s.mailer != nil
}

// Submit renders the admin notification and the submitter confirmation and sends both
// concurrently. It returns only after both sends have finished. Either failure fails the
// whole submission; nothing is retried. Cancellation of ctx does not abort dispatch.
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission) error {
	if !s.Configured() {
		return &ConfigurationError{Missing: s.cfg.Missing}
	}

	adminEmail, confirmation, err := s.BuildEmails(sub)
	if err != nil {
		return err
	}

	ctx = context.WithoutCancel(ctx)

	var adminErr, confirmErr error
	var g errgroup.Group
	g.Go(func() error {
		adminErr = s.send(ctx, "admin_notification", adminEmail)
		return adminErr
	})
	g.Go(func() error {
		confirmErr = s.send(ctx, "confirmation", confirmation)
		return confirmErr
	})

	if err := g.Wait(); err != nil {
		return &DispatchError{Admin: adminErr, Confirmation: confirmErr}
	}

	logging.GetLogger().Info("Contact submission from %s dispatched (subject: %q)", sub.Email, sub.Subject)
	return nil
}

// BuildEmails renders both messages for a submission without sending them
func (s *ContactService) BuildEmails(sub models.ContactSubmission) (*Email, *Email, error) {
	admin, err := s.renderer.RenderAdminNotification(sub, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render admin notification: %w", err)
	}

	confirmation, err := s.renderer.RenderConfirmation(sub)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render confirmation: %w", err)
	}

	submitter := Address{Name: sub.Name, Email: sub.Email}
	adminAddr := Address{Name: s.renderer.Brand().Name + " Admin", Email: s.cfg.AdminEmail}

	adminEmail := &Email{
		From:    s.cfg.From,
		To:      adminAddr,
		Cc:      s.cfg.AdminCC,
		ReplyTo: &submitter,
		Subject: admin.Subject,
		HTML:    admin.HTML,
		Text:    admin.Text,
	}

	confirmEmail := &Email{
		From:    s.cfg.From,
		To:      submitter,
		ReplyTo: &Address{Name: s.renderer.Brand().Name, Email: s.cfg.AdminEmail},
		Subject: confirmation.Subject,
		HTML:    confirmation.HTML,
		Text:    confirmation.Text,
	}

	return adminEmail, confirmEmail, nil
}

// FailureMessage is the client-facing text for a failed dispatch. It points to an
// alternative channel when one is configured and never includes error detail.
func (s *ContactService) FailureMessage() string {
	brand := s.renderer.Brand()
	msg := "Failed to send message. Please try again or contact us directly"
	switch {
	case brand.WhatsApp != "":
		msg += " via WhatsApp at " + brand.WhatsApp
	case brand.Phone != "":
		msg += " by phone at " + brand.Phone
	case brand.Email != "":
		msg += " at " + brand.Email
	}
	return msg + "."
}

func (s *ContactService) send(ctx context.Context, kind string, email *Email) error {
	ctx, span := tracer.Start(ctx, "mail.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mail.kind", kind)),
	)
	defer span.End()

	start := time.Now()
	err := s.mailer.Send(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		logging.GetLogger().Error("Failed to send %s email after %s: %v", kind, time.Since(start), err)
		return err
	}

	logging.GetLogger().Debug("Sent %s email in %s", kind, time.Since(start))
	return nil
}
