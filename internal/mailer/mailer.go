// Package mailer abstracts transactional email delivery behind a single
// capability interface with pluggable provider backends. The concrete sender
// is selected once at configuration time; call sites only ever see Sender.
package mailer

import (
	"context"
	"log/slog"

	"ripple/internal/config"
	"ripple/internal/middleware"
	"ripple/internal/observability"
)

// Message represents an email to be sent.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string // optional plain-text alternative
}

// Sender abstracts email sending for DI and testing.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Provider() string
}

// NewFromConfig selects the concrete sender for the configured provider.
// Missing credentials downgrade to the no-op sender with a warning rather
// than failing the process: email delivery is independent of every
// request-handling path.
func NewFromConfig(cfg *config.Config) Sender {
	switch cfg.EmailProvider {
	case "smtp":
		s, err := NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
		if err != nil {
			middleware.Logger.Warn("SMTP sender unavailable, email disabled",
				slog.String("error", err.Error()))
			return NoopSender{}
		}
		return s
	case "postmark":
		s, err := NewPostmarkSender(cfg.PostmarkBaseURL, cfg.PostmarkToken, cfg.EmailFrom)
		if err != nil {
			middleware.Logger.Warn("Postmark sender unavailable, email disabled",
				slog.String("error", err.Error()))
			return NoopSender{}
		}
		return s
	default:
		return NoopSender{}
	}
}

// SendAsync delivers the message on a fresh goroutine and swallows the error
// after logging it. Use for best-effort notifications like welcome emails
// where delivery failures must never surface to the caller.
func SendAsync(sender Sender, msg Message) {
	go func() {
		ctx := context.Background()
		if err := sender.Send(ctx, msg); err != nil {
			observability.EmailsSent.WithLabelValues(sender.Provider(), "error").Inc()
			middleware.Logger.Error("email delivery failed",
				slog.String("provider", sender.Provider()),
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
				slog.String("error", err.Error()),
			)
			return
		}
		observability.EmailsSent.WithLabelValues(sender.Provider(), "ok").Inc()
	}()
}

// NoopSender discards every message. Selected when no provider is configured.
type NoopSender struct{}

// Send implements Sender.
func (NoopSender) Send(_ context.Context, _ Message) error { return nil }

// Provider implements Sender.
func (NoopSender) Provider() string { return "none" }
