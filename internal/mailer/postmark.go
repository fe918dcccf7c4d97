package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PostmarkSender delivers mail through the Postmark HTTP API.
type PostmarkSender struct {
	baseURL string
	token   string
	from    string
	timeout time.Duration
}

type postmarkRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody,omitempty"`
	TextBody string `json:"TextBody,omitempty"`
}

type postmarkResponse struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

// NewPostmarkSender creates a Postmark API sender. Token is required.
func NewPostmarkSender(baseURL, token, from string) (*PostmarkSender, error) {
	if token == "" {
		return nil, fmt.Errorf("postmark server token is required")
	}
	if from == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	if baseURL == "" {
		baseURL = "https://api.postmarkapp.com"
	}
	return &PostmarkSender{baseURL: baseURL, token: token, from: from, timeout: 10 * time.Second}, nil
}

// Send implements Sender.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(s.baseURL + "/email")
	agent.Timeout(timeout)
	agent.Set("Accept", "application/json")
	agent.Set("X-Postmark-Server-Token", s.token)
	agent.JSON(postmarkRequest{
		From:     s.from,
		To:       msg.To,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		TextBody: msg.TextBody,
	})

	var out postmarkResponse
	code, _, errs := agent.Struct(&out)
	if len(errs) > 0 {
		return fmt.Errorf("postmark request failed: %w", errs[0])
	}
	if code != fiber.StatusOK || out.ErrorCode != 0 {
		return fmt.Errorf("postmark rejected message (status %d, code %d): %s", code, out.ErrorCode, out.Message)
	}
	return nil
}

// Provider implements Sender.
func (s *PostmarkSender) Provider() string { return "postmark" }
