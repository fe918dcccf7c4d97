package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender delivers mail over plain SMTP. Works with a local relay in
// development and with provider SMTP endpoints in production.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender creates a new SMTP sender. Host and port are required.
func NewSMTPSender(host, port, username, password, from string) (*SMTPSender, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	if from == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}, nil
}

// Send implements Sender.
func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	// Build a simple RFC822 message with HTML body
	headers := fmt.Sprintf("From: %s\r\n", s.from)
	headers += fmt.Sprintf("To: %s\r\n", msg.To)
	headers += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	headers += "MIME-version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n"

	body := msg.HTMLBody
	if body == "" {
		body = msg.TextBody
	}

	return smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(headers+body))
}

// Provider implements Sender.
func (s *SMTPSender) Provider() string { return "smtp" }
