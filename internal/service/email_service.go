package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"ai-interviewer/internal/config"
)

// EmailServiceInterface abstracts outbound mail so tests can record instead
// of send.
type EmailServiceInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPEmailService struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPEmailService() *SMTPEmailService {
	cfg := config.LoadSMTPConfig()
	var auth smtp.Auth
	if cfg.User != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &SMTPEmailService{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
		auth: auth,
	}
}

func (s *SMTPEmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.from == "" {
		return fmt.Errorf("SMTP not configured")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(b.String()))
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
