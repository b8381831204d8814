package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"collegeblog/internal/config"
	"collegeblog/internal/logger"
)

const verificationSubject = "Verify your college blog account"

// Mailer delivers account emails.
type Mailer interface {
	SendVerification(ctx context.Context, to, link string) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  config.SMTP
	send sendFunc
}

// New returns an SMTP mailer, or a mailer that only logs when SMTP is not configured.
func New(cfg config.SMTP) Mailer {
	if !cfg.Enabled() {
		logger.Log.Warnw("email settings missing, verification emails will not be sent")
		return NoopMailer{}
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// SendVerification uses STARTTLS when the server offers it.
func (m *SMTPMailer) SendVerification(ctx context.Context, to, link string) error {
	msg := buildVerificationMessage(m.cfg.From, to, link, time.Now())
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	done := make(chan error, 1)
	go func() {
		done <- m.send(addr, auth, m.cfg.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send verification email: %w", err)
		}
		logger.Log.Infow("verification email sent", "to", to)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send verification email: %w", ctx.Err())
	}
}

func buildVerificationMessage(from, to, link string, now time.Time) []byte {
	body := fmt.Sprintf(
		"Welcome to the college blog!\r\n\r\n"+
			"Please verify your email address by opening the link below:\r\n\r\n"+
			"%s\r\n\r\n"+
			"The link expires in one hour. If you did not create an account, ignore this email.\r\n",
		link,
	)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", verificationSubject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}

// NoopMailer skips delivery and logs the link instead.
type NoopMailer struct{}

func (NoopMailer) SendVerification(ctx context.Context, to, link string) error {
	logger.Log.Warnw("email not configured, skipping verification email", "to", to)
	logger.Log.Debugw("verification link", "to", to, "link", link)
	return nil
}
