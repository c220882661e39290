package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"returnex/internal/domain/service"
	"returnex/pkg/logger"
)

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	fromName string
}

// NewSMTPSender builds the outbound mailer. When host or credentials are
// missing it stays usable and silently no-ops on Send.
func NewSMTPSender(host string, port int, username, password, fromName string) service.Mailer {
	return &smtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		fromName: fromName,
	}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.host == "" || s.username == "" || s.password == "" {
		logger.Info("Email not configured, skipping email to %s (subject: %s)", to, subject)
		return nil
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %q <%s>\r\n", s.fromName, s.username))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.username, []string{to}, []byte(msg.String())); err != nil {
		return err
	}

	logger.Info("Email sent to %s: %s", to, subject)
	return nil
}
