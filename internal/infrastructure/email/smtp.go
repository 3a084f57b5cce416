package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTicketStatusEmail notifies the requester that a ticket moved to a new
// status. The note is the free-text explanation recorded with the change.
func (s *SMTPEmailService) SendTicketStatusEmail(to string, ticketID uint, title, status, note string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)

	subject := fmt.Sprintf("Ticket #%d updated: %s", ticketID, status)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Update</h2>
			<p>Your ticket <strong>%s</strong> moved to status <strong>%s</strong>.</p>
			<p>%s</p>
			<p><a href="%s">View ticket</a></p>
		</body>
		</html>
	`, title, status, note, ticketURL)

	plainBody := fmt.Sprintf(`
Ticket Update

Your ticket "%s" moved to status %s.

%s

View it at: %s
	`, title, status, note, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
