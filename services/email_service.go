package services

import (
	"fmt"
	"log"

	"catering-api/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{
		dialer:      dialer,
		from:        cfg.SMTPFrom,
		frontendURL: cfg.FrontendURL,
	}, nil
}

func (s *EmailService) SendVerificationEmail(toEmail, token string) error {
	link := fmt.Sprintf("%s/auth/verify/?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Verify your email address</h2>
        <p>Welcome to Itoro Blessing Catering Services!</p>
        <p>Please confirm your email address by clicking the button below. The link expires in 5 minutes.</p>
        <p style="text-align: center; margin: 30px 0;">
            <a href="%s" style="background-color: #f97316; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none;">Verify Email</a>
        </p>
        <p>If the button does not work, copy this link into your browser:</p>
        <p style="word-break: break-all; color: #666;">%s</p>
        <p style="color: #666; font-size: 12px; margin-top: 30px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
	`, link, link)

	return s.send(toEmail, "Verify your email - Itoro Blessing Catering", body)
}

func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	link := fmt.Sprintf("%s/auth/confirm-password-reset/?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Password Reset Request</h2>
        <p>You have requested to reset your password. Use the link below to choose a new one. The link expires in 5 minutes.</p>
        <p style="text-align: center; margin: 30px 0;">
            <a href="%s" style="background-color: #f97316; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none;">Reset Password</a>
        </p>
        <p>If you did not request a password reset, please ignore this email.</p>
        <p style="color: #666; font-size: 12px; margin-top: 30px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
	`, link)

	return s.send(toEmail, "Password Reset - Itoro Blessing Catering", body)
}

func (s *EmailService) send(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer is a development fallback used when SMTP is not configured.
// It writes the links to the log instead of sending mail.
type LogMailer struct {
	FrontendURL string
}

func (m *LogMailer) SendVerificationEmail(toEmail, token string) error {
	log.Printf("verification link for %s: %s/auth/verify/?token=%s", toEmail, m.FrontendURL, token)
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(toEmail, token string) error {
	log.Printf("password reset link for %s: %s/auth/confirm-password-reset/?token=%s", toEmail, m.FrontendURL, token)
	return nil
}
