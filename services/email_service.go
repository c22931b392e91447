package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"mtorq-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly signed-up user. Callers treat failures
// as non-fatal; signup must never hinge on SMTP availability.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to mTorq!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; color: #666; font-size: 12px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏍️ Welcome to mTorq!</h1>
        </div>
        <div class="content">
            <p>Hi %s,</p>
            <p>Your mTorq account is ready. Add your bikes, log expenses, and keep all your vehicle documents in one place.</p>
            <p>Ride safe!</p>
        </div>
        <div class="footer">
            <p>© 2024 mTorq. All rights reserved.</p>
            <p>This is an automated message, please do not reply.</p>
        </div>
    </div>
</body>
</html>
`, name)

	textBody := fmt.Sprintf(`
Hi %s!

Your mTorq account is ready. Add your bikes, log expenses, and keep all your vehicle documents in one place.

Ride safe!

The mTorq Team

© 2024 mTorq. All rights reserved.
This is an automated message, please do not reply.
    `, name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	fmt.Printf("Welcome email sent to %s\n", email)
	return nil
}
