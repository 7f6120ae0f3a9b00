package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type EmailService struct {
	host        string
	port        string
	user        string
	pass        string
	from        string
	frontendURL string
	devMode     bool
}

func NewEmailService(host, port, user, pass, from, frontendURL string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:        host,
		port:        port,
		user:        user,
		pass:        pass,
		from:        from,
		frontendURL: frontendURL,
		devMode:     devMode,
	}
}

func (s *EmailService) SendVerificationEmail(to, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)

	subject := "Verify your Planwise account"
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background-color: #f8fafc;">
  <div style="max-width: 480px; margin: 40px auto; background: white; border-radius: 12px; padding: 32px;">
    <h1 style="margin: 0 0 8px; font-size: 24px; color: #1e293b;">Planwise</h1>
    <p style="color: #64748b; margin: 0 0 24px;">Study smarter, not harder</p>
    <h2 style="margin: 0 0 16px; font-size: 20px; color: #1e293b;">Verify Your Email</h2>
    <p style="color: #475569;">Click the button below to verify your email and start planning your study week.</p>
    <a href="%s" style="display: inline-block; margin: 16px 0; padding: 12px 24px; background: #6366f1; color: white; border-radius: 8px; text-decoration: none;">Verify Email</a>
    <p style="color: #94a3b8; font-size: 12px;">This link expires in 24 hours. If you did not create an account, you can ignore this email.</p>
  </div>
</body>
</html>`, verifyURL)

	return s.send(to, subject, body)
}

// SendBurnoutAlert mails the top recommendations of an alert-worthy
// assessment to the user.
func (s *EmailService) SendBurnoutAlert(to, fullName, riskLevel string, recommendations []string) error {
	subject := fmt.Sprintf("Planwise: your burnout risk is %s", riskLevel)

	var items strings.Builder
	for _, rec := range recommendations {
		fmt.Fprintf(&items, "<li style=\"margin: 4px 0; color: #475569;\">%s</li>", rec)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background-color: #f8fafc;">
  <div style="max-width: 480px; margin: 40px auto; background: white; border-radius: 12px; padding: 32px;">
    <h1 style="margin: 0 0 8px; font-size: 24px; color: #1e293b;">Planwise</h1>
    <h2 style="margin: 0 0 16px; font-size: 20px; color: #dc2626;">%s burnout risk detected</h2>
    <p style="color: #475569;">Hi %s, your recent check-ins point to %s burnout risk. Here is what we recommend:</p>
    <ul>%s</ul>
    <p style="color: #475569;">You can let Planwise lighten today's plan from the dashboard.</p>
  </div>
</body>
</html>`, riskLevel, fullName, strings.ToLower(riskLevel), items.String())

	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.devMode {
		log.Printf("📧 [DEV MODE] Email to %s: %s", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := s.host + ":" + s.port

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}
