package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerification(toEmail, token string) error
	SendWatchDigest(toEmail, feedLabel string, titles []string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendVerification(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verify your ABC Research account")

	link := fmt.Sprintf("%s/verify?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to ABC Research!</h2>
			<p>Click the link below to verify your account:</p>
			<p><a href="%s">%s</a></p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, link, link)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send verification to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendWatchDigest(toEmail, feedLabel string, titles []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New items in watched feed: %s", feedLabel))

	items := ""
	for _, t := range titles {
		items += fmt.Sprintf("<li>%s</li>", t)
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>Your watched feed picked up new items:</p>
			<ul>%s</ul>
			<p>Open the dashboard to read them.</p>
		</div>
	`, feedLabel, items)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send digest to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}
