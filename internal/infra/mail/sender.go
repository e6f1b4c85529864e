package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templates embed.FS

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendPasswordReset(to, token string, expiresAt time.Time) error {
	body, err := render("templates/reset_password.html", ResetEmailData{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC1123),
	})
	if err != nil {
		return err
	}

	return s.send(to, "Reset your password", body)
}

func (s *EmailSender) SendLeadConverted(to, company string) error {
	body, err := render("templates/lead_converted.html", ConversionEmailData{
		Company: company,
	})
	if err != nil {
		return err
	}

	return s.send(to, fmt.Sprintf("%s just converted 🎉", company), body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	return nil
}

func render(name string, data interface{}) (string, error) {
	t, err := template.ParseFS(templates, name)
	if err != nil {
		return "", fmt.Errorf("parsing email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("rendering email template: %w", err)
	}

	return body.String(), nil
}
