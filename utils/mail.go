package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

func renderEmail(tmpl *template.Template, name string, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func SendEmail(emailTo string, emailSubject string, tmpl *template.Template, name string, data any) error {
	body, err := renderEmail(tmpl, name, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("FROM_EMAIL")); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(emailTo); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(emailSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
