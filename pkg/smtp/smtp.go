package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendContactMessage(fromName string, fromEmail string, phone string, message string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail}
}

// SendContactMessage forwards a contact-page submission to the blog owner's inbox.
func (s *smtp) SendContactMessage(fromName string, fromEmail string, phone string, message string) error {
	to := []string{s.mail}

	body := []byte(fmt.Sprintf("To: %s\r\nSubject: New contact message from %s\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\n\r\n%s",
		s.mail, fromName, fromName, fromEmail, phone, message))

	err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, body)
	if err != nil {
		return err
	}

	return nil
}
