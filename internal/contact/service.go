package contact

import (
	"fmt"
	"log"
)

// Sender delivers a plain-text message. *mail.Mailer satisfies it.
type Sender interface {
	SendPlain(to, subject, text string) error
}

type ContactService struct {
	mail Sender
	to   string
}

func NewContactService(mail Sender, to string) ContactService {
	return ContactService{mail: mail, to: to}
}

// Relay forwards a contact form submission to the site inbox.
func (s *ContactService) Relay(name, email, message string) error {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message)

	if err := s.mail.SendPlain(s.to, "New Contact Form Submission", text); err != nil {
		log.Printf("error relaying contact form from %s: %v", email, err)
		return err
	}

	return nil
}
