// Package mail sends transactional notifications over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// Sender delivers notification emails through an SMTP relay.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// SendLeadAssigned notifies an agent that a lead was handed to them.
func (s *Sender) SendLeadAssigned(event ports.LeadAssignedEvent) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", event.AgentEmail)
	m.SetHeader("Subject", fmt.Sprintf("New lead assigned: %s", event.LeadName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThe lead %q has been assigned to you. Open your leads view to follow up.\n",
		event.AgentName, event.LeadName,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send assignment mail: %w", err)
	}
	return nil
}
