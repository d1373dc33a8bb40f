package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"intake-backend/internal/domain/entity"
)

// MailNotifier delivers contact notifications over SMTP.
// Authentication uses a username plus app password, the scheme consumer
// mail providers expose for machine senders.
type MailNotifier struct {
	client *mail.Client
	from   string
	to     string
}

// MailConfig configures the SMTP notifier.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the fixed operational recipient.
	To string
}

// NewMailNotifier creates an SMTP-backed notifier.
// Returns an error if the client cannot be constructed from the config.
func NewMailNotifier(cfg MailConfig) (*MailNotifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}
	return &MailNotifier{
		client: client,
		from:   cfg.Username,
		to:     cfg.To,
	}, nil
}

// NotifyContact sends the six contact fields as a plain-text message.
func (n *MailNotifier) NotifyContact(ctx context.Context, contact *entity.Contact) error {
	if contact == nil {
		return fmt.Errorf("nil contact")
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New contact form submission from %s %s",
		contact.FirstName, contact.LastName))
	msg.SetBodyString(mail.TypeTextPlain, formatContactBody(contact))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// formatContactBody renders the contact fields as a human-readable message.
func formatContactBody(c *entity.Contact) string {
	var b strings.Builder
	b.WriteString("A new contact form submission was received.\n\n")
	fmt.Fprintf(&b, "First name: %s\n", c.FirstName)
	fmt.Fprintf(&b, "Last name:  %s\n", c.LastName)
	fmt.Fprintf(&b, "Email:      %s\n", c.Email)
	fmt.Fprintf(&b, "Country:    %s\n", c.Country)
	fmt.Fprintf(&b, "Problems:   %s\n", c.Problems)
	fmt.Fprintf(&b, "About:      %s\n", c.About)
	return b.String()
}
