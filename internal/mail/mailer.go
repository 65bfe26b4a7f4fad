package mail

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"retrofolio/internal/config"

	"github.com/resend/resend-go/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateContact checks the contact form fields and returns one error per
// violated field.
func ValidateContact(name, email, message string) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		fieldErrors["name"] = "Name is required."
	}
	if !IsValidEmail(email) {
		fieldErrors["email"] = "Invalid email address."
	}
	if strings.TrimSpace(message) == "" {
		fieldErrors["message"] = "Message is required."
	}

	return fieldErrors
}

// Mailer dispatches contact-form messages through Resend. A mailer without
// an API key is unconfigured; callers surface that as a server
// configuration error rather than an authentication or validation one.
type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

func New(cfg config.MailConfig) *Mailer {
	m := &Mailer{
		from: cfg.From,
		to:   cfg.To,
	}
	if cfg.APIKey != "" {
		m.client = resend.NewClient(cfg.APIKey)
	}
	return m
}

func (m *Mailer) Configured() bool {
	return m != nil && m.client != nil && m.to != ""
}

// Send delivers the message with the submitter as reply-to. Provider error
// strings are returned verbatim; the contact route surfaces them to the
// caller unchanged.
func (m *Mailer) Send(ctx context.Context, name, replyTo, message string) error {
	if !m.Configured() {
		return fmt.Errorf("mail service is not configured")
	}

	html := fmt.Sprintf(
		"<p>You received a new message from your portfolio contact form:</p>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(replyTo),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	)

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("New Contact Message from %s", name),
		ReplyTo: replyTo,
		Html:    html,
	})
	return err
}
