package mail

import (
	"context"
	"testing"

	"retrofolio/internal/config"
)

func TestValidateContact(t *testing.T) {
	if errs := ValidateContact("Ann", "ann@example.com", "Hello"); len(errs) != 0 {
		t.Fatalf("expected valid contact form, got %v", errs)
	}

	errs := ValidateContact("", "not-an-email", "")
	if len(errs) != 3 {
		t.Fatalf("expected errors for all three fields, got %v", errs)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing %s error in %v", field, errs)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"ann@example.com":     true,
		"a.b+c@sub.domain.io": true,
		"":                    false,
		"plainaddress":        false,
		"@example.com":        false,
		"ann@":                false,
		"ann@example":         false,
	}

	for email, want := range cases {
		if got := IsValidEmail(email); got != want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", email, got, want)
		}
	}
}

func TestMailerConfigured(t *testing.T) {
	unconfigured := New(config.MailConfig{})
	if unconfigured.Configured() {
		t.Fatal("mailer without API key must report unconfigured")
	}

	noRecipient := New(config.MailConfig{APIKey: "re_test"})
	if noRecipient.Configured() {
		t.Fatal("mailer without recipient must report unconfigured")
	}

	configured := New(config.MailConfig{APIKey: "re_test", To: "me@example.com"})
	if !configured.Configured() {
		t.Fatal("mailer with key and recipient must report configured")
	}
}

func TestSend_UnconfiguredFails(t *testing.T) {
	m := New(config.MailConfig{})
	if err := m.Send(context.Background(), "Ann", "ann@example.com", "hi"); err == nil {
		t.Fatal("expected error from unconfigured mailer")
	}
}
