package guestbook

import (
	"strings"
	"testing"
)

func TestValidateSubmission_AcceptsValidInput(t *testing.T) {
	if errs := ValidateSubmission("Ann", "Hello"); len(errs) != 0 {
		t.Fatalf("expected no field errors, got %v", errs)
	}

	// Both limits are inclusive.
	name := strings.Repeat("a", MaxNameLength)
	message := strings.Repeat("b", MaxMessageLength)
	if errs := ValidateSubmission(name, message); len(errs) != 0 {
		t.Fatalf("expected max-length input to pass, got %v", errs)
	}
}

func TestValidateSubmission_RejectsEmptyFields(t *testing.T) {
	errs := ValidateSubmission("", "")
	if len(errs) != 2 {
		t.Fatalf("expected errors for both fields, got %v", errs)
	}
	if _, ok := errs["name"]; !ok {
		t.Fatal("expected a name error")
	}
	if _, ok := errs["message"]; !ok {
		t.Fatal("expected a message error")
	}

	if errs := ValidateSubmission("   ", "hi"); len(errs) != 1 {
		t.Fatalf("whitespace-only name should fail validation, got %v", errs)
	}
}

func TestValidateSubmission_RejectsOverlongFields(t *testing.T) {
	errs := ValidateSubmission(strings.Repeat("a", MaxNameLength+1), "hi")
	if _, ok := errs["name"]; !ok {
		t.Fatalf("expected a name length error, got %v", errs)
	}
	if _, ok := errs["message"]; ok {
		t.Fatalf("message should be valid, got %v", errs)
	}

	errs = ValidateSubmission("Ann", strings.Repeat("b", MaxMessageLength+1))
	if _, ok := errs["message"]; !ok {
		t.Fatalf("expected a message length error, got %v", errs)
	}
}

func TestValidateSubmission_CountsRunesNotBytes(t *testing.T) {
	// 100 multi-byte characters are within the limit even though the byte
	// count is far larger.
	name := strings.Repeat("ä", MaxNameLength)
	if errs := ValidateSubmission(name, "hi"); len(errs) != 0 {
		t.Fatalf("expected rune-counted name to pass, got %v", errs)
	}
}
