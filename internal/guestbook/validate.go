package guestbook

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength    = 100
	MaxMessageLength = 500
)

// ValidateSubmission checks the structural constraints on a submission and
// returns one error per violated field. An empty map means the submission is
// structurally valid. No side effects.
func ValidateSubmission(name, message string) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		fieldErrors["name"] = "Name is required."
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		fieldErrors["name"] = "Name must be 100 characters or less."
	}

	if strings.TrimSpace(message) == "" {
		fieldErrors["message"] = "Message is required."
	} else if utf8.RuneCountInString(message) > MaxMessageLength {
		fieldErrors["message"] = "Message must be 500 characters or less."
	}

	return fieldErrors
}
