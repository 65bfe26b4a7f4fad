package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"retrofolio/internal/config"

	"google.golang.org/genai"
)

// Verdict is the classifier's decision on a submission. A safe verdict
// always carries a reason; an unsafe one never does.
type Verdict struct {
	IsSafe bool   `json:"is_safe"`
	Reason string `json:"reason,omitempty"`
}

// ErrNotConfigured is returned by New when no API key is present.
var ErrNotConfigured = errors.New("moderation: no API key configured")

const defaultTimeout = 15 * time.Second

// Moderator classifies guestbook submissions through the Gemini API. When
// enabled it fails closed: every transport or contract error is reported to
// the caller, which treats the submission as unsafe.
type Moderator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func New(ctx context.Context, cfg config.ModerationConfig) (*Moderator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("moderation: create client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Moderator{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

func (m *Moderator) Moderate(ctx context.Context, name, message string) (Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	resp, err := m.client.Models.GenerateContent(ctx,
		m.model,
		genai.Text(buildPrompt(name, message)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.2),
			MaxOutputTokens:  150,
		},
	)
	if err != nil {
		return Verdict{}, fmt.Errorf("moderation: generate content: %w", err)
	}

	return parseVerdict(resp.Text())
}

// parseVerdict enforces the response contract: valid JSON, a boolean
// is_safe, and a string reason whenever is_safe is true.
func parseVerdict(raw string) (Verdict, error) {
	if raw == "" {
		return Verdict{}, errors.New("moderation: empty response")
	}

	var payload struct {
		IsSafe *bool   `json:"is_safe"`
		Reason *string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Verdict{}, fmt.Errorf("moderation: malformed response: %w", err)
	}
	if payload.IsSafe == nil {
		return Verdict{}, errors.New("moderation: is_safe missing or not a boolean")
	}
	if !*payload.IsSafe {
		return Verdict{IsSafe: false}, nil
	}
	if payload.Reason == nil {
		return Verdict{}, errors.New("moderation: reason missing for safe response")
	}
	return Verdict{IsSafe: true, Reason: *payload.Reason}, nil
}

// Disabled approves everything with a fixed reason. It is wired in when no
// API key is configured, which is a deliberate operator choice logged loudly
// at startup, never a silent fallback of a failing classifier.
type Disabled struct{}

func (Disabled) Moderate(ctx context.Context, name, message string) (Verdict, error) {
	return Verdict{IsSafe: true, Reason: "Moderation system offline."}, nil
}
