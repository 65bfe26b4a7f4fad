package guestbook

import (
	"context"
	"time"

	"retrofolio/internal/domain"
	"retrofolio/internal/moderation"

	"github.com/charmbracelet/log"
)

// RateLimitWindow is the minimum spacing between accepted submissions from
// one origin address. A gap of exactly the window is allowed.
const RateLimitWindow = 60 * time.Second

// User-facing rejection messages. Policy rejections are deliberately
// generic: none of them reveals which check fired or why.
const (
	MsgBlocked     = "You are not allowed to post to the guestbook."
	MsgRateLimited = "You are posting too frequently. Please wait a minute and try again."
	MsgRejected    = "Your message could not be posted."
	MsgValidation  = "Validation failed."
	MsgSuccess     = "Entry added successfully!"
	MsgStoreError  = "Could not save your entry. Please try again later."
)

// EntryStore is the persistence surface the pipeline needs.
type EntryStore interface {
	Insert(ctx context.Context, entry *domain.GuestbookEntry) error
	LatestEntryTime(ctx context.Context, origin string) (time.Time, bool, error)
}

// Blocklist answers whether an origin address is on the denylist.
type Blocklist interface {
	Contains(ctx context.Context, origin string) (bool, error)
}

// Moderator classifies a submission as safe or unsafe for publication.
type Moderator interface {
	Moderate(ctx context.Context, name, message string) (moderation.Verdict, error)
}

// Submission is one raw guestbook post attempt.
type Submission struct {
	Name    string
	Message string
	Origin  string
}

// Result reports the outcome of a pipeline run. Exactly one of the failure
// shapes is populated: FieldErrors for validation, Message alone for policy
// rejections and infra failures.
type Result struct {
	Success     bool
	Message     string
	FieldErrors map[string]string
	Entry       *domain.GuestbookEntry
}

// Pipeline runs a submission through validation, the blocklist gate, the
// rate limiter, the content moderator and finally persistence. Each stage
// can short-circuit with its own rejection. The two store-backed gates fail
// open on lookup errors; the moderator fails closed.
type Pipeline struct {
	store     EntryStore
	blocklist Blocklist
	moderator Moderator
	now       func() time.Time
}

type Option func(*Pipeline)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func New(store EntryStore, blocklist Blocklist, moderator Moderator, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:     store,
		blocklist: blocklist,
		moderator: moderator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit runs the pipeline for one submission. The check-then-act sequence
// between the rate-limit read and the insert is not transactional; spacing
// is best-effort under concurrent submissions from one origin.
func (p *Pipeline) Submit(ctx context.Context, sub Submission) Result {
	if fieldErrors := ValidateSubmission(sub.Name, sub.Message); len(fieldErrors) > 0 {
		return Result{Message: MsgValidation, FieldErrors: fieldErrors}
	}

	origin := sub.Origin
	if origin == "" {
		origin = UnknownOrigin
	}

	blocked, err := p.blocklist.Contains(ctx, origin)
	if err != nil {
		log.Error("blocklist lookup failed, failing open", "origin", origin, "error", err)
	} else if blocked {
		return Result{Message: MsgBlocked}
	}

	last, exists, err := p.store.LatestEntryTime(ctx, origin)
	if err != nil {
		log.Error("rate limit lookup failed, failing open", "origin", origin, "error", err)
	} else if exists && p.now().Sub(last) < RateLimitWindow {
		return Result{Message: MsgRateLimited}
	}

	verdict, err := p.moderator.Moderate(ctx, sub.Name, sub.Message)
	if err != nil {
		log.Error("moderation failed, failing closed", "error", err)
		return Result{Message: MsgRejected}
	}
	if !verdict.IsSafe {
		return Result{Message: MsgRejected}
	}

	entry := &domain.GuestbookEntry{
		Name:    sub.Name,
		Message: sub.Message,
		IP:      origin,
	}
	if err := p.store.Insert(ctx, entry); err != nil {
		log.Error("failed to persist guestbook entry", "error", err)
		return Result{Message: MsgStoreError}
	}

	return Result{Success: true, Message: MsgSuccess, Entry: entry}
}
