package guestbook

import (
	"context"
	"time"

	"retrofolio/internal/database"
	"retrofolio/internal/domain"
)

// DatabaseStore backs the pipeline with the shared database layer.
type DatabaseStore struct{}

func (DatabaseStore) Insert(ctx context.Context, entry *domain.GuestbookEntry) error {
	return database.InsertGuestbookEntry(ctx, entry)
}

func (DatabaseStore) LatestEntryTime(ctx context.Context, origin string) (time.Time, bool, error) {
	return database.GetLatestEntryTime(ctx, origin)
}

// DatabaseBlocklist consults the persisted denylist by exact address match.
type DatabaseBlocklist struct{}

func (DatabaseBlocklist) Contains(ctx context.Context, origin string) (bool, error) {
	return database.IsIPBlacklisted(ctx, origin)
}
