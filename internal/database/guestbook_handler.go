package database

import (
	"context"
	"errors"
	"time"

	"retrofolio/internal/domain"

	"gorm.io/gorm"
)

// PublicEntryLimit caps how many entries the public read path returns.
const PublicEntryLimit = 50

func InsertGuestbookEntry(ctx context.Context, entry *domain.GuestbookEntry) error {
	if DB == nil {
		return errors.New("database not initialised")
	}

	return DB.WithContext(ctx).Create(entry).Error
}

// GetRecentGuestbookEntries returns the newest entries for public display,
// capped at PublicEntryLimit, descending by creation time.
func GetRecentGuestbookEntries(ctx context.Context) ([]domain.GuestbookEntry, error) {
	if DB == nil {
		return nil, errors.New("database not initialised")
	}

	var entries []domain.GuestbookEntry
	err := DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(PublicEntryLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAllGuestbookEntries returns every entry, newest first, for the admin view.
func GetAllGuestbookEntries(ctx context.Context) ([]domain.GuestbookEntry, error) {
	if DB == nil {
		return nil, errors.New("database not initialised")
	}

	var entries []domain.GuestbookEntry
	err := DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetLatestEntryTime returns the creation time of the newest entry attributed
// to the given origin address. The boolean reports whether one exists.
func GetLatestEntryTime(ctx context.Context, ip string) (time.Time, bool, error) {
	if DB == nil {
		return time.Time{}, false, errors.New("database not initialised")
	}

	var entry domain.GuestbookEntry
	err := DB.WithContext(ctx).
		Where("ip = ?", ip).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return entry.CreatedAt, true, nil
}

// DeleteGuestbookEntry removes an entry by ID. Deleting an ID that does not
// exist is not an error.
func DeleteGuestbookEntry(ctx context.Context, id string) error {
	if DB == nil {
		return errors.New("database not initialised")
	}

	return DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.GuestbookEntry{}).Error
}
