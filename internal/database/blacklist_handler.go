package database

import (
	"context"
	"errors"
	"strings"

	"retrofolio/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IsIPBlacklisted reports whether the exact address is on the denylist.
func IsIPBlacklisted(ctx context.Context, ip string) (bool, error) {
	if DB == nil {
		return false, errors.New("database not initialised")
	}

	var entry domain.BlacklistedIP
	err := DB.WithContext(ctx).
		Where("ip = ?", ip).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListBlacklistedIPs returns every denylist entry, newest first.
func ListBlacklistedIPs(ctx context.Context) ([]domain.BlacklistedIP, error) {
	if DB == nil {
		return nil, errors.New("database not initialised")
	}

	var entries []domain.BlacklistedIP
	err := DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddBlacklistedIP stores the address. Adding an address that is already
// listed is a no-op, not an error.
func AddBlacklistedIP(ctx context.Context, ip string) error {
	if DB == nil {
		return errors.New("database not initialised")
	}

	ip = strings.TrimSpace(ip)
	if ip == "" {
		return errors.New("empty IP address")
	}
	if len(ip) > 45 {
		return errors.New("IP address too long")
	}

	return DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.BlacklistedIP{IP: ip}).Error
}

// RemoveBlacklistedIP deletes the address. Removing an address that is not
// listed is a no-op.
func RemoveBlacklistedIP(ctx context.Context, ip string) error {
	if DB == nil {
		return errors.New("database not initialised")
	}

	return DB.WithContext(ctx).
		Where("ip = ?", ip).
		Delete(&domain.BlacklistedIP{}).Error
}
