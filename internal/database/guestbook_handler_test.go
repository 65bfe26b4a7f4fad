package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"retrofolio/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.GuestbookEntry{}, &domain.BlacklistedIP{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	DB = db

	t.Cleanup(func() {
		DB = nil
	})

	return db
}

func TestGuestbookEntryRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	entry := &domain.GuestbookEntry{Name: "Ann", Message: "Hello", IP: "203.0.113.7"}
	if err := InsertGuestbookEntry(ctx, entry); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("insert did not generate an ID")
	}

	entries, err := GetRecentGuestbookEntries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Name != "Ann" || entries[0].Message != "Hello" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if entries[0].CreatedAt.Before(start) || entries[0].CreatedAt.After(time.Now().Add(time.Second)) {
		t.Fatalf("timestamp %v outside the test window", entries[0].CreatedAt)
	}

	if err := DeleteGuestbookEntry(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	entries, err = GetRecentGuestbookEntries(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list after delete, got %d entries", len(entries))
	}

	// Deleting again is a no-op, not an error.
	if err := DeleteGuestbookEntry(ctx, entry.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestGetRecentGuestbookEntries_OrdersAndCaps(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < PublicEntryLimit+5; i++ {
		entry := domain.GuestbookEntry{
			Name:      fmt.Sprintf("user-%d", i),
			Message:   "hi",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("seed entry %d: %v", i, err)
		}
	}

	entries, err := GetRecentGuestbookEntries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != PublicEntryLimit {
		t.Fatalf("expected %d entries, got %d", PublicEntryLimit, len(entries))
	}
	if entries[0].Name != fmt.Sprintf("user-%d", PublicEntryLimit+4) {
		t.Fatalf("expected newest entry first, got %s", entries[0].Name)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Fatalf("entries not in descending order at index %d", i)
		}
	}

	all, err := GetAllGuestbookEntries(ctx)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != PublicEntryLimit+5 {
		t.Fatalf("admin list should be unbounded, got %d", len(all))
	}
}

func TestGetLatestEntryTime(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, exists, err := GetLatestEntryTime(ctx, "203.0.113.7"); err != nil || exists {
		t.Fatalf("expected no prior entry, exists=%v err=%v", exists, err)
	}

	older := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Millisecond)
	newer := older.Add(5 * time.Minute)
	for _, ts := range []time.Time{older, newer} {
		entry := domain.GuestbookEntry{Name: "Ann", Message: "hi", IP: "203.0.113.7", CreatedAt: ts}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	got, exists, err := GetLatestEntryTime(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("latest entry time: %v", err)
	}
	if !exists {
		t.Fatal("expected a prior entry")
	}
	if !got.Equal(newer) {
		t.Fatalf("latest entry time = %v, want %v", got, newer)
	}
}

func TestBlacklistHandlers(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	blocked, err := IsIPBlacklisted(ctx, "203.0.113.7")
	if err != nil || blocked {
		t.Fatalf("fresh database should not block, blocked=%v err=%v", blocked, err)
	}

	if err := AddBlacklistedIP(ctx, " 203.0.113.7 "); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Duplicate add is a no-op.
	if err := AddBlacklistedIP(ctx, "203.0.113.7"); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}

	blocked, err = IsIPBlacklisted(ctx, "203.0.113.7")
	if err != nil || !blocked {
		t.Fatalf("expected address to be blocked, blocked=%v err=%v", blocked, err)
	}

	entries, err := ListBlacklistedIPs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].IP != "203.0.113.7" {
		t.Fatalf("unexpected blacklist contents %+v", entries)
	}

	if err := RemoveBlacklistedIP(ctx, "203.0.113.7"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := RemoveBlacklistedIP(ctx, "203.0.113.7"); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}

	blocked, err = IsIPBlacklisted(ctx, "203.0.113.7")
	if err != nil || blocked {
		t.Fatalf("expected address to be unblocked, blocked=%v err=%v", blocked, err)
	}
}

func TestAddBlacklistedIP_RejectsInvalidInput(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := AddBlacklistedIP(ctx, "   "); err == nil {
		t.Fatal("expected error for empty address")
	}

	long := make([]byte, 46)
	for i := range long {
		long[i] = 'a'
	}
	if err := AddBlacklistedIP(ctx, string(long)); err == nil {
		t.Fatal("expected error for oversized address")
	}
}

func TestHandlersWithoutDatabase(t *testing.T) {
	ctx := context.Background()

	if err := InsertGuestbookEntry(ctx, &domain.GuestbookEntry{}); err == nil {
		t.Fatal("expected error without database")
	}
	if _, err := GetRecentGuestbookEntries(ctx); err == nil {
		t.Fatal("expected error without database")
	}
	if _, _, err := GetLatestEntryTime(ctx, "x"); err == nil {
		t.Fatal("expected error without database")
	}
	if _, err := IsIPBlacklisted(ctx, "x"); err == nil {
		t.Fatal("expected error without database")
	}
}
