package stats

import (
	"context"
	"testing"
	"time"
)

func TestVisitors_NilClientFailsOpen(t *testing.T) {
	v := NewVisitors(nil)
	ctx := context.Background()

	if got := v.RecordVisit(ctx); got != 0 {
		t.Fatalf("RecordVisit without redis returned %d, want 0", got)
	}
	if got := v.Count(ctx); got != 0 {
		t.Fatalf("Count without redis returned %d, want 0", got)
	}
}

func TestVisitors_UptimeAdvances(t *testing.T) {
	v := NewVisitors(nil)
	v.started = time.Now().Add(-2 * time.Second)

	if got := v.Uptime(); got < 2*time.Second {
		t.Fatalf("Uptime returned %v, want at least 2s", got)
	}
}
