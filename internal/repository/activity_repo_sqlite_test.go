package repository

import (
	"path/filepath"
	"testing"
	"time"

	"image_enhancer/internal/models"
	"image_enhancer/internal/repository/db"
)

// Uses the real sqlite driver: the stored occurred_at layout and the bound
// filter values must agree, which statement mocks cannot verify.
func TestActivityList_TimeBounds_RealDriver(t *testing.T) {
	t.Parallel()

	conn, err := db.InitDB(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	repo := NewActivitySQLite(conn)

	t0 := time.Date(2026, 8, 31, 12, 1, 0, 0, time.UTC)
	for i, ev := range []models.ActivityEvent{
		{AccountID: 7, OccurredAt: t0, Type: "LOGIN", Description: "logged in"},
		{AccountID: 7, OccurredAt: t0.Add(time.Second), Type: "UPLOAD", Description: "image uploaded"},
		{AccountID: 7, OccurredAt: t0.Add(2 * time.Second), Type: "LOGIN", Description: "logged in again"},
	} {
		if err := repo.Append(ctx(t), ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Lower bound is inclusive: an event at exactly from must be returned.
	events, err := repo.List(ctx(t), 7, t0, time.Time{}, "")
	if err != nil {
		t.Fatalf("List from=t0: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events from t0, got %d", len(events))
	}
	if !events[0].OccurredAt.Equal(t0) {
		t.Fatalf("expected first event at %v, got %v", t0, events[0].OccurredAt)
	}

	// Advancing the bound by one second drops exactly the boundary event.
	events, err = repo.List(ctx(t), 7, t0.Add(time.Second), time.Time{}, "")
	if err != nil {
		t.Fatalf("List from=t0+1s: %v", err)
	}
	if len(events) != 2 || events[0].Type != "UPLOAD" {
		t.Fatalf("expected [UPLOAD LOGIN] from t0+1s, got %+v", events)
	}

	// Upper bound is inclusive too.
	events, err = repo.List(ctx(t), 7, time.Time{}, t0.Add(time.Second), "")
	if err != nil {
		t.Fatalf("List to=t0+1s: %v", err)
	}
	if len(events) != 2 || events[1].Type != "UPLOAD" {
		t.Fatalf("expected [LOGIN UPLOAD] up to t0+1s, got %+v", events)
	}
}
