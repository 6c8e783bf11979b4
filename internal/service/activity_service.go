package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"image_enhancer/internal/models"
	"image_enhancer/internal/repository"
)

// Activity event types.
const (
	EventRegister       = "REGISTER"
	EventLogin          = "LOGIN"
	EventUpload         = "UPLOAD"
	EventSettingsUpdate = "SETTINGS_UPDATE"
)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// ActivityService keeps an append-only per-account history of auth and asset
// operations. Appends are best-effort; callers must not fail a user-facing
// operation because the history write failed.
type ActivityService struct {
	activityRepo repository.Activity
}

func NewActivityService(activityRepo repository.Activity) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Record appends one event for an account.
func (s *ActivityService) Record(ctx context.Context, accountID int, typ, description string, meta any) error {
	return s.activityRepo.Append(ctx, models.ActivityEvent{
		AccountID:   accountID,
		Type:        normalizeEventType(typ),
		Description: description,
		Metadata:    meta,
	})
}

// List returns an account's events matching the filter, oldest first.
func (s *ActivityService) List(ctx context.Context, accountID int, f LogFilter) ([]models.ActivityEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.activityRepo.List(ctx, accountID, from, to, normalizeEventType(f.Type))
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}
