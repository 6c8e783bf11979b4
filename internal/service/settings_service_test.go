package service

import (
	"errors"
	"testing"

	"image_enhancer/internal/models"
)

func TestSettingsService_Get(t *testing.T) {
	mock := &mockUsersRepo{
		GetSettingsFn: func(id int) (models.AccountSettings, error) {
			return models.AccountSettings{Username: "alice", Phone: "555", ProfilePic: "1/p.png"}, nil
		},
	}
	svc := NewSettingsService(mock)

	s, err := svc.Get(1)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if s.Username != "alice" || s.Phone != "555" || s.ProfilePic != "1/p.png" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSettingsService_Update_PartialMerge(t *testing.T) {
	// Backing record the mock mutates field-by-field, mimicking the store's
	// merge semantics.
	current := models.AccountSettings{Username: "alice", Phone: "", ProfilePic: ""}
	mock := &mockUsersRepo{
		GetSettingsFn: func(id int) (models.AccountSettings, error) {
			return current, nil
		},
		UpdateSettingsFn: func(id int, phone, profilePic *string) error {
			if phone != nil {
				current.Phone = *phone
			}
			if profilePic != nil {
				current.ProfilePic = *profilePic
			}
			return nil
		},
	}
	svc := NewSettingsService(mock)

	phone := " 555 "
	s, err := svc.Update(1, &phone, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if s.Phone != "555" {
		t.Fatalf("expected trimmed phone '555', got %q", s.Phone)
	}
	if s.ProfilePic != "" {
		t.Fatalf("profile pic must be untouched, got %q", s.ProfilePic)
	}

	pic := "1/profile_1_a.png"
	s, err = svc.Update(1, nil, &pic)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if s.Phone != "555" {
		t.Fatalf("phone must survive a pic-only update, got %q", s.Phone)
	}
	if s.ProfilePic != pic {
		t.Fatalf("expected profile pic %q, got %q", pic, s.ProfilePic)
	}

	// No-arg call is a no-op that still returns current settings.
	s, err = svc.Update(1, nil, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if s.Phone != "555" || s.ProfilePic != pic {
		t.Fatalf("no-op update changed settings: %+v", s)
	}
}

func TestSettingsService_Update_RepoError(t *testing.T) {
	mock := &mockUsersRepo{
		UpdateSettingsFn: func(id int, phone, profilePic *string) error {
			return errors.New("db down")
		},
		GetSettingsFn: func(id int) (models.AccountSettings, error) {
			t.Fatal("GetSettings should not be called after a failed update")
			return models.AccountSettings{}, nil
		},
	}
	svc := NewSettingsService(mock)

	phone := "555"
	if _, err := svc.Update(1, &phone, nil); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
