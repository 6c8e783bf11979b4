package service

import (
	"strings"

	"image_enhancer/internal/models"
	"image_enhancer/internal/repository"
)

// SettingsService merges partial profile updates against the user store.
type SettingsService struct {
	users repository.Users
}

func NewSettingsService(users repository.Users) *SettingsService {
	return &SettingsService{users: users}
}

// Get returns the current settings view for an account.
func (s *SettingsService) Get(id int) (models.AccountSettings, error) {
	return s.users.GetSettings(id)
}

// Update writes whichever of phone/profilePic is present and leaves the rest
// of the record untouched. Calling with neither is a no-op that still returns
// the current settings. Last write wins; there is no concurrency token.
func (s *SettingsService) Update(id int, phone, profilePic *string) (models.AccountSettings, error) {
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		phone = &trimmed
	}
	if err := s.users.UpdateSettings(id, phone, profilePic); err != nil {
		return models.AccountSettings{}, err
	}
	return s.users.GetSettings(id)
}
