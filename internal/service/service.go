package service

import (
	"context"
	"io"
	"time"

	"image_enhancer/internal/models"
	"image_enhancer/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	// ResolveUser re-derives the account behind a parsed token. A token whose
	// id no longer resolves is treated as anonymous by the caller.
	ResolveUser(id int) (*models.User, error)
}

// Settings exposes the mutable profile fields (phone, profile picture ref).
type Settings interface {
	Get(id int) (models.AccountSettings, error)
	Update(id int, phone, profilePic *string) (models.AccountSettings, error)
}

// Assets validates, names and writes uploaded files under per-account
// directories beneath the storage root.
type Assets interface {
	ValidExtension(filename string) bool
	Store(accountID int, r io.Reader, filename, purpose string) (string, error)
	Resolve(relPath string) (string, error)
	Enhance(relPath string) (string, error)
}

// ActivityLog records and lists per-account activity history.
type ActivityLog interface {
	Record(ctx context.Context, accountID int, typ, description string, meta any) error
	List(ctx context.Context, accountID int, f LogFilter) ([]models.ActivityEvent, error)
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "REGISTER", "LOGIN", "UPLOAD", "SETTINGS_UPDATE"
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Settings
	Assets
	ActivityLog
}

// NewService wires the repository layer into concrete services. The signing
// key secures session tokens; storageRoot is the base directory for uploads.
func NewService(repos *repository.Repository, signingKey, storageRoot string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Settings:      NewSettingsService(repos.Users),
		Assets:        NewAssetService(storageRoot),
		ActivityLog:   NewActivityService(repos.Activity),
	}
}
