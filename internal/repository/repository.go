package repository

import (
	"context"
	"database/sql"
	"time"

	"image_enhancer/internal/models"
)

type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetSettings(id int) (models.AccountSettings, error)
	UpdateSettings(id int, phone, profilePic *string) error
}

type Activity interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, accountID int, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users    Users
	Activity Activity
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Activity: NewActivitySQLite(db),
	}
}
