package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"image_enhancer/internal/models"
)

// ErrDuplicateUsername reports a username that is already taken. Uniqueness
// lives in the UNIQUE constraint, not a pre-check, so concurrent registrations
// cannot race past each other.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username FROM users WHERE id = ?`
	selectSettingsSQL       = `SELECT username, phone, profile_pic FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user with its password hash. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID resolves an id to its identity fields only (no hash, no profile
// data); this is the form session resolution uses. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByIDSQL, id).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id %d: %w", id, err)
	}
	return &u, nil
}

// GetSettings returns the profile view for an account.
func (r *UserRepository) GetSettings(id int) (models.AccountSettings, error) {
	var (
		s          models.AccountSettings
		phone, pic sql.NullString
	)
	err := r.db.QueryRow(selectSettingsSQL, id).Scan(&s.Username, &phone, &pic)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccountSettings{}, fmt.Errorf("settings for user id %d: %w", id, sql.ErrNoRows)
		}
		return models.AccountSettings{}, fmt.Errorf("select settings for user id %d: %w", id, err)
	}
	s.Phone = phone.String
	s.ProfilePic = pic.String
	return s, nil
}

// UpdateSettings writes only the fields that are present; nil means "leave
// untouched". Both nil is a no-op.
func (r *UserRepository) UpdateSettings(id int, phone, profilePic *string) error {
	var (
		sets []string
		args []any
	)
	if phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *phone)
	}
	if profilePic != nil {
		sets = append(sets, "profile_pic = ?")
		args = append(args, *profilePic)
	}
	if len(sets) == 0 {
		return nil
	}

	q := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	if _, err := r.db.Exec(q, args...); err != nil {
		return fmt.Errorf("update settings for user id %d: %w", id, err)
	}
	return nil
}
