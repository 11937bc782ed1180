package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

// UserStore handles user rows in the sqlite database.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new user row. Username and email uniqueness is
// enforced by the engine; concurrent registrations with the same value
// race at the constraint and all but one come back as a conflict.
func (s *UserStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.conflictField(ctx, u)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// conflictField names the unique column a duplicate-key error hit.
func (s *UserStore) conflictField(ctx context.Context, u *models.User) error {
	var n int64
	s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", u.Username).Count(&n)
	if n > 0 {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// GetByIdentifier finds a user by username or email.
func (s *UserStore) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate returns the full user row on an exact identifier and
// password match. Unknown identifier and wrong password are
// indistinguishable on purpose.
func (s *UserStore) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("(username = ? OR email = ?) AND password = ?", identifier, identifier, password).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile renames and/or re-avatars the user identified by
// username. Jobs and messages keep the old owner string; that drift is
// inherent to the denormalized ownership model. Returns the updated row.
func (s *UserStore) UpdateProfile(ctx context.Context, username, newUsername, avatar string, age int) (*models.User, error) {
	updates := map[string]any{}
	if newUsername != "" {
		updates["username"] = newUsername
	}
	if avatar != "" {
		updates["avatar"] = avatar
	}
	if age > 0 {
		updates["age"] = age
	}
	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("username = ?", username).
			Updates(updates).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}
	if newUsername != "" {
		username = newUsername
	}
	return s.GetByIdentifier(ctx, username)
}
