package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

// UserService handles account lookups and profile updates
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks up a user by email. Email is an index only; all
// relationships are keyed by the user ID.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

var userColumns = map[string]string{
	"name":        "name",
	"pictureUrl":  "picture_url",
	"preferences": "preferences",
}

// UpdateUser applies the recognized fields present in body to the user.
// Email and credits are not updatable through this path.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, body map[string]interface{}) (*model.User, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}

	updates := buildUpdates(body, userColumns)
	if len(updates) == 0 {
		return nil, NewValidationError("No fields to update")
	}

	if prefs, ok := updates["preferences"].(map[string]interface{}); ok {
		updates["preferences"] = model.JSONBMap(prefs)
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, NewPersistenceError("server error", err)
	}
	return s.GetUser(ctx, id)
}
