package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

func seedUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Credits:      10,
		Preferences:  model.JSONBMap{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	user := seedUser(t, db, "Alice", "alice@example.com")

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	user := seedUser(t, db, "Alice", "alice@example.com")

	got, err := svc.GetUserByEmail(ctx, "  ALICE@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()
	user := seedUser(t, db, "Alice", "alice@example.com")

	updated, err := svc.UpdateUser(ctx, user.ID, map[string]interface{}{
		"name":        "Alice B.",
		"pictureUrl":  "https://img.example.com/alice.png",
		"preferences": map[string]interface{}{"vegetarian": true},
		"email":       "hacker@example.com",
		"credits":     9999,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, "https://img.example.com/alice.png", updated.PictureURL)
	assert.Equal(t, true, updated.Preferences["vegetarian"])
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, 10, updated.Credits)
}

func TestUpdateUserNoFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, "Alice", "alice@example.com")

	_, err := svc.UpdateUser(context.Background(), user.ID, map[string]interface{}{
		"email": "other@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, "No fields to update", err.(*Error).Message)
}
