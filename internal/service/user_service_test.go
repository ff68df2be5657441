package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(testAuthConfig(), repo)

	user, err := svc.Create(context.Background(), UserCreateInput{
		Name:     "Taro",
		Email:    "  Taro@Example.COM ",
		Password: "longenough",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, "taro@example.com", user.Email)
	assert.NotEqual(t, "longenough", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "longenough"))
}

func TestUserService_UpdateKeepsHashWithoutPassword(t *testing.T) {
	repo := newFakeUserRepo(seededUser(t, "taro@example.com", "original-pass", domain.RoleStaff))
	svc := NewUserService(testAuthConfig(), repo)

	updated, err := svc.Update(context.Background(), "user-1", UserUpdateInput{
		Name:  "Taro Renamed",
		Email: "taro@example.com",
		Role:  domain.RoleOwner,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleOwner, updated.Role)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "original-pass"))
}

func TestUserService_UpdateRehashesNewPassword(t *testing.T) {
	repo := newFakeUserRepo(seededUser(t, "taro@example.com", "original-pass", domain.RoleStaff))
	svc := NewUserService(testAuthConfig(), repo)

	newPassword := "replacement-pass"
	updated, err := svc.Update(context.Background(), "user-1", UserUpdateInput{
		Name:     "Taro",
		Email:    "taro@example.com",
		Password: &newPassword,
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "replacement-pass"))
	assert.Error(t, auth.ComparePassword(updated.PasswordHash, "original-pass"))
}

func TestUserService_DeleteOwnAccountConflicts(t *testing.T) {
	repo := newFakeUserRepo(seededUser(t, "owner@example.com", "pass-enough", domain.RoleOwner))
	svc := NewUserService(testAuthConfig(), repo)

	actor := &domain.Identity{ID: "user-1", Role: domain.RoleOwner}
	err := svc.Delete(context.Background(), actor, "user-1")

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.CodeConflict, apiErr.Code)
	assert.Equal(t, "cannot delete your own account", apiErr.Message)
}

func TestUserService_DeleteOtherAccount(t *testing.T) {
	target := seededUser(t, "staff@example.com", "pass-enough", domain.RoleStaff)
	target.ID = "user-2"
	repo := newFakeUserRepo(target)
	svc := NewUserService(testAuthConfig(), repo)

	actor := &domain.Identity{ID: "user-1", Role: domain.RoleOwner}
	require.NoError(t, svc.Delete(context.Background(), actor, "user-2"))

	_, err := repo.GetByID(context.Background(), "user-2")
	assert.Error(t, err)
}
