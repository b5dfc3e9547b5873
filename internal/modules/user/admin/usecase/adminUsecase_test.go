package usecase_test

import (
	"testing"

	"league/internal/models"
	"league/internal/modules/user"
	"league/internal/modules/user/admin"
	adminRp "league/internal/modules/user/admin/repo"
	adminDb "league/internal/modules/user/admin/repo/database"
	"league/internal/modules/user/admin/usecase"
	"league/internal/testutil"
	"league/pkg/lib/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) *usecase.AdminUseCase {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, _ := testutil.NewMedia(t)
	repo := adminRp.NewRepo(adminDb.NewAdminDatabase(db, testutil.Logger()), nil)
	return usecase.NewAdminUseCase(repo, mediaUC, testutil.Logger())
}

func createUser(t *testing.T, uc *usecase.AdminUseCase, email string) *user.UserResponse {
	t.Helper()
	u, err := uc.CreateUser(admin.CreateUserRequest{
		Email:    email,
		Name:     "Jon",
		Password: "secret123",
		Role:     string(models.RoleUser),
	})
	require.NoError(t, err)
	return u
}

func TestCreateUser(t *testing.T) {
	uc := newUseCase(t)

	created := createUser(t, uc, "jon@example.com")
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Name)
	assert.Equal(t, "Jon", *created.Name)

	_, err := uc.CreateUser(admin.CreateUserRequest{
		Email: "jon@example.com", Name: "Other", Password: "secret123", Role: "admin",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	users, err := uc.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateUser(t *testing.T) {
	uc := newUseCase(t)
	jon := createUser(t, uc, "jon@example.com")
	createUser(t, uc, "ana@example.com")

	updated, err := uc.UpdateUser(jon.ID, admin.UpdateUserRequest{
		Role: patch.Of(string(models.RoleAdmin)),
		Name: patch.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Nil(t, updated.Name)
	assert.Equal(t, "jon@example.com", updated.Email)

	// свой же email не считается занятым
	_, err = uc.UpdateUser(jon.ID, admin.UpdateUserRequest{Email: patch.Of("jon@example.com")})
	require.NoError(t, err)

	_, err = uc.UpdateUser(jon.ID, admin.UpdateUserRequest{Email: patch.Of("ana@example.com")})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = uc.UpdateUser(jon.ID, admin.UpdateUserRequest{Role: patch.Null[string]()})
	assert.ErrorIs(t, err, user.ErrRequiredFieldEmpty)

	_, err = uc.UpdateUser(999999, admin.UpdateUserRequest{Name: patch.Of("x")})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	uc := newUseCase(t)
	jon := createUser(t, uc, "jon@example.com")

	require.NoError(t, uc.DeleteUser(jon.ID))

	_, err := uc.GetUser(jon.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	assert.ErrorIs(t, uc.DeleteUser(jon.ID), user.ErrUserNotFound)
}
