package services

import (
	"testing"

	"backend/models"
	"backend/repositories"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repositories.ErrUserExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	user, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", user.Password)
	assert.True(t, utils.CheckPasswordHash("s3cretpass", user.Password))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@example.com", "otherpass1")
	assert.ErrorIs(t, err, repositories.ErrUserExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Register("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	token, err := svc.Login("alice", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
