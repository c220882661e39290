package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"returnex/internal/domain/entity"
	"returnex/pkg/errors"
)

type fakeAdminRepo struct {
	users map[string]*entity.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: map[string]*entity.AdminUser{}}
}

func (r *fakeAdminRepo) Create(ctx context.Context, user *entity.AdminUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.NotFound("Admin user", nil)
	}
	clone := *user
	return &clone, nil
}

func TestLoginAndVerifyToken(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := NewAuthUseCase(repo, "test-secret", 3600)

	err := uc.EnsureDefaultAdmin(context.Background(), "admin@example.com", "changeme123", "Administrator")
	assert.NoError(t, err)

	token, user, err := uc.Login(context.Background(), "admin@example.com", "changeme123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@example.com", user.Email)

	identity, err := uc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, "Administrator", identity.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := NewAuthUseCase(repo, "test-secret", 3600)

	err := uc.EnsureDefaultAdmin(context.Background(), "admin@example.com", "changeme123", "Administrator")
	assert.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "admin@example.com", "wrong-password")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	// unknown accounts get the same answer as wrong passwords
	_, _, err = uc.Login(context.Background(), "nobody@example.com", "changeme123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyTokenRejectsForgedToken(t *testing.T) {
	uc := NewAuthUseCase(newFakeAdminRepo(), "test-secret", 3600)

	_, err := uc.VerifyToken("not-a-jwt")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	other := NewAuthUseCase(newFakeAdminRepo(), "other-secret", 3600)
	assert.NoError(t, other.EnsureDefaultAdmin(context.Background(), "admin@example.com", "changeme123", "Administrator"))

	token, _, err := other.Login(context.Background(), "admin@example.com", "changeme123")
	assert.NoError(t, err)

	_, err = uc.VerifyToken(token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	repo := newFakeAdminRepo()
	uc := NewAuthUseCase(repo, "test-secret", 3600)

	assert.NoError(t, uc.EnsureDefaultAdmin(context.Background(), "admin@example.com", "changeme123", "Administrator"))
	first := repo.users["admin@example.com"].PasswordHash

	assert.NoError(t, uc.EnsureDefaultAdmin(context.Background(), "admin@example.com", "different-pass", "Administrator"))
	assert.Equal(t, first, repo.users["admin@example.com"].PasswordHash, "existing account is left untouched")
}
