package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/omsai/pos-backend/pkg/apperror"
	"github.com/omsai/pos-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func newAuthService(t *testing.T) (*AuthService, *utils.JWTManager) {
	t.Helper()
	repo := newFakeUserRepo()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username: "admin",
		Password: string(hashed),
	}))

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(repo, jwtManager), jwtManager
}

func TestLoginSuccess(t *testing.T) {
	svc, jwtManager := newAuthService(t)

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	// Unknown user and wrong password produce the same error, so responses
	// do not reveal which usernames exist.
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
