package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/dto/request"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestRegister(t *testing.T) {
	repo, userRepo, sessionRepo, _, _, _, _, _ := newMockRepository()

	var createdUser *entity.User
	userRepo.CreateFunc = func(ctx context.Context, user *entity.User) error {
		createdUser = user
		return nil
	}

	var createdSession *entity.Session
	sessionRepo.CreateFunc = func(ctx context.Context, session *entity.Session) error {
		createdSession = session
		return nil
	}

	service := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NotNil(t, createdUser)
	assert.Equal(t, "alice", createdUser.Username)
	assert.Equal(t, entity.RoleCustomer, createdUser.Role)
	assert.NotEqual(t, "secret123", createdUser.PasswordHash, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("secret123", createdUser.PasswordHash))

	require.NotNil(t, createdSession)
	assert.Equal(t, createdUser.ID, createdSession.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), createdSession.ExpiresAt, time.Minute)

	assert.Equal(t, createdSession.Token.String(), resp.Token)
	assert.Equal(t, "alice", resp.Username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo, userRepo, _, _, _, _, _, _ := newMockRepository()

	userRepo.CreateFunc = func(ctx context.Context, user *entity.User) error {
		return fmt.Errorf("username or email already taken: %w", entity.ErrConflict)
	}

	service := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestRegister_InvalidPayload(t *testing.T) {
	repo, _, _, _, _, _, _, _ := newMockRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	tests := []struct {
		name string
		req  *request.RegisterRequest
	}{
		{"short username", &request.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "secret123"}},
		{"bad email", &request.RegisterRequest{Username: "alice", Email: "nope", Password: "secret123"}},
		{"short password", &request.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, entity.ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	repo, userRepo, sessionRepo, _, _, _, _, _ := newMockRepository()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}

	userRepo.FindByUsernameFunc = func(ctx context.Context, username string) (*entity.User, error) {
		if username == user.Username {
			return user, nil
		}
		return nil, fmt.Errorf("user %s: %w", username, entity.ErrNotFound)
	}
	sessionRepo.CreateFunc = func(ctx context.Context, session *entity.Session) error {
		return nil
	}

	service := NewAuthService(repo, testConfig(), zap.NewNop())

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := service.Login(context.Background(), &request.LoginRequest{
			Username: "alice",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID.String(), resp.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &request.LoginRequest{
			Username: "alice",
			Password: "wrongpass",
		})
		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	})

	t.Run("unknown username reads as unauthorized", func(t *testing.T) {
		_, err := service.Login(context.Background(), &request.LoginRequest{
			Username: "mallory",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	repo, _, sessionRepo, _, _, _, _, _ := newMockRepository()

	var revoked string
	sessionRepo.RevokeFunc = func(ctx context.Context, token string) error {
		revoked = token
		return nil
	}

	service := NewAuthService(repo, testConfig(), zap.NewNop())

	token := uuid.New().String()
	require.NoError(t, service.Logout(context.Background(), token))
	assert.Equal(t, token, revoked)

	assert.ErrorIs(t, service.Logout(context.Background(), ""), entity.ErrUnauthorized)
}
