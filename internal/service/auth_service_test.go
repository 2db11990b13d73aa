package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userUUID string) error {
	args := m.Called(ctx, userUUID)
	return args.Error(0)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		JWTSecretKey:        "test-secret",
		AccessTokenDuration: time.Hour,
	}

	user := &models.User{
		UserUUID: uuid.New().String(),
		Username: "alice",
		RoleUUID: uuid.New().String(),
		IsActive: true,
	}

	t.Run("Login issues a signed token with identity claims", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("VerifyPassword", mock.Anything, "alice", "password123").Return(user, nil)

		svc := NewAuthService(userRepo, cfg)

		loggedIn, tokenString, err := svc.Login(ctx, "alice", "password123")

		require.NoError(t, err)
		assert.Equal(t, user.UserUUID, loggedIn.UserUUID)
		require.NotEmpty(t, tokenString)

		token, err := svc.ValidateToken(tokenString)
		require.NoError(t, err)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, user.UserUUID, claims["userUuid"])
		assert.Equal(t, "alice", claims["username"])
		assert.Equal(t, user.RoleUUID, claims["roleUuid"])
	})

	t.Run("Deactivated account cannot log in", func(t *testing.T) {
		inactive := &models.User{
			UserUUID: uuid.New().String(),
			Username: "bob",
			IsActive: false,
		}

		userRepo := new(MockUserRepository)
		userRepo.On("VerifyPassword", mock.Anything, "bob", "password123").Return(inactive, nil)

		svc := NewAuthService(userRepo, cfg)

		loggedIn, tokenString, err := svc.Login(ctx, "bob", "password123")

		assert.Nil(t, loggedIn)
		assert.Empty(t, tokenString)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("VerifyPassword", mock.Anything, "ghost", "password123").
			Return(nil, &repository.NotFoundError{Entity: "User", ID: "ghost"})

		svc := NewAuthService(userRepo, cfg)

		loggedIn, _, err := svc.Login(ctx, "ghost", "password123")

		assert.Nil(t, loggedIn)
		assert.Error(t, err)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecretKey:        "test-secret",
		AccessTokenDuration: time.Hour,
	}
	svc := NewAuthService(new(MockUserRepository), cfg)

	t.Run("Garbage token", func(t *testing.T) {
		token, err := svc.ValidateToken("not-a-token")

		assert.Nil(t, token)
		assert.Error(t, err)
	})

	t.Run("Token signed with another key", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userUuid": uuid.New().String(),
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		signed, err := other.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		token, err := svc.ValidateToken(signed)

		assert.Nil(t, token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userUuid": uuid.New().String(),
			"exp":      time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := expired.SignedString([]byte(cfg.JWTSecretKey))
		require.NoError(t, err)

		token, err := svc.ValidateToken(signed)

		assert.Nil(t, token)
		assert.Error(t, err)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{JWTSecretKey: "test-secret"}
	roleUUID := uuid.New().String()

	t.Run("Register delegates to the repository", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), "password123").Return(nil)

		svc := NewAuthService(userRepo, cfg)

		user, err := svc.Register(ctx, RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
			RoleUUID: roleUUID,
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsActive)
		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate surfaces as a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), "password123").
			Return(&repository.ConflictError{Entity: "User", Field: "email"})

		svc := NewAuthService(userRepo, cfg)

		user, err := svc.Register(ctx, RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
			RoleUUID: roleUUID,
		})

		assert.Nil(t, user)
		assert.True(t, repository.IsConflict(err))
	})
}
