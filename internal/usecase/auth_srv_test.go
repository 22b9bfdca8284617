package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthTestService(userRepo *stubUserRepo, sessionRepo *stubAuthSessionRepo) AuthService {
	repo := &repository.Repository{
		User:        userRepo,
		AuthSession: sessionRepo,
	}
	config := &utils.Config{
		Auth: utils.AuthConfig{TokenExpiryHours: 24},
	}
	return NewAuthService(repo, config, zap.NewNop())
}

func TestRegisterCreatesCustomerWithHashedPassword(t *testing.T) {
	var created *entity.User
	userRepo := &stubUserRepo{
		create: func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		},
	}
	svc := newAuthTestService(userRepo, &stubAuthSessionRepo{})

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", created.PasswordHash))
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Empty(t, resp.Token)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newAuthTestService(&stubUserRepo{}, &stubAuthSessionRepo{})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := &stubUserRepo{
		create: func(ctx context.Context, user *entity.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := newAuthTestService(userRepo, &stubAuthSessionRepo{})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginIssuesSessionToken(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	userRepo := &stubUserRepo{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			require.Equal(t, user.Email, email)
			return user, nil
		},
	}

	var created *entity.AuthSession
	sessionRepo := &stubAuthSessionRepo{
		create: func(ctx context.Context, session *entity.AuthSession) error {
			created = session
			return nil
		},
	}
	svc := newAuthTestService(userRepo, sessionRepo)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, created.Token.String(), resp.Token)
	require.NotNil(t, resp.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *resp.ExpiresAt, time.Minute)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	userRepo := &stubUserRepo{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc := newAuthTestService(userRepo, &stubAuthSessionRepo{})

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginRejectsUnknownAndInactiveUsers(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}
	svc := newAuthTestService(userRepo, &stubAuthSessionRepo{})

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-pass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	inactive := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "off@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     false,
	}
	userRepo.findByEmail = func(ctx context.Context, email string) (*entity.User, error) {
		return inactive, nil
	}

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "off@example.com",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}
