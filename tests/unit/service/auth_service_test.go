package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"awaaz/internal/config"
	"awaaz/internal/domain"
	"awaaz/internal/service"
	"awaaz/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "awaaz-test",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           uuid.New(),
		Email:        "ravi@example.com",
		Phone:        "9876543210",
		PasswordHash: hashPassword(t, password),
		FullName:     "Ravi Kumar",
		Role:         domain.RoleMember,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ravi@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleMember, claims.Role)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(activeUser(t, "correct-password"), nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ravi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "irrelevant",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestLogin_PhoneOnlyAccount(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "anything")
	user.PasswordHash = ""
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "anything",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordLoginNotAllowed)
}

func TestRegister_CreatesMemberAndTokens(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(nil)

	user, pair, err := svc.Register(context.Background(), service.RegisterInput{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		Password: "correct-password",
		Location: "Bengaluru",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct-password", created.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	userRepo.AssertExpectations(t)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	// An access token must not be usable as a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser(t, "correct-password")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret"
	other := service.NewAuthService(userRepo, otherCfg)
	_, err = other.ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestTokensForUser_InactiveUser(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	user := &domain.User{ID: uuid.New(), IsActive: false}
	_, err := svc.TokensForUser(user)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
