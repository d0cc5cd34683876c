package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/repositories/mockrepo"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/utils"
)

func TestAuthService_Register(t *testing.T) {
	repo := &mockrepo.UserRepo{}
	svc := NewAuthService(repo, "secret", time.Hour)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "gm" && u.Email == "gm@example.com" && utils.CheckPasswordHash("hunter222", u.HashedPassword)
	})).Return(nil).Once()

	u, err := svc.Register(context.Background(), schemas.UserCreate{Username: " gm ", Email: "GM@example.com", Password: "hunter222"})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter222", u.HashedPassword)
	repo.AssertExpectations(t)
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	tests := []struct {
		repoErr error
		want    error
	}{
		{repositories.ErrUserUsernameConflict, ErrUsernameConflict},
		{repositories.ErrUserEmailConflict, ErrUserEmailConflict},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			repo := &mockrepo.UserRepo{}
			repo.On("Create", mock.Anything, mock.Anything).Return(tt.repoErr)
			svc := NewAuthService(repo, "secret", time.Hour)

			_, err := svc.Register(context.Background(), schemas.UserCreate{Username: "gm", Email: "gm@example.com", Password: "hunter222"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("hunter222")
	require.NoError(t, err)
	stored := &models.User{ID: 42, Username: "gm", Email: "gm@example.com", HashedPassword: hash}

	repo := &mockrepo.UserRepo{}
	repo.On("GetByUsername", mock.Anything, "gm").Return(stored, nil)
	repo.On("GetByEmail", mock.Anything, "gm@example.com").Return(stored, nil)
	repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, repositories.ErrUserNotFound)
	svc := NewAuthService(repo, "secret", 30*time.Minute)

	t.Run("by username", func(t *testing.T) {
		tok, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "gm", Password: "hunter222"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", tok.TokenType)
		assert.Equal(t, 1800, tok.ExpiresIn)

		claims, err := svc.ParseToken(tok.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, float64(42), claims[ClaimUserID])
		assert.Equal(t, "gm", claims[ClaimUsername])
	})

	t.Run("by email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "GM@example.com", Password: "hunter222"})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "gm", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "nobody", Password: "hunter222"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_LoginUsernameWithAtSign(t *testing.T) {
	hash, err := utils.HashPassword("hunter222")
	require.NoError(t, err)
	stored := &models.User{ID: 9, Username: "bob@home", Email: "bob@example.com", HashedPassword: hash}

	repo := &mockrepo.UserRepo{}
	repo.On("GetByEmail", mock.Anything, "bob@home").Return(nil, repositories.ErrUserNotFound).Once()
	repo.On("GetByUsername", mock.Anything, "bob@home").Return(stored, nil).Once()
	svc := NewAuthService(repo, "secret", time.Hour)

	tok, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "bob@home", Password: "hunter222"})
	require.NoError(t, err)

	claims, err := svc.ParseToken(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, float64(9), claims[ClaimUserID])
	repo.AssertExpectations(t)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := &mockrepo.UserRepo{}
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrUserNotFound)
	repo.On("GetByUsername", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrUserNotFound)
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Login(context.Background(), schemas.LoginRequest{Username: "ghost@example.com", Password: "hunter222"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	user := &models.User{ID: 1, Username: "gm"}

	other := NewAuthService(nil, "other-secret", time.Hour).(*authService)
	foreign, err := other.issueToken(user)
	require.NoError(t, err)

	svc := NewAuthService(nil, "secret", time.Hour).(*authService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := svc.issueToken(user)
	require.NoError(t, err)

	for name, tok := range map[string]string{"foreign": foreign, "expired": expired, "garbage": "not.a.jwt"} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(tok)
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
		})
	}
}

func TestAuthService_GetUser(t *testing.T) {
	repo := &mockrepo.UserRepo{}
	repo.On("GetByID", mock.Anything, 9).Return(nil, repositories.ErrUserNotFound)
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.GetUser(context.Background(), 9)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
