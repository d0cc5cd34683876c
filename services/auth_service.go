package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/utils"
)

const (
	ClaimUserID   = "user_id"
	ClaimUsername = "username"
	TokenType     = "bearer"
)

type AuthService interface {
	Register(ctx context.Context, input schemas.UserCreate) (*models.User, error)
	Login(ctx context.Context, input schemas.LoginRequest) (*schemas.TokenResponse, error)
	ParseToken(tokenString string) (jwt.MapClaims, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, input schemas.UserCreate) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       strings.TrimSpace(input.Username),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateRepositoryError(err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, input schemas.LoginRequest) (*schemas.TokenResponse, error) {
	login := strings.TrimSpace(input.Username)

	var (
		user *models.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(login))
		if errors.Is(err, repositories.ErrUserNotFound) {
			// usernames registered before "@" was disallowed
			user, err = s.userRepo.GetByUsername(ctx, login)
		}
	} else {
		user, err = s.userRepo.GetByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(input.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &schemas.TokenResponse{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		ClaimUserID:   user.ID,
		ClaimUsername: user.Username,
		"sub":         strconv.Itoa(user.ID),
		"exp":         now.Add(s.tokenTTL).Unix(),
		"iat":         now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the token claims.
func (s *authService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return claims, nil
}

func (s *authService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return user, nil
}
