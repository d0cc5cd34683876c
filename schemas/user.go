package schemas

import (
	"strings"
	"time"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/utils"
)

const MinPasswordLength = 8

type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u UserCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(u.Username, "username")
	errs.check(len(u.Username) <= 50, "username", "must not be more than 50 characters")
	// login treats identifiers containing "@" as e-mail addresses first
	errs.check(!strings.Contains(u.Username, "@"), "username", "must not contain '@'")
	errs.required(u.Email, "email")
	errs.check(utils.IsValidEmail(u.Email), "email", "must be a valid email address")
	errs.check(len(u.Password) >= MinPasswordLength, "password", "must be at least 8 characters")
	errs.check(len(u.Password) <= 72, "password", "must not be more than 72 bytes")
	return errs.result()
}

type UserResponse struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: timePtr(u.CreatedAt),
		UpdatedAt: timePtr(u.UpdatedAt),
	}
}

// LoginRequest accepts either the username or the email in Username.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(l.Username, "username")
	errs.required(l.Password, "password")
	return errs.result()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
