package models

import "time"

type User struct {
	ID                  int       `json:"id" db:"id"`
	Username            string    `json:"username" db:"username"`
	Email               string    `json:"email" db:"email"`
	HashedPassword      string    `json:"-" db:"hashed_password"`
	ProviderCredentials JSONMap   `json:"-" db:"provider_credentials"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
