package models

import "time"

// Team is a user's roster container within a league.
type Team struct {
	ID             int       `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	UserID         int       `json:"user_id" db:"user_id"`
	LeagueID       int       `json:"league_id" db:"league_id"`
	ProviderTeamID *string   `json:"provider_team_id,omitempty" db:"provider_team_id"`
	LogoURL        *string   `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
