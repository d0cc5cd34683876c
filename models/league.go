package models

import "time"

// League is one fantasy league instance. Settings holds the scoring rules.
type League struct {
	ID               int        `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Description      *string    `json:"description,omitempty" db:"description"`
	SeasonYear       int        `json:"season_year" db:"season_year"`
	ProviderID       *int       `json:"provider_id,omitempty" db:"provider_id"`
	ProviderLeagueID *string    `json:"provider_league_id,omitempty" db:"provider_league_id"`
	Settings         JSONMap    `json:"settings,omitempty" db:"settings"`
	SettingsSource   *string    `json:"settings_source,omitempty" db:"settings_source"`
	LastSyncTime     *time.Time `json:"last_sync_time,omitempty" db:"last_sync_time"`
	SyncFrequency    *int       `json:"sync_frequency,omitempty" db:"sync_frequency"`
	Status           Status     `json:"status" db:"status"`
	CreatedByID      int        `json:"created_by_id" db:"created_by_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
