package models

import "time"

// Roster assigns one player to a team for one week.
type Roster struct {
	ID                   int       `json:"id" db:"id"`
	TeamID               int       `json:"team_id" db:"team_id"`
	NFLPlayerID          int       `json:"nfl_player_id" db:"nfl_player_id"`
	RosterPosition       string    `json:"roster_position" db:"roster_position"`
	WeekNumber           int       `json:"week_number" db:"week_number"`
	IsStarter            bool      `json:"is_starter" db:"is_starter"`
	ProviderRosterSlotID *string   `json:"provider_roster_slot_id,omitempty" db:"provider_roster_slot_id"`
	LastUpdated          time.Time `json:"last_updated" db:"last_updated"`
}
