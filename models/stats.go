package models

import "time"

// OffenseStats are the normalized stat columns shared by actual stats and projections.
type OffenseStats struct {
	PassingYards       float64 `json:"passing_yards" db:"passing_yards"`
	PassingTDs         int     `json:"passing_tds" db:"passing_tds"`
	Interceptions      int     `json:"interceptions" db:"interceptions"`
	PassingCompletions int     `json:"passing_completions" db:"passing_completions"`
	PassingAttempts    int     `json:"passing_attempts" db:"passing_attempts"`

	RushingYards    float64 `json:"rushing_yards" db:"rushing_yards"`
	RushingTDs      int     `json:"rushing_tds" db:"rushing_tds"`
	RushingAttempts int     `json:"rushing_attempts" db:"rushing_attempts"`

	ReceivingYards float64 `json:"receiving_yards" db:"receiving_yards"`
	ReceivingTDs   int     `json:"receiving_tds" db:"receiving_tds"`
	Receptions     int     `json:"receptions" db:"receptions"`
	Targets        int     `json:"targets" db:"targets"`

	FumblesLost int `json:"fumbles_lost" db:"fumbles_lost"`
}

type KickingStats struct {
	FGMade1To29     int `json:"fg_made_1_29" db:"fg_made_1_29"`
	FGMade30To39    int `json:"fg_made_30_39" db:"fg_made_30_39"`
	FGMade40To49    int `json:"fg_made_40_49" db:"fg_made_40_49"`
	FGMade50Plus    int `json:"fg_made_50_plus" db:"fg_made_50_plus"`
	ExtraPointsMade int `json:"extra_points_made" db:"extra_points_made"`
}

type DefenseStats struct {
	Sacks                  float64 `json:"sacks" db:"sacks"`
	DefensiveInterceptions int     `json:"defensive_interceptions" db:"defensive_interceptions"`
	FumbleRecoveries       int     `json:"fumble_recoveries" db:"fumble_recoveries"`
	DefensiveTDs           int     `json:"defensive_tds" db:"defensive_tds"`
	Safeties               int     `json:"safeties" db:"safeties"`
}

// PlayerStats is a player's actual performance in one week.
type PlayerStats struct {
	ID          int `json:"id" db:"id"`
	NFLPlayerID int `json:"nfl_player_id" db:"nfl_player_id"`
	WeekNumber  int `json:"week_number" db:"week_number"`
	SeasonYear  int `json:"season_year" db:"season_year"`

	OffenseStats
	KickingStats
	DefenseStats

	ProviderID  *string   `json:"provider_id,omitempty" db:"provider_id"`
	RawStats    JSONMap   `json:"raw_stats,omitempty" db:"raw_stats"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// PlayerProjection is a forecast for one player and week from one source.
type PlayerProjection struct {
	ID          int `json:"id" db:"id"`
	NFLPlayerID int `json:"nfl_player_id" db:"nfl_player_id"`
	WeekNumber  int `json:"week_number" db:"week_number"`
	SeasonYear  int `json:"season_year" db:"season_year"`

	OffenseStats

	ProjectionSource string    `json:"projection_source" db:"projection_source"`
	ProjectionData   JSONMap   `json:"projection_data,omitempty" db:"projection_data"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PlayerPoints caches a computed fantasy score. It is invalidated when the
// league scoring settings or the underlying stats change.
type PlayerPoints struct {
	ID           int       `json:"id" db:"id"`
	NFLPlayerID  int       `json:"nfl_player_id" db:"nfl_player_id"`
	LeagueID     int       `json:"league_id" db:"league_id"`
	WeekNumber   int       `json:"week_number" db:"week_number"`
	SeasonYear   int       `json:"season_year" db:"season_year"`
	Points       float64   `json:"points" db:"points"`
	CalculatedAt time.Time `json:"calculated_at" db:"calculated_at"`
}
