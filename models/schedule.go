package models

import "time"

type GameSchedule struct {
	ID          int       `json:"id" db:"id"`
	NFLTeamHome string    `json:"nfl_team_home" db:"nfl_team_home"`
	NFLTeamAway string    `json:"nfl_team_away" db:"nfl_team_away"`
	WeekNumber  int       `json:"week_number" db:"week_number"`
	SeasonYear  int       `json:"season_year" db:"season_year"`
	GameTime    time.Time `json:"game_time" db:"game_time"`
	Status      Status    `json:"status" db:"status"`
}
