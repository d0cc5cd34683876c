package schemas

import (
	"time"

	"github.com/ffliq/ffliq-backend/models"
)

type GameScheduleCreate struct {
	NFLTeamHome string    `json:"nfl_team_home"`
	NFLTeamAway string    `json:"nfl_team_away"`
	WeekNumber  int       `json:"week_number"`
	SeasonYear  int       `json:"season_year"`
	GameTime    time.Time `json:"game_time"`
	Status      *string   `json:"status"`
}

func (g GameScheduleCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(g.NFLTeamHome, "nfl_team_home")
	errs.required(g.NFLTeamAway, "nfl_team_away")
	errs.check(g.NFLTeamHome != g.NFLTeamAway, "nfl_team_away", "must differ from nfl_team_home")
	errs.week(g.WeekNumber, "week_number")
	errs.season(g.SeasonYear, "season_year")
	errs.check(!g.GameTime.IsZero(), "game_time", "must be provided")
	if g.Status != nil {
		errs.check(models.Status(*g.Status).IsValid(), "status", "must be one of active, inactive, completed, scheduled")
	}
	return errs.result()
}

func (g GameScheduleCreate) ToModel() *models.GameSchedule {
	status := models.StatusScheduled
	if g.Status != nil {
		status = models.Status(*g.Status)
	}
	return &models.GameSchedule{
		NFLTeamHome: g.NFLTeamHome,
		NFLTeamAway: g.NFLTeamAway,
		WeekNumber:  g.WeekNumber,
		SeasonYear:  g.SeasonYear,
		GameTime:    g.GameTime,
		Status:      status,
	}
}

type GameScheduleResponse struct {
	ID          int       `json:"id"`
	NFLTeamHome string    `json:"nfl_team_home"`
	NFLTeamAway string    `json:"nfl_team_away"`
	WeekNumber  int       `json:"week_number"`
	SeasonYear  int       `json:"season_year"`
	GameTime    time.Time `json:"game_time"`
	Status      string    `json:"status"`
}

func NewGameScheduleResponse(g *models.GameSchedule) GameScheduleResponse {
	return GameScheduleResponse{
		ID:          g.ID,
		NFLTeamHome: g.NFLTeamHome,
		NFLTeamAway: g.NFLTeamAway,
		WeekNumber:  g.WeekNumber,
		SeasonYear:  g.SeasonYear,
		GameTime:    g.GameTime,
		Status:      string(g.Status),
	}
}
