package schemas

import (
	"time"

	"github.com/ffliq/ffliq-backend/models"
)

type TeamCreate struct {
	Name     string  `json:"name"`
	LeagueID int     `json:"league_id"`
	LogoURL  *string `json:"logo_url"`
}

func (t TeamCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(t.Name, "name")
	errs.positiveID(t.LeagueID, "league_id")
	return errs.result()
}

func (t TeamCreate) ToModel(userID int) *models.Team {
	return &models.Team{
		Name:     t.Name,
		UserID:   userID,
		LeagueID: t.LeagueID,
		LogoURL:  t.LogoURL,
	}
}

type TeamResponse struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	LeagueID       int        `json:"league_id"`
	UserID         int        `json:"user_id"`
	ProviderTeamID *string    `json:"provider_team_id"`
	LogoURL        *string    `json:"logo_url"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

func NewTeamResponse(t *models.Team) TeamResponse {
	return TeamResponse{
		ID:             t.ID,
		Name:           t.Name,
		LeagueID:       t.LeagueID,
		UserID:         t.UserID,
		ProviderTeamID: t.ProviderTeamID,
		LogoURL:        t.LogoURL,
		CreatedAt:      timePtr(t.CreatedAt),
		UpdatedAt:      timePtr(t.UpdatedAt),
	}
}

type RosterCreate struct {
	TeamID               int     `json:"team_id"`
	NFLPlayerID          int     `json:"nfl_player_id"`
	RosterPosition       string  `json:"roster_position"`
	WeekNumber           int     `json:"week_number"`
	IsStarter            bool    `json:"is_starter"`
	ProviderRosterSlotID *string `json:"provider_roster_slot_id"`
}

func (r RosterCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.positiveID(r.TeamID, "team_id")
	errs.positiveID(r.NFLPlayerID, "nfl_player_id")
	errs.required(r.RosterPosition, "roster_position")
	errs.week(r.WeekNumber, "week_number")
	return errs.result()
}

func (r RosterCreate) ToModel() *models.Roster {
	return &models.Roster{
		TeamID:               r.TeamID,
		NFLPlayerID:          r.NFLPlayerID,
		RosterPosition:       r.RosterPosition,
		WeekNumber:           r.WeekNumber,
		IsStarter:            r.IsStarter,
		ProviderRosterSlotID: r.ProviderRosterSlotID,
	}
}

type RosterResponse struct {
	ID                   int       `json:"id"`
	TeamID               int       `json:"team_id"`
	NFLPlayerID          int       `json:"nfl_player_id"`
	RosterPosition       string    `json:"roster_position"`
	WeekNumber           int       `json:"week_number"`
	IsStarter            bool      `json:"is_starter"`
	ProviderRosterSlotID *string   `json:"provider_roster_slot_id"`
	LastUpdated          time.Time `json:"last_updated"`
}

func NewRosterResponse(r *models.Roster) RosterResponse {
	return RosterResponse{
		ID:                   r.ID,
		TeamID:               r.TeamID,
		NFLPlayerID:          r.NFLPlayerID,
		RosterPosition:       r.RosterPosition,
		WeekNumber:           r.WeekNumber,
		IsStarter:            r.IsStarter,
		ProviderRosterSlotID: r.ProviderRosterSlotID,
		LastUpdated:          r.LastUpdated,
	}
}
