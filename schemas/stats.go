package schemas

import (
	"time"

	"github.com/ffliq/ffliq-backend/models"
)

// PlayerStatsCreate is an actual stat line. Stat fields omitted from the body are 0.
type PlayerStatsCreate struct {
	NFLPlayerID int `json:"nfl_player_id"`
	WeekNumber  int `json:"week_number"`
	SeasonYear  int `json:"season_year"`

	models.OffenseStats
	models.KickingStats
	models.DefenseStats

	ProviderID *string        `json:"provider_id"`
	RawStats   map[string]any `json:"raw_stats"`
}

func (s PlayerStatsCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.positiveID(s.NFLPlayerID, "nfl_player_id")
	errs.week(s.WeekNumber, "week_number")
	errs.season(s.SeasonYear, "season_year")
	return errs.result()
}

func (s PlayerStatsCreate) ToModel() *models.PlayerStats {
	var raw models.JSONMap
	if s.RawStats != nil {
		raw = models.JSONMap(s.RawStats)
	}
	return &models.PlayerStats{
		NFLPlayerID:  s.NFLPlayerID,
		WeekNumber:   s.WeekNumber,
		SeasonYear:   s.SeasonYear,
		OffenseStats: s.OffenseStats,
		KickingStats: s.KickingStats,
		DefenseStats: s.DefenseStats,
		ProviderID:   s.ProviderID,
		RawStats:     raw,
	}
}

type PlayerStatsResponse struct {
	ID          int `json:"id"`
	NFLPlayerID int `json:"nfl_player_id"`
	WeekNumber  int `json:"week_number"`
	SeasonYear  int `json:"season_year"`

	models.OffenseStats
	models.KickingStats
	models.DefenseStats

	ProviderID  *string        `json:"provider_id"`
	RawStats    map[string]any `json:"raw_stats"`
	LastUpdated time.Time      `json:"last_updated"`
}

func NewPlayerStatsResponse(s *models.PlayerStats) PlayerStatsResponse {
	var raw map[string]any
	if s.RawStats != nil {
		raw = map[string]any(s.RawStats)
	}
	return PlayerStatsResponse{
		ID:           s.ID,
		NFLPlayerID:  s.NFLPlayerID,
		WeekNumber:   s.WeekNumber,
		SeasonYear:   s.SeasonYear,
		OffenseStats: s.OffenseStats,
		KickingStats: s.KickingStats,
		DefenseStats: s.DefenseStats,
		ProviderID:   s.ProviderID,
		RawStats:     raw,
		LastUpdated:  s.LastUpdated,
	}
}

type PlayerProjectionCreate struct {
	NFLPlayerID int `json:"nfl_player_id"`
	WeekNumber  int `json:"week_number"`
	SeasonYear  int `json:"season_year"`

	models.OffenseStats

	ProjectionSource string         `json:"projection_source"`
	ProjectionData   map[string]any `json:"projection_data"`
}

func (p PlayerProjectionCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.positiveID(p.NFLPlayerID, "nfl_player_id")
	errs.week(p.WeekNumber, "week_number")
	errs.season(p.SeasonYear, "season_year")
	errs.required(p.ProjectionSource, "projection_source")
	return errs.result()
}

func (p PlayerProjectionCreate) ToModel() *models.PlayerProjection {
	var data models.JSONMap
	if p.ProjectionData != nil {
		data = models.JSONMap(p.ProjectionData)
	}
	return &models.PlayerProjection{
		NFLPlayerID:      p.NFLPlayerID,
		WeekNumber:       p.WeekNumber,
		SeasonYear:       p.SeasonYear,
		OffenseStats:     p.OffenseStats,
		ProjectionSource: p.ProjectionSource,
		ProjectionData:   data,
	}
}

type PlayerProjectionResponse struct {
	ID          int `json:"id"`
	NFLPlayerID int `json:"nfl_player_id"`
	WeekNumber  int `json:"week_number"`
	SeasonYear  int `json:"season_year"`

	models.OffenseStats

	ProjectionSource string         `json:"projection_source"`
	ProjectionData   map[string]any `json:"projection_data"`
	CreatedAt        time.Time      `json:"created_at"`
}

func NewPlayerProjectionResponse(p *models.PlayerProjection) PlayerProjectionResponse {
	var data map[string]any
	if p.ProjectionData != nil {
		data = map[string]any(p.ProjectionData)
	}
	return PlayerProjectionResponse{
		ID:               p.ID,
		NFLPlayerID:      p.NFLPlayerID,
		WeekNumber:       p.WeekNumber,
		SeasonYear:       p.SeasonYear,
		OffenseStats:     p.OffenseStats,
		ProjectionSource: p.ProjectionSource,
		ProjectionData:   data,
		CreatedAt:        p.CreatedAt,
	}
}

type PlayerPointsResponse struct {
	ID           int       `json:"id"`
	NFLPlayerID  int       `json:"nfl_player_id"`
	LeagueID     int       `json:"league_id"`
	WeekNumber   int       `json:"week_number"`
	SeasonYear   int       `json:"season_year"`
	Points       float64   `json:"points"`
	CalculatedAt time.Time `json:"calculated_at"`
}

func NewPlayerPointsResponse(p *models.PlayerPoints) PlayerPointsResponse {
	return PlayerPointsResponse{
		ID:           p.ID,
		NFLPlayerID:  p.NFLPlayerID,
		LeagueID:     p.LeagueID,
		WeekNumber:   p.WeekNumber,
		SeasonYear:   p.SeasonYear,
		Points:       p.Points,
		CalculatedAt: p.CalculatedAt,
	}
}
