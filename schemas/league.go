package schemas

import (
	"time"

	"github.com/ffliq/ffliq-backend/models"
)

type LeagueCreate struct {
	Name           string         `json:"name"`
	Description    *string        `json:"description"`
	SeasonYear     int            `json:"season_year"`
	Settings       map[string]any `json:"settings"`
	SettingsSource *string        `json:"settings_source"`
}

func (l LeagueCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(l.Name, "name")
	errs.season(l.SeasonYear, "season_year")
	return errs.result()
}

// ToModel leaves Settings NULL when none were supplied.
func (l LeagueCreate) ToModel(createdByID int) *models.League {
	var settings models.JSONMap
	if l.Settings != nil {
		settings = models.JSONMap(l.Settings)
	}
	return &models.League{
		Name:           l.Name,
		Description:    l.Description,
		SeasonYear:     l.SeasonYear,
		Settings:       settings,
		SettingsSource: l.SettingsSource,
		Status:         models.StatusActive,
		CreatedByID:    createdByID,
	}
}

// LeagueUpdate is a partial update. Absent fields are left unchanged.
type LeagueUpdate struct {
	Name           *string        `json:"name"`
	Description    *string        `json:"description"`
	Settings       map[string]any `json:"settings"`
	SettingsSource *string        `json:"settings_source"`
	Status         *string        `json:"status"`
}

func (l LeagueUpdate) Validate() map[string]string {
	errs := fieldErrors{}
	if l.Name != nil {
		errs.required(*l.Name, "name")
	}
	if l.Status != nil {
		errs.check(models.Status(*l.Status).IsValid(), "status", "must be one of active, inactive, completed, scheduled")
	}
	return errs.result()
}

// Apply copies the supplied fields onto league and reports whether the
// scoring settings changed.
func (l LeagueUpdate) Apply(league *models.League) (settingsChanged bool) {
	if l.Name != nil {
		league.Name = *l.Name
	}
	if l.Description != nil {
		league.Description = l.Description
	}
	if l.SettingsSource != nil {
		league.SettingsSource = l.SettingsSource
	}
	if l.Status != nil {
		league.Status = models.Status(*l.Status)
	}
	if l.Settings != nil {
		league.Settings = models.JSONMap(l.Settings)
		settingsChanged = true
	}
	return settingsChanged
}

type LeagueResponse struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description"`
	SeasonYear       int            `json:"season_year"`
	CreatedByID      int            `json:"created_by_id"`
	Status           string         `json:"status"`
	ProviderLeagueID *string        `json:"provider_league_id"`
	LastSyncTime     *time.Time     `json:"last_sync_time"`
	Settings         map[string]any `json:"settings"`
	SettingsSource   *string        `json:"settings_source"`
	CreatedAt        *time.Time     `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at"`
}

func NewLeagueResponse(l *models.League) LeagueResponse {
	status := string(l.Status)
	if status == "" {
		status = string(models.StatusActive)
	}
	var settings map[string]any
	if l.Settings != nil {
		settings = map[string]any(l.Settings)
	}
	return LeagueResponse{
		ID:               l.ID,
		Name:             l.Name,
		Description:      l.Description,
		SeasonYear:       l.SeasonYear,
		CreatedByID:      l.CreatedByID,
		Status:           status,
		ProviderLeagueID: l.ProviderLeagueID,
		LastSyncTime:     l.LastSyncTime,
		Settings:         settings,
		SettingsSource:   l.SettingsSource,
		CreatedAt:        timePtr(l.CreatedAt),
		UpdatedAt:        timePtr(l.UpdatedAt),
	}
}
