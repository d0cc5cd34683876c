package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
)

func strPtr(s string) *string { return &s }

func TestUserCreate_Validate(t *testing.T) {
	tests := []struct {
		name   string
		input  UserCreate
		fields []string
	}{
		{"valid", UserCreate{Username: "gm", Email: "gm@example.com", Password: "longenough"}, nil},
		{"missing everything", UserCreate{}, []string{"username", "email", "password"}},
		{"bad email", UserCreate{Username: "gm", Email: "gm@", Password: "longenough"}, []string{"email"}},
		{"short password", UserCreate{Username: "gm", Email: "gm@example.com", Password: "short"}, []string{"password"}},
		{"at sign in username", UserCreate{Username: "bob@home", Email: "bob@example.com", Password: "longenough"}, []string{"username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.input.Validate()
			if tt.fields == nil {
				assert.Nil(t, errs)
				return
			}
			require.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestUserResponse_hidesPassword(t *testing.T) {
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	u := &models.User{ID: 7, Username: "gm", Email: "gm@example.com", HashedPassword: "secret-hash", CreatedAt: now, UpdatedAt: now}

	b, err := json.Marshal(NewUserResponse(u))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.JSONEq(t, `{"id":7,"username":"gm","email":"gm@example.com",
		"created_at":"2024-08-01T10:00:00Z","updated_at":"2024-08-01T10:00:00Z"}`, string(b))
}

func TestLeague_manualWithoutSettings(t *testing.T) {
	in := LeagueCreate{Name: "Office League", SeasonYear: 2024, SettingsSource: strPtr("manual")}
	require.Nil(t, in.Validate())

	league := in.ToModel(3)
	assert.Nil(t, league.Settings)
	assert.Equal(t, models.StatusActive, league.Status)
	assert.Equal(t, 3, league.CreatedByID)

	league.Status = ""
	resp := NewLeagueResponse(league)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.Settings)
	assert.Equal(t, "manual", *resp.SettingsSource)
}

func TestLeagueUpdate_Apply(t *testing.T) {
	league := &models.League{Name: "Old", Status: models.StatusActive, Settings: models.JSONMap{"passing_td": 4.0}}

	changed := LeagueUpdate{Name: strPtr("New")}.Apply(league)
	assert.False(t, changed)
	assert.Equal(t, "New", league.Name)
	assert.Equal(t, 4.0, league.Settings["passing_td"])

	changed = LeagueUpdate{Settings: map[string]any{"passing_td": 6.0}, Status: strPtr("completed")}.Apply(league)
	assert.True(t, changed)
	assert.Equal(t, 6.0, league.Settings["passing_td"])
	assert.Equal(t, models.StatusCompleted, league.Status)
}

func TestLeagueUpdate_Validate(t *testing.T) {
	assert.Nil(t, LeagueUpdate{}.Validate())
	assert.Contains(t, LeagueUpdate{Status: strPtr("archived")}.Validate(), "status")
	assert.Contains(t, LeagueUpdate{Name: strPtr("  ")}.Validate(), "name")
}

func TestNFLPlayerCreate_defaults(t *testing.T) {
	var in NFLPlayerCreate
	err := json.Unmarshal([]byte(`{"name":"Jalen Hurts","position":"QB","nfl_team":"PHI",
		"global_player_id":"ffliq-1","season_year":2024}`), &in)
	require.NoError(t, err)
	require.Nil(t, in.Validate())

	p := in.ToModel()
	assert.True(t, p.ActiveFlag)
	assert.Nil(t, p.ProviderPlayerIDs)
	assert.Nil(t, p.JerseyNumber)
}

func TestNFLPlayerCreate_Validate(t *testing.T) {
	jersey := 120
	errs := NFLPlayerCreate{JerseyNumber: &jersey, SeasonYear: 1800}.Validate()
	for _, f := range []string{"name", "position", "nfl_team", "global_player_id", "season_year", "jersey_number"} {
		assert.Contains(t, errs, f)
	}
}

func TestNFLPlayerResponse_reproducesFields(t *testing.T) {
	jersey := 1
	status := "ACT"
	p := &models.NFLPlayer{
		ID:                9,
		Name:              "Jalen Hurts",
		Position:          "QB",
		NFLTeam:           "PHI",
		JerseyNumber:      &jersey,
		HeadshotURL:       strPtr("https://cdn.example.com/hurts.png"),
		GlobalPlayerID:    "ffliq-9",
		ProviderPlayerIDs: models.ProviderIDs{"sleeper": "6904"},
		ActiveFlag:        true,
		SeasonYear:        2024,
		Status:            &status,
	}

	b, err := json.Marshal(NewNFLPlayerResponse(p))
	require.NoError(t, err)

	var back models.NFLPlayer
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, *p, back)
}

func TestPlayerStatsCreate_defaultsToZero(t *testing.T) {
	var in PlayerStatsCreate
	err := json.Unmarshal([]byte(`{"nfl_player_id":1,"week_number":3,"season_year":2024,"passing_yards":212.5,"sacks":1.5}`), &in)
	require.NoError(t, err)
	require.Nil(t, in.Validate())

	s := in.ToModel()
	assert.Equal(t, 212.5, s.PassingYards)
	assert.Equal(t, 1.5, s.Sacks)
	assert.Zero(t, s.RushingTDs)
	assert.Zero(t, s.FGMade50Plus)
	assert.Nil(t, s.RawStats)
}

func TestPlayerStatsResponse_flatJSON(t *testing.T) {
	s := &models.PlayerStats{ID: 1, NFLPlayerID: 2, WeekNumber: 3, SeasonYear: 2024}
	s.ReceivingYards = 101
	s.ExtraPointsMade = 4
	s.Safeties = 1

	b, err := json.Marshal(NewPlayerStatsResponse(s))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, 101.0, m["receiving_yards"])
	assert.Equal(t, 4.0, m["extra_points_made"])
	assert.Equal(t, 1.0, m["safeties"])
	assert.Contains(t, m, "raw_stats")
	assert.NotContains(t, m, "OffenseStats")
}

func TestWeekAndSeasonRanges(t *testing.T) {
	tests := []struct {
		name  string
		week  int
		year  int
		valid bool
	}{
		{"first week", 1, 2024, true},
		{"last week", 22, 2024, true},
		{"week zero", 0, 2024, false},
		{"negative week", -1, 2024, false},
		{"week too high", 23, 2024, false},
		{"season too old", 1, 1900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := PlayerProjectionCreate{NFLPlayerID: 1, WeekNumber: tt.week, SeasonYear: tt.year, ProjectionSource: "espn"}.Validate()
			assert.Equal(t, tt.valid, errs == nil, errs)
		})
	}
}

func TestRosterCreate_Validate(t *testing.T) {
	assert.Nil(t, RosterCreate{TeamID: 1, NFLPlayerID: 2, RosterPosition: "QB", WeekNumber: 1}.Validate())

	errs := RosterCreate{}.Validate()
	for _, f := range []string{"team_id", "nfl_player_id", "roster_position", "week_number"} {
		assert.Contains(t, errs, f)
	}
}

func TestPlayerNewsCreate(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	score := 1.5
	errs := PlayerNewsCreate{NFLPlayerID: 1, Title: "t", Content: "c", SentimentScore: &score}.Validate()
	assert.Contains(t, errs, "sentiment_score")

	n := PlayerNewsCreate{NFLPlayerID: 1, Title: "t", Content: "c"}.ToModel(now)
	assert.Equal(t, now, n.PublishedAt)
}

func TestGameScheduleCreate(t *testing.T) {
	kickoff := time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)
	in := GameScheduleCreate{NFLTeamHome: "PHI", NFLTeamAway: "DAL", WeekNumber: 1, SeasonYear: 2024, GameTime: kickoff}
	require.Nil(t, in.Validate())
	assert.Equal(t, models.StatusScheduled, in.ToModel().Status)

	same := GameScheduleCreate{NFLTeamHome: "PHI", NFLTeamAway: "PHI", WeekNumber: 1, SeasonYear: 2024}
	errs := same.Validate()
	assert.Contains(t, errs, "nfl_team_away")
	assert.Contains(t, errs, "game_time")
}

func TestMapList(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	out := MapList(teams, NewTeamResponse)
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[1].Name)

	assert.NotNil(t, MapList([]models.Team(nil), NewTeamResponse))
}

func TestQueryValidators(t *testing.T) {
	assert.Nil(t, Week(3))
	assert.Contains(t, Week(0), "week")
	assert.Nil(t, WeekSeason(17, 2024))

	errs := WeekSeason(0, 0)
	assert.Contains(t, errs, "week")
	assert.Contains(t, errs, "season")
}
