package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/testutils"
)

func TestLeagueRepository_createDefaultsToActive(t *testing.T) {
	sqlDB := testutils.Require(t, testDB)
	ctx := context.Background()
	repo := repositories.NewPostgresLeagueRepository(sqlDB)

	owner := testDB.InsertUser(t)
	l := testDB.InsertLeague(t, owner.ID, models.JSONMap{"passing_td": 4.0})
	assert.Equal(t, models.StatusActive, l.Status)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, owner.ID, got.CreatedByID)
	assert.Equal(t, 4.0, got.Settings["passing_td"])
	assert.Nil(t, got.Description)
}

func TestLeagueRepository_manualSettingsStoredAsNull(t *testing.T) {
	sqlDB := testutils.Require(t, testDB)
	ctx := context.Background()
	repo := repositories.NewPostgresLeagueRepository(sqlDB)

	owner := testDB.InsertUser(t)
	manual := "manual"
	input := schemas.LeagueCreate{Name: "Office League", SeasonYear: 2024, SettingsSource: &manual}
	require.Nil(t, input.Validate())

	l := input.ToModel(owner.ID)
	l.Status = ""
	require.NoError(t, repo.Create(ctx, l))

	var settingsIsNull bool
	err := sqlDB.QueryRowContext(ctx, `SELECT settings IS NULL FROM leagues WHERE id = $1`, l.ID).Scan(&settingsIsNull)
	require.NoError(t, err)
	assert.True(t, settingsIsNull)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Settings)
	require.NotNil(t, got.SettingsSource)
	assert.Equal(t, "manual", *got.SettingsSource)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, "active", schemas.NewLeagueResponse(got).Status)
}

func TestLeagueRepository_unknownCreator(t *testing.T) {
	sqlDB := testutils.Require(t, testDB)
	repo := repositories.NewPostgresLeagueRepository(sqlDB)

	err := repo.Create(context.Background(), &models.League{Name: "Orphan", SeasonYear: 2024, CreatedByID: -1})
	assert.ErrorIs(t, err, repositories.ErrUserReferenceInvalid)
}

func TestLeagueRepository_updateAndList(t *testing.T) {
	sqlDB := testutils.Require(t, testDB)
	ctx := context.Background()
	repo := repositories.NewPostgresLeagueRepository(sqlDB)

	owner := testDB.InsertUser(t)
	l := testDB.InsertLeague(t, owner.ID, nil)
	before := l.UpdatedAt

	l.Settings = models.JSONMap{"reception": 1.0}
	l.Status = models.StatusCompleted
	require.NoError(t, repo.Update(ctx, nil, l))
	assert.False(t, l.UpdatedAt.Before(before))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, 1.0, got.Settings["reception"])

	mine, err := repo.ListByCreator(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, l.ID, mine[0].ID)

	season, err := repo.List(ctx, 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, season)

	missing := &models.League{ID: -1, Name: "x", SeasonYear: 2024, Status: models.StatusActive}
	assert.ErrorIs(t, repo.Update(ctx, nil, missing), repositories.ErrLeagueNotFound)
}
