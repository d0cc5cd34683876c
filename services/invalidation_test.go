package services_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
	"github.com/ffliq/ffliq-backend/testutils"
)

var testDB *testutils.TestDB

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithDB(m, &testDB))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedPoints(t *testing.T, repo repositories.PointsRepository, playerID, leagueID, week int) {
	t.Helper()
	err := repo.Upsert(context.Background(), nil, &models.PlayerPoints{
		NFLPlayerID: playerID, LeagueID: leagueID, WeekNumber: week, SeasonYear: 2024, Points: 21.4,
	})
	require.NoError(t, err)
}

func TestLeagueService_UpdateLeagueInvalidatesPoints(t *testing.T) {
	conn := testutils.Require(t, testDB)
	ctx := context.Background()

	leagueRepo := repositories.NewPostgresLeagueRepository(conn)
	pointsRepo := repositories.NewPostgresPointsRepository(conn)
	svc := services.NewLeagueService(conn, leagueRepo, repositories.NewPostgresTeamRepository(conn), pointsRepo, quietLogger())

	owner := testDB.InsertUser(t)
	league := testDB.InsertLeague(t, owner.ID, models.JSONMap{"ppr": 1.0})
	player := testDB.InsertPlayer(t, testutils.CeeDeeLamb())
	seedPoints(t, pointsRepo, player.ID, league.ID, 1)
	seedPoints(t, pointsRepo, player.ID, league.ID, 2)

	rename := "Renamed"
	_, err := svc.UpdateLeague(ctx, owner.ID, league.ID, schemas.LeagueUpdate{Name: &rename})
	require.NoError(t, err)
	kept, err := pointsRepo.ListByLeagueWeek(ctx, league.ID, 1, 2024)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "a rename must not drop cached points")

	updated, err := svc.UpdateLeague(ctx, owner.ID, league.ID, schemas.LeagueUpdate{Settings: map[string]any{"ppr": 0.5}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, updated.Settings["ppr"])

	for _, week := range []int{1, 2} {
		points, err := pointsRepo.ListByLeagueWeek(ctx, league.ID, week, 2024)
		require.NoError(t, err)
		assert.Empty(t, points)
	}

	stored, err := leagueRepo.GetByID(ctx, league.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, 0.5, stored.Settings["ppr"])
}

func TestStatsService_UpsertStatsInvalidatesPoints(t *testing.T) {
	conn := testutils.Require(t, testDB)
	ctx := context.Background()

	playerRepo := repositories.NewPostgresPlayerRepository(conn)
	statsRepo := repositories.NewPostgresStatsRepository(conn)
	pointsRepo := repositories.NewPostgresPointsRepository(conn)
	svc := services.NewStatsService(conn, playerRepo, statsRepo,
		repositories.NewPostgresProjectionRepository(conn), pointsRepo, quietLogger())

	owner := testDB.InsertUser(t)
	league := testDB.InsertLeague(t, owner.ID, nil)
	player := testDB.InsertPlayer(t, testutils.JalenHurts())
	seedPoints(t, pointsRepo, player.ID, league.ID, 3)
	seedPoints(t, pointsRepo, player.ID, league.ID, 4)

	input := schemas.PlayerStatsCreate{NFLPlayerID: player.ID, WeekNumber: 3, SeasonYear: 2024}
	input.PassingYards = 281
	input.PassingTDs = 2
	stats, err := svc.UpsertStats(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, stats.ID)

	week3, err := pointsRepo.ListByLeagueWeek(ctx, league.ID, 3, 2024)
	require.NoError(t, err)
	assert.Empty(t, week3)

	week4, err := pointsRepo.ListByLeagueWeek(ctx, league.ID, 4, 2024)
	require.NoError(t, err)
	assert.Len(t, week4, 1, "other weeks keep their cached points")

	listed, err := svc.ListStats(ctx, player.ID, 2024)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 281.0, listed[0].PassingYards)
}

func TestStatsService_UpsertStatsUnknownPlayer(t *testing.T) {
	conn := testutils.Require(t, testDB)

	svc := services.NewStatsService(conn,
		repositories.NewPostgresPlayerRepository(conn),
		repositories.NewPostgresStatsRepository(conn),
		repositories.NewPostgresProjectionRepository(conn),
		repositories.NewPostgresPointsRepository(conn),
		quietLogger())

	_, err := svc.UpsertStats(context.Background(), schemas.PlayerStatsCreate{NFLPlayerID: 999999, WeekNumber: 1, SeasonYear: 2024})
	assert.ErrorIs(t, err, services.ErrInvalidReference)
}
