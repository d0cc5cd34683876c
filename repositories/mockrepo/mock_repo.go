// Package mockrepo provides testify mocks of the repository interfaces.
package mockrepo

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
)

type UserRepo struct {
	mock.Mock
}

func (m *UserRepo) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	return user(args.Get(0)), args.Error(1)
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	return user(args.Get(0)), args.Error(1)
}

func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return user(args.Get(0)), args.Error(1)
}

func user(v interface{}) *models.User {
	if v == nil {
		return nil
	}
	return v.(*models.User)
}

type PlayerRepo struct {
	mock.Mock
}

func (m *PlayerRepo) Create(ctx context.Context, p *models.NFLPlayer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PlayerRepo) GetByID(ctx context.Context, id int) (*models.NFLPlayer, error) {
	args := m.Called(ctx, id)
	return player(args.Get(0)), args.Error(1)
}

func (m *PlayerRepo) GetByGlobalID(ctx context.Context, globalPlayerID string) (*models.NFLPlayer, error) {
	args := m.Called(ctx, globalPlayerID)
	return player(args.Get(0)), args.Error(1)
}

func (m *PlayerRepo) List(ctx context.Context, filter repositories.PlayerFilter) ([]models.NFLPlayer, error) {
	args := m.Called(ctx, filter)
	var r []models.NFLPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]models.NFLPlayer)
	}
	return r, args.Error(1)
}

func (m *PlayerRepo) UpdateHeadshotURL(ctx context.Context, id int, url *string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func player(v interface{}) *models.NFLPlayer {
	if v == nil {
		return nil
	}
	return v.(*models.NFLPlayer)
}

type LeagueRepo struct {
	mock.Mock
}

func (m *LeagueRepo) Create(ctx context.Context, l *models.League) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LeagueRepo) GetByID(ctx context.Context, id int) (*models.League, error) {
	args := m.Called(ctx, id)
	var l *models.League
	if args.Get(0) != nil {
		l = args.Get(0).(*models.League)
	}
	return l, args.Error(1)
}

func (m *LeagueRepo) List(ctx context.Context, seasonYear int) ([]models.League, error) {
	args := m.Called(ctx, seasonYear)
	var r []models.League
	if args.Get(0) != nil {
		r = args.Get(0).([]models.League)
	}
	return r, args.Error(1)
}

func (m *LeagueRepo) ListByCreator(ctx context.Context, userID int) ([]models.League, error) {
	args := m.Called(ctx, userID)
	var r []models.League
	if args.Get(0) != nil {
		r = args.Get(0).([]models.League)
	}
	return r, args.Error(1)
}

func (m *LeagueRepo) Update(ctx context.Context, exec repositories.SQLExecutor, l *models.League) error {
	args := m.Called(ctx, exec, l)
	return args.Error(0)
}

type TeamRepo struct {
	mock.Mock
}

func (m *TeamRepo) Create(ctx context.Context, t *models.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	args := m.Called(ctx, id)
	var t *models.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*models.Team)
	}
	return t, args.Error(1)
}

func (m *TeamRepo) ListByLeague(ctx context.Context, leagueID int) ([]models.Team, error) {
	args := m.Called(ctx, leagueID)
	var r []models.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Team)
	}
	return r, args.Error(1)
}

func (m *TeamRepo) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	args := m.Called(ctx, userID)
	var r []models.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Team)
	}
	return r, args.Error(1)
}

func (m *TeamRepo) UpdateLogoURL(ctx context.Context, id int, logoURL *string) error {
	args := m.Called(ctx, id, logoURL)
	return args.Error(0)
}

type RosterRepo struct {
	mock.Mock
}

func (m *RosterRepo) Create(ctx context.Context, exec repositories.SQLExecutor, entry *models.Roster) error {
	args := m.Called(ctx, exec, entry)
	return args.Error(0)
}

func (m *RosterRepo) CreateBatch(ctx context.Context, entries []*models.Roster) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *RosterRepo) ListByTeamWeek(ctx context.Context, teamID, weekNumber int) ([]models.Roster, error) {
	args := m.Called(ctx, teamID, weekNumber)
	var r []models.Roster
	if args.Get(0) != nil {
		r = args.Get(0).([]models.Roster)
	}
	return r, args.Error(1)
}

type StatsRepo struct {
	mock.Mock
}

func (m *StatsRepo) Upsert(ctx context.Context, exec repositories.SQLExecutor, s *models.PlayerStats) error {
	args := m.Called(ctx, exec, s)
	return args.Error(0)
}

func (m *StatsRepo) Get(ctx context.Context, playerID, week, season int) (*models.PlayerStats, error) {
	args := m.Called(ctx, playerID, week, season)
	var s *models.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).(*models.PlayerStats)
	}
	return s, args.Error(1)
}

func (m *StatsRepo) ListByPlayer(ctx context.Context, playerID, season int) ([]models.PlayerStats, error) {
	args := m.Called(ctx, playerID, season)
	var r []models.PlayerStats
	if args.Get(0) != nil {
		r = args.Get(0).([]models.PlayerStats)
	}
	return r, args.Error(1)
}

type ProjectionRepo struct {
	mock.Mock
}

func (m *ProjectionRepo) Upsert(ctx context.Context, p *models.PlayerProjection) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectionRepo) ListByPlayer(ctx context.Context, playerID, season, week int) ([]models.PlayerProjection, error) {
	args := m.Called(ctx, playerID, season, week)
	var r []models.PlayerProjection
	if args.Get(0) != nil {
		r = args.Get(0).([]models.PlayerProjection)
	}
	return r, args.Error(1)
}

type PointsRepo struct {
	mock.Mock
}

func (m *PointsRepo) Upsert(ctx context.Context, exec repositories.SQLExecutor, p *models.PlayerPoints) error {
	args := m.Called(ctx, exec, p)
	return args.Error(0)
}

func (m *PointsRepo) ListByLeagueWeek(ctx context.Context, leagueID, week, season int) ([]models.PlayerPoints, error) {
	args := m.Called(ctx, leagueID, week, season)
	var r []models.PlayerPoints
	if args.Get(0) != nil {
		r = args.Get(0).([]models.PlayerPoints)
	}
	return r, args.Error(1)
}

func (m *PointsRepo) DeleteByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) (int64, error) {
	args := m.Called(ctx, exec, leagueID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PointsRepo) DeleteByPlayerWeek(ctx context.Context, exec repositories.SQLExecutor, playerID, week, season int) (int64, error) {
	args := m.Called(ctx, exec, playerID, week, season)
	return args.Get(0).(int64), args.Error(1)
}

type NewsRepo struct {
	mock.Mock
}

func (m *NewsRepo) Create(ctx context.Context, n *models.PlayerNews) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NewsRepo) ListByPlayer(ctx context.Context, playerID, limit int) ([]models.PlayerNews, error) {
	args := m.Called(ctx, playerID, limit)
	var r []models.PlayerNews
	if args.Get(0) != nil {
		r = args.Get(0).([]models.PlayerNews)
	}
	return r, args.Error(1)
}

func (m *NewsRepo) ListRecent(ctx context.Context, limit int) ([]models.PlayerNews, error) {
	args := m.Called(ctx, limit)
	var r []models.PlayerNews
	if args.Get(0) != nil {
		r = args.Get(0).([]models.PlayerNews)
	}
	return r, args.Error(1)
}

type ScheduleRepo struct {
	mock.Mock
}

func (m *ScheduleRepo) Create(ctx context.Context, g *models.GameSchedule) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *ScheduleRepo) List(ctx context.Context, season, week int) ([]models.GameSchedule, error) {
	args := m.Called(ctx, season, week)
	var r []models.GameSchedule
	if args.Get(0) != nil {
		r = args.Get(0).([]models.GameSchedule)
	}
	return r, args.Error(1)
}

var (
	_ repositories.UserRepository       = (*UserRepo)(nil)
	_ repositories.PlayerRepository     = (*PlayerRepo)(nil)
	_ repositories.LeagueRepository     = (*LeagueRepo)(nil)
	_ repositories.TeamRepository       = (*TeamRepo)(nil)
	_ repositories.RosterRepository     = (*RosterRepo)(nil)
	_ repositories.StatsRepository      = (*StatsRepo)(nil)
	_ repositories.ProjectionRepository = (*ProjectionRepo)(nil)
	_ repositories.PointsRepository     = (*PointsRepo)(nil)
	_ repositories.NewsRepository       = (*NewsRepo)(nil)
	_ repositories.ScheduleRepository   = (*ScheduleRepo)(nil)
)
