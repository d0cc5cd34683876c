package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ffliq/ffliq-backend/db"
	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
)

type LeagueService struct {
	db         db.TxBeginner
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	pointsRepo repositories.PointsRepository
	logger     *slog.Logger
}

func NewLeagueService(
	txb db.TxBeginner,
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	pointsRepo repositories.PointsRepository,
	logger *slog.Logger,
) *LeagueService {
	return &LeagueService{
		db:         txb,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		pointsRepo: pointsRepo,
		logger:     logger,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, creatorID int, input schemas.LeagueCreate) (*models.League, error) {
	league := input.ToModel(creatorID)
	if err := s.leagueRepo.Create(ctx, league); err != nil {
		return nil, translateRepositoryError(err)
	}
	return league, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, id int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return league, nil
}

func (s *LeagueService) ListLeagues(ctx context.Context, seasonYear int) ([]models.League, error) {
	leagues, err := s.leagueRepo.List(ctx, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) ListUserLeagues(ctx context.Context, userID int) ([]models.League, error) {
	leagues, err := s.leagueRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues for user: %w", err)
	}
	return leagues, nil
}

// UpdateLeague applies a partial update. Changing the scoring settings
// deletes the league's cached points in the same transaction.
func (s *LeagueService) UpdateLeague(ctx context.Context, userID, leagueID int, input schemas.LeagueUpdate) (*models.League, error) {
	league, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league.CreatedByID != userID {
		return nil, ErrNotLeagueCreator
	}

	settingsChanged := input.Apply(league)

	var invalidated int64
	err = db.WithTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.leagueRepo.Update(ctx, tx, league); err != nil {
			return err
		}
		if !settingsChanged {
			return nil
		}
		n, err := s.pointsRepo.DeleteByLeague(ctx, tx, league.ID)
		invalidated = n
		return err
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if settingsChanged {
		s.logger.InfoContext(ctx, "league settings changed, cached points invalidated",
			slog.Int("league_id", league.ID),
			slog.Int64("rows", invalidated))
	}
	return league, nil
}

func (s *LeagueService) ListTeams(ctx context.Context, leagueID int) ([]models.Team, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *LeagueService) ListPoints(ctx context.Context, leagueID, week, season int) ([]models.PlayerPoints, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	points, err := s.pointsRepo.ListByLeagueWeek(ctx, leagueID, week, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list points: %w", err)
	}
	return points, nil
}
