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

// StatsService records actual stats and projections. Recording stats drops the
// cached fantasy points that were computed from the previous stat line.
type StatsService struct {
	db             db.TxBeginner
	playerRepo     repositories.PlayerRepository
	statsRepo      repositories.StatsRepository
	projectionRepo repositories.ProjectionRepository
	pointsRepo     repositories.PointsRepository
	logger         *slog.Logger
}

func NewStatsService(
	txb db.TxBeginner,
	playerRepo repositories.PlayerRepository,
	statsRepo repositories.StatsRepository,
	projectionRepo repositories.ProjectionRepository,
	pointsRepo repositories.PointsRepository,
	logger *slog.Logger,
) *StatsService {
	return &StatsService{
		db:             txb,
		playerRepo:     playerRepo,
		statsRepo:      statsRepo,
		projectionRepo: projectionRepo,
		pointsRepo:     pointsRepo,
		logger:         logger,
	}
}

func (s *StatsService) UpsertStats(ctx context.Context, input schemas.PlayerStatsCreate) (*models.PlayerStats, error) {
	stats := input.ToModel()

	var invalidated int64
	err := db.WithTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.statsRepo.Upsert(ctx, tx, stats); err != nil {
			return err
		}
		n, err := s.pointsRepo.DeleteByPlayerWeek(ctx, tx, stats.NFLPlayerID, stats.WeekNumber, stats.SeasonYear)
		if err != nil {
			return err
		}
		invalidated = n
		return nil
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if invalidated > 0 {
		s.logger.InfoContext(ctx, "cached points invalidated by stats update",
			slog.Int("player_id", stats.NFLPlayerID),
			slog.Int("week", stats.WeekNumber),
			slog.Int("season", stats.SeasonYear),
			slog.Int64("rows", invalidated))
	}
	return stats, nil
}

func (s *StatsService) ListStats(ctx context.Context, playerID, season int) ([]models.PlayerStats, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, translateRepositoryError(err)
	}
	stats, err := s.statsRepo.ListByPlayer(ctx, playerID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	return stats, nil
}

func (s *StatsService) GetWeekStats(ctx context.Context, playerID, week, season int) (*models.PlayerStats, error) {
	stats, err := s.statsRepo.Get(ctx, playerID, week, season)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return stats, nil
}

func (s *StatsService) UpsertProjection(ctx context.Context, input schemas.PlayerProjectionCreate) (*models.PlayerProjection, error) {
	projection := input.ToModel()
	if err := s.projectionRepo.Upsert(ctx, projection); err != nil {
		return nil, translateRepositoryError(err)
	}
	return projection, nil
}

func (s *StatsService) ListProjections(ctx context.Context, playerID, season, week int) ([]models.PlayerProjection, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, translateRepositoryError(err)
	}
	projections, err := s.projectionRepo.ListByPlayer(ctx, playerID, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}
	return projections, nil
}
