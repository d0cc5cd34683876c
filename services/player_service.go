package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
)

const detailNewsLimit = 10

// PlayerDetail is a player together with their weekly data.
type PlayerDetail struct {
	Player      *models.NFLPlayer
	Stats       []models.PlayerStats
	Projections []models.PlayerProjection
	News        []models.PlayerNews
}

type PlayerService struct {
	playerRepo     repositories.PlayerRepository
	statsRepo      repositories.StatsRepository
	projectionRepo repositories.ProjectionRepository
	newsRepo       repositories.NewsRepository
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	statsRepo repositories.StatsRepository,
	projectionRepo repositories.ProjectionRepository,
	newsRepo repositories.NewsRepository,
) *PlayerService {
	return &PlayerService{
		playerRepo:     playerRepo,
		statsRepo:      statsRepo,
		projectionRepo: projectionRepo,
		newsRepo:       newsRepo,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input schemas.NFLPlayerCreate) (*models.NFLPlayer, error) {
	player := input.ToModel()
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, translateRepositoryError(err)
	}
	return player, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int) (*models.NFLPlayer, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return player, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter repositories.PlayerFilter) ([]models.NFLPlayer, error) {
	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetPlayerByGlobalID looks a player up by the cross-provider identifier.
func (s *PlayerService) GetPlayerByGlobalID(ctx context.Context, globalPlayerID string) (*models.NFLPlayer, error) {
	player, err := s.playerRepo.GetByGlobalID(ctx, globalPlayerID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	return player, nil
}

// GetPlayerDetail loads the player, then stats, projections and news concurrently.
// season <= 0 returns every season.
func (s *PlayerService) GetPlayerDetail(ctx context.Context, id, season int) (*PlayerDetail, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &PlayerDetail{Player: player}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.statsRepo.ListByPlayer(gctx, id, season)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}
		detail.Stats = stats
		return nil
	})
	g.Go(func() error {
		projections, err := s.projectionRepo.ListByPlayer(gctx, id, season, 0)
		if err != nil {
			return fmt.Errorf("failed to load projections: %w", err)
		}
		detail.Projections = projections
		return nil
	})
	g.Go(func() error {
		news, err := s.newsRepo.ListByPlayer(gctx, id, detailNewsLimit)
		if err != nil {
			return fmt.Errorf("failed to load news: %w", err)
		}
		detail.News = news
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}
