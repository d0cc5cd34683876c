package services

import (
	"context"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
)

type ScheduleService struct {
	repo repositories.ScheduleRepository
}

func NewScheduleService(repo repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) CreateGame(ctx context.Context, input schemas.GameScheduleCreate) (*models.GameSchedule, error) {
	game := input.ToModel()
	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *ScheduleService) ListGames(ctx context.Context, season, week int) ([]models.GameSchedule, error) {
	games, err := s.repo.List(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}
	return games, nil
}
