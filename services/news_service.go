package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
)

// NewsPublisher pushes freshly stored news to live subscribers.
type NewsPublisher interface {
	PublishNews(news *models.PlayerNews)
}

type NewsService struct {
	newsRepo   repositories.NewsRepository
	playerRepo repositories.PlayerRepository
	publisher  NewsPublisher
	now        func() time.Time
}

func NewNewsService(newsRepo repositories.NewsRepository, playerRepo repositories.PlayerRepository, publisher NewsPublisher) *NewsService {
	return &NewsService{
		newsRepo:   newsRepo,
		playerRepo: playerRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *NewsService) CreateNews(ctx context.Context, input schemas.PlayerNewsCreate) (*models.PlayerNews, error) {
	news := input.ToModel(s.now().UTC())
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, translateRepositoryError(err)
	}
	if s.publisher != nil {
		s.publisher.PublishNews(news)
	}
	return news, nil
}

func (s *NewsService) ListPlayerNews(ctx context.Context, playerID, limit int) ([]models.PlayerNews, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, translateRepositoryError(err)
	}
	news, err := s.newsRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return news, nil
}

func (s *NewsService) ListRecentNews(ctx context.Context, limit int) ([]models.PlayerNews, error) {
	news, err := s.newsRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent news: %w", err)
	}
	return news, nil
}
