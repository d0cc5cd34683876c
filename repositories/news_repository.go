package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

type NewsRepository interface {
	Create(ctx context.Context, news *models.PlayerNews) error
	ListByPlayer(ctx context.Context, playerID, limit int) ([]models.PlayerNews, error)
	ListRecent(ctx context.Context, limit int) ([]models.PlayerNews, error)
}

type postgresNewsRepository struct {
	db *sql.DB
}

func NewPostgresNewsRepository(db *sql.DB) NewsRepository {
	return &postgresNewsRepository{db: db}
}

const newsColumns = `id, nfl_player_id, title, content, source, source_url, published_at, sentiment_score`

func (r *postgresNewsRepository) Create(ctx context.Context, n *models.PlayerNews) error {
	query := `
		INSERT INTO player_news (nfl_player_id, title, content, source, source_url, published_at, sentiment_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		n.NFLPlayerID, n.Title, n.Content, n.Source, n.SourceURL, n.PublishedAt, n.SentimentScore,
	).Scan(&n.ID)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"player_news_nfl_player_id_fkey": ErrPlayerReferenceNotFound,
		})
	}
	return nil
}

func (r *postgresNewsRepository) ListByPlayer(ctx context.Context, playerID, limit int) ([]models.PlayerNews, error) {
	query := `SELECT ` + newsColumns + ` FROM player_news WHERE nfl_player_id = $1
		ORDER BY published_at DESC, id DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, playerID, newsLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list news for player %d: %w", playerID, err)
	}
	return collect(rows, scanNews)
}

func (r *postgresNewsRepository) ListRecent(ctx context.Context, limit int) ([]models.PlayerNews, error) {
	query := `SELECT ` + newsColumns + ` FROM player_news ORDER BY published_at DESC, id DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, newsLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent news: %w", err)
	}
	return collect(rows, scanNews)
}

func newsLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}

func scanNews(sc scanner) (*models.PlayerNews, error) {
	var n models.PlayerNews
	err := sc.Scan(&n.ID, &n.NFLPlayerID, &n.Title, &n.Content, &n.Source, &n.SourceURL, &n.PublishedAt, &n.SentimentScore)
	if err != nil {
		return nil, fmt.Errorf("failed to scan news: %w", err)
	}
	return &n, nil
}
