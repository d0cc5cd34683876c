package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

// PointsRepository manages the computed-points cache. Every write accepts an
// executor so invalidation can share a transaction with the change that caused it.
type PointsRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, p *models.PlayerPoints) error
	ListByLeagueWeek(ctx context.Context, leagueID, week, season int) ([]models.PlayerPoints, error)
	DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int64, error)
	DeleteByPlayerWeek(ctx context.Context, exec SQLExecutor, playerID, week, season int) (int64, error)
}

type postgresPointsRepository struct {
	db *sql.DB
}

func NewPostgresPointsRepository(db *sql.DB) PointsRepository {
	return &postgresPointsRepository{db: db}
}

func (r *postgresPointsRepository) Upsert(ctx context.Context, exec SQLExecutor, p *models.PlayerPoints) error {
	executor := getExecutor(exec, r.db)
	query := `
		INSERT INTO player_points (nfl_player_id, league_id, week_number, season_year, points)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT player_points_player_league_week_season_key DO UPDATE SET
			points = EXCLUDED.points,
			calculated_at = NOW()
		RETURNING id, calculated_at`

	err := executor.QueryRowContext(ctx, query,
		p.NFLPlayerID, p.LeagueID, p.WeekNumber, p.SeasonYear, p.Points,
	).Scan(&p.ID, &p.CalculatedAt)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"player_points_nfl_player_id_fkey": ErrPlayerReferenceNotFound,
			"player_points_league_id_fkey":     ErrLeagueReferenceNotFound,
		})
	}
	return nil
}

func (r *postgresPointsRepository) ListByLeagueWeek(ctx context.Context, leagueID, week, season int) ([]models.PlayerPoints, error) {
	query := `
		SELECT id, nfl_player_id, league_id, week_number, season_year, points, calculated_at
		FROM player_points
		WHERE league_id = $1 AND week_number = $2 AND season_year = $3
		ORDER BY points DESC, nfl_player_id ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID, week, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list points for league %d: %w", leagueID, err)
	}
	return collect(rows, func(sc scanner) (*models.PlayerPoints, error) {
		var p models.PlayerPoints
		if err := sc.Scan(&p.ID, &p.NFLPlayerID, &p.LeagueID, &p.WeekNumber, &p.SeasonYear, &p.Points, &p.CalculatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan points: %w", err)
		}
		return &p, nil
	})
}

func (r *postgresPointsRepository) DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int64, error) {
	executor := getExecutor(exec, r.db)
	result, err := executor.ExecContext(ctx, `DELETE FROM player_points WHERE league_id = $1`, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate points for league %d: %w", leagueID, err)
	}
	return result.RowsAffected()
}

func (r *postgresPointsRepository) DeleteByPlayerWeek(ctx context.Context, exec SQLExecutor, playerID, week, season int) (int64, error) {
	executor := getExecutor(exec, r.db)
	result, err := executor.ExecContext(ctx,
		`DELETE FROM player_points WHERE nfl_player_id = $1 AND week_number = $2 AND season_year = $3`,
		playerID, week, season)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate points for player %d: %w", playerID, err)
	}
	return result.RowsAffected()
}
