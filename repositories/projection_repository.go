package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

type ProjectionRepository interface {
	// Upsert keeps one projection per player, week, season and source.
	Upsert(ctx context.Context, p *models.PlayerProjection) error
	ListByPlayer(ctx context.Context, playerID, season, week int) ([]models.PlayerProjection, error)
}

type postgresProjectionRepository struct {
	db *sql.DB
}

func NewPostgresProjectionRepository(db *sql.DB) ProjectionRepository {
	return &postgresProjectionRepository{db: db}
}

const projectionColumns = `id, nfl_player_id, week_number, season_year,
	passing_yards, passing_tds, interceptions, passing_completions, passing_attempts,
	rushing_yards, rushing_tds, rushing_attempts,
	receiving_yards, receiving_tds, receptions, targets, fumbles_lost,
	projection_source, projection_data, created_at`

func (r *postgresProjectionRepository) Upsert(ctx context.Context, p *models.PlayerProjection) error {
	query := `
		INSERT INTO player_projections (nfl_player_id, week_number, season_year,
			passing_yards, passing_tds, interceptions, passing_completions, passing_attempts,
			rushing_yards, rushing_tds, rushing_attempts,
			receiving_yards, receiving_tds, receptions, targets, fumbles_lost,
			projection_source, projection_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT ON CONSTRAINT player_projections_player_week_season_source_key DO UPDATE SET
			passing_yards = EXCLUDED.passing_yards,
			passing_tds = EXCLUDED.passing_tds,
			interceptions = EXCLUDED.interceptions,
			passing_completions = EXCLUDED.passing_completions,
			passing_attempts = EXCLUDED.passing_attempts,
			rushing_yards = EXCLUDED.rushing_yards,
			rushing_tds = EXCLUDED.rushing_tds,
			rushing_attempts = EXCLUDED.rushing_attempts,
			receiving_yards = EXCLUDED.receiving_yards,
			receiving_tds = EXCLUDED.receiving_tds,
			receptions = EXCLUDED.receptions,
			targets = EXCLUDED.targets,
			fumbles_lost = EXCLUDED.fumbles_lost,
			projection_data = EXCLUDED.projection_data,
			created_at = NOW()
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.NFLPlayerID, p.WeekNumber, p.SeasonYear,
		p.PassingYards, p.PassingTDs, p.Interceptions, p.PassingCompletions, p.PassingAttempts,
		p.RushingYards, p.RushingTDs, p.RushingAttempts,
		p.ReceivingYards, p.ReceivingTDs, p.Receptions, p.Targets, p.FumblesLost,
		p.ProjectionSource, p.ProjectionData,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"player_projections_nfl_player_id_fkey": ErrPlayerReferenceNotFound,
		})
	}
	return nil
}

// ListByPlayer filters on season and week when they are positive.
func (r *postgresProjectionRepository) ListByPlayer(ctx context.Context, playerID, season, week int) ([]models.PlayerProjection, error) {
	query := `SELECT ` + projectionColumns + ` FROM player_projections WHERE nfl_player_id = $1`
	args := []interface{}{playerID}
	if season > 0 {
		args = append(args, season)
		query += fmt.Sprintf(` AND season_year = $%d`, len(args))
	}
	if week > 0 {
		args = append(args, week)
		query += fmt.Sprintf(` AND week_number = $%d`, len(args))
	}
	query += ` ORDER BY season_year DESC, week_number ASC, projection_source ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projections for player %d: %w", playerID, err)
	}
	return collect(rows, func(sc scanner) (*models.PlayerProjection, error) {
		var p models.PlayerProjection
		err := sc.Scan(
			&p.ID, &p.NFLPlayerID, &p.WeekNumber, &p.SeasonYear,
			&p.PassingYards, &p.PassingTDs, &p.Interceptions, &p.PassingCompletions, &p.PassingAttempts,
			&p.RushingYards, &p.RushingTDs, &p.RushingAttempts,
			&p.ReceivingYards, &p.ReceivingTDs, &p.Receptions, &p.Targets, &p.FumblesLost,
			&p.ProjectionSource, &p.ProjectionData, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan projection: %w", err)
		}
		return &p, nil
	})
}
