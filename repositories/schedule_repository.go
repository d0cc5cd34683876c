package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, game *models.GameSchedule) error
	// List filters on week when it is positive.
	List(ctx context.Context, season, week int) ([]models.GameSchedule, error)
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) Create(ctx context.Context, g *models.GameSchedule) error {
	if g.Status == "" {
		g.Status = models.StatusScheduled
	}
	query := `
		INSERT INTO game_schedules (nfl_team_home, nfl_team_away, week_number, season_year, game_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		g.NFLTeamHome, g.NFLTeamAway, g.WeekNumber, g.SeasonYear, g.GameTime, g.Status,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("failed to create game schedule: %w", err)
	}
	return nil
}

func (r *postgresScheduleRepository) List(ctx context.Context, season, week int) ([]models.GameSchedule, error) {
	query := `
		SELECT id, nfl_team_home, nfl_team_away, week_number, season_year, game_time, status
		FROM game_schedules
		WHERE season_year = $1`
	args := []interface{}{season}
	if week > 0 {
		query += ` AND week_number = $2`
		args = append(args, week)
	}
	query += ` ORDER BY week_number ASC, game_time ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule for season %d: %w", season, err)
	}
	return collect(rows, func(sc scanner) (*models.GameSchedule, error) {
		var g models.GameSchedule
		if err := sc.Scan(&g.ID, &g.NFLTeamHome, &g.NFLTeamAway, &g.WeekNumber, &g.SeasonYear, &g.GameTime, &g.Status); err != nil {
			return nil, fmt.Errorf("failed to scan game schedule: %w", err)
		}
		return &g, nil
	})
}
