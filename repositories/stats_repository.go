package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

var (
	ErrStatsNotFound = errors.New("player stats not found")
)

type StatsRepository interface {
	// Upsert inserts or replaces the stat line for the player, week and season.
	Upsert(ctx context.Context, exec SQLExecutor, stats *models.PlayerStats) error
	Get(ctx context.Context, playerID, week, season int) (*models.PlayerStats, error)
	ListByPlayer(ctx context.Context, playerID, season int) ([]models.PlayerStats, error)
}

type postgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) StatsRepository {
	return &postgresStatsRepository{db: db}
}

const statsColumns = `id, nfl_player_id, week_number, season_year,
	passing_yards, passing_tds, interceptions, passing_completions, passing_attempts,
	rushing_yards, rushing_tds, rushing_attempts,
	receiving_yards, receiving_tds, receptions, targets, fumbles_lost,
	fg_made_1_29, fg_made_30_39, fg_made_40_49, fg_made_50_plus, extra_points_made,
	sacks, defensive_interceptions, fumble_recoveries, defensive_tds, safeties,
	provider_id, raw_stats, last_updated`

func (r *postgresStatsRepository) Upsert(ctx context.Context, exec SQLExecutor, s *models.PlayerStats) error {
	executor := getExecutor(exec, r.db)
	query := `
		INSERT INTO player_stats (nfl_player_id, week_number, season_year,
			passing_yards, passing_tds, interceptions, passing_completions, passing_attempts,
			rushing_yards, rushing_tds, rushing_attempts,
			receiving_yards, receiving_tds, receptions, targets, fumbles_lost,
			fg_made_1_29, fg_made_30_39, fg_made_40_49, fg_made_50_plus, extra_points_made,
			sacks, defensive_interceptions, fumble_recoveries, defensive_tds, safeties,
			provider_id, raw_stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT ON CONSTRAINT player_stats_player_week_season_key DO UPDATE SET
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
			fg_made_1_29 = EXCLUDED.fg_made_1_29,
			fg_made_30_39 = EXCLUDED.fg_made_30_39,
			fg_made_40_49 = EXCLUDED.fg_made_40_49,
			fg_made_50_plus = EXCLUDED.fg_made_50_plus,
			extra_points_made = EXCLUDED.extra_points_made,
			sacks = EXCLUDED.sacks,
			defensive_interceptions = EXCLUDED.defensive_interceptions,
			fumble_recoveries = EXCLUDED.fumble_recoveries,
			defensive_tds = EXCLUDED.defensive_tds,
			safeties = EXCLUDED.safeties,
			provider_id = EXCLUDED.provider_id,
			raw_stats = EXCLUDED.raw_stats,
			last_updated = NOW()
		RETURNING id, last_updated`

	err := executor.QueryRowContext(ctx, query,
		s.NFLPlayerID, s.WeekNumber, s.SeasonYear,
		s.PassingYards, s.PassingTDs, s.Interceptions, s.PassingCompletions, s.PassingAttempts,
		s.RushingYards, s.RushingTDs, s.RushingAttempts,
		s.ReceivingYards, s.ReceivingTDs, s.Receptions, s.Targets, s.FumblesLost,
		s.FGMade1To29, s.FGMade30To39, s.FGMade40To49, s.FGMade50Plus, s.ExtraPointsMade,
		s.Sacks, s.DefensiveInterceptions, s.FumbleRecoveries, s.DefensiveTDs, s.Safeties,
		s.ProviderID, s.RawStats,
	).Scan(&s.ID, &s.LastUpdated)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"player_stats_nfl_player_id_fkey": ErrPlayerReferenceNotFound,
		})
	}
	return nil
}

func (r *postgresStatsRepository) Get(ctx context.Context, playerID, week, season int) (*models.PlayerStats, error) {
	query := `SELECT ` + statsColumns + ` FROM player_stats
		WHERE nfl_player_id = $1 AND week_number = $2 AND season_year = $3`
	stats, err := scanStats(r.db.QueryRowContext(ctx, query, playerID, week, season))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// ListByPlayer returns the player's stat lines ordered by week. season <= 0 means all seasons.
func (r *postgresStatsRepository) ListByPlayer(ctx context.Context, playerID, season int) ([]models.PlayerStats, error) {
	query := `SELECT ` + statsColumns + ` FROM player_stats WHERE nfl_player_id = $1`
	args := []interface{}{playerID}
	if season > 0 {
		query += ` AND season_year = $2`
		args = append(args, season)
	}
	query += ` ORDER BY season_year DESC, week_number ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats for player %d: %w", playerID, err)
	}
	return collect(rows, scanStats)
}

func scanStats(sc scanner) (*models.PlayerStats, error) {
	var s models.PlayerStats
	err := sc.Scan(
		&s.ID, &s.NFLPlayerID, &s.WeekNumber, &s.SeasonYear,
		&s.PassingYards, &s.PassingTDs, &s.Interceptions, &s.PassingCompletions, &s.PassingAttempts,
		&s.RushingYards, &s.RushingTDs, &s.RushingAttempts,
		&s.ReceivingYards, &s.ReceivingTDs, &s.Receptions, &s.Targets, &s.FumblesLost,
		&s.FGMade1To29, &s.FGMade30To39, &s.FGMade40To49, &s.FGMade50Plus, &s.ExtraPointsMade,
		&s.Sacks, &s.DefensiveInterceptions, &s.FumbleRecoveries, &s.DefensiveTDs, &s.Safeties,
		&s.ProviderID, &s.RawStats, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
