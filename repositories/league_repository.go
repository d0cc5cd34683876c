package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

var (
	ErrLeagueNotFound          = errors.New("league not found")
	ErrLeagueReferenceNotFound = errors.New("referenced league does not exist")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	List(ctx context.Context, seasonYear int) ([]models.League, error)
	ListByCreator(ctx context.Context, userID int) ([]models.League, error)
	// Update writes every mutable column. exec may be a transaction.
	Update(ctx context.Context, exec SQLExecutor, league *models.League) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

const leagueColumns = `id, name, description, season_year, provider_id, provider_league_id,
	settings, settings_source, last_sync_time, sync_frequency, status, created_by_id,
	created_at, updated_at`

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	if league.Status == "" {
		league.Status = models.StatusActive
	}

	query := `
		INSERT INTO leagues (name, description, season_year, provider_id, provider_league_id,
			settings, settings_source, last_sync_time, sync_frequency, status, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		league.Name,
		league.Description,
		league.SeasonYear,
		league.ProviderID,
		league.ProviderLeagueID,
		league.Settings,
		league.SettingsSource,
		league.LastSyncTime,
		league.SyncFrequency,
		league.Status,
		league.CreatedByID,
	).Scan(&league.ID, &league.CreatedAt, &league.UpdatedAt)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"leagues_created_by_id_fkey": ErrUserReferenceInvalid,
		})
	}
	return nil
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	league, err := scanLeague(r.db.QueryRowContext(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %d: %w", id, err)
	}
	return league, nil
}

func (r *postgresLeagueRepository) List(ctx context.Context, seasonYear int) ([]models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues`
	var args []interface{}
	if seasonYear > 0 {
		query += ` WHERE season_year = $1`
		args = append(args, seasonYear)
	}
	query += ` ORDER BY season_year DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return collect(rows, scanLeague)
}

func (r *postgresLeagueRepository) ListByCreator(ctx context.Context, userID int) ([]models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE created_by_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues for user %d: %w", userID, err)
	}
	return collect(rows, scanLeague)
}

func (r *postgresLeagueRepository) Update(ctx context.Context, exec SQLExecutor, league *models.League) error {
	executor := getExecutor(exec, r.db)
	query := `
		UPDATE leagues SET
			name = $1,
			description = $2,
			season_year = $3,
			provider_id = $4,
			provider_league_id = $5,
			settings = $6,
			settings_source = $7,
			last_sync_time = $8,
			sync_frequency = $9,
			status = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at`

	err := executor.QueryRowContext(ctx, query,
		league.Name,
		league.Description,
		league.SeasonYear,
		league.ProviderID,
		league.ProviderLeagueID,
		league.Settings,
		league.SettingsSource,
		league.LastSyncTime,
		league.SyncFrequency,
		league.Status,
		league.ID,
	).Scan(&league.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLeagueNotFound
		}
		return fmt.Errorf("failed to update league %d: %w", league.ID, err)
	}
	return nil
}

func scanLeague(s scanner) (*models.League, error) {
	var l models.League
	var createdByID sql.NullInt64
	err := s.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.SeasonYear,
		&l.ProviderID,
		&l.ProviderLeagueID,
		&l.Settings,
		&l.SettingsSource,
		&l.LastSyncTime,
		&l.SyncFrequency,
		&l.Status,
		&createdByID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.CreatedByID = int(createdByID.Int64)
	return &l, nil
}
