package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

var (
	ErrTeamNotFound = errors.New("team not found")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByLeague(ctx context.Context, leagueID int) ([]models.Team, error)
	ListByUser(ctx context.Context, userID int) ([]models.Team, error)
	UpdateLogoURL(ctx context.Context, id int, logoURL *string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, name, user_id, league_id, provider_team_id, logo_url, created_at, updated_at`

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, user_id, league_id, provider_team_id, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		team.Name,
		team.UserID,
		team.LeagueID,
		team.ProviderTeamID,
		team.LogoURL,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"teams_user_id_fkey":   ErrUserReferenceInvalid,
			"teams_league_id_fkey": ErrLeagueReferenceNotFound,
		})
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := scanTeam(r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

func (r *postgresTeamRepository) ListByLeague(ctx context.Context, leagueID int) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE league_id = $1 ORDER BY name ASC`, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for league %d: %w", leagueID, err)
	}
	return collect(rows, scanTeam)
}

func (r *postgresTeamRepository) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for user %d: %w", userID, err)
	}
	return collect(rows, scanTeam)
}

func (r *postgresTeamRepository) UpdateLogoURL(ctx context.Context, id int, logoURL *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET logo_url = $1, updated_at = NOW() WHERE id = $2`, logoURL, id)
	if err != nil {
		return fmt.Errorf("failed to update logo for team %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func scanTeam(s scanner) (*models.Team, error) {
	var t models.Team
	var userID, leagueID sql.NullInt64
	err := s.Scan(
		&t.ID,
		&t.Name,
		&userID,
		&leagueID,
		&t.ProviderTeamID,
		&t.LogoURL,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.UserID = int(userID.Int64)
	t.LeagueID = int(leagueID.Int64)
	return &t, nil
}
