package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ffliq/ffliq-backend/models"
)

var (
	ErrPlayerNotFound          = errors.New("player not found")
	ErrPlayerGlobalIDConflict  = errors.New("player global id conflict")
	ErrPlayerReferenceNotFound = errors.New("referenced player does not exist")
)

// PlayerFilter narrows ListPlayers. Zero values are ignored.
type PlayerFilter struct {
	Name       string
	Position   string
	NFLTeam    string
	SeasonYear int
	ActiveOnly bool
	Limit      int
	Offset     int
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.NFLPlayer) error
	GetByID(ctx context.Context, id int) (*models.NFLPlayer, error)
	GetByGlobalID(ctx context.Context, globalPlayerID string) (*models.NFLPlayer, error)
	List(ctx context.Context, filter PlayerFilter) ([]models.NFLPlayer, error)
	UpdateHeadshotURL(ctx context.Context, id int, url *string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, position, nfl_team, jersey_number, headshot_url,
	global_player_id, provider_player_ids, active_flag, season_year, status`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.NFLPlayer) error {
	query := `
		INSERT INTO nfl_players (name, position, nfl_team, jersey_number, headshot_url,
			global_player_id, provider_player_ids, active_flag, season_year, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Position,
		player.NFLTeam,
		player.JerseyNumber,
		player.HeadshotURL,
		player.GlobalPlayerID,
		player.ProviderPlayerIDs,
		player.ActiveFlag,
		player.SeasonYear,
		player.Status,
	).Scan(&player.ID)
	if err != nil {
		return mapPQError(err, constraintErrors{
			"nfl_players_global_player_id_key": ErrPlayerGlobalIDConflict,
		})
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.NFLPlayer, error) {
	query := `SELECT ` + playerColumns + ` FROM nfl_players WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByGlobalID(ctx context.Context, globalPlayerID string) (*models.NFLPlayer, error) {
	query := `SELECT ` + playerColumns + ` FROM nfl_players WHERE global_player_id = $1`
	return r.getOne(ctx, query, globalPlayerID)
}

func (r *postgresPlayerRepository) List(ctx context.Context, filter PlayerFilter) ([]models.NFLPlayer, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.Name != "" {
		add("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Position != "" {
		add("position = $%d", filter.Position)
	}
	if filter.NFLTeam != "" {
		add("nfl_team = $%d", filter.NFLTeam)
	}
	if filter.SeasonYear > 0 {
		add("season_year = $%d", filter.SeasonYear)
	}
	if filter.ActiveOnly {
		where = append(where, "active_flag = TRUE")
	}

	query := `SELECT ` + playerColumns + ` FROM nfl_players`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name ASC, id ASC"

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return collect(rows, scanPlayer)
}

func (r *postgresPlayerRepository) UpdateHeadshotURL(ctx context.Context, id int, url *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE nfl_players SET headshot_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("failed to update headshot for player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) getOne(ctx context.Context, query string, args ...interface{}) (*models.NFLPlayer, error) {
	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func scanPlayer(s scanner) (*models.NFLPlayer, error) {
	var p models.NFLPlayer
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Position,
		&p.NFLTeam,
		&p.JerseyNumber,
		&p.HeadshotURL,
		&p.GlobalPlayerID,
		&p.ProviderPlayerIDs,
		&p.ActiveFlag,
		&p.SeasonYear,
		&p.Status,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
