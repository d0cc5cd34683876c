package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ffliq/ffliq-backend/models"
)

type RosterRepository interface {
	Create(ctx context.Context, exec SQLExecutor, entry *models.Roster) error
	CreateBatch(ctx context.Context, entries []*models.Roster) error
	ListByTeamWeek(ctx context.Context, teamID, weekNumber int) ([]models.Roster, error)
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

var rosterConstraints = constraintErrors{
	"rosters_team_id_fkey":       ErrTeamNotFound,
	"rosters_nfl_player_id_fkey": ErrPlayerReferenceNotFound,
}

const insertRosterQuery = `
	INSERT INTO rosters (team_id, nfl_player_id, roster_position, week_number, is_starter, provider_roster_slot_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, last_updated`

func (r *postgresRosterRepository) Create(ctx context.Context, exec SQLExecutor, entry *models.Roster) error {
	executor := getExecutor(exec, r.db)
	err := executor.QueryRowContext(ctx, insertRosterQuery,
		entry.TeamID,
		entry.NFLPlayerID,
		entry.RosterPosition,
		entry.WeekNumber,
		entry.IsStarter,
		entry.ProviderRosterSlotID,
	).Scan(&entry.ID, &entry.LastUpdated)
	if err != nil {
		return mapPQError(err, rosterConstraints)
	}
	return nil
}

// CreateBatch inserts all entries in one transaction.
func (r *postgresRosterRepository) CreateBatch(ctx context.Context, entries []*models.Roster) (err error) {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateBatch failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, entry := range entries {
		if err = r.Create(ctx, tx, entry); err != nil {
			return fmt.Errorf("CreateBatch failed for team_id %d, player_id %d: %w", entry.TeamID, entry.NFLPlayerID, err)
		}
	}
	return nil
}

func (r *postgresRosterRepository) ListByTeamWeek(ctx context.Context, teamID, weekNumber int) ([]models.Roster, error) {
	query := `
		SELECT id, team_id, nfl_player_id, roster_position, week_number, is_starter,
			provider_roster_slot_id, last_updated
		FROM rosters
		WHERE team_id = $1 AND week_number = $2
		ORDER BY is_starter DESC, roster_position ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID, weekNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster for team %d week %d: %w", teamID, weekNumber, err)
	}
	return collect(rows, func(s scanner) (*models.Roster, error) {
		var e models.Roster
		err := s.Scan(&e.ID, &e.TeamID, &e.NFLPlayerID, &e.RosterPosition, &e.WeekNumber,
			&e.IsStarter, &e.ProviderRosterSlotID, &e.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		return &e, nil
	})
}
