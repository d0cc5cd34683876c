package services

import (
	"errors"
	"fmt"

	"github.com/ffliq/ffliq-backend/repositories"
)

// translateRepositoryError maps repository sentinels onto service sentinels.
// Errors it does not know are returned unchanged.
func translateRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrLeagueNotFound):
		return ErrLeagueNotFound
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrStatsNotFound):
		return ErrStatsNotFound
	case errors.Is(err, repositories.ErrUserUsernameConflict):
		return ErrUsernameConflict
	case errors.Is(err, repositories.ErrUserEmailConflict):
		return ErrUserEmailConflict
	case errors.Is(err, repositories.ErrPlayerGlobalIDConflict):
		return ErrPlayerGlobalIDConflict
	case errors.Is(err, repositories.ErrPlayerReferenceNotFound):
		return fmt.Errorf("%w: player", ErrInvalidReference)
	case errors.Is(err, repositories.ErrLeagueReferenceNotFound):
		return fmt.Errorf("%w: league", ErrInvalidReference)
	case errors.Is(err, repositories.ErrUserReferenceInvalid):
		return fmt.Errorf("%w: user", ErrInvalidReference)
	}
	return err
}
