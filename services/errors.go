package services

import "errors"

// Errors shared by services and the HTTP error mapping.
var (
	ErrNotFound            = errors.New("requested resource not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrLeagueNotFound      = errors.New("league not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrStatsNotFound       = errors.New("stats not found")
	ErrInvalidReference    = errors.New("referenced resource does not exist")
	ErrValidationFailed    = errors.New("validation failed")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	ErrUsernameConflict       = errors.New("username is already in use")
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrPlayerGlobalIDConflict = errors.New("a player with this global_player_id already exists")

	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")
	ErrNotLeagueCreator     = errors.New("only the league creator can modify the league")
	ErrNotTeamOwner         = errors.New("only the team owner can perform this action")

	ErrStorageNotConfigured = errors.New("file storage is not configured")
)
