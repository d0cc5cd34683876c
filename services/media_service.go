package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/storage"
)

// MediaService uploads team logos and player headshots. A nil uploader means
// storage is not configured.
type MediaService struct {
	uploader   storage.FileUploader
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	logger     *slog.Logger
}

func NewMediaService(
	uploader storage.FileUploader,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	logger *slog.Logger,
) *MediaService {
	return &MediaService{
		uploader:   uploader,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *MediaService) Enabled() bool {
	return s.uploader != nil
}

func (s *MediaService) UploadTeamLogo(ctx context.Context, userID, teamID int, file io.Reader, contentType string) (*models.Team, error) {
	if !s.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}
	if team.UserID != userID {
		return nil, ErrNotTeamOwner
	}

	ext, err := imageExtension(contentType)
	if err != nil {
		return nil, err
	}

	url, err := s.store(ctx, storage.TeamLogoKey(teamID, ext), contentType, file, func(url string) error {
		return s.teamRepo.UpdateLogoURL(ctx, teamID, &url)
	})
	if err != nil {
		return nil, err
	}

	team.LogoURL = &url
	return team, nil
}

func (s *MediaService) UploadPlayerHeadshot(ctx context.Context, playerID int, file io.Reader, contentType string) (*models.NFLPlayer, error) {
	if !s.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	ext, err := imageExtension(contentType)
	if err != nil {
		return nil, err
	}

	url, err := s.store(ctx, storage.PlayerHeadshotKey(playerID, ext), contentType, file, func(url string) error {
		return s.playerRepo.UpdateHeadshotURL(ctx, playerID, &url)
	})
	if err != nil {
		return nil, err
	}

	player.HeadshotURL = &url
	return player, nil
}

// store uploads the object and records its public URL with save. The object
// is removed again when save fails.
func (s *MediaService) store(ctx context.Context, key, contentType string, file io.Reader, save func(url string) error) (string, error) {
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if err := save(result.Location); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to remove orphaned object",
				slog.String("key", key), slog.Any("error", delErr))
		}
		return "", translateRepositoryError(err)
	}

	s.logger.InfoContext(ctx, "object uploaded", slog.String("key", key), slog.String("etag", result.ETag))
	return result.Location, nil
}

func imageExtension(contentType string) (string, error) {
	ext, err := storage.ImageExtension(contentType)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedContentType) {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
		}
		return "", err
	}
	return ext, nil
}
