package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories/mockrepo"
	"github.com/ffliq/ffliq-backend/storage"
	"github.com/ffliq/ffliq-backend/storage/mockstorage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMediaService_disabled(t *testing.T) {
	svc := NewMediaService(nil, &mockrepo.TeamRepo{}, &mockrepo.PlayerRepo{}, discardLogger())
	assert.False(t, svc.Enabled())

	_, err := svc.UploadTeamLogo(context.Background(), 1, 1, strings.NewReader("png"), "image/png")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	_, err = svc.UploadPlayerHeadshot(context.Background(), 1, strings.NewReader("png"), "image/png")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestMediaService_UploadTeamLogo(t *testing.T) {
	uploader, teams := &mockstorage.Uploader{}, &mockrepo.TeamRepo{}
	svc := NewMediaService(uploader, teams, &mockrepo.PlayerRepo{}, discardLogger())

	teams.On("GetByID", mock.Anything, 4).Return(&models.Team{ID: 4, UserID: 7}, nil)
	isLogoKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "teams/4/logo-") && strings.HasSuffix(key, ".png")
	})
	uploader.On("Upload", mock.Anything, isLogoKey, "image/png", mock.Anything).
		Return(&storage.UploadResult{Key: "k", Location: "https://cdn.example.com/teams/4/logo.png"}, nil)
	teams.On("UpdateLogoURL", mock.Anything, 4, mock.Anything).Return(nil)

	team, err := svc.UploadTeamLogo(context.Background(), 7, 4, strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/teams/4/logo.png", *team.LogoURL)

	_, err = svc.UploadTeamLogo(context.Background(), 8, 4, strings.NewReader("png"), "image/png")
	assert.ErrorIs(t, err, ErrNotTeamOwner)

	_, err = svc.UploadTeamLogo(context.Background(), 7, 4, strings.NewReader("%PDF"), "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	uploader.AssertNumberOfCalls(t, "Upload", 1)
}

func TestMediaService_removesObjectWhenSaveFails(t *testing.T) {
	uploader, players := &mockstorage.Uploader{}, &mockrepo.PlayerRepo{}
	svc := NewMediaService(uploader, &mockrepo.TeamRepo{}, players, discardLogger())

	players.On("GetByID", mock.Anything, 2).Return(&models.NFLPlayer{ID: 2}, nil)
	uploader.On("Upload", mock.Anything, mock.Anything, "image/jpeg", mock.Anything).
		Return(&storage.UploadResult{Key: "players/2/headshot.jpg", Location: "https://cdn.example.com/players/2/headshot.jpg"}, nil)
	players.On("UpdateHeadshotURL", mock.Anything, 2, mock.Anything).Return(errors.New("db down"))
	uploader.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "players/2/headshot-")
	})).Return(nil)

	_, err := svc.UploadPlayerHeadshot(context.Background(), 2, strings.NewReader("jpg"), "image/jpeg")
	assert.Error(t, err)
	uploader.AssertExpectations(t)
}
