package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ffliq/ffliq-backend/models"
	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/repositories/mockrepo"
	"github.com/ffliq/ffliq-backend/schemas"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []*models.PlayerNews
}

func (p *recordingPublisher) PublishNews(n *models.PlayerNews) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, n)
}

func TestNewsService_CreateNewsPublishes(t *testing.T) {
	news, players := &mockrepo.NewsRepo{}, &mockrepo.PlayerRepo{}
	pub := &recordingPublisher{}
	svc := NewNewsService(news, players, pub)
	fixed := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	news.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	created, err := svc.CreateNews(context.Background(), schemas.PlayerNewsCreate{NFLPlayerID: 3, Title: "Questionable", Content: "Hamstring."})
	require.NoError(t, err)
	assert.Equal(t, fixed, created.PublishedAt)
	require.Len(t, pub.published, 1)
	assert.Same(t, created, pub.published[0])

	news.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrPlayerReferenceNotFound).Once()
	_, err = svc.CreateNews(context.Background(), schemas.PlayerNewsCreate{NFLPlayerID: -1, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Len(t, pub.published, 1)
}

func TestNewsService_ListPlayerNewsUnknownPlayer(t *testing.T) {
	news, players := &mockrepo.NewsRepo{}, &mockrepo.PlayerRepo{}
	svc := NewNewsService(news, players, nil)
	players.On("GetByID", mock.Anything, 1).Return(nil, repositories.ErrPlayerNotFound)

	_, err := svc.ListPlayerNews(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	news.AssertNotCalled(t, "ListByPlayer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslateRepositoryError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{repositories.ErrUserNotFound, ErrUserNotFound},
		{repositories.ErrPlayerNotFound, ErrPlayerNotFound},
		{repositories.ErrLeagueNotFound, ErrLeagueNotFound},
		{repositories.ErrTeamNotFound, ErrTeamNotFound},
		{repositories.ErrStatsNotFound, ErrStatsNotFound},
		{repositories.ErrUserUsernameConflict, ErrUsernameConflict},
		{repositories.ErrUserEmailConflict, ErrUserEmailConflict},
		{repositories.ErrPlayerGlobalIDConflict, ErrPlayerGlobalIDConflict},
		{repositories.ErrPlayerReferenceNotFound, ErrInvalidReference},
		{repositories.ErrLeagueReferenceNotFound, ErrInvalidReference},
		{repositories.ErrUserReferenceInvalid, ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			assert.ErrorIs(t, translateRepositoryError(tt.in), tt.want)
		})
	}
	assert.NoError(t, translateRepositoryError(nil))
}
