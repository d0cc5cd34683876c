package schemas

import (
	"time"

	"github.com/ffliq/ffliq-backend/models"
)

type PlayerNewsCreate struct {
	NFLPlayerID    int        `json:"nfl_player_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Source         *string    `json:"source"`
	SourceURL      *string    `json:"source_url"`
	PublishedAt    *time.Time `json:"published_at"`
	SentimentScore *float64   `json:"sentiment_score"`
}

func (n PlayerNewsCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.positiveID(n.NFLPlayerID, "nfl_player_id")
	errs.required(n.Title, "title")
	errs.required(n.Content, "content")
	if n.SentimentScore != nil {
		errs.check(*n.SentimentScore >= -1 && *n.SentimentScore <= 1, "sentiment_score", "must be between -1 and 1")
	}
	return errs.result()
}

// ToModel stamps PublishedAt with now when the body omits it.
func (n PlayerNewsCreate) ToModel(now time.Time) *models.PlayerNews {
	published := now
	if n.PublishedAt != nil {
		published = *n.PublishedAt
	}
	return &models.PlayerNews{
		NFLPlayerID:    n.NFLPlayerID,
		Title:          n.Title,
		Content:        n.Content,
		Source:         n.Source,
		SourceURL:      n.SourceURL,
		PublishedAt:    published,
		SentimentScore: n.SentimentScore,
	}
}

type PlayerNewsResponse struct {
	ID             int       `json:"id"`
	NFLPlayerID    int       `json:"nfl_player_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Source         *string   `json:"source"`
	SourceURL      *string   `json:"source_url"`
	PublishedAt    time.Time `json:"published_at"`
	SentimentScore *float64  `json:"sentiment_score"`
}

func NewPlayerNewsResponse(n *models.PlayerNews) PlayerNewsResponse {
	return PlayerNewsResponse{
		ID:             n.ID,
		NFLPlayerID:    n.NFLPlayerID,
		Title:          n.Title,
		Content:        n.Content,
		Source:         n.Source,
		SourceURL:      n.SourceURL,
		PublishedAt:    n.PublishedAt,
		SentimentScore: n.SentimentScore,
	}
}
