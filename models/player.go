package models

import "time"

// NFLPlayer is the canonical player record shared by every league.
type NFLPlayer struct {
	ID                int         `json:"id" db:"id"`
	Name              string      `json:"name" db:"name"`
	Position          string      `json:"position" db:"position"`
	NFLTeam           string      `json:"nfl_team" db:"nfl_team"`
	JerseyNumber      *int        `json:"jersey_number,omitempty" db:"jersey_number"`
	HeadshotURL       *string     `json:"headshot_url,omitempty" db:"headshot_url"`
	GlobalPlayerID    string      `json:"global_player_id" db:"global_player_id"`
	ProviderPlayerIDs ProviderIDs `json:"provider_player_ids,omitempty" db:"provider_player_ids"`
	ActiveFlag        bool        `json:"active_flag" db:"active_flag"`
	SeasonYear        int         `json:"season_year" db:"season_year"`
	Status            *string     `json:"status,omitempty" db:"status"`
}

// PlayerNews is an ingested news item about one player.
type PlayerNews struct {
	ID             int       `json:"id" db:"id"`
	NFLPlayerID    int       `json:"nfl_player_id" db:"nfl_player_id"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	Source         *string   `json:"source,omitempty" db:"source"`
	SourceURL      *string   `json:"source_url,omitempty" db:"source_url"`
	PublishedAt    time.Time `json:"published_at" db:"published_at"`
	SentimentScore *float64  `json:"sentiment_score,omitempty" db:"sentiment_score"`
}
