package schemas

import "github.com/ffliq/ffliq-backend/models"

type NFLPlayerCreate struct {
	Name              string            `json:"name"`
	Position          string            `json:"position"`
	NFLTeam           string            `json:"nfl_team"`
	JerseyNumber      *int              `json:"jersey_number"`
	HeadshotURL       *string           `json:"headshot_url"`
	GlobalPlayerID    string            `json:"global_player_id"`
	ProviderPlayerIDs map[string]string `json:"provider_player_ids"`
	ActiveFlag        *bool             `json:"active_flag"`
	SeasonYear        int               `json:"season_year"`
	Status            *string           `json:"status"`
}

func (p NFLPlayerCreate) Validate() map[string]string {
	errs := fieldErrors{}
	errs.required(p.Name, "name")
	errs.required(p.Position, "position")
	errs.required(p.NFLTeam, "nfl_team")
	errs.required(p.GlobalPlayerID, "global_player_id")
	errs.season(p.SeasonYear, "season_year")
	if p.JerseyNumber != nil {
		errs.check(*p.JerseyNumber >= 0 && *p.JerseyNumber <= 99, "jersey_number", "must be between 0 and 99")
	}
	return errs.result()
}

// ToModel defaults ActiveFlag to true.
func (p NFLPlayerCreate) ToModel() *models.NFLPlayer {
	active := true
	if p.ActiveFlag != nil {
		active = *p.ActiveFlag
	}
	var ids models.ProviderIDs
	if p.ProviderPlayerIDs != nil {
		ids = models.ProviderIDs(p.ProviderPlayerIDs)
	}
	return &models.NFLPlayer{
		Name:              p.Name,
		Position:          p.Position,
		NFLTeam:           p.NFLTeam,
		JerseyNumber:      p.JerseyNumber,
		HeadshotURL:       p.HeadshotURL,
		GlobalPlayerID:    p.GlobalPlayerID,
		ProviderPlayerIDs: ids,
		ActiveFlag:        active,
		SeasonYear:        p.SeasonYear,
		Status:            p.Status,
	}
}

type NFLPlayerResponse struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Position          string            `json:"position"`
	NFLTeam           string            `json:"nfl_team"`
	JerseyNumber      *int              `json:"jersey_number"`
	HeadshotURL       *string           `json:"headshot_url"`
	GlobalPlayerID    string            `json:"global_player_id"`
	ProviderPlayerIDs map[string]string `json:"provider_player_ids"`
	ActiveFlag        bool              `json:"active_flag"`
	SeasonYear        int               `json:"season_year"`
	Status            *string           `json:"status"`
}

func NewNFLPlayerResponse(p *models.NFLPlayer) NFLPlayerResponse {
	var ids map[string]string
	if p.ProviderPlayerIDs != nil {
		ids = map[string]string(p.ProviderPlayerIDs)
	}
	return NFLPlayerResponse{
		ID:                p.ID,
		Name:              p.Name,
		Position:          p.Position,
		NFLTeam:           p.NFLTeam,
		JerseyNumber:      p.JerseyNumber,
		HeadshotURL:       p.HeadshotURL,
		GlobalPlayerID:    p.GlobalPlayerID,
		ProviderPlayerIDs: ids,
		ActiveFlag:        p.ActiveFlag,
		SeasonYear:        p.SeasonYear,
		Status:            p.Status,
	}
}

// PlayerDetailResponse is a player with their stats, projections and latest news.
type PlayerDetailResponse struct {
	NFLPlayerResponse
	Stats       []PlayerStatsResponse      `json:"stats"`
	Projections []PlayerProjectionResponse `json:"projections"`
	News        []PlayerNewsResponse       `json:"news"`
}

// MapList converts a slice of models with fn. It never returns nil.
func MapList[M any, R any](items []M, fn func(*M) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
