package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ffliq/ffliq-backend/repositories"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	statsService  *services.StatsService
	newsService   *services.NewsService
}

func NewPlayerHandler(ps *services.PlayerService, ss *services.StatsService, ns *services.NewsService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
		statsService:  ss,
		newsService:   ns,
	}
}

// ListPlayers supports name, position, team, season, active, limit and offset filters.
// global_id short-circuits them and returns at most one player.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if globalID := strings.TrimSpace(q.Get("global_id")); globalID != "" {
		h.findByGlobalID(w, r, globalID)
		return
	}

	filter := repositories.PlayerFilter{
		Name:     strings.TrimSpace(q.Get("name")),
		Position: strings.ToUpper(strings.TrimSpace(q.Get("position"))),
		NFLTeam:  strings.ToUpper(strings.TrimSpace(q.Get("team"))),
	}

	var err error
	if filter.SeasonYear, err = queryInt(r, "season", 0); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.ActiveOnly, err = queryBool(r, "active", false); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset", 0); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.playerService.ListPlayers(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(players, schemas.NewNFLPlayerResponse))
}

// GetPlayer returns the player with stats, projections and recent news.
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.playerService.GetPlayerDetail(r.Context(), playerID, season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.PlayerDetailResponse{
		NFLPlayerResponse: schemas.NewNFLPlayerResponse(detail.Player),
		Stats:             schemas.MapList(detail.Stats, schemas.NewPlayerStatsResponse),
		Projections:       schemas.MapList(detail.Projections, schemas.NewPlayerProjectionResponse),
		News:              schemas.MapList(detail.News, schemas.NewPlayerNewsResponse),
	})
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input schemas.NFLPlayerCreate
	if !decodeValid(w, r, &input) {
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewNFLPlayerResponse(player))
}

func (h *PlayerHandler) findByGlobalID(w http.ResponseWriter, r *http.Request, globalID string) {
	player, err := h.playerService.GetPlayerByGlobalID(r.Context(), globalID)
	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		respond(w, r, http.StatusOK, []schemas.NFLPlayerResponse{})
	case err != nil:
		mapServiceErrorToHTTP(w, r, err)
	default:
		respond(w, r, http.StatusOK, []schemas.NFLPlayerResponse{schemas.NewNFLPlayerResponse(player)})
	}
}

func (h *PlayerHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.statsService.ListStats(r.Context(), playerID, season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(stats, schemas.NewPlayerStatsResponse))
}

// GetWeekStats returns the single stat line for a week; season is required.
func (h *PlayerHandler) GetWeekStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	week, err := getIDFromURL(r, "week")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if errs := schemas.WeekSeason(week, season); errs != nil {
		failedValidationResponse(w, r, errs)
		return
	}

	stats, err := h.statsService.GetWeekStats(r.Context(), playerID, week, season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewPlayerStatsResponse(stats))
}

// UpsertStats records a week's stat line, replacing any earlier one.
func (h *PlayerHandler) UpsertStats(w http.ResponseWriter, r *http.Request) {
	var input schemas.PlayerStatsCreate
	if !decodeValid(w, r, &input) {
		return
	}

	stats, err := h.statsService.UpsertStats(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewPlayerStatsResponse(stats))
}

func (h *PlayerHandler) ListProjections(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	week, err := queryInt(r, "week", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	projections, err := h.statsService.ListProjections(r.Context(), playerID, season, week)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(projections, schemas.NewPlayerProjectionResponse))
}

func (h *PlayerHandler) UpsertProjection(w http.ResponseWriter, r *http.Request) {
	var input schemas.PlayerProjectionCreate
	if !decodeValid(w, r, &input) {
		return
	}

	projection, err := h.statsService.UpsertProjection(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewPlayerProjectionResponse(projection))
}

func (h *PlayerHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	news, err := h.newsService.ListPlayerNews(r.Context(), playerID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(news, schemas.NewPlayerNewsResponse))
}

func (h *PlayerHandler) ListRecentNews(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	news, err := h.newsService.ListRecentNews(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(news, schemas.NewPlayerNewsResponse))
}

func (h *PlayerHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var input schemas.PlayerNewsCreate
	if !decodeValid(w, r, &input) {
		return
	}

	news, err := h.newsService.CreateNews(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewPlayerNewsResponse(news))
}
