package handlers

import (
	"net/http"

	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(ss *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// ListGames requires season; week is optional.
func (h *ScheduleHandler) ListGames(w http.ResponseWriter, r *http.Request) {
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
	if season < schemas.MinSeason || season > schemas.MaxSeason {
		failedValidationResponse(w, r, map[string]string{"season": "must be a valid season year"})
		return
	}

	games, err := h.scheduleService.ListGames(r.Context(), season, week)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(games, schemas.NewGameScheduleResponse))
}

func (h *ScheduleHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input schemas.GameScheduleCreate
	if !decodeValid(w, r, &input) {
		return
	}

	game, err := h.scheduleService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewGameScheduleResponse(game))
}
