package handlers

import (
	"errors"
	"net/http"

	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

type LeagueHandler struct {
	leagueService *services.LeagueService
}

func NewLeagueHandler(ls *services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: ls}
}

func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	season, err := queryInt(r, "season", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	leagues, err := h.leagueService.ListLeagues(r.Context(), season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(leagues, schemas.NewLeagueResponse))
}

func (h *LeagueHandler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input schemas.LeagueCreate
	if !decodeValid(w, r, &input) {
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewLeagueResponse(league))
}

func (h *LeagueHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.GetLeague(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewLeagueResponse(league))
}

// UpdateLeague applies a partial update. Only the creator may call it.
func (h *LeagueHandler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input schemas.LeagueUpdate
	if !decodeValid(w, r, &input) {
		return
	}
	if input.Name == nil && input.Description == nil && input.Settings == nil &&
		input.SettingsSource == nil && input.Status == nil {
		badRequestResponse(w, r, errors.New("no fields provided for update"))
		return
	}

	league, err := h.leagueService.UpdateLeague(r.Context(), userID, leagueID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewLeagueResponse(league))
}

func (h *LeagueHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.leagueService.ListTeams(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(teams, schemas.NewTeamResponse))
}

// ListPoints returns cached fantasy points; week and season are required.
func (h *LeagueHandler) ListPoints(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	week, err := queryInt(r, "week", 0)
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

	points, err := h.leagueService.ListPoints(r.Context(), leagueID, week, season)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(points, schemas.NewPlayerPointsResponse))
}
