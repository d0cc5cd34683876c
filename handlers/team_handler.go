package handlers

import (
	"net/http"

	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(ts *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input schemas.TeamCreate
	if !decodeValid(w, r, &input) {
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewTeamResponse(team))
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewTeamResponse(team))
}

func (h *TeamHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	week, err := queryInt(r, "week", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if errs := schemas.Week(week); errs != nil {
		failedValidationResponse(w, r, errs)
		return
	}

	roster, err := h.teamService.GetRoster(r.Context(), teamID, week)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(roster, schemas.NewRosterResponse))
}

func (h *TeamHandler) AddRosterEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input schemas.RosterCreate
	if !decodeValid(w, r, &input) {
		return
	}

	entry, err := h.teamService.AddRosterEntry(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewRosterResponse(entry))
}
