package handlers

import (
	"net/http"

	"github.com/ffliq/ffliq-backend/middleware"
	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

type UserHandler struct {
	authService   services.AuthService
	leagueService *services.LeagueService
	teamService   *services.TeamService
}

func NewUserHandler(as services.AuthService, ls *services.LeagueService, ts *services.TeamService) *UserHandler {
	return &UserHandler{
		authService:   as,
		leagueService: ls,
		teamService:   ts,
	}
}

// currentUserID writes a 401 and returns false when the request carries no user.
func currentUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input schemas.UserCreate
	if !decodeValid(w, r, &input) {
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, schemas.NewUserResponse(user))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input schemas.LoginRequest
	if !decodeValid(w, r, &input) {
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, token)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewUserResponse(user))
}

func (h *UserHandler) MyLeagues(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	leagues, err := h.leagueService.ListUserLeagues(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(leagues, schemas.NewLeagueResponse))
}

func (h *UserHandler) MyTeams(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	teams, err := h.teamService.ListUserTeams(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.MapList(teams, schemas.NewTeamResponse))
}
