package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/ffliq/ffliq-backend/schemas"
	"github.com/ffliq/ffliq-backend/services"
)

const maxUploadBytes = 5 << 20

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(ms *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: ms}
}

// formFile reads the multipart "file" field. On failure the error response
// has been written and ok is false.
func formFile(w http.ResponseWriter, r *http.Request) (file multipart.File, contentType string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1024)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get file from form: %w", err))
		return nil, "", false
	}

	contentType = header.Header.Get("Content-Type")
	if contentType == "" {
		file.Close()
		badRequestResponse(w, r, errors.New("content type required"))
		return nil, "", false
	}
	return file, contentType, true
}

func (h *MediaHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	if !h.mediaService.Enabled() {
		mapServiceErrorToHTTP(w, r, services.ErrStorageNotConfigured)
		return
	}
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	file, contentType, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	team, err := h.mediaService.UploadTeamLogo(r.Context(), userID, teamID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewTeamResponse(team))
}

func (h *MediaHandler) UploadPlayerHeadshot(w http.ResponseWriter, r *http.Request) {
	if !h.mediaService.Enabled() {
		mapServiceErrorToHTTP(w, r, services.ErrStorageNotConfigured)
		return
	}
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	file, contentType, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	player, err := h.mediaService.UploadPlayerHeadshot(r.Context(), playerID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, schemas.NewNFLPlayerResponse(player))
}
