package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedContentType = errors.New("unsupported content type")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageExtension returns the file extension for an accepted image content type.
func ImageExtension(contentType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
	return ext, nil
}

// TeamLogoKey returns a fresh object key like "teams/12/logo-<uuid>.png".
func TeamLogoKey(teamID int, ext string) string {
	return fmt.Sprintf("teams/%d/logo-%s%s", teamID, uuid.NewString(), ext)
}

// PlayerHeadshotKey returns a fresh object key like "players/7/headshot-<uuid>.jpg".
func PlayerHeadshotKey(playerID int, ext string) string {
	return fmt.Sprintf("players/%d/headshot-%s%s", playerID, uuid.NewString(), ext)
}
