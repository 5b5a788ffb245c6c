package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var playlistIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{18,}$`)

var playlistHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// ExtractPlaylistID accepts either a raw playlist ID or common YouTube URL shapes
// and returns the canonical playlist identifier.
func ExtractPlaylistID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidPlaylistReference)
	}

	if playlistIDPattern.MatchString(s) && !strings.HasPrefix(s, "http") {
		return s, nil
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaylistReference, input)
	}

	if playlistHosts[parsed.Host] {
		if id := parsed.Query().Get("list"); playlistIDPattern.MatchString(id) {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPlaylistReference, input)
}
