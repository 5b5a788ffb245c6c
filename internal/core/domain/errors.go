package domain

import "errors"

var (
	// ErrInvalidPlaylistReference indicates the input is neither a playlist ID nor a recognized URL.
	ErrInvalidPlaylistReference = errors.New("invalid playlist reference")
	// ErrAuthentication indicates the API key was rejected by the provider.
	ErrAuthentication = errors.New("authentication failed")
	// ErrPlaylistNotFound indicates the playlist does not exist or is not accessible.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrQuotaExceeded indicates the provider reported rate limiting or quota exhaustion.
	ErrQuotaExceeded = errors.New("api quota exceeded")
	// ErrTransientNetwork indicates a connectivity failure talking to the provider.
	ErrTransientNetwork = errors.New("transient network error")
	// ErrMalformedDuration indicates a duration string outside the ISO-8601 designator grammar.
	ErrMalformedDuration = errors.New("malformed duration")
	// ErrFileWrite indicates the report could not be written to disk.
	ErrFileWrite = errors.New("file write failed")
)
