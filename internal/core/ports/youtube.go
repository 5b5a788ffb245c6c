package ports

import (
	"TUI_playlist_duration/internal/core/domain"
	"context"
)

// Progress is one progress event emitted while walking a playlist.
// TotalKnown is 0 until the provider has reported an item count.
type Progress struct {
	Stage          string
	ProcessedSoFar int
	TotalKnown     int
}

// ProgressFunc receives progress events between page fetches and detail
// batches. May be nil.
type ProgressFunc func(Progress)

// CatalogPort abstracts the remote video catalog API.
type CatalogPort interface {
	GetPlaylistInfo(ctx context.Context, playlistID string) (domain.Playlist, error)

	// FetchVideos returns the ordered records of a playlist. When ctx is
	// cancelled mid-walk it returns the records gathered so far together
	// with the context error.
	FetchVideos(ctx context.Context, playlistID string, progress ProgressFunc) ([]domain.VideoRecord, error)
}
