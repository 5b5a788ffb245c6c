package usecases

import (
	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/ports"
	"context"
	"errors"
	"fmt"
)

// Calculate runs the full pipeline: extract the playlist ID, fetch metadata
// and per-video durations, then aggregate.
//
// Cancellation mid-fetch yields a Calculation marked Partial and a nil error.
// A provider failure mid-fetch returns the error; when records were already
// gathered the returned Calculation still carries their partial statistics.
func (uc *durationUseCase) Calculate(ctx context.Context, input string, progress ports.ProgressFunc) (domain.Calculation, error) {
	uc.log.Info("Init Calculate Duration")

	playlistID, err := domain.ExtractPlaylistID(input)
	if err != nil {
		uc.log.Error("Failed to extract playlist ID", err)
		return domain.Calculation{}, err
	}

	playlist, err := uc.catalog.GetPlaylistInfo(ctx, playlistID)
	if err != nil {
		uc.log.Error("Failed to get playlist info", err)
		return domain.Calculation{}, err
	}

	records, fetchErr := uc.catalog.FetchVideos(ctx, playlistID, progress)
	if fetchErr != nil && len(records) == 0 {
		uc.log.Error("Failed to fetch videos", fetchErr)
		return domain.Calculation{}, fetchErr
	}

	calc := domain.Calculation{
		Reference:   playlistID,
		Playlist:    playlist,
		Stats:       domain.Aggregate(records),
		Partial:     fetchErr != nil,
		GeneratedAt: uc.now(),
	}

	if fetchErr != nil {
		if errors.Is(fetchErr, context.Canceled) {
			uc.log.Warning(fmt.Sprintf("Calculation cancelled after %d records", len(records)))
			return calc, nil
		}
		uc.log.Error("Fetch failed partway through", fetchErr)
		return calc, fetchErr
	}

	uc.log.Info(fmt.Sprintf("Calculate Duration completed: %d processed, %d failed", calc.Stats.ProcessedCount, calc.Stats.FailedCount))

	return calc, nil
}
