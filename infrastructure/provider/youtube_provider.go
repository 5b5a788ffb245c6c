package provider

import (
	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// One page of playlist items is at most 50 IDs, which is also the videos.list
// batch limit, so every page resolves with a single details call.
const pageSize = 50

// Titles the API uses for items whose video is no longer reachable. Such
// items never get a details response, so they are classified up front.
var unavailableTitles = map[string]bool{
	"Private video": true,
	"Deleted video": true,
}

type youtubeProvider struct {
	service *youtube.Service
	log     ports.LoggerPort
}

// NewYoutubeProvider builds a catalog provider backed by the YouTube Data API v3.
// The API key is passed explicitly; extra options are used by tests to point
// the client at a fake server.
func NewYoutubeProvider(apiKey string, logger ports.LoggerPort, opts ...option.ClientOption) (ports.CatalogPort, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key is empty", domain.ErrAuthentication)
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(context.Background(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	return &youtubeProvider{
		service: service,
		log:     logger,
	}, nil
}

func (p *youtubeProvider) GetPlaylistInfo(ctx context.Context, playlistID string) (domain.Playlist, error) {
	call := p.service.Playlists.List([]string{"snippet", "contentDetails"}).Id(playlistID).Context(ctx)

	response, err := call.Do()
	if err != nil {
		p.log.Error("error in call youtube api (playlists.list)", err)
		return domain.Playlist{}, p.mapError(err)
	}

	if len(response.Items) == 0 {
		return domain.Playlist{}, fmt.Errorf("%w: %s", domain.ErrPlaylistNotFound, playlistID)
	}

	item := response.Items[0]

	playlist := domain.Playlist{ID: item.Id}
	if item.Snippet != nil {
		playlist.Title = item.Snippet.Title
		playlist.ChannelTitle = item.Snippet.ChannelTitle
	}
	if item.ContentDetails != nil {
		playlist.ItemCount = item.ContentDetails.ItemCount
	}

	return playlist, nil
}

// FetchVideos walks the page token chain and resolves durations page by page,
// so the records returned on cancellation always carry complete statistics
// for the fetched subset.
func (p *youtubeProvider) FetchVideos(ctx context.Context, playlistID string, progress ports.ProgressFunc) ([]domain.VideoRecord, error) {
	var records []domain.VideoRecord
	totalKnown := 0
	resolved := 0
	pageToken := ""
	page := 0

	for {
		if err := ctx.Err(); err != nil {
			p.log.Info("playlist walk cancelled between pages")
			return records, err
		}

		page++
		emit(progress, ports.Progress{
			Stage:          fmt.Sprintf("fetching videos - page %d", page),
			ProcessedSoFar: len(records),
			TotalKnown:     totalKnown,
		})

		call := p.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			p.log.Error("error in call youtube api (playlistItems.list)", err)
			return records, p.mapError(err)
		}

		if response.PageInfo != nil {
			totalKnown = int(response.PageInfo.TotalResults)
		}

		pageRecords := classifyItems(response.Items)

		if err := ctx.Err(); err != nil {
			p.log.Info("playlist walk cancelled before details call")
			markUnresolvedUnavailable(pageRecords)
			return append(records, pageRecords...), err
		}

		emit(progress, ports.Progress{
			Stage:          fmt.Sprintf("resolving durations - batch %d", page),
			ProcessedSoFar: resolved,
			TotalKnown:     totalKnown,
		})

		n, err := p.resolveDurations(ctx, pageRecords)
		resolved += n
		records = append(records, pageRecords...)
		if err != nil {
			return records, err
		}

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return records, nil
}

// classifyItems converts one page of playlist items into records, in playlist
// order. Availability is provisional until the details lookup confirms it.
func classifyItems(items []*youtube.PlaylistItem) []domain.VideoRecord {
	records := make([]domain.VideoRecord, 0, len(items))
	for _, item := range items {
		record := domain.VideoRecord{}
		if item.ContentDetails != nil {
			record.ID = item.ContentDetails.VideoId
		}
		if item.Snippet != nil {
			record.Title = item.Snippet.Title
		}
		record.Available = record.ID != "" && !unavailableTitles[record.Title]
		records = append(records, record)
	}
	return records
}

// resolveDurations queries the videos endpoint for one page of records and
// fills in their durations. Records missing from the response, or carrying an
// unparseable duration, become unavailable. Returns how many were resolved.
func (p *youtubeProvider) resolveDurations(ctx context.Context, records []domain.VideoRecord) (int, error) {
	ids := make([]string, 0, len(records))
	for i := range records {
		if records[i].Available {
			ids = append(ids, records[i].ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	call := p.service.Videos.List([]string{"contentDetails"}).Id(ids...).Context(ctx)
	response, err := call.Do()
	if err != nil {
		p.log.Error("error in call youtube api (videos.list)", err)
		markUnresolvedUnavailable(records)
		return 0, p.mapError(err)
	}

	durations := make(map[string]string, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails != nil {
			durations[item.Id] = item.ContentDetails.Duration
		}
	}

	resolved := 0
	for i := range records {
		if !records[i].Available {
			continue
		}

		raw, ok := durations[records[i].ID]
		if !ok {
			records[i].Available = false
			continue
		}

		seconds, err := domain.ParseISODuration(raw)
		if err != nil {
			p.log.Warning(fmt.Sprintf("unparseable duration %q for video %s", raw, records[i].ID))
			records[i].Available = false
			continue
		}

		records[i].DurationSeconds = seconds
		resolved++
	}

	return resolved, nil
}

// markUnresolvedUnavailable downgrades records whose details were never
// fetched, so a partial aggregation does not count unknown durations as
// zero-length videos.
func markUnresolvedUnavailable(records []domain.VideoRecord) {
	for i := range records {
		records[i].Available = false
	}
}

func emit(progress ports.ProgressFunc, event ports.Progress) {
	if progress != nil {
		progress(event)
	}
}

// mapError translates transport and API failures into the domain taxonomy.
// Context errors pass through untouched so cancellation stays recognizable.
func (p *youtubeProvider) mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", domain.ErrTransientNetwork, err)
	}

	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded":
			return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
		case "keyInvalid", "keyExpired", "ipRefererBlocked", "accessNotConfigured":
			return fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
		case "playlistNotFound", "notFound":
			return fmt.Errorf("%w: %v", domain.ErrPlaylistNotFound, err)
		}
	}

	switch apiErr.Code {
	case 400, 401, 403:
		return fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	case 404:
		return fmt.Errorf("%w: %v", domain.ErrPlaylistNotFound, err)
	case 429:
		return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrTransientNetwork, err)
}
