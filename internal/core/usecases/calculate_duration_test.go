package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Info(string)         {}
func (noopLogger) Error(string, error) {}
func (noopLogger) Warning(string)      {}
func (noopLogger) Close()              {}

// fakeCatalog serves canned records; cancelAfter > 0 cancels the run context
// after that many records, returning the rest unfetched.
type fakeCatalog struct {
	playlist    domain.Playlist
	records     []domain.VideoRecord
	infoErr     error
	fetchErr    error
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *fakeCatalog) GetPlaylistInfo(ctx context.Context, playlistID string) (domain.Playlist, error) {
	if f.infoErr != nil {
		return domain.Playlist{}, f.infoErr
	}
	return f.playlist, nil
}

func (f *fakeCatalog) FetchVideos(ctx context.Context, playlistID string, progress ports.ProgressFunc) ([]domain.VideoRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	var gathered []domain.VideoRecord
	for i, rec := range f.records {
		if f.cancelAfter > 0 && i == f.cancelAfter {
			f.cancel()
		}
		if err := ctx.Err(); err != nil {
			return gathered, err
		}
		gathered = append(gathered, rec)
		if progress != nil {
			progress(ports.Progress{Stage: "fetching", ProcessedSoFar: len(gathered), TotalKnown: len(f.records)})
		}
	}
	return gathered, nil
}

const testPlaylistID = "PL0123456789abcdefgh"

func testRecords() []domain.VideoRecord {
	return []domain.VideoRecord{
		{ID: "v1", Title: "one", DurationSeconds: 100, Available: true},
		{ID: "v2", Title: "two", DurationSeconds: 200, Available: true},
		{ID: "v3", Title: "three", Available: false},
		{ID: "v4", Title: "four", DurationSeconds: 300, Available: true},
		{ID: "v5", Title: "five", DurationSeconds: 400, Available: true},
	}
}

func TestCalculate_FullRun(t *testing.T) {
	catalog := &fakeCatalog{
		playlist: domain.Playlist{ID: testPlaylistID, Title: "Test", ItemCount: 5},
		records:  testRecords(),
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	calc, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if err != nil {
		t.Fatalf("Calculate error=%v", err)
	}

	if calc.Partial {
		t.Fatal("full run should not be partial")
	}
	if calc.Stats.ProcessedCount != 4 {
		t.Fatalf("processed=%d, want 4", calc.Stats.ProcessedCount)
	}
	if calc.Stats.FailedCount != 1 {
		t.Fatalf("failed=%d, want 1", calc.Stats.FailedCount)
	}
	if calc.Stats.TotalSeconds != 1000 {
		t.Fatalf("total=%d, want 1000", calc.Stats.TotalSeconds)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	catalog := &fakeCatalog{
		playlist: domain.Playlist{ID: testPlaylistID, Title: "Test", ItemCount: 5},
		records:  testRecords(),
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	first, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if err != nil {
		t.Fatalf("first run error=%v", err)
	}
	second, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if err != nil {
		t.Fatalf("second run error=%v", err)
	}

	// GeneratedAt is wall-clock; everything derived from the playlist must match.
	first.GeneratedAt = second.GeneratedAt
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("runs differ:\n%+v\nvs\n%+v", first, second)
	}
}

func TestCalculate_InvalidReference(t *testing.T) {
	uc := NewDurationUseCase(&fakeCatalog{}, noopLogger{})

	_, err := uc.Calculate(context.Background(), "not a playlist", nil)
	if !errors.Is(err, domain.ErrInvalidPlaylistReference) {
		t.Fatalf("expected ErrInvalidPlaylistReference, got %v", err)
	}
}

func TestCalculate_PlaylistNotFound(t *testing.T) {
	catalog := &fakeCatalog{infoErr: domain.ErrPlaylistNotFound}
	uc := NewDurationUseCase(catalog, noopLogger{})

	_, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if !errors.Is(err, domain.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestCalculate_CancelledReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	catalog := &fakeCatalog{
		playlist:    domain.Playlist{ID: testPlaylistID, Title: "Test", ItemCount: 5},
		records:     testRecords(),
		cancelAfter: 2,
		cancel:      cancel,
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	calc, err := uc.Calculate(ctx, testPlaylistID, nil)
	if err != nil {
		t.Fatalf("cancelled run should not raise an error, got %v", err)
	}

	if !calc.Partial {
		t.Fatal("cancelled run should be marked partial")
	}
	if calc.Stats.ProcessedCount != 2 {
		t.Fatalf("processed=%d, want 2 (only the fetched subset)", calc.Stats.ProcessedCount)
	}
	if calc.Stats.TotalSeconds != 300 {
		t.Fatalf("total=%d, want 300", calc.Stats.TotalSeconds)
	}
}

func TestCalculate_FetchErrorNoRecords(t *testing.T) {
	catalog := &fakeCatalog{
		playlist: domain.Playlist{ID: testPlaylistID},
		fetchErr: domain.ErrTransientNetwork,
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	_, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if !errors.Is(err, domain.ErrTransientNetwork) {
		t.Fatalf("expected ErrTransientNetwork, got %v", err)
	}
}

func TestCalculate_ProgressEvents(t *testing.T) {
	catalog := &fakeCatalog{
		playlist: domain.Playlist{ID: testPlaylistID, ItemCount: 5},
		records:  testRecords(),
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	var events []ports.Progress
	_, err := uc.Calculate(context.Background(), testPlaylistID, func(p ports.Progress) {
		events = append(events, p)
	})
	if err != nil {
		t.Fatalf("Calculate error=%v", err)
	}

	if len(events) != 5 {
		t.Fatalf("got %d progress events, want 5", len(events))
	}
	last := events[len(events)-1]
	if last.ProcessedSoFar != 5 || last.TotalKnown != 5 {
		t.Fatalf("last event=%+v, want 5/5", last)
	}
}

func TestExportReport(t *testing.T) {
	catalog := &fakeCatalog{
		playlist: domain.Playlist{ID: testPlaylistID, Title: "Test"},
		records:  testRecords(),
	}
	uc := NewDurationUseCase(catalog, noopLogger{})

	calc, err := uc.Calculate(context.Background(), testPlaylistID, nil)
	if err != nil {
		t.Fatalf("Calculate error=%v", err)
	}

	path := filepath.Join(t.TempDir(), "report.txt")
	if err := uc.ExportReport(calc, path); err != nil {
		t.Fatalf("ExportReport error=%v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported report: %v", err)
	}
	if !strings.Contains(string(data), "Playlist: Test") {
		t.Fatalf("exported report missing playlist title:\n%s", data)
	}
}

func TestExportReport_BadPath(t *testing.T) {
	uc := NewDurationUseCase(&fakeCatalog{}, noopLogger{})

	err := uc.ExportReport(domain.Calculation{}, filepath.Join(t.TempDir(), "missing", "report.txt"))
	if !errors.Is(err, domain.ErrFileWrite) {
		t.Fatalf("expected ErrFileWrite, got %v", err)
	}

	if err := uc.ExportReport(domain.Calculation{}, ""); !errors.Is(err, domain.ErrFileWrite) {
		t.Fatalf("expected ErrFileWrite for empty path, got %v", err)
	}
}
