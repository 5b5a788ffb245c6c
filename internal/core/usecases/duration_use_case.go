package usecases

import (
	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/ports"
	"context"
	"time"
)

type durationUseCase struct {
	catalog ports.CatalogPort
	log     ports.LoggerPort
	now     func() time.Time
}

type DurationUseCase interface {
	Calculate(ctx context.Context, input string, progress ports.ProgressFunc) (domain.Calculation, error)
	ExportReport(calc domain.Calculation, path string) error
}

func NewDurationUseCase(catalog ports.CatalogPort, logger ports.LoggerPort) DurationUseCase {
	return &durationUseCase{
		catalog: catalog,
		log:     logger,
		now:     time.Now,
	}
}
