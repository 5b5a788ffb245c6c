package usecases

import (
	"TUI_playlist_duration/internal/core/domain"
	"fmt"
	"os"
)

// ExportReport renders the calculation and writes it to path.
func (uc *durationUseCase) ExportReport(calc domain.Calculation, path string) error {
	uc.log.Info("Init Export Report")

	if path == "" {
		return fmt.Errorf("%w: export path cannot be empty", domain.ErrFileWrite)
	}

	report := domain.RenderReport(calc)

	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		uc.log.Error("Failed to write report file", err)
		return fmt.Errorf("%w: %v", domain.ErrFileWrite, err)
	}

	uc.log.Info(fmt.Sprintf("Report exported to %s", path))

	return nil
}
