// main.go
package main

import (
	"TUI_playlist_duration/infrastructure/config"
	"TUI_playlist_duration/infrastructure/logger"
	"TUI_playlist_duration/infrastructure/provider"
	"TUI_playlist_duration/internal/core/usecases"
	"TUI_playlist_duration/internal/handler/tui"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const consoleURL = "https://console.cloud.google.com/apis/api/youtube.googleapis.com"

func main() {
	// Initialize Logger
	appLogger, err := logger.NewFileLogger("logs", "playlist_duration_tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	// Load configuration (.env + environment). A missing key is handled by
	// the TUI setup view.
	cfg := config.Load()

	buildUseCase := func(apiKey string) (usecases.DurationUseCase, error) {
		catalog, err := provider.NewYoutubeProvider(apiKey, appLogger)
		if err != nil {
			return nil, err
		}
		return usecases.NewDurationUseCase(catalog, appLogger), nil
	}

	var useCase usecases.DurationUseCase
	if cfg.APIKey != "" {
		useCase, err = buildUseCase(cfg.APIKey)
		if err != nil {
			appLogger.Error("Failed to initialize youtube provider", err)
			fmt.Fprintf(os.Stderr, "Failed to initialize youtube provider: %v\n", err)
			os.Exit(1)
		}
	}

	// Create the initial TUI model
	initialModel := tui.NewAppModel(useCase, buildUseCase, config.SaveAPIKey, consoleURL, appLogger)

	// Start Bubble Tea program
	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Application finished.")
}
