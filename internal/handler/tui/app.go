package tui

import (
	"fmt"

	"TUI_playlist_duration/infrastructure/logger"
	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/usecases"
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewAPIKey
	viewInput
	viewCalculating
	viewResults
	viewExport
)

// UseCaseFactory builds the pipeline for a given API key. Injected so the
// API key setup view can wire the pipeline after the key is entered.
type UseCaseFactory func(apiKey string) (usecases.DurationUseCase, error)

type AppModel struct {
	// Injected dependencies
	useCase        usecases.DurationUseCase
	buildUseCase   UseCaseFactory
	saveAPIKey     func(key string) error
	consoleURL     string
	logger         logger.Logger

	welcomeModel     *WelcomeModel
	apiKeyModel      *APIKeyModel
	inputModel       *InputModel
	calculatingModel *CalculatingModel
	resultsModel     *ResultsModel
	exportModel      *ExportModel

	currentView currentView
	err         error

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	useCase usecases.DurationUseCase,
	buildUseCase UseCaseFactory,
	saveAPIKey func(key string) error,
	consoleURL string,
	log logger.Logger,
) *AppModel {
	// Root context, cancelled on Quit
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		useCase:      useCase,
		buildUseCase: buildUseCase,
		saveAPIKey:   saveAPIKey,
		consoleURL:   consoleURL,
		logger:       log,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.apiKeyModel = NewAPIKeyModel(m)
	m.inputModel = NewInputModel(m)
	m.calculatingModel = NewCalculatingModel(m, "")
	m.resultsModel = NewResultsModel(m, domain.Calculation{})
	m.exportModel = NewExportModel(m, domain.Calculation{})

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	// If a key is already configured, skip straight to the input view.
	return func() tea.Msg {
		if m.useCase != nil {
			m.logger.Info("API key configured, navigating to input")
			return showInputMsg{}
		}
		m.logger.Info("No API key configured, showing setup")
		return showWelcomeMsg{}
	}
}

// Navigation messages used by the sub-models
type showWelcomeMsg struct{}
type showAPIKeyMsg struct{}
type showInputMsg struct{}
type showCalculatingMsg struct{ input string }
type showResultsMsg struct{ calc domain.Calculation }
type showExportMsg struct{ calc domain.Calculation }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.logger.Info("Ctrl+C pressed, shutting down.")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Navigation messages recreate the target sub-model so each visit starts fresh.
	switch msg := msg.(type) {
	case showWelcomeMsg:
		m.currentView = viewWelcome
		m.err = nil
		cmd = m.welcomeModel.Init()

	case showAPIKeyMsg:
		m.currentView = viewAPIKey
		m.err = nil
		am := NewAPIKeyModel(m)
		m.apiKeyModel = am
		cmd = am.Init()

	case showInputMsg:
		m.currentView = viewInput
		m.err = nil
		im := NewInputModel(m)
		m.inputModel = im
		cmd = im.Init()

	case showCalculatingMsg:
		m.currentView = viewCalculating
		m.err = nil
		cm := NewCalculatingModel(m, msg.input)
		m.calculatingModel = cm
		cmd = cm.Init()

	case showResultsMsg:
		m.currentView = viewResults
		m.err = nil
		rm := NewResultsModel(m, msg.calc)
		m.resultsModel = rm
		cmd = rm.Init()

	case showExportMsg:
		m.currentView = viewExport
		m.err = nil
		em := NewExportModel(m, msg.calc)
		m.exportModel = em
		cmd = em.Init()

	case errorReturnMsg:
		// Failed runs land back on the input view with a readable message.
		m.currentView = viewInput
		m.err = nil
		im := NewInputModel(m)
		cmd = im.Init()
		im.err = fmt.Errorf("%s", describeError(msg.err))
		m.inputModel = im
	}

	cmds = append(cmds, cmd)

	// Delegate to the sub-model owning the current view.
	var currentViewCmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		if m.welcomeModel != nil {
			updated, cmd := m.welcomeModel.Update(msg)
			if casted, ok := updated.(*WelcomeModel); ok {
				m.welcomeModel = casted
			}
			currentViewCmd = cmd
		}

	case viewAPIKey:
		if m.apiKeyModel != nil {
			updated, cmd := m.apiKeyModel.Update(msg)
			if casted, ok := updated.(*APIKeyModel); ok {
				m.apiKeyModel = casted
			}
			currentViewCmd = cmd
		}

	case viewInput:
		if m.inputModel != nil {
			updated, cmd := m.inputModel.Update(msg)
			if casted, ok := updated.(*InputModel); ok {
				m.inputModel = casted
			}
			currentViewCmd = cmd
		}

	case viewCalculating:
		if m.calculatingModel != nil {
			updated, cmd := m.calculatingModel.Update(msg)
			if casted, ok := updated.(*CalculatingModel); ok {
				m.calculatingModel = casted
			}
			currentViewCmd = cmd
		}

	case viewResults:
		if m.resultsModel != nil {
			updated, cmd := m.resultsModel.Update(msg)
			if casted, ok := updated.(*ResultsModel); ok {
				m.resultsModel = casted
			}
			currentViewCmd = cmd
		}

	case viewExport:
		if m.exportModel != nil {
			updated, cmd := m.exportModel.Update(msg)
			if casted, ok := updated.(*ExportModel); ok {
				m.exportModel = casted
			}
			currentViewCmd = cmd
		}
	}

	cmds = append(cmds, currentViewCmd)
	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("An error occurred: %v\n\n(Ctrl+C to quit)", m.err)
	}

	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewAPIKey:
		return m.apiKeyModel.View()
	case viewInput:
		return m.inputModel.View()
	case viewCalculating:
		return m.calculatingModel.View()
	case viewResults:
		return m.resultsModel.View()
	case viewExport:
		return m.exportModel.View()
	default:
		return "Unknown view…"
	}
}
