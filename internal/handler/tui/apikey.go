package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type apiKeySavedMsg struct{}
type apiKeyErrorMsg struct{ err error }

// APIKeyModel is the setup view shown when no YOUTUBE_API_KEY is configured.
type APIKeyModel struct {
	parent *AppModel
	input  textinput.Model
	err    error
	saving bool
}

func NewAPIKeyModel(parent *AppModel) *APIKeyModel {
	ti := textinput.New()
	ti.Placeholder = "AIza..."
	ti.CharLimit = 128
	ti.Width = 50
	ti.Focus()

	return &APIKeyModel{
		parent: parent,
		input:  ti,
	}
}

func (m *APIKeyModel) Init() tea.Cmd {
	m.err = nil
	m.saving = false
	return textinput.Blink
}

// saveAPIKeyCmd persists the key and rebuilds the pipeline with it.
func saveAPIKeyCmd(parent *AppModel, key string) tea.Cmd {
	return func() tea.Msg {
		if err := parent.saveAPIKey(key); err != nil {
			return apiKeyErrorMsg{err: err}
		}

		useCase, err := parent.buildUseCase(key)
		if err != nil {
			return apiKeyErrorMsg{err: err}
		}

		parent.useCase = useCase
		parent.logger.Info("API key saved and pipeline initialized")
		return apiKeySavedMsg{}
	}
}

func (m *APIKeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlO:
			// Open the Google Cloud console so the user can create a key.
			go func() {
				if err := browser.OpenURL(m.parent.consoleURL); err != nil {
					m.parent.logger.Error("Could not open browser", err)
				}
			}()
			return m, nil
		case tea.KeyEnter:
			key := strings.TrimSpace(m.input.Value())
			if key == "" {
				m.err = fmt.Errorf("API key cannot be empty")
				return m, nil
			}
			m.err = nil
			m.saving = true
			return m, saveAPIKeyCmd(m.parent, key)
		}

	case apiKeySavedMsg:
		return m, m.parent.send(showInputMsg{})

	case apiKeyErrorMsg:
		m.saving = false
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *APIKeyModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render("YouTube API Key Required"))
	b.WriteString("\n\n")
	b.WriteString("This application needs a YouTube Data API v3 key:\n\n")
	b.WriteString(listItemStyle.Render("1. Open the Google Cloud console (Ctrl+O)") + "\n")
	b.WriteString(listItemStyle.Render("2. Enable YouTube Data API v3") + "\n")
	b.WriteString(listItemStyle.Render("3. Create an API key and paste it below") + "\n\n")
	b.WriteString(urlStyle.Render(m.parent.consoleURL))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString(statusMessageStyle.Render("Saving API key..."))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Enter to save, Ctrl+O to open the console, Esc to quit."))
	return docStyle.Render(b.String())
}
