package tui

import (
	"fmt"
	"strings"

	"TUI_playlist_duration/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel collects the playlist URL or bare ID.
type InputModel struct {
	parent *AppModel
	input  textinput.Model
	err    error
}

func NewInputModel(parent *AppModel) *InputModel {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/playlist?list=..."
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return &InputModel{
		parent: parent,
		input:  ti,
	}
}

func (m *InputModel) Init() tea.Cmd {
	m.err = nil
	return textinput.Blink
}

func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.err = fmt.Errorf("playlist URL or ID cannot be empty")
				return m, nil
			}
			// Reject malformed references before any network call.
			if _, err := domain.ExtractPlaylistID(raw); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			return m, m.parent.send(showCalculatingMsg{input: raw})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *InputModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render("Playlist Input"))
	b.WriteString("\n\n")
	b.WriteString("Enter a YouTube playlist URL or ID and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Example: https://www.youtube.com/playlist?list=PLxxxxxx"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Enter to calculate, Esc to quit."))
	return docStyle.Render(b.String())
}
