package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.parent.useCase != nil {
				return m, m.parent.send(showInputMsg{})
			}
			return m, m.parent.send(showAPIKeyMsg{})
		case tea.KeyEsc:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏱  Playlist Duration TUI ⏱"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Calculate the total watch time of any YouTube playlist."))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("Press Enter to get started. (Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}
