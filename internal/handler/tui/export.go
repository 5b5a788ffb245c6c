package tui

import (
	"fmt"
	"strings"

	"TUI_playlist_duration/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type exportDoneMsg struct{ path string }
type exportErrorMsg struct{ err error }

// ExportModel collects a destination path and writes the report there.
type ExportModel struct {
	parent *AppModel
	calc   domain.Calculation

	input   textinput.Model
	status  string
	err     error
	writing bool
}

func NewExportModel(parent *AppModel, calc domain.Calculation) *ExportModel {
	ti := textinput.New()
	ti.Placeholder = "playlist_report.txt"
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &ExportModel{
		parent: parent,
		calc:   calc,
		input:  ti,
	}
}

func (m *ExportModel) Init() tea.Cmd {
	m.err = nil
	m.status = ""
	m.writing = false
	return textinput.Blink
}

func exportCmd(parent *AppModel, calc domain.Calculation, path string) tea.Cmd {
	return func() tea.Msg {
		if err := parent.useCase.ExportReport(calc, path); err != nil {
			return exportErrorMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.writing {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			// Back to the results view
			return m, m.parent.send(showResultsMsg{calc: m.calc})
		case tea.KeyEnter:
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				path = m.input.Placeholder
			}
			m.err = nil
			m.writing = true
			m.status = fmt.Sprintf("Writing report to %s...", path)
			return m, exportCmd(m.parent, m.calc, path)
		}

	case exportDoneMsg:
		m.writing = false
		m.status = fmt.Sprintf("Report saved to %s.", msg.path)
		return m, nil

	case exportErrorMsg:
		m.writing = false
		m.status = ""
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ExportModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render("Export Report"))
	b.WriteString("\n\n")
	b.WriteString("Enter a destination path and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Enter to write, Esc to go back to the results."))
	return docStyle.Render(b.String())
}
