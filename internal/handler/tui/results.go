package tui

import (
	"fmt"
	"strings"

	"TUI_playlist_duration/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// ResultsModel shows the aggregate statistics of a finished run.
type ResultsModel struct {
	parent *AppModel
	calc   domain.Calculation

	options []string
	cursor  int
}

func NewResultsModel(parent *AppModel, calc domain.Calculation) *ResultsModel {
	return &ResultsModel{
		parent: parent,
		calc:   calc,
		options: []string{
			"Export report to file",
			"Calculate another playlist",
			"Quit",
		},
	}
}

func (m *ResultsModel) Init() tea.Cmd {
	m.parent.logger.Info(fmt.Sprintf("ResultsModel: showing results for playlist '%s'", m.calc.Playlist.Title))
	return nil
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			switch m.cursor {
			case 0:
				return m, m.parent.send(showExportMsg{calc: m.calc})
			case 1:
				return m, m.parent.send(showInputMsg{})
			case 2:
				return m, tea.Quit
			}
		case tea.KeyEsc:
			return m, m.parent.send(showInputMsg{})
		}
	}
	return m, nil
}

func (m *ResultsModel) View() string {
	var b strings.Builder
	stats := m.calc.Stats

	header := fmt.Sprintf("Results: %s", m.calc.Playlist.Title)
	b.WriteString(listHeaderStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Channel: %s\n", m.calc.Playlist.ChannelTitle))
	b.WriteString(fmt.Sprintf("Videos: %d processed, %d unavailable\n", stats.ProcessedCount, stats.FailedCount))
	if m.calc.Partial {
		b.WriteString(errorMessageStyle.Render("Partial result: the calculation was cancelled before completion."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Total Duration: ")
	b.WriteString(durationStyle.Render(domain.FormatSeconds(stats.TotalSeconds)))
	b.WriteString(promptStyle.Render(fmt.Sprintf("  (%d seconds)", stats.TotalSeconds)))
	b.WriteString("\n\n")

	if stats.ProcessedCount > 0 {
		b.WriteString(fmt.Sprintf("Average: %s\n", domain.FormatSeconds(int64(stats.AverageSeconds))))
		b.WriteString(fmt.Sprintf("Median: %s\n", domain.FormatSeconds(int64(stats.MedianSeconds))))
		b.WriteString(fmt.Sprintf("Longest: %s (%s)\n", domain.FormatSeconds(stats.Longest.DurationSeconds), stats.Longest.Title))
		b.WriteString(fmt.Sprintf("Shortest: %s (%s)\n", domain.FormatSeconds(stats.Shortest.DurationSeconds), stats.Shortest.Title))
	} else {
		b.WriteString(promptStyle.Render("No available videos were found in this playlist."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, opt := range m.options {
		if m.cursor == i {
			b.WriteString(selectedListItemStyle.Render(opt))
		} else {
			b.WriteString(listItemStyle.Render(opt))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Esc for a new calculation."))
	return docStyle.Render(b.String())
}
