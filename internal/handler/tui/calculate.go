package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"TUI_playlist_duration/internal/core/domain"
	"TUI_playlist_duration/internal/core/ports"
	"TUI_playlist_duration/internal/retry"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type progressMsg ports.Progress
type calcDoneMsg struct{ calc domain.Calculation }
type calcErrorMsg struct{ err error }

// CalculatingModel runs the pipeline off the event loop and streams progress
// events back over a channel.
type CalculatingModel struct {
	parent *AppModel
	input  string

	spinner spinner.Model
	status  string
	counts  string

	// Pipeline goroutine -> event loop bridge. Progress sends are
	// non-blocking so the pipeline never stalls on a slow drain.
	events chan tea.Msg

	runCancel context.CancelFunc
}

func NewCalculatingModel(parent *AppModel, input string) *CalculatingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &CalculatingModel{
		parent:  parent,
		input:   input,
		spinner: sp,
		status:  "Starting calculation...",
		events:  make(chan tea.Msg, 64),
	}
}

func (m *CalculatingModel) Init() tea.Cmd {
	if m.input == "" {
		return nil
	}

	runCtx, cancel := context.WithCancel(m.parent.appContext)
	m.runCancel = cancel

	return tea.Batch(m.spinner.Tick, m.startCmd(runCtx), m.listenCmd())
}

// startCmd launches the pipeline. Transient network failures are retried with
// exponential backoff; everything else surfaces immediately.
func (m *CalculatingModel) startCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		onProgress := func(event ports.Progress) {
			select {
			case m.events <- progressMsg(event):
			default:
			}
		}

		var calc domain.Calculation
		err := retry.Do(ctx, retry.DefaultConfig(), nil, func(ctx context.Context) error {
			var err error
			calc, err = m.parent.useCase.Calculate(ctx, m.input, onProgress)
			return err
		})

		if err != nil {
			m.events <- calcErrorMsg{err: err}
			return nil
		}

		m.events <- calcDoneMsg{calc: calc}
		return nil
	}
}

func (m *CalculatingModel) listenCmd() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *CalculatingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			// Cancel the run; the pipeline returns a partial result.
			if m.runCancel != nil {
				m.status = "Cancelling... finishing with partial results."
				m.runCancel()
				m.runCancel = nil
			}
			return m, nil
		}

	case progressMsg:
		m.status = msg.Stage
		if msg.TotalKnown > 0 {
			m.counts = fmt.Sprintf("%d of %d videos processed", msg.ProcessedSoFar, msg.TotalKnown)
		} else if msg.ProcessedSoFar > 0 {
			m.counts = fmt.Sprintf("%d videos processed", msg.ProcessedSoFar)
		}
		return m, m.listenCmd()

	case calcDoneMsg:
		return m, m.parent.send(showResultsMsg{calc: msg.calc})

	case calcErrorMsg:
		m.parent.logger.Error("Calculation failed", msg.err)
		return m, m.parent.send(errorReturnMsg{err: msg.err})

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *CalculatingModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render("Calculating"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.status)
	b.WriteString("\n")

	if m.counts != "" {
		b.WriteString(promptStyle.Render(m.counts))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Esc to cancel and keep partial results. Ctrl+C to quit."))
	return docStyle.Render(b.String())
}

// errorReturnMsg routes a failed run back to the input view with a
// human-readable message for the taxonomy error.
type errorReturnMsg struct{ err error }

func describeError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "Calculation cancelled before any videos were fetched."
	case errors.Is(err, domain.ErrInvalidPlaylistReference):
		return "That doesn't look like a playlist URL or ID."
	case errors.Is(err, domain.ErrAuthentication):
		return "The API key was rejected. Check your YOUTUBE_API_KEY."
	case errors.Is(err, domain.ErrPlaylistNotFound):
		return "Playlist not found. It may be private or deleted."
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "API quota exceeded. Try again later."
	case errors.Is(err, domain.ErrTransientNetwork):
		return "Network error talking to YouTube. Check your connection."
	default:
		return err.Error()
	}
}
