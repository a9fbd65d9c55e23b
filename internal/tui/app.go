// Package tui is the interactive terminal front end: a text area for English
// input and three columns for the transform outputs.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/hindify/internal/metrics"
	"github.com/jusunglee/hindify/internal/transform"
)

const emptyTextMessage = "Please enter some text."

type Transformer interface {
	Transform(ctx context.Context, text string) transform.Result
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type resultMsg struct {
	result  transform.Result
	elapsed time.Duration
}

type Model struct {
	transformer Transformer
	timeout     time.Duration
	input       textarea.Model
	result      transform.Result
	hasResult   bool
	busy        bool
	status      string
	warn        bool
	width       int
}

func New(transformer Transformer, timeout time.Duration) Model {
	ta := textarea.New()
	ta.Placeholder = "Type English text, then press ctrl+s"
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(5)
	ta.Focus()

	return Model{
		transformer: transformer,
		timeout:     timeout,
		input:       ta,
		width:       80,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case resultMsg:
		m.busy = false
		m.result = msg.result
		m.hasResult = true
		m.warn = msg.result.Translation == transform.TranslationFailed
		m.status = "done in " + msg.elapsed.Round(time.Millisecond).String()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.status = emptyTextMessage
		m.warn = true
		return m, nil
	}
	m.busy = true
	m.warn = false
	m.status = "transforming..."
	return m, m.transform(text)
}

// transform runs off the event loop so the UI stays responsive while the
// translator is called.
func (m Model) transform(text string) tea.Cmd {
	transformer, timeout := m.transformer, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()
		metrics.TransformsTotal.WithLabelValues("tui").Inc()
		res := transformer.Transform(ctx, text)
		return resultMsg{result: res, elapsed: time.Since(start)}
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Hindify"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.warn {
			style = errorStyle
		}
		s.WriteString(style.Render(m.status))
		s.WriteString("\n")
	}

	if m.hasResult {
		s.WriteString("\n")
		s.WriteString(m.renderColumns())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(statusStyle.Render("ctrl+s transform • esc quit"))
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderColumns() string {
	// Each column loses two cells to the border and two to padding.
	colWidth := max((m.width-3*4)/3, 16)
	column := func(heading, body string) string {
		return columnStyle.Width(colWidth).Render(headingStyle.Render(heading) + "\n\n" + body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column("English in Devanagari", m.result.Transliteration),
		column("Hindi in Devanagari", m.result.Translation),
		column("Hindi in Roman Script", m.result.Romanization),
	)
}
