package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

type setupStep int

const (
	stepProvider setupStep = iota
	stepAPIKey
	stepDiscord
	stepConfirm
)

var (
	labelStyle   = statusStyle
	successStyle = headingStyle
)

// SetupModel collects translator credentials and writes them to an env file
// that the binaries load through godotenv.
type SetupModel struct {
	path         string
	step         setupStep
	input        textinput.Model
	provider     string
	apiKey       string
	discordToken string
	saved        bool
	err          error
}

func NewSetup(path string) SetupModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()
	return SetupModel{path: path, step: stepProvider, input: ti}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.err = nil

	switch m.step {
	case stepProvider:
		switch strings.ToLower(value) {
		case "", "1", "gtranslate":
			m.provider = "gtranslate"
			m.next(stepDiscord)
		case "2", "anthropic":
			m.provider = "anthropic"
			m.next(stepAPIKey)
		case "3", "google":
			m.provider = "google"
			m.next(stepAPIKey)
		default:
			m.err = errors.New("enter 1, 2 or 3")
		}

	case stepAPIKey:
		if value == "" {
			m.err = errors.New("API key is required for " + m.provider)
			return m, nil
		}
		m.apiKey = value
		m.next(stepDiscord)

	case stepDiscord:
		m.discordToken = value
		m.next(stepConfirm)

	case stepConfirm:
		switch strings.ToLower(value) {
		case "", "y", "yes":
			if err := m.write(); err != nil {
				m.err = err
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		case "n", "no":
			return NewSetup(m.path), nil
		}
	}
	return m, nil
}

func (m *SetupModel) next(step setupStep) {
	m.step = step
	m.input.Reset()
	if step == stepAPIKey || step == stepDiscord {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

// Env returns the variables that will be written. Keys match the flag names
// the binaries read through ff.WithEnvVars.
func (m SetupModel) Env() map[string]string {
	env := map[string]string{
		"LLM_PROVIDER": m.provider,
		"DATABASE_URL": "sqlite://hindify.db",
	}
	switch m.provider {
	case "anthropic":
		env["ANTHROPIC_API_KEY"] = m.apiKey
	case "google":
		env["GOOGLE_API_KEY"] = m.apiKey
	}
	if m.discordToken != "" {
		env["DISCORD_TOKEN"] = m.discordToken
	}
	return env
}

func (m SetupModel) write() error {
	content, err := godotenv.Marshal(m.Env())
	if err != nil {
		return fmt.Errorf("encoding env file: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}
	return nil
}

func (m SetupModel) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Hindify setup"))
	s.WriteString("\n")

	switch m.step {
	case stepProvider:
		s.WriteString("Which translation provider should be used?\n\n")
		s.WriteString("  1. Google Translate (no key needed)\n")
		s.WriteString("  2. Anthropic (Claude)\n")
		s.WriteString("  3. Google (Gemini)\n\n")
		s.WriteString(labelStyle.Render("Enter 1, 2 or 3 [1]:"))
	case stepAPIKey:
		s.WriteString(fmt.Sprintf("Paste your %s API key.\n\n", m.provider))
		s.WriteString(labelStyle.Render("API key:"))
	case stepDiscord:
		s.WriteString("Discord bot token for the /hindi command.\n\n")
		s.WriteString(labelStyle.Render("Token (Enter to skip):"))
	case stepConfirm:
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Provider: " + successStyle.Render(m.provider) + "\n")
		if m.apiKey != "" {
			s.WriteString("  API key:  " + successStyle.Render(maskToken(m.apiKey)) + "\n")
		}
		if m.discordToken != "" {
			s.WriteString("  Discord:  " + successStyle.Render(maskToken(m.discordToken)) + "\n")
		}
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("Save to %s? [Y/n]:", m.path)))
	}

	s.WriteString("\n")
	s.WriteString(m.input.View())
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// RunSetup runs the wizard and reports whether an env file was written.
func RunSetup(path string) (bool, error) {
	final, err := tea.NewProgram(NewSetup(path)).Run()
	if err != nil {
		return false, err
	}
	return final.(SetupModel).saved, nil
}

// NeedsSetup reports whether path does not exist yet.
func NeedsSetup(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}
