package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(1, 2)
)

// model is the bubbletea model for the verification code prompt.
type model struct {
	authorizationURL string
	input            textinput.Model
	code             string
	cancelled        bool
}

func newModel(authorizationURL string) model {
	ti := textinput.New()
	ti.Placeholder = "verification code"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		authorizationURL: authorizationURL,
		input:            ti,
	}
}

// Init starts the cursor blink.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Enter submits a non-empty code, esc and
// ctrl+c cancel.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			code := strings.TrimSpace(m.input.Value())
			if code == "" {
				return m, nil
			}
			m.code = code
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Authorize plurk-cli"))
	b.WriteString("\n\n")
	b.WriteString("Open this URL in your browser and approve the app:\n\n")
	b.WriteString("  " + urlStyle.Render(m.authorizationURL))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter submit • esc cancel"))
	return boxStyle.Render(b.String())
}
