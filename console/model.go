package console

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"
)

const (
	maxHistory = 50
	maxLines   = 20
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			BorderForeground(lipgloss.Color("36")).
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

type model struct {
	width  int
	height int

	app     *App
	out     *bytes.Buffer
	input   textinput.Model
	history Arr[string]
	lines   []string
}

func newModel(app *App) model {
	ti := textinput.New()
	ti.Placeholder = "insert 0 42"
	ti.Prompt = "> "
	ti.Focus()

	out := new(bytes.Buffer)
	app.SetOutput(out)

	return model{app: app, out: out, input: ti}
}

// RunTUI drives app from an interactive terminal UI until the user quits.
func RunTUI(app *App) error {
	_, err := tea.NewProgram(newModel(app)).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "ctrl+p":
			m.input.SetValue(m.history.Rotate(false))
		case "ctrl+n":
			m.input.SetValue(m.history.Rotate(true))
		default:
			m.input, cmd = m.input.Update(msg)
		}
	}

	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.input.Value())
	if val == "" {
		return m, nil
	}
	m.input.Reset()

	if i := slices.Index(m.history, val); i >= 0 {
		m.history.Remove(i)
	}
	m.history.Append(val)
	if m.history.Length() > maxHistory {
		m.history.Remove(0)
	}

	err := m.app.Process(val)
	if errors.Is(err, ErrQuit) {
		return m, tea.Quit
	}

	m.lines = append(m.lines, infoStyle.Render("> "+val))
	for _, l := range strings.Split(strings.TrimRight(m.app.drain(m.out), "\n"), "\n") {
		if l != "" {
			m.lines = append(m.lines, l)
		}
	}
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
	}
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
	return m, nil
}

func (m model) View() string {
	v := m.app.Vector()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(v.String()),
		infoStyle.Render(fmt.Sprintf("len %d | cap %d", v.Len(), v.Cap())),
		m.input.View(),
		strings.Join(m.lines, "\n"),
	)
}
