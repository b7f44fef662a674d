package chooser

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxVisible caps how many candidates render at once; the cursor scrolls
// the window.
const maxVisible = 15

var (
	promptStyle     = lipgloss.NewStyle().Bold(true)
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	annotationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	countStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TUI is the terminal implementation of Chooser: a narrowing picker where
// typing filters candidates and enter confirms the one under the cursor.
type TUI struct{}

// NewTUI returns a terminal chooser.
func NewTUI() *TUI {
	return &TUI{}
}

// Choose runs the picker. It returns ErrCancelled when the user presses
// esc or ctrl+c, and the chosen candidate when they press enter.
func (t *TUI) Choose(prompt string, candidates []string, annotate AnnotateFunc) (string, error) {
	m := pickerModel{
		prompt:   prompt,
		state:    newPickerState(candidates),
		annotate: annotate,
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("running chooser: %w", err)
	}

	result := final.(pickerModel)
	if result.cancelled || result.choice == "" {
		return "", ErrCancelled
	}
	return result.choice, nil
}

type pickerModel struct {
	prompt    string
	state     *pickerState
	annotate  AnnotateFunc
	choice    string
	cancelled bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.choice = m.state.Current()
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		m.state.MoveUp()
	case tea.KeyDown, tea.KeyCtrlN:
		m.state.MoveDown()
	case tea.KeyBackspace:
		if len(m.state.query) > 0 {
			m.state.SetQuery(m.state.query[:len(m.state.query)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.state.SetQuery(m.state.query + string(key.Runes))
	}

	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString(m.state.query)
	b.WriteString("\n")

	start, end := visibleWindow(m.state.cursor, len(m.state.filtered))
	for i := start; i < end; i++ {
		candidate := m.state.filtered[i]

		line := "  " + candidate
		if i == m.state.cursor {
			line = cursorStyle.Render("> " + candidate)
		}
		b.WriteString(line)

		if m.annotate != nil {
			if note := m.annotate(candidate); note != "" {
				b.WriteString("  ")
				b.WriteString(annotationStyle.Render(note))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", len(m.state.filtered), len(m.state.candidates))))
	b.WriteString("\n")

	return b.String()
}

// visibleWindow returns the half-open candidate range to render so the
// cursor stays on screen.
func visibleWindow(cursor, total int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}
	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
	}
	return start, end
}
