package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandPrompt reads one action record, either JSON or "TYPE arg...".
type CommandPrompt struct {
	input textinput.Model
}

// Ensure CommandPrompt implements View.
var _ View = (*CommandPrompt)(nil)

// NewCommandPrompt creates a focused prompt.
func NewCommandPrompt() *CommandPrompt {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "SET_NUM_GRAPHS 3"
	ti.Width = 48
	ti.Focus()
	return &CommandPrompt{input: ti}
}

// Value returns the current input.
func (m *CommandPrompt) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *CommandPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *CommandPrompt) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			return m, func() tea.Msg { return RunCommandMsg{Line: line} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *CommandPrompt) View() string {
	content := Styles.Title.Render("Dispatch action") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render(`Enter: dispatch  Esc: cancel  e.g. {"type":"SET_MY_NUM","payload":{"args":[4]}}`)
	return Styles.Box.Render(content)
}
