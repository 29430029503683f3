package ui

import tea "github.com/charmbracelet/bubbletea"

// ErrMsg reports a failed action to the status line.
type ErrMsg struct {
	Err error
}

// StatusMsg sets an informational status line.
type StatusMsg struct {
	Text string
}

// QuitMsg unmounts the container and quits the program.
type QuitMsg struct{}

// ShowCommandPromptMsg opens the action prompt (":" or SPC c).
type ShowCommandPromptMsg struct{}

// DismissModalMsg is sent when the user cancels the prompt (Esc).
type DismissModalMsg struct{}

// RunCommandMsg carries a prompt line to decode and dispatch.
type RunCommandMsg struct {
	Line string
}

// BumpMyNumMsg increments the auxiliary counter (SPC m).
type BumpMyNumMsg struct{}

// FocusMsg jumps focus to a control inside the graph selector.
type FocusMsg struct {
	ID string
}

// errCmd wraps err in a command, or returns nil for a nil error.
func errCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return ErrMsg{Err: err} }
}
