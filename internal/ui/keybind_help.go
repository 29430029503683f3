package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// navKeys are the always-visible bindings shown in the footer.
var navKeys = []key.Binding{
	key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down", "j", "k"), key.WithHelp("tab/↑↓/jk", "focus")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
	key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "graphs")),
	key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "±1h")),
	key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "±1d")),
	key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "dispatch")),
	key.NewBinding(key.WithKeys("SPC"), key.WithHelp("SPC", "commands")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// RenderNavHelp renders the footer help bar.
func RenderNavHelp() string {
	return newHelpModel().ShortHelpView(navKeys)
}

// RenderKeybindHelp produces the transient help box shown after SPC.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	hints := h.Registry.LeaderHints(h.CurrentSeq())
	if len(hints) == 0 {
		return ""
	}
	hints = append(hints, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(Styles.Hint.Render(h.CurrentSeq()) + " " + newHelpModel().ShortHelpView(hints))
}
