package ui

import (
	"fmt"
	"slices"

	"backpack/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// unsetLabel is shown for a chooser with no selected variable.
const unsetLabel = "-"

// varLabelWidth bounds variable names in the chooser row.
const varLabelWidth = 12

// VarChooserProps are the inputs of one per-graph variable select.
type VarChooserProps struct {
	GraphIdx    int // 1-based
	Variables   []string
	SelectedVar string // empty when unset
	Focused     bool
	OnInput     func(variable string)
}

// VarChooser picks the measured variable for one graph.
type VarChooser struct {
	Props VarChooserProps
}

// Ensure VarChooser implements View.
var _ View = (*VarChooser)(nil)

// NewVarChooser creates a chooser from props.
func NewVarChooser(props VarChooserProps) *VarChooser {
	return &VarChooser{Props: props}
}

// Init implements View.
func (v *VarChooser) Init() tea.Cmd { return nil }

// Update implements View. left/right cycle through Variables and report the
// new choice via OnInput.
func (v *VarChooser) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(v.Props.Variables) == 0 {
		return v, nil
	}
	vars := v.Props.Variables
	idx := slices.Index(vars, v.Props.SelectedVar)
	switch km.String() {
	case "right", "l":
		idx = (idx + 1) % len(vars)
	case "left", "h":
		if idx <= 0 {
			idx = len(vars) - 1
		} else {
			idx--
		}
	default:
		return v, nil
	}
	if v.Props.OnInput != nil {
		v.Props.OnInput(vars[idx])
	}
	return v, nil
}

// View implements View.
func (v *VarChooser) View() string {
	label := labelStyle(v.Props.Focused).Render(fmt.Sprintf("Graph %d", v.Props.GraphIdx))
	value := Styles.Unset.Render(unsetLabel)
	if v.Props.SelectedVar != "" {
		value = Styles.Selected.Render(textutil.Truncate(v.Props.SelectedVar, varLabelWidth))
	}
	return fmt.Sprintf("%s  ‹ %s ›", label, value)
}
