package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"backpack/internal/graph"

	tea "github.com/charmbracelet/bubbletea"
)

// GraphNumProps are the inputs of the graph-count control.
type GraphNumProps struct {
	NGraphs int
	Focused bool
}

// GraphNum is the graph-count select. Unlike the other leaves it has no
// change callback: it calls the action creators itself and the new count
// comes back through the store.
type GraphNum struct {
	Props   GraphNumProps
	actions *graph.Creators
}

// Ensure GraphNum implements View.
var _ View = (*GraphNum)(nil)

// NewGraphNum creates the control bound to actions.
func NewGraphNum(props GraphNumProps, actions *graph.Creators) *GraphNum {
	return &GraphNum{Props: props, actions: actions}
}

// Init implements View.
func (g *GraphNum) Init() tea.Cmd { return nil }

// Update implements View. 1-3 pick a count; left/right step through them.
func (g *GraphNum) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	n := g.Props.NGraphs
	switch s := km.String(); s {
	case "left", "h":
		n--
	case "right", "l":
		n++
	case "1", "2", "3":
		n, _ = strconv.Atoi(s)
	default:
		return g, nil
	}
	if n < graph.MinGraphs || n > graph.MaxGraphs || n == g.Props.NGraphs {
		return g, nil
	}
	return g, errCmd(g.actions.SetNumGraphs(context.Background(), n))
}

// View implements View.
func (g *GraphNum) View() string {
	var b strings.Builder
	b.WriteString(labelStyle(g.Props.Focused).Render("Number of Graphs"))
	b.WriteString("  ")
	for n := graph.MinGraphs; n <= graph.MaxGraphs; n++ {
		if n > graph.MinGraphs {
			b.WriteString(" ")
		}
		opt := fmt.Sprintf(" %d ", n)
		if n == g.Props.NGraphs {
			b.WriteString(Styles.Selected.Render("[" + opt + "]"))
		} else {
			b.WriteString(Styles.Option.Render(" " + opt + " "))
		}
	}
	return b.String()
}
