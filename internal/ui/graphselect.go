package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backpack/internal/graph"
	"backpack/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// GraphSelectConfig seeds the container's transient state.
type GraphSelectConfig struct {
	Variables    []string  // options offered by every chooser
	SelectedVars []string  // initial selection per graph; defaults to Variables
	Now          time.Time // initial start and end time
}

// GraphSelect is the container view. NGraphs and MyN are mirrored from the
// store and only change through dispatch; the selected variables and the
// time range are owned here and written directly.
type GraphSelect struct {
	store   *graph.Store
	actions *graph.Creators
	sub     *graph.Subscription

	// store-backed
	nGraphs int
	myN     int

	// transient
	variables         []string
	selectedVars      []string
	selectedStartTime string
	selectedEndTime   string

	focus FocusManager
}

// Ensure GraphSelect implements View.
var _ View = (*GraphSelect)(nil)

// NewGraphSelect creates an unmounted container.
func NewGraphSelect(store *graph.Store, actions *graph.Creators, cfg GraphSelectConfig) *GraphSelect {
	selected := cfg.SelectedVars
	if selected == nil {
		selected = append([]string(nil), cfg.Variables...)
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	ts := textutil.Timestamp(now)
	return &GraphSelect{
		store:             store,
		actions:           actions,
		variables:         cfg.Variables,
		selectedVars:      selected,
		selectedStartTime: ts,
		selectedEndTime:   ts,
		focus:             FocusManager{Current: FocusGraphNum},
	}
}

// Mount seeds the store-backed fields and subscribes to store changes.
// Mounting twice is a no-op.
func (g *GraphSelect) Mount() {
	if g.sub != nil {
		return
	}
	g.applyStoreState(g.store.State())
	g.sub = g.store.AddListener(g.applyStoreState)
}

// Unmount removes the store subscription. Safe to call on every exit path.
func (g *GraphSelect) Unmount() {
	if g.sub == nil {
		return
	}
	g.sub.Remove()
	g.sub = nil
}

// Mounted reports whether the container holds a live subscription.
func (g *GraphSelect) Mounted() bool {
	return g.sub != nil
}

// applyStoreState overwrites every store-backed field with st.
func (g *GraphSelect) applyStoreState(st graph.State) {
	g.nGraphs = st.NGraphs
	g.myN = st.MyN
	g.focus.SetOrder(g.focusOrder())
}

// NGraphs is the graph count last seen from the store.
func (g *GraphSelect) NGraphs() int { return g.nGraphs }

// MyN is the auxiliary counter last seen from the store.
func (g *GraphSelect) MyN() int { return g.myN }

// SelectedVars returns the current selection. Callers must not modify it.
func (g *GraphSelect) SelectedVars() []string { return g.selectedVars }

// SelectedVar returns the variable bound to graph row i, and false when the
// selection has no entry for that row.
func (g *GraphSelect) SelectedVar(i int) (string, bool) {
	if i < 0 || i >= len(g.selectedVars) {
		return "", false
	}
	return g.selectedVars[i], true
}

// TimeRange returns the selected start and end as millisecond strings.
func (g *GraphSelect) TimeRange() (start, end string) {
	return g.selectedStartTime, g.selectedEndTime
}

// Focused returns the ID of the focused control.
func (g *GraphSelect) Focused() string { return g.focus.Current }

// FocusControl moves focus to id. It reports false, leaving focus alone,
// when id is not currently rendered.
func (g *GraphSelect) FocusControl(id string) bool { return g.focus.SetFocus(id) }

// SelectedVarChanged writes v at row i into a copy of the selection.
func (g *GraphSelect) SelectedVarChanged(i int, v string) {
	if i < 0 {
		return
	}
	n := max(len(g.selectedVars), i+1)
	selection := make([]string, n)
	copy(selection, g.selectedVars)
	selection[i] = v
	g.selectedVars = selection
}

// SetStartTime sets the selected start time (Unix ms string).
func (g *GraphSelect) SetStartTime(ms string) { g.selectedStartTime = ms }

// SetEndTime sets the selected end time (Unix ms string).
func (g *GraphSelect) SetEndTime(ms string) { g.selectedEndTime = ms }

func varFocusID(i int) string { return "var-" + strconv.Itoa(i) }

func (g *GraphSelect) focusOrder() []string {
	order := make([]string, 0, g.nGraphs+3)
	order = append(order, FocusGraphNum)
	for i := 0; i < g.nGraphs; i++ {
		order = append(order, varFocusID(i))
	}
	return append(order, FocusStartTime, FocusEndTime)
}

// Leaves are rebuilt from current state each time they are needed.

func (g *GraphSelect) graphNum() *GraphNum {
	return NewGraphNum(GraphNumProps{
		NGraphs: g.nGraphs,
		Focused: g.focus.Current == FocusGraphNum,
	}, g.actions)
}

func (g *GraphSelect) chooser(i int) *VarChooser {
	selected, _ := g.SelectedVar(i)
	return NewVarChooser(VarChooserProps{
		GraphIdx:    i + 1,
		Variables:   g.variables,
		SelectedVar: selected,
		Focused:     g.focus.Current == varFocusID(i),
		OnInput:     func(v string) { g.SelectedVarChanged(i, v) },
	})
}

func (g *GraphSelect) interval() *IntervalChooser {
	active := FieldNone
	switch g.focus.Current {
	case FocusStartTime:
		active = FieldStart
	case FocusEndTime:
		active = FieldEnd
	}
	return NewIntervalChooser(IntervalChooserProps{
		StartTime:     g.selectedStartTime,
		EndTime:       g.selectedEndTime,
		Active:        active,
		OnStartChange: g.SetStartTime,
		OnEndChange:   g.SetEndTime,
	})
}

// Init implements View.
func (g *GraphSelect) Init() tea.Cmd { return nil }

// Update implements View. tab/down/j and shift+tab/up/k move focus; other
// keys go to the focused control.
func (g *GraphSelect) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	switch km.String() {
	case "tab", "down", "j":
		g.focus.Next()
		return g, nil
	case "shift+tab", "up", "k":
		g.focus.Prev()
		return g, nil
	}

	var leaf View
	switch id := g.focus.Current; {
	case id == FocusGraphNum:
		leaf = g.graphNum()
	case id == FocusStartTime, id == FocusEndTime:
		leaf = g.interval()
	case strings.HasPrefix(id, "var-"):
		i, err := strconv.Atoi(strings.TrimPrefix(id, "var-"))
		if err != nil {
			return g, nil
		}
		leaf = g.chooser(i)
	default:
		return g, nil
	}
	_, cmd := leaf.Update(msg)
	return g, cmd
}

// View implements View.
func (g *GraphSelect) View() string {
	var b strings.Builder
	b.WriteString(g.graphNum().View() + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("Value is %d", g.nGraphs)) + "\n\n")

	for i := 0; i < g.nGraphs; i++ {
		b.WriteString(g.chooser(i).View() + "\n")
	}
	b.WriteString("\n")
	for i := 0; i < g.nGraphs; i++ {
		v, ok := g.SelectedVar(i)
		if !ok || v == "" {
			v = unsetLabel
		}
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("Graph%d value is %s", i+1, v)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(g.interval().View() + "\n\n")
	b.WriteString(fmt.Sprintf("Selected Time Range: %s ------- %s",
		textutil.FormatTimestamp(g.selectedStartTime),
		textutil.FormatTimestamp(g.selectedEndTime)))
	return b.String()
}
