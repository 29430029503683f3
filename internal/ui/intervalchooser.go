package ui

import (
	"time"

	"backpack/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// IntervalField names the end of the interval a key press edits.
type IntervalField int

const (
	FieldNone IntervalField = iota
	FieldStart
	FieldEnd
)

// IntervalChooserProps are the inputs of the time-range picker. Times are
// Unix millisecond strings.
type IntervalChooserProps struct {
	StartTime     string
	EndTime       string
	Active        IntervalField
	OnStartChange func(ms string)
	OnEndChange   func(ms string)
}

// IntervalChooser edits a start and end time. +/- move the active end by an
// hour, ]/[ by a day.
type IntervalChooser struct {
	Props IntervalChooserProps
}

// Ensure IntervalChooser implements View.
var _ View = (*IntervalChooser)(nil)

// NewIntervalChooser creates a picker from props.
func NewIntervalChooser(props IntervalChooserProps) *IntervalChooser {
	return &IntervalChooser{Props: props}
}

// Init implements View.
func (c *IntervalChooser) Init() tea.Cmd { return nil }

// Update implements View.
func (c *IntervalChooser) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	var d time.Duration
	switch km.String() {
	case "+", "=":
		d = time.Hour
	case "-":
		d = -time.Hour
	case "]":
		d = 24 * time.Hour
	case "[":
		d = -24 * time.Hour
	default:
		return c, nil
	}
	switch c.Props.Active {
	case FieldStart:
		if c.Props.OnStartChange != nil {
			c.Props.OnStartChange(textutil.ShiftTimestamp(c.Props.StartTime, d))
		}
	case FieldEnd:
		if c.Props.OnEndChange != nil {
			c.Props.OnEndChange(textutil.ShiftTimestamp(c.Props.EndTime, d))
		}
	}
	return c, nil
}

// View implements View.
func (c *IntervalChooser) View() string {
	start := labelStyle(c.Props.Active == FieldStart).Render("Start") + "  " +
		Styles.Normal.Render(textutil.FormatTimestamp(c.Props.StartTime))
	end := labelStyle(c.Props.Active == FieldEnd).Render("End  ") + "  " +
		Styles.Normal.Render(textutil.FormatTimestamp(c.Props.EndTime))
	return start + "\n" + end
}
