package ui

import "slices"

// Focus targets inside GraphSelect. Chooser rows use varFocusID(i).
const (
	FocusGraphNum  = "graphnum"
	FocusStartTime = "start"
	FocusEndTime   = "end"
)

// FocusManager tracks and rotates focus across controls.
type FocusManager struct {
	Current string   // ID of the currently focused control
	Order   []string // Tab order for focus rotation
}

// Next advances focus to the next control in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous control in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(f.Order) - 1
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.Current = f.Order[next]
	return f.Current
}

// SetFocus sets focus to the given control ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.Current = id
	return true
}

// SetOrder replaces the tab order. Focus stays where it is if the current
// control is still present, otherwise it falls back to the first control.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if slices.Contains(order, f.Current) {
		return
	}
	if len(order) == 0 {
		f.Current = ""
		return
	}
	f.Current = order[0]
}
