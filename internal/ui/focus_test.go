package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b", "c"}, Current: "a"}

	if got := f.Next(); got != "b" {
		t.Errorf("Next = %q, want b", got)
	}
	f.Next()
	if got := f.Next(); got != "a" {
		t.Errorf("Next wrap = %q, want a", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev wrap = %q, want c", got)
	}
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	f := &FocusManager{}
	if got := f.Next(); got != "" {
		t.Errorf("Next on empty = %q", got)
	}
	if got := f.Prev(); got != "" {
		t.Errorf("Prev on empty = %q", got)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}, Current: "a"}
	if !f.SetFocus("b") {
		t.Fatal("SetFocus(b) should succeed")
	}
	if f.SetFocus("zzz") {
		t.Error("SetFocus(zzz) should fail")
	}
	if f.Current != "b" {
		t.Errorf("Current = %q, want b", f.Current)
	}
}

func TestFocusManager_SetOrder(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b", "c"}, Current: "c"}

	f.SetOrder([]string{"a", "b", "c", "d"})
	if f.Current != "c" {
		t.Errorf("focus should stay on c, got %q", f.Current)
	}

	f.SetOrder([]string{"a", "b"})
	if f.Current != "a" {
		t.Errorf("focus should fall back to a, got %q", f.Current)
	}

	f.SetOrder(nil)
	if f.Current != "" {
		t.Errorf("focus should clear on empty order, got %q", f.Current)
	}
}
