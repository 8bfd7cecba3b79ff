package universe

import (
	"strings"
	"testing"
)

func TestRenderFormat(t *testing.T) {
	u := newEmpty(t, 3, 2)
	if err := u.SetCells([][2]uint32{{0, 1}, {1, 0}, {1, 2}}); err != nil {
		t.Fatalf("SetCells failed: %v", err)
	}

	want := "    ◼    \n ◼     ◼ \n"
	if got := u.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyRow(t *testing.T) {
	u := newEmpty(t, 4, 1)

	got := u.Render()
	if got != strings.Repeat("   ", 4)+"\n" {
		t.Errorf("Render() of empty row = %q, want 12 spaces and a newline", got)
	}
}

func TestRenderLineCount(t *testing.T) {
	u, err := New(6, 5, 2, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lines := strings.Split(u.Render(), "\n")
	// Split yields a trailing empty element after the final newline.
	if len(lines) != 6 || lines[5] != "" {
		t.Fatalf("Render() produced %d lines, want 5 rows each ending in a newline", len(lines)-1)
	}
}

func TestClearScreenSequence(t *testing.T) {
	var b strings.Builder
	ClearScreen(&b)

	if got := b.String(); got != "\x1b[2J\x1b[1;1H" {
		t.Errorf("ClearScreen wrote %q, want erase-display then cursor-home", got)
	}
}
