// ABOUTME: Tests for the interactive board model
// ABOUTME: Drives Update with messages and inspects cursor state and rendered view

package board

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/campboard/internal/branding"
)

const testRoster = `
sessions:
  - name: Maple Cabin
    occupancy: 11
    capacity: 10
  - name: Birch Cabin
    occupancy: 9
    capacity: 10
  - name: Archery
    occupancy: 2
    capacity: 10
`

func newLoadedBoard(t *testing.T, width int) *Board {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(testRoster), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	b := New(branding.Branding{Name: "Camp Pinecrest", ShortName: "Pinecrest"}, path, false)
	model, _ := b.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	b = model.(*Board)

	msg := b.Init()()
	model, _ = b.Update(msg)
	return model.(*Board)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoard_LoadsRoster(t *testing.T) {
	b := newLoadedBoard(t, 40)

	if b.err != nil {
		t.Fatalf("unexpected error: %v", b.err)
	}
	if b.count() != 3 {
		t.Fatalf("expected 3 sessions, got %d", b.count())
	}

	view := b.View()
	for _, want := range []string{"Camp Pinecrest", "Maple Cabin", "Birch Cabin", "Archery", "OVER", "HIGH", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestBoard_NarrowTerminalKeepsQuitHint(t *testing.T) {
	b := newLoadedBoard(t, 20)

	view := b.View()
	if !strings.Contains(view, "quit") {
		t.Error("expected quit hint on a narrow terminal")
	}
	if strings.Contains(view, "reload") {
		t.Error("expected help to truncate before reload at width 20")
	}
}

func TestBoard_Navigation(t *testing.T) {
	b := newLoadedBoard(t, 40) // single column

	b.Update(keyMsg("j"))
	if s, _ := b.Selected(); s.Name != "Birch Cabin" {
		t.Errorf("expected Birch Cabin after down, got %s", s.Name)
	}

	b.Update(keyMsg("j"))
	b.Update(keyMsg("j")) // past the end stays on last
	if s, _ := b.Selected(); s.Name != "Archery" {
		t.Errorf("expected Archery at end, got %s", s.Name)
	}

	b.Update(keyMsg("k"))
	if b.cursor != 1 {
		t.Errorf("expected cursor 1 after up, got %d", b.cursor)
	}
}

func TestBoard_GridColumns(t *testing.T) {
	b := newLoadedBoard(t, 130)

	if b.columns() != 3 {
		t.Fatalf("expected 3 columns at width 130, got %d", b.columns())
	}

	b.Update(keyMsg("l"))
	if b.cursor != 1 {
		t.Errorf("expected right to move to 1, got %d", b.cursor)
	}
	b.Update(keyMsg("j")) // a full row down is out of range
	if b.cursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", b.cursor)
	}
}

func TestBoard_DarkToggle(t *testing.T) {
	b := newLoadedBoard(t, 40)

	b.Update(keyMsg("d"))
	if !b.dark {
		t.Error("expected dark mode after toggle")
	}
}

func TestBoard_Quit(t *testing.T) {
	b := newLoadedBoard(t, 40)

	_, cmd := b.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestBoard_MissingRoster(t *testing.T) {
	b := New(branding.Branding{Name: "Camp"}, filepath.Join(t.TempDir(), "missing.yaml"), false)

	model, _ := b.Update(b.Init()())
	b = model.(*Board)

	if b.err == nil {
		t.Fatal("expected load error")
	}
	if !strings.Contains(b.View(), "Error:") {
		t.Error("expected error in view")
	}
	if _, ok := b.Selected(); ok {
		t.Error("expected no selection without roster")
	}
}
