package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gosplit/internal/config"
	"github.com/sadopc/gosplit/internal/core/history"
	"github.com/sadopc/gosplit/internal/ui/layout"
	"github.com/sadopc/gosplit/internal/ui/msgs"
)

var testDoc = Document{Name: "main.go", Data: []byte("package main\n\nfunc main() {}\n")}

// testApp creates an App without a history store.
func testApp(t *testing.T) App {
	t.Helper()
	a, err := New(config.DefaultConfig(), testDoc, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// testAppResized returns an App that has been resized so a.ready == true.
func testAppResized(t *testing.T, hist *history.Store) App {
	t.Helper()
	a, err := New(config.DefaultConfig(), testDoc, hist)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

// keyMsg creates a tea.KeyMsg for a single rune key.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

// drag moves the divider from the default 60 to 70 and returns the
// release command.
func drag(t *testing.T, a App) (App, tea.Cmd) {
	t.Helper()
	a, _ = update(t, a, mouse(tea.MouseActionPress, 60, 10))
	if !a.split.Dragging() {
		t.Fatal("expected press on the divider to start a drag")
	}
	a, _ = update(t, a, mouse(tea.MouseActionMotion, 70, 10))
	if a.mode != msgs.ModeDrag {
		t.Errorf("expected ModeDrag while dragging, got %v", a.mode)
	}
	return update(t, a, mouse(tea.MouseActionRelease, 70, 10))
}

// --- Tests ---

func TestNew_DefaultState(t *testing.T) {
	a := testApp(t)

	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
	if a.focus != msgs.FocusPaneA {
		t.Errorf("expected FocusPaneA, got %v", a.focus)
	}
	if a.ready {
		t.Error("expected ready=false before WindowSizeMsg")
	}
	if len(a.split.Panes()) != 2 {
		t.Errorf("expected two panes, got %d", len(a.split.Panes()))
	}
	if a.View() != "Loading..." {
		t.Errorf("expected loading view, got %q", a.View())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Position = "sideways"
	if _, err := New(cfg, testDoc, nil); !errors.Is(err, config.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestWindowSizeMsg_SetsReadyAndLayout(t *testing.T) {
	a := testApp(t)

	a, cmd := update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd != nil {
		t.Error("expected nil cmd from WindowSizeMsg")
	}
	if !a.ready {
		t.Error("expected ready=true after WindowSizeMsg")
	}
	if w, h := a.split.Size(); w != 120 || h != 39 {
		t.Errorf("split size = %dx%d, want 120x39", w, h)
	}
	if a.split.Offset() != 60 {
		t.Errorf("offset = %d, want 60", a.split.Offset())
	}
}

func TestDrag_RecordsMoveInEventsPane(t *testing.T) {
	a := testAppResized(t, nil)

	a, cmd := drag(t, a)
	if cmd == nil {
		t.Fatal("expected command from release")
	}
	moved, ok := cmd().(msgs.SplitterMovedMsg)
	if !ok {
		t.Fatal("expected SplitterMovedMsg")
	}
	if moved.Offset != 70 || !moved.FromUser {
		t.Errorf("moved = %+v, want offset 70 from user", moved)
	}

	a, cmd = update(t, a, moved)
	if cmd != nil {
		t.Error("expected no persistence command without a history store")
	}
	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal after release, got %v", a.mode)
	}

	entries := a.events.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 event, got %d", len(entries))
	}
	if entries[0].Offset != 70 || !entries[0].FromUser {
		t.Errorf("event = %+v", entries[0])
	}
	if !strings.Contains(a.View(), "58%") {
		t.Error("expected status bar to show the new percentage")
	}
}

func TestEscCancelsDrag(t *testing.T) {
	a := testAppResized(t, nil)

	a, _ = update(t, a, mouse(tea.MouseActionPress, 60, 10))
	a, _ = update(t, a, mouse(tea.MouseActionMotion, 80, 10))
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	if a.split.Dragging() {
		t.Fatal("expected drag to be cancelled")
	}
	if a.split.Offset() != 60 {
		t.Errorf("offset = %d, want 60", a.split.Offset())
	}
	if len(a.events.Entries()) != 0 {
		t.Error("cancelled drag must not record an event")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	a := testAppResized(t, nil)

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != msgs.FocusSplitter || !a.split.Focused() {
		t.Fatalf("expected splitter focus, got %v", a.focus)
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != msgs.FocusPaneB || a.split.Focused() {
		t.Fatalf("expected pane B focus, got %v", a.focus)
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != msgs.FocusPaneA {
		t.Fatalf("expected focus to wrap to pane A, got %v", a.focus)
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != msgs.FocusPaneB {
		t.Fatalf("expected reverse cycle to pane B, got %v", a.focus)
	}
}

func TestSplitterFocus_ArrowNudges(t *testing.T) {
	a := testAppResized(t, nil)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected moved command from nudge")
	}
	if a.split.Offset() != 61 {
		t.Errorf("offset = %d, want 61", a.split.Offset())
	}
}

func TestResetKey_RestoresDefault(t *testing.T) {
	a := testAppResized(t, nil)
	a, _ = drag(t, a)

	a, cmd := update(t, a, keyMsg('r'))
	if cmd == nil {
		t.Fatal("expected reset command")
	}
	a, cmd = update(t, a, cmd())
	if a.split.Offset() != 60 {
		t.Errorf("offset = %d, want 60", a.split.Offset())
	}
	if cmd == nil {
		t.Fatal("expected moved command from reset")
	}
	if moved := cmd().(msgs.SplitterMovedMsg); moved.FromUser {
		t.Error("reset must not be reported as a user move")
	}
}

func TestCopyGeometry(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	a := testAppResized(t, nil)
	a, cmd := update(t, a, keyMsg('y'))
	a, _ = update(t, a, cmd())

	if !strings.Contains(copied, "offset=60") {
		t.Errorf("copied = %q", copied)
	}
	if !strings.Contains(copied, "divider x=60 y=0 w=1 h=39") {
		t.Errorf("copied = %q", copied)
	}
	if !a.toast.Visible {
		t.Error("expected toast after copy")
	}
}

func TestCopyGeometry_ClipboardError(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	a := testAppResized(t, nil)
	a, _ = update(t, a, msgs.CopyGeometryMsg{})
	if !a.toast.Visible || !strings.Contains(a.toast.View(), "no clipboard") {
		t.Error("expected error toast")
	}
}

func TestGeometryText(t *testing.T) {
	pos := layout.Offset(30).Reconcile(80, 0)
	res := layout.Result{
		Axis:    layout.Horizontal,
		PaneA:   layout.NewRect(0, 0, 30, 10),
		Divider: layout.NewRect(30, 0, 1, 10),
		PaneB:   layout.NewRect(31, 0, 49, 10),
	}
	got := geometryText(layout.Horizontal, pos, res)
	want := "axis=horizontal position=30 offset=30 percent=38\n" +
		"pane_a x=0 y=0 w=30 h=10\n" +
		"divider x=30 y=0 w=1 h=10\n" +
		"pane_b x=31 y=0 w=49 h=10\n"
	if got != want {
		t.Errorf("geometryText =\n%s\nwant\n%s", got, want)
	}
}

func TestHelpToggle(t *testing.T) {
	a := testAppResized(t, nil)

	a, cmd := update(t, a, keyMsg('?'))
	a, _ = update(t, a, cmd())
	if !a.help.Visible {
		t.Fatal("expected help visible")
	}
	if a.mode != msgs.ModeModal {
		t.Errorf("expected ModeModal, got %v", a.mode)
	}

	// Mouse input is swallowed while help is open.
	a, _ = update(t, a, mouse(tea.MouseActionPress, 60, 10))
	if a.split.Dragging() {
		t.Error("drag started behind help overlay")
	}

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.help.Visible {
		t.Fatal("expected help hidden after esc")
	}
	if a.mode != msgs.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", a.mode)
	}
}

func TestQuitKey(t *testing.T) {
	a := testAppResized(t, nil)
	_, cmd := update(t, a, keyMsg('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestView_FillsTerminal(t *testing.T) {
	a := testAppResized(t, nil)
	lines := strings.Split(a.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
}

func TestOverlayTopRight_KeepsHeight(t *testing.T) {
	base := strings.Repeat("..........\n", 3) + ".........."
	got := overlayTopRight(base, "ab", 10)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[1] != ".......ab." {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[0] != ".........." {
		t.Errorf("row 0 changed: %q", lines[0])
	}
}

func TestHistory_PlacementRestoredOnNextStart(t *testing.T) {
	store, err := history.NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	a := testAppResized(t, store)
	a, cmd := drag(t, a)
	a, cmd = update(t, a, cmd())
	if cmd == nil {
		t.Fatal("expected persistence command")
	}
	saved, ok := cmd().(msgs.PlacementSavedMsg)
	if !ok || saved.Err != nil || saved.ID == 0 {
		t.Fatalf("saved = %+v", saved)
	}
	_, _ = update(t, a, saved)

	b := testAppResized(t, store)
	if b.split.Offset() != 70 {
		t.Errorf("restored offset = %d, want 70", b.split.Offset())
	}
	entries := b.events.Entries()
	if len(entries) != 1 || !strings.Contains(entries[0].Note, "restored 70") {
		t.Errorf("expected restore note, got %+v", entries)
	}
}

func TestHistory_StoresConfiguredOffset(t *testing.T) {
	store, err := history.NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	a := testAppResized(t, store)
	cmd := a.split.SetOffset(2000)
	if cmd == nil {
		t.Fatal("expected a moved command")
	}
	if got := a.split.Offset(); got != 116 {
		t.Fatalf("effective offset = %d, want 116", got)
	}
	a, cmd = update(t, a, cmd())
	if cmd == nil {
		t.Fatal("expected persistence command")
	}
	if saved := cmd().(msgs.PlacementSavedMsg); saved.Err != nil {
		t.Fatalf("Add: %v", saved.Err)
	}

	e, err := store.Latest(a.layoutKey)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if e.ByFraction || e.Offset != 2000 {
		t.Errorf("stored entry = %+v, want offset 2000", e)
	}
}
