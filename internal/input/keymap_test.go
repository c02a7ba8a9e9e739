package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateArrowKeys(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		want Action
	}{
		{tcell.KeyUp, ActionUp},
		{tcell.KeyDown, ActionDown},
		{tcell.KeyLeft, ActionLeft},
		{tcell.KeyRight, ActionRight},
	}
	for _, c := range cases {
		e, ok := Translate(tcell.NewEventKey(c.key, 0, tcell.ModNone))
		if !ok {
			t.Fatalf("key %v should translate", c.key)
		}
		if e.Kind != KindKey || e.Action != c.want {
			t.Errorf("key %v -> %+v, want action %v", c.key, e, c.want)
		}
	}
}

func TestTranslateQuitKeys(t *testing.T) {
	e, ok := Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !ok || e.Action != ActionQuit {
		t.Errorf("'q' -> %+v, want quit", e)
	}

	e, ok = Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))
	if !ok || e.Action != ActionQuit {
		t.Errorf("Ctrl+C -> %+v, want quit", e)
	}
}

func TestTranslateUnmappedKeyStillObserved(t *testing.T) {
	e, ok := Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if !ok {
		t.Fatal("unmapped printable keys should still be observed")
	}
	if e.Action != ActionNone || e.Rune != 'x' {
		t.Errorf("'x' -> %+v, want no action with rune 'x'", e)
	}
}

func TestTranslateResize(t *testing.T) {
	e, ok := Translate(tcell.NewEventResize(100, 40))
	if !ok {
		t.Fatal("resize should translate")
	}
	if e.Kind != KindResize || e.Width != 100 || e.Height != 40 {
		t.Errorf("resize -> %+v, want 100x40", e)
	}
}

func TestTranslateMouse(t *testing.T) {
	e, ok := Translate(tcell.NewEventMouse(1, 2, tcell.Button1, tcell.ModNone))
	if !ok || e.Kind != KindMouse {
		t.Errorf("mouse -> %+v, want mouse kind", e)
	}
}

func TestEventString(t *testing.T) {
	cases := []struct {
		e    Event
		want string
	}{
		{Event{Kind: KindKey, Action: ActionUp}, "Key(Up)"},
		{Event{Kind: KindKey, Rune: 'x'}, `Key('x')`},
		{Event{Kind: KindMouse}, "Mouse"},
		{Event{Kind: KindResize, Width: 80, Height: 24}, "Resize(80x24)"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
