package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translate converts a tcell event into a queue event. Returns false for
// event types the game does not observe at all.
func Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventMouse:
		return Event{Kind: KindMouse}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: KindResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

// translateKey maps physical keys to steering and quit actions. Unmapped
// keys still produce an event so they show up as the last-observed input.
func translateKey(ev *tcell.EventKey) Event {
	e := Event{Kind: KindKey}

	switch ev.Key() {
	case tcell.KeyUp:
		e.Action = ActionUp
	case tcell.KeyDown:
		e.Action = ActionDown
	case tcell.KeyLeft:
		e.Action = ActionLeft
	case tcell.KeyRight:
		e.Action = ActionRight
	case tcell.KeyCtrlC:
		e.Action = ActionQuit
	case tcell.KeyRune:
		e.Rune = ev.Rune()
		if e.Rune == 'q' {
			e.Action = ActionQuit
		}
	}
	return e
}
