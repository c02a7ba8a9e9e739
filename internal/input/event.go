package input

import "fmt"

// Kind classifies a captured terminal event.
type Kind int

const (
	KindKey Kind = iota
	KindMouse
	KindResize
)

// Event is a terminal event translated at the capture boundary, so nothing
// past this package depends on the terminal library's event types.
type Event struct {
	Kind   Kind
	Action Action // Key events only; ActionNone for unmapped keys
	Rune   rune   // Printable key that produced the event, if any
	Width  int    // Resize events only
	Height int
}

// String renders the event for the debug trace overlay.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		if e.Action != ActionNone {
			return fmt.Sprintf("Key(%s)", e.Action)
		}
		if e.Rune != 0 {
			return fmt.Sprintf("Key(%q)", e.Rune)
		}
		return "Key(?)"
	case KindMouse:
		return "Mouse"
	case KindResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	default:
		return "Unknown"
	}
}
