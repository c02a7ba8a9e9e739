package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termsnake/internal/core"
)

// cellStyles maps core colors to terminal styles.
var cellStyles = map[core.Color]tcell.Style{
	core.ColorDefault:   tcell.StyleDefault,
	core.ColorRed:       tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorWhite:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorBrightRed: tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGray:      tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Backend owns the tcell screen. Initializing it enters the alternate
// screen, enables raw mode and hides the cursor; Fini restores all of that.
type Backend struct {
	screen tcell.Screen
}

// NewBackend creates and initializes the terminal screen.
func NewBackend() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// Screen exposes the tcell screen as the event source for input capture.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Size returns the current terminal dimensions.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// Flush writes the frame buffer to the terminal and shows it.
func (b *Backend) Flush(frame *core.Screen) {
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			cell := frame.GetCell(x, y)
			style, ok := cellStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			b.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	b.screen.Show()
}

// Fini restores the terminal to its pre-game state. Safe to call more than
// once.
func (b *Backend) Fini() {
	b.screen.Fini()
}
