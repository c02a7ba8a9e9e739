package term

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/game"
)

//go:embed logo.txt
var logoText string

// snakeGlyph is drawn twice per segment: every logical cell is two terminal
// columns wide.
const snakeGlyph = '█'

// Frame draws one playing frame into the buffer: border, snake, apple, and
// either the logo (until the first input arrives) or the optional trace of
// the last observed event.
func Frame(dst *core.Screen, snap game.Snapshot, showTrace bool) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()

	dst.DrawBox(core.CanvasFrame(w, h), core.RoundedBox, core.ColorDefault)
	drawSnake(dst, snap)
	drawApple(dst, snap)

	switch {
	case !snap.HasLastEvent:
		drawLogo(dst)
	case showTrace:
		dst.DrawText(2, h-2, "Got: "+snap.LastEvent, core.ColorGray)
	}
}

// EndScreen draws the game-over frame: the logo plus the final score.
func EndScreen(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()
	drawLogo(dst)
	dst.DrawTextCentered(dst.Height()/2+5, fmt.Sprintf("Your Score: %d", snap.Score), core.ColorDefault)
}

func drawSnake(dst *core.Screen, snap game.Snapshot) {
	w, h := dst.Width(), dst.Height()
	for _, seg := range snap.Body {
		tp := core.Display(seg, w, h)
		dst.SetStyled(tp.X, tp.Y, snakeGlyph, core.ColorBrightRed)
		dst.SetStyled(tp.X+1, tp.Y, snakeGlyph, core.ColorBrightRed)
	}
}

func drawApple(dst *core.Screen, snap game.Snapshot) {
	if !snap.HasApple {
		return
	}
	tp := core.Display(snap.Apple.Pos, dst.Width(), dst.Height())
	dst.SetStyled(tp.X, tp.Y, snap.Apple.Glyph, core.ColorDefault)
}

func drawLogo(dst *core.Screen) {
	lines := strings.Split(strings.TrimRight(logoText, "\n"), "\n")

	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}

	w, h := dst.Width(), dst.Height()
	x := core.SatSub(w/2, width/2)
	top := core.SatSub(h/2, 2)
	for i, line := range lines {
		dst.DrawText(x, top+i, line, core.ColorRed)
	}
}
