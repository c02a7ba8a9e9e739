package term

import (
	"strings"
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/game"
)

func playingSnapshot() game.Snapshot {
	return game.Snapshot{
		Body:         []core.Point{{X: 0, Y: 0}},
		Direction:    game.DirRight,
		HasLastEvent: true,
		LastEvent:    "Key(Up)",
	}
}

func TestFrameDrawsBorder(t *testing.T) {
	dst := core.NewScreen(80, 24)

	Frame(dst, playingSnapshot(), false)

	// Canvas frame on an 80x24 terminal starts at (17,1).
	if dst.Get(17, 1) != '╭' {
		t.Errorf("top-left corner = %q, want '╭'", dst.Get(17, 1))
	}
	if dst.Get(63, 1) != '╮' {
		t.Errorf("top-right corner = %q, want '╮'", dst.Get(63, 1))
	}
	if dst.Get(17, 2) != '│' || dst.Get(63, 2) != '│' {
		t.Error("vertical border edges missing")
	}
	if dst.Get(30, 1) != '─' {
		t.Error("horizontal border edge missing")
	}
}

func TestFrameDrawsSnakeAtMappedCell(t *testing.T) {
	dst := core.NewScreen(80, 24)

	Frame(dst, playingSnapshot(), false)

	// Logical (0,0) maps to terminal (18,2); each segment is two cells wide.
	if dst.Get(18, 2) != '█' || dst.Get(19, 2) != '█' {
		t.Errorf("snake glyphs at (18,2)(19,2) = %q%q, want '██'",
			dst.Get(18, 2), dst.Get(19, 2))
	}
	if dst.GetCell(18, 2).Color != core.ColorBrightRed {
		t.Error("snake should be bright red")
	}
}

func TestFrameDrawsApple(t *testing.T) {
	dst := core.NewScreen(80, 24)
	snap := playingSnapshot()
	snap.HasApple = true
	snap.Apple = game.Apple{Pos: core.Point{X: 2, Y: 3}, Glyph: '🍎'}

	Frame(dst, snap, false)

	// Logical (2,3) maps to terminal (22,5).
	if dst.Get(22, 5) != '🍎' {
		t.Errorf("apple glyph at (22,5) = %q, want '🍎'", dst.Get(22, 5))
	}
}

func TestFrameShowsLogoUntilFirstInput(t *testing.T) {
	dst := core.NewScreen(80, 24)
	snap := playingSnapshot()
	snap.HasLastEvent = false

	Frame(dst, snap, false)

	if !strings.Contains(dst.String(), "____") {
		t.Error("logo should be drawn before any input is observed")
	}
}

func TestFrameHidesLogoAfterInput(t *testing.T) {
	dst := core.NewScreen(80, 24)

	Frame(dst, playingSnapshot(), false)

	if strings.Contains(dst.String(), "____") {
		t.Error("logo should disappear after the first input")
	}
}

func TestFrameTraceOverlay(t *testing.T) {
	dst := core.NewScreen(80, 24)

	Frame(dst, playingSnapshot(), true)

	if !strings.Contains(dst.Row(22), "Got: Key(Up)") {
		t.Errorf("trace row = %q, want it to contain %q", dst.Row(22), "Got: Key(Up)")
	}
}

func TestEndScreenShowsScore(t *testing.T) {
	dst := core.NewScreen(80, 24)
	snap := playingSnapshot()
	snap.Lost = true
	snap.Score = 3

	EndScreen(dst, snap)

	if !strings.Contains(dst.Row(17), "Your Score: 3") {
		t.Errorf("score row = %q, want it to contain %q", dst.Row(17), "Your Score: 3")
	}
	if !strings.Contains(dst.String(), "____") {
		t.Error("end screen should include the logo")
	}
	// No game objects on the end screen.
	if dst.Get(18, 2) == '█' {
		t.Error("snake must not be drawn on the end screen")
	}
}
