package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(10, 4)

	if s.Width() != 10 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 10x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.Set(3, 2, 'x')
	if s.Get(3, 2) != 'x' {
		t.Errorf("Get(3,2) = %q, want 'x'", s.Get(3, 2))
	}

	s.SetStyled(4, 2, 'y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, want red 'y'", cell)
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(5, 0, 'x')
	s.Set(0, 5, 'x')

	if strings.TrimSpace(s.String()) != "" {
		t.Error("out-of-bounds writes should not change the buffer")
	}
	if s.Get(7, 7) != ' ' {
		t.Error("out-of-bounds read should return space")
	}
}

func TestClearResetsColor(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetStyled(1, 1, 'z', ColorGreen)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v, want default space", cell)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", ColorDefault)

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("Row(1) = %q, want 'hi' at column 2", s.Row(1))
	}
}

func TestDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "long", ColorDefault)

	if s.Row(0) != "   lo" {
		t.Errorf("Row(0) = %q, want %q", s.Row(0), "   lo")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if s.Get(4, 0) != 'a' {
		t.Errorf("Row(0) = %q, want 'abc' starting at column 4", s.Row(0))
	}
}

func TestDrawBoxGlyphs(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), RoundedBox, ColorDefault)

	if s.Get(1, 1) != '╭' {
		t.Errorf("top-left = %q, want '╭'", s.Get(1, 1))
	}
	if s.Get(5, 1) != '╮' {
		t.Errorf("top-right = %q, want '╮'", s.Get(5, 1))
	}
	if s.Get(1, 4) != '╰' {
		t.Errorf("bottom-left = %q, want '╰'", s.Get(1, 4))
	}
	if s.Get(5, 4) != '╯' {
		t.Errorf("bottom-right = %q, want '╯'", s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("horizontal edges should use '─'")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("vertical edges should use '│'")
	}
}

func TestResizeDiscardsContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'x')

	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 8x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestResizeSameSizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(2, 2, 'x')

	s.Resize(4, 4)

	if s.Get(2, 2) != 'x' {
		t.Error("Resize to the same size should be a no-op")
	}
}
