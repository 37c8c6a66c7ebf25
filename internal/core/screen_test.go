package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(5, 2, 'X')
	s.SetColored(1, 1, '@', ColorYellow)

	if got := s.Get(5, 2); got != 'X' {
		t.Errorf("Get(5, 2) = %q, expected 'X'", got)
	}
	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow '@'", c)
	}

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected ' '", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, expected ' '", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix '  Hello'", got)
	}

	// Clipped at the right edge.
	s.DrawText(17, 2, "Hello")
	if got := s.Row(2)[17:]; got != "Hel" {
		t.Errorf("clipped text = %q, expected 'Hel'", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorCyan)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(4, 0); c.Color != ColorCyan {
		t.Errorf("centered text color = %v, expected cyan", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'Z', ColorRed)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'Z' || c.Color != ColorRed {
		t.Errorf("content lost after grow: %+v", c)
	}

	s.Resize(1, 1)
	if got := s.String(); got != " " {
		t.Errorf("String() after shrink = %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawRect(NewRect(0, 0, 3, 1), '#', ColorBlue)
	s.Clear()

	if got := s.Row(0); got != "   " {
		t.Errorf("Row(0) after Clear = %q", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionFlip, ActionLeft)

	if !f.Has(ActionFlip) || !f.Has(ActionLeft) {
		t.Error("expected Flip and Left to be set")
	}
	if f.Has(ActionUp) {
		t.Error("Up should not be set")
	}
	if !ActionLeft.IsDirection() || ActionFlip.IsDirection() {
		t.Error("IsDirection misclassified actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
}
