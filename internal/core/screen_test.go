package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3,2) = %q, want 'x'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want space", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must be ignored, not panic
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds reads return space
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100,100) = %q, want space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '@', ColorBrightCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("cell rune = %q, want '@'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("cell color = %v, want ColorBrightCyan", cell.Color)
	}

	// Clear resets colors too
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v, want blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, want to contain 'hello'", got)
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "overflow")
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", s.Width(), s.Height())
	}

	// Content preserved
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("Get(2,2) after resize = %q, want 'x'", got)
	}

	// Shrink below the content
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("Get(2,2) after shrink = %q, want space", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
