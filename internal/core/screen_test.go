package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 3)

	// Writes outside the buffer are dropped, reads return a blank cell.
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(5, 0, 'x', ColorRed)
	s.SetColored(0, 3, 'x', ColorRed)
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds write reached the buffer")
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("GetCell out of bounds = %+v, expected blank", c)
	}
}

func TestScreenTextClipsAndKeepsColor(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(5, 0, "Score", ColorBrightWhite)

	if s.Row(0) != "     Sco" {
		t.Errorf("Row = %q, expected clipped text", s.Row(0))
	}
	if c := s.GetCell(6, 0); c.Rune != 'c' || c.Color != ColorBrightWhite {
		t.Errorf("cell = %+v, expected white 'c'", c)
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "♥♥♥", ColorBrightRed)

	if s.Row(0) != "   ♥♥♥   " {
		t.Errorf("Row = %q, expected hearts centered", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '█', ColorOrange)

	expected := []string{
		"      ",
		" ███  ",
		" ███  ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(2, 2); c.Color != ColorOrange {
		t.Errorf("fill color = %v, expected orange", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("box =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), '#', ColorRed)
	s.Clear()

	if s.String() != "    \n    " {
		t.Errorf("String = %q after Clear, expected blanks", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear kept a color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", ColorGreen)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Row(0) != "ab    " {
		t.Errorf("Row(0) = %q, expected content kept", s.Row(0))
	}

	s.Resize(1, 1)
	if s.String() != "a" {
		t.Errorf("String = %q after shrink, expected %q", s.String(), "a")
	}
}
