package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTermPainterHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	backdrop := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	painter := NewTermPainter(backdrop)

	// 2×2 frame: red over transparent in the left column, green over blue
	// in the right.
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		9, 9, 9, 0, 0, 0, 255, 255,
	}
	painter.Draw(screen, pixels, 2, 2, 0, 0, 2, 1)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != '▀' {
		t.Fatalf("cell rune %q, want upper half block", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("left fg %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Fatalf("left bg %v, want backdrop", bg)
	}

	_, _, style, _ = screen.GetContent(1, 0)
	fg, bg, _ = style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("right cell fg %v bg %v", fg, bg)
	}

	if mainc, _, _, _ := screen.GetContent(2, 0); mainc == '▀' {
		t.Fatal("painter wrote outside its area")
	}
}

func TestTermPainterIgnoresShortBuffer(t *testing.T) {
	screen := newSimScreen(t, 2, 1)
	NewTermPainter(color.RGBA{}).Draw(screen, make([]byte, 3), 2, 2, 0, 0, 2, 1)
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc == '▀' {
		t.Fatal("painter drew from a short buffer")
	}
}

func TestFitCells(t *testing.T) {
	cases := []struct {
		w, h, cols, rows int
		wantC, wantR     int
	}{
		{300, 420, 80, 24, 34, 24},
		{100, 100, 20, 50, 20, 10},
		{0, 10, 5, 5, 0, 0},
	}
	for _, tc := range cases {
		c, r := FitCells(tc.w, tc.h, tc.cols, tc.rows)
		if c != tc.wantC || r != tc.wantR {
			t.Fatalf("FitCells(%d,%d,%d,%d) = %d,%d want %d,%d", tc.w, tc.h, tc.cols, tc.rows, c, r, tc.wantC, tc.wantR)
		}
	}
}
