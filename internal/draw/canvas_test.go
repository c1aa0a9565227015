package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestShadeLevel(t *testing.T) {
	tests := []struct {
		in   float64
		want rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.3, '░'},
		{0.6, '▒'},
		{0.9, '▓'},
		{1, '█'},
	}
	for _, tt := range tests {
		if got := ShadeLevel(tt.in); got != tt.want {
			t.Errorf("ShadeLevel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanvasHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)

	c.SetPen(PenRed)
	c.Set(0, 0) // top half of cell (0, 0)
	c.Set(1, 1) // bottom half of cell (1, 0)
	c.Set(2, 0)
	c.Set(2, 1) // both halves of cell (2, 0)

	tests := []struct {
		col  int
		want cell
	}{
		{0, cell{ch: BlockUpperHalf, fg: PenRed}},
		{1, cell{ch: BlockLowerHalf, fg: PenRed}},
		{2, cell{ch: BlockFull, fg: PenRed}},
		{3, cell{ch: BlockEmpty}},
	}
	for _, tt := range tests {
		if got := c.cellAt(0, tt.col); got != tt.want {
			t.Errorf("cell %d = %+v, want %+v", tt.col, got, tt.want)
		}
	}

	c.SetPen(PenBlue)
	c.Set(0, 1)
	if got := c.cellAt(0, 0); got != (cell{ch: BlockUpperHalf, fg: PenRed, bg: PenBlue}) {
		t.Errorf("two-colour cell = %+v", got)
	}
}

func TestCanvasRenderDiff(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetPen(PenCyan)
	c.Set(3, 3)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.Contains(first.String(), string(BlockLowerHalf)) {
		t.Fatalf("first render missing pixel: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged frame should write nothing, got %q", second.String())
	}

	c.MarkTextDirty(4, 2, 1)
	var third bytes.Buffer
	c.Render(&third)
	if !strings.Contains(third.String(), "\033[2;4H") {
		t.Errorf("dirty cell should be repainted, got %q", third.String())
	}

	c.Clear()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if !strings.Contains(fourth.String(), "\033[2;4H\033[0m ") {
		t.Errorf("cleared pixel should be blanked, got %q", fourth.String())
	}

	c.ForceRedraw()
	var full bytes.Buffer
	c.Render(&full)
	if n := strings.Count(full.String(), " "); n != 50 {
		t.Errorf("forced redraw wrote %d cells, want 50", n)
	}
}

func TestCanvasRenderOffset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(5, 3)
	c.Set(1, 0)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[4;6H") {
		t.Errorf("offset not applied: %q", buf.String())
	}
}

func TestCanvasOverlay(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)

	c.SetOverlay(0.5)
	if got := c.cellAt(0, 1); got.ch != ShadeLevel(0.5) {
		t.Errorf("empty cell under overlay = %q", got.ch)
	}
	if got := c.cellAt(0, 0); got.ch != BlockUpperHalf {
		t.Errorf("drawn cell should show through a light overlay, got %q", got.ch)
	}

	c.SetOverlay(2)
	if got := c.cellAt(0, 0); got.ch != BlockFull {
		t.Errorf("full overlay should cover everything, got %q", got.ch)
	}

	c.Clear()
	if got := c.cellAt(0, 1); got.ch != BlockEmpty {
		t.Errorf("Clear should drop the overlay, got %q", got.ch)
	}
}

func TestDrawCircleFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawCircle(10, 10, 4, true)

	if c.pixels[10*c.termWidth+10] == PenNone {
		t.Error("centre should be filled")
	}
	if c.pixels[10*c.termWidth+16] != PenNone {
		t.Error("pixel outside the radius should stay empty")
	}
	if c.pixels[10*c.termWidth+13] == PenNone {
		t.Error("pixel inside the radius should be filled")
	}
}

func TestDrawCircleOutline(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawCircle(10, 10, 5, false)

	for _, p := range [][2]int{{15, 10}, {5, 10}, {10, 5}, {10, 15}} {
		if c.pixels[p[1]*c.termWidth+p[0]] == PenNone {
			t.Errorf("outline missing at %v", p)
		}
	}
	if c.pixels[10*c.termWidth+12] != PenNone {
		t.Error("outline should leave the interior empty")
	}
}

func TestPolygonFill(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{1, 1}, {8, 1}, {8, 8}, {1, 8}}, true)
	if c.pixels[4*c.termWidth+4] == PenNone {
		t.Error("square interior should be filled")
	}

	c.Clear()
	c.DrawPolygon([]Point{{1, 1}, {8, 1}}, true)
	for i, p := range c.pixels {
		if p != PenNone {
			t.Fatalf("degenerate polygon drew pixel %d", i)
		}
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 1)
	cw.WriteAt(3, 4, "hi")
	if buf.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[5;5Hhi" {
		t.Errorf("got %q", got)
	}
}
