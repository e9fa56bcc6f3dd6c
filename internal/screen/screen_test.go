package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGradientCorners(t *testing.T) {
	f := Gradient()

	tests := []struct {
		name    string
		x, y    int
		r, g, b float64
	}{
		{"top left", 0, 0, 0, 0, 0},
		{"top right", Width - 1, 0, 1, 0, 0},
		{"bottom left", 0, Height - 1, 0, 1, 0},
		{"bottom right", Width - 1, Height - 1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := f.At(tt.x, tt.y)
			if c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Fatalf("At(%d, %d) = %+v, want {%v %v %v}", tt.x, tt.y, c, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestAt_ClampsCoordinates(t *testing.T) {
	f := Gradient()
	if f.At(-5, -5) != f.At(0, 0) {
		t.Fatalf("At(-5, -5) should clamp to origin")
	}
	if f.At(Width+10, Height+10) != f.At(Width-1, Height-1) {
		t.Fatalf("At past the edge should clamp to the last pixel")
	}
}

func TestRender_Dimensions(t *testing.T) {
	f := Gradient()
	out := f.Render(40, 12)

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("Render produced %d rows, want 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Fatalf("row %d width = %d, want 40", i, w)
		}
		if !strings.Contains(line, halfBlock) {
			t.Fatalf("row %d missing half blocks: %q", i, line)
		}
	}
}

func TestRender_EmptyArea(t *testing.T) {
	f := Gradient()
	if got := f.Render(0, 10); got != "" {
		t.Fatalf("Render(0, 10) = %q, want empty", got)
	}
	if got := f.Render(10, -1); got != "" {
		t.Fatalf("Render(10, -1) = %q, want empty", got)
	}
}

func TestSampleY_StaysInFrame(t *testing.T) {
	for _, n := range []int{1, 2, 7, 288, 1000} {
		for i := range n {
			if y := sampleY(i, n); y < 0 || y >= Height {
				t.Fatalf("sampleY(%d, %d) = %d, outside frame", i, n, y)
			}
		}
	}
}
