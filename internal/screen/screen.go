// Package screen holds the pseudo display shown above the log panel: a
// fixed 160x144 pixel frame painted into terminal cells with half blocks.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Frame dimensions in pixels.
const (
	Width  = 160
	Height = 144
)

const halfBlock = "▀"

// Frame is a Width x Height pixel buffer, row major.
type Frame struct {
	pixels []colorful.Color
}

// Gradient returns a frame fading from black (top left) to red along x and
// green along y.
func Gradient() *Frame {
	f := &Frame{pixels: make([]colorful.Color, Width*Height)}
	for y := range Height {
		for x := range Width {
			f.pixels[y*Width+x] = colorful.Color{
				R: float64(x) / float64(Width-1),
				G: float64(y) / float64(Height-1),
				B: 0,
			}
		}
	}
	return f
}

// At returns the pixel at (x, y). Coordinates are clamped to the frame.
func (f *Frame) At(x, y int) colorful.Color {
	x = min(max(x, 0), Width-1)
	y = min(max(y, 0), Height-1)
	return f.pixels[y*Width+x]
}

// Render paints the frame into cols x rows cells. Each cell covers two
// vertically stacked sample points: the top one as foreground of a half
// block, the bottom one as background.
func (f *Frame) Render(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	var b strings.Builder
	for row := range rows {
		top := sampleY(2*row, 2*rows)
		bottom := sampleY(2*row+1, 2*rows)
		for col := range cols {
			x := col * Width / cols
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(f.At(x, top).Clamped().Hex())).
				Background(lipgloss.Color(f.At(x, bottom).Clamped().Hex()))
			b.WriteString(style.Render(halfBlock))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// sampleY maps sample i of n onto a pixel row.
func sampleY(i, n int) int {
	return i * Height / n
}
