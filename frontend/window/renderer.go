package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws frames into an offscreen image. Present makes the frame
// visible to Draw; a half-drawn frame is never shown.
type Renderer struct {
	width, height int
	cell          int
	lines         color.RGBA

	back  *ebiten.Image
	front *ebiten.Image
}

// NewRenderer sizes the canvas for a board of height x width cells of cell
// pixels each.
func NewRenderer(height, width, cell int, lines color.RGBA) *Renderer {
	w, h := width*cell, height*cell
	return &Renderer{
		width:  width,
		height: height,
		cell:   cell,
		lines:  lines,
		back:   ebiten.NewImage(w, h),
		front:  ebiten.NewImage(w, h),
	}
}

// Size is the canvas size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width * r.cell, r.height * r.cell
}

func (r *Renderer) FillBackground(c color.RGBA) {
	r.back.Fill(c)
}

func (r *Renderer) DrawCell(row, col int, c color.RGBA) {
	x, y, w, h := CellRect(row, col, r.cell)
	vector.DrawFilledRect(r.back, x, y, w, h, c, false)
}

func (r *Renderer) DrawGridLines() {
	for _, l := range GridLines(r.height, r.width, r.cell) {
		vector.StrokeLine(r.back, l.X0, l.Y0, l.X1, l.Y1, 1, r.lines, false)
	}
}

func (r *Renderer) Present() {
	r.back, r.front = r.front, r.back
}

// Draw copies the last presented frame onto screen at (x, y).
func (r *Renderer) Draw(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(r.front, op)
}

// CellRect is the pixel rectangle covered by a board cell.
func CellRect(row, col, cell int) (x, y, w, h float32) {
	return float32(col * cell), float32(row * cell), float32(cell), float32(cell)
}

type Line struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the horizontal then vertical lines bounding every cell.
func GridLines(height, width, cell int) []Line {
	w, h := float32(width*cell), float32(height*cell)
	lines := make([]Line, 0, height+width+2)
	for row := 0; row <= height; row++ {
		y := float32(row * cell)
		lines = append(lines, Line{X0: 0, Y0: y, X1: w, Y1: y})
	}
	for col := 0; col <= width; col++ {
		x := float32(col * cell)
		lines = append(lines, Line{X0: x, Y0: 0, X1: x, Y1: h})
	}
	return lines
}
