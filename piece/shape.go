// Package piece implements the falling piece: its shape set, clockwise
// rotation and the legality rules for every move against a board snapshot.
package piece

import (
	"fmt"
	"strings"
)

// Shape is a named rectangular occupancy matrix.
type Shape struct {
	Name  string
	cells [][]bool
}

// NewShape copies cells into a Shape. The matrix must be non-empty and
// rectangular.
func NewShape(name string, cells [][]bool) Shape {
	if len(cells) == 0 || len(cells[0]) == 0 {
		panic("piece: shape " + name + " is empty")
	}
	width := len(cells[0])
	rows := make([][]bool, len(cells))
	for y, row := range cells {
		if len(row) != width {
			panic(fmt.Sprintf("piece: shape %s row %d has width %d, want %d", name, y, len(row), width))
		}
		rows[y] = append([]bool(nil), row...)
	}
	return Shape{Name: name, cells: rows}
}

func (s Shape) Height() int { return len(s.cells) }
func (s Shape) Width() int  { return len(s.cells[0]) }

// At reports whether the shape occupies the local cell (y, x).
func (s Shape) At(y, x int) bool {
	return s.cells[y][x]
}

// Rotate returns the shape turned 90 degrees clockwise. Cell (y, x) of the
// result is cell (Height-1-x, y) of the receiver.
func (s Shape) Rotate() Shape {
	oldHeight, oldWidth := s.Height(), s.Width()
	rotated := make([][]bool, oldWidth)
	for y := range rotated {
		rotated[y] = make([]bool, oldHeight)
		for x := range rotated[y] {
			rotated[y][x] = s.cells[oldHeight-1-x][y]
		}
	}
	return Shape{Name: s.Name, cells: rotated}
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	n := 0
	for _, row := range s.cells {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

func (s Shape) String() string {
	var sb strings.Builder
	for _, row := range s.cells {
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var defaultShapes = [][][]bool{
	{ // square
		{true, true},
		{true, true},
	},
	{ // hook
		{false, true},
		{true, true},
	},
	{ // domino
		{true, true},
	},
	{ // skew
		{true, true, false},
		{false, true, true},
	},
	{ // bar
		{true},
		{true},
		{true},
		{true},
	},
}

var defaultShapeNames = []string{"square", "hook", "domino", "skew", "bar"}

// DefaultShapes returns a fresh copy of the five-shape set, in spawn-index order.
func DefaultShapes() []Shape {
	shapes := make([]Shape, len(defaultShapes))
	for i, cells := range defaultShapes {
		shapes[i] = NewShape(defaultShapeNames[i], cells)
	}
	return shapes
}
