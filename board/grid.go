// Package board holds the committed playfield occupancy and the immutable
// snapshots the falling piece is tested against.
package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// ErrOutOfBounds is wrapped by the panic value of any occupancy query that
// falls outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Cell addresses a single grid position. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-size occupancy field stored row-major.
// It is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// New creates an empty grid with the given dimensions.
func New(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", height, width))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, height*width),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Occupied reports whether the cell is occupied. It panics when the cell is
// outside the grid.
func (g *Grid) Occupied(row, col int) bool {
	return g.cells[g.index(row, col)]
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("board: %w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.height, g.width))
	}
	return row*g.width + col
}

// Commit marks every given cell occupied. The caller guarantees the cells
// were empty; an out-of-bounds cell panics.
func (g *Grid) Commit(cells []Cell) {
	for _, c := range cells {
		g.cells[g.index(c.Row, c.Col)] = true
	}
}

// ClearFullRows removes every full row, shifts the rows above them down and
// fills the top with empty rows. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	// Walk bottom-up copying surviving rows to the write cursor.
	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if g.rowFull(read) {
			continue
		}
		if write != read {
			copy(g.row(write), g.row(read))
		}
		write--
	}

	cleared := write + 1
	for row := 0; row < cleared; row++ {
		clear(g.row(row))
	}
	return cleared
}

// FullRows returns the indices of the rows that are currently full, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := 0; row < g.height; row++ {
		if g.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *Grid) row(row int) []bool {
	return g.cells[row*g.width : (row+1)*g.width]
}

func (g *Grid) rowFull(row int) bool {
	for _, occupied := range g.row(row) {
		if !occupied {
			return false
		}
	}
	return true
}

// Snapshot returns an immutable copy of the current occupancy.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{width: g.width, height: g.height, cells: cells}
}

// String renders the grid one row per line, '#' occupied and '.' empty.
func (g *Grid) String() string {
	return render(g.width, g.height, g.cells)
}

func render(width, height int, cells []bool) string {
	var sb strings.Builder
	sb.Grow(height * (width + 1))
	for row := 0; row < height; row++ {
		for _, occupied := range cells[row*width : (row+1)*width] {
			if occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from its String form. Blank lines and surrounding
// whitespace are ignored; every remaining line must have the same width.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, errors.New("board: empty layout")
	}

	g := New(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.width {
			return nil, fmt.Errorf("board: row %d has width %d, want %d", row, len(line), g.width)
		}
		for col, ch := range line {
			switch ch {
			case '#':
				g.cells[row*g.width+col] = true
			case '.':
			default:
				return nil, fmt.Errorf("board: row %d col %d: unexpected %q", row, col, ch)
			}
		}
	}
	return g, nil
}
