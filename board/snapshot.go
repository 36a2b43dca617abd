package board

import "fmt"

// Snapshot is a read-only view of a Grid taken at a point in time. Piece
// legality is always decided against a Snapshot, never the live Grid.
type Snapshot struct {
	width  int
	height int
	cells  []bool
}

func (s Snapshot) Width() int  { return s.width }
func (s Snapshot) Height() int { return s.height }

// InBounds reports whether (row, col) addresses a cell of the snapshot.
func (s Snapshot) InBounds(row, col int) bool {
	return row >= 0 && row < s.height && col >= 0 && col < s.width
}

// Occupied reports whether the cell was occupied when the snapshot was
// taken. It panics when the cell is outside the snapshot.
func (s Snapshot) Occupied(row, col int) bool {
	if !s.InBounds(row, col) {
		panic(fmt.Errorf("board: %w: (%d,%d) on %dx%d snapshot", ErrOutOfBounds, row, col, s.height, s.width))
	}
	return s.cells[row*s.width+col]
}

// Free reports whether the cell is in bounds and empty.
func (s Snapshot) Free(row, col int) bool {
	return s.InBounds(row, col) && !s.cells[row*s.width+col]
}

// Overlay returns a new snapshot with the given cells additionally marked
// occupied. Cells outside the snapshot are ignored.
func (s Snapshot) Overlay(cells []Cell) Snapshot {
	out := make([]bool, len(s.cells))
	copy(out, s.cells)
	for _, c := range cells {
		if s.InBounds(c.Row, c.Col) {
			out[c.Row*s.width+c.Col] = true
		}
	}
	return Snapshot{width: s.width, height: s.height, cells: out}
}

// OccupiedCells lists occupied cells in row-major order.
func (s Snapshot) OccupiedCells() []Cell {
	var cells []Cell
	for i, occupied := range s.cells {
		if occupied {
			cells = append(cells, Cell{Row: i / s.width, Col: i % s.width})
		}
	}
	return cells
}

func (s Snapshot) String() string {
	return render(s.width, s.height, s.cells)
}
