package piece

import (
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/input"
)

// Direction is a horizontal step.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Piece is the currently falling shape anchored by its top-left corner.
// A Piece starts Falling and becomes Grounded after its first failed
// downward step. Grounded is sticky: the piece may still slide or drop
// into free space, but MoveDown keeps reporting false so the next gravity
// tick locks it.
type Piece struct {
	shape    Shape
	kind     int
	row, col int
	grounded bool
}

// New places shape at (row, col). kind identifies the shape within its set.
func New(shape Shape, kind, row, col int) *Piece {
	return &Piece{shape: shape, kind: kind, row: row, col: col}
}

func (p *Piece) Shape() Shape   { return p.shape }
func (p *Piece) Kind() int      { return p.kind }
func (p *Piece) Row() int       { return p.row }
func (p *Piece) Col() int       { return p.col }
func (p *Piece) Grounded() bool { return p.grounded }

// Anchor returns the board cell of the shape's top-left corner.
func (p *Piece) Anchor() board.Cell {
	return board.Cell{Row: p.row, Col: p.col}
}

// Cells returns the board cells covered by the piece.
func (p *Piece) Cells() []board.Cell {
	return cellsAt(p.shape, p.row, p.col)
}

func cellsAt(shape Shape, row, col int) []board.Cell {
	cells := make([]board.Cell, 0, shape.Height()*shape.Width())
	for y := 0; y < shape.Height(); y++ {
		for x := 0; x < shape.Width(); x++ {
			if shape.At(y, x) {
				cells = append(cells, board.Cell{Row: row + y, Col: col + x})
			}
		}
	}
	return cells
}

// Fits reports whether the piece, as it stands, is in bounds and free of
// overlap against snap.
func (p *Piece) Fits(snap board.Snapshot) bool {
	return fits(p.shape, p.row, p.col, snap)
}

func fits(shape Shape, row, col int, snap board.Snapshot) bool {
	for y := 0; y < shape.Height(); y++ {
		for x := 0; x < shape.Width(); x++ {
			if shape.At(y, x) && !snap.Free(row+y, col+x) {
				return false
			}
		}
	}
	return true
}

// MoveHorizontal shifts the piece one column. An illegal move leaves the
// piece untouched; the result only reports whether it moved.
func (p *Piece) MoveHorizontal(dir Direction, snap board.Snapshot) bool {
	col := p.col + int(dir)
	if !fits(p.shape, p.row, col, snap) {
		return false
	}
	p.col = col
	return true
}

// MoveDown steps the piece one row down when that is legal and reports
// whether it is still falling. A failed step grounds the piece.
func (p *Piece) MoveDown(snap board.Snapshot) bool {
	if !fits(p.shape, p.row+1, p.col, snap) {
		p.grounded = true
		return false
	}
	p.row++
	return !p.grounded
}

// Rotate turns the piece clockwise around its anchor. The rotation happens
// entirely or not at all.
func (p *Piece) Rotate(snap board.Snapshot) bool {
	rotated := p.shape.Rotate()
	if !fits(rotated, p.row, p.col, snap) {
		return false
	}
	p.shape = rotated
	return true
}

// Apply runs each command in order against the current piece state and the
// single snapshot for this tick. Rejected commands have no effect on the
// ones after them. Quit is not a piece command and is ignored.
func (p *Piece) Apply(cmds []input.Command, snap board.Snapshot) {
	for _, cmd := range cmds {
		switch cmd {
		case input.RotateCW:
			p.Rotate(snap)
		case input.MoveLeft:
			p.MoveHorizontal(Left, snap)
		case input.MoveRight:
			p.MoveHorizontal(Right, snap)
		case input.SoftDrop:
			p.MoveDown(snap)
		}
	}
}
