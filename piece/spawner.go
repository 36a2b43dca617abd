package piece

import "fmt"

// Rand is the randomness a Spawner draws from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Placement selects the starting column of a new piece.
type Placement int

const (
	// Origin anchors every new piece at column 0.
	Origin Placement = iota
	// Center anchors new pieces so they sit in the middle of the board,
	// rounding toward the left.
	Center
)

func (p Placement) String() string {
	switch p {
	case Origin:
		return "origin"
	case Center:
		return "center"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	return p == Origin || p == Center
}

// ParsePlacement is the inverse of Placement.String.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "origin":
		return Origin, nil
	case "center":
		return Center, nil
	}
	return 0, fmt.Errorf("piece: unknown placement %q", s)
}

// Spawner creates new pieces at the top of a board of a given width.
type Spawner struct {
	shapes    []Shape
	rng       Rand
	placement Placement
	width     int
}

// NewSpawner builds a spawner choosing uniformly from shapes.
func NewSpawner(shapes []Shape, rng Rand, placement Placement, width int) *Spawner {
	if len(shapes) == 0 {
		panic("piece: spawner needs at least one shape")
	}
	return &Spawner{
		shapes:    shapes,
		rng:       rng,
		placement: placement,
		width:     width,
	}
}

// Shapes returns the spawner's shape set.
func (s *Spawner) Shapes() []Shape {
	return s.shapes
}

// Next returns a fresh falling piece anchored at row 0. The piece is not
// checked against the board.
func (s *Spawner) Next() *Piece {
	kind := s.rng.IntN(len(s.shapes))
	shape := s.shapes[kind]

	col := 0
	if s.placement == Center {
		col = max((s.width-shape.Width())/2, 0)
	}
	return New(shape, kind, 0, col)
}
