package piece_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed draws, modulo n.
type sequence struct {
	draws []int
	next  int
}

func (s *sequence) IntN(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

func TestSpawnerUsesInjectedRand(t *testing.T) {
	shapes := piece.DefaultShapes()
	s := piece.NewSpawner(shapes, &sequence{draws: []int{4, 0, 2, 2, 3, 1}}, piece.Origin, board.DefaultWidth)

	var names []string
	for i := 0; i < 6; i++ {
		p := s.Next()
		names = append(names, p.Shape().Name)
		assert.Equal(t, board.Cell{Row: 0, Col: 0}, p.Anchor())
		assert.False(t, p.Grounded())
	}
	assert.Equal(t, []string{"bar", "square", "domino", "domino", "skew", "hook"}, names)
}

func TestSpawnerPlacement(t *testing.T) {
	shapes := piece.DefaultShapes()
	want := map[string]int{"square": 4, "hook": 4, "domino": 4, "skew": 3, "bar": 4}

	for i, shape := range shapes {
		t.Run(shape.Name, func(t *testing.T) {
			s := piece.NewSpawner(shapes, &sequence{draws: []int{i}}, piece.Center, board.DefaultWidth)
			p := s.Next()
			assert.Equal(t, want[shape.Name], p.Col())
			assert.Equal(t, i, p.Kind())
			assert.True(t, p.Fits(emptySnapshot()))
		})
	}

	t.Run("narrow board clamps to origin", func(t *testing.T) {
		s := piece.NewSpawner(shapes, &sequence{draws: []int{3}}, piece.Center, 2)
		assert.Equal(t, 0, s.Next().Col())
	})
}

func TestSpawnerSpawnsIntoOverlap(t *testing.T) {
	g, err := board.Parse("##\n##\n")
	require.NoError(t, err)

	s := piece.NewSpawner(piece.DefaultShapes(), &sequence{draws: []int{0}}, piece.Origin, 2)
	p := s.Next()

	assert.NotNil(t, p)
	assert.False(t, p.Fits(g.Snapshot()))
}

func TestSpawnerCoversEveryShape(t *testing.T) {
	shapes := piece.DefaultShapes()
	s := piece.NewSpawner(shapes, rand.New(rand.NewPCG(1, 2)), piece.Origin, board.DefaultWidth)

	counts := make([]int, len(shapes))
	for i := 0; i < 5000; i++ {
		counts[s.Next().Kind()]++
	}
	for kind, n := range counts {
		assert.InDelta(t, 1000, n, 150, "shape %s", shapes[kind].Name)
	}
}

func TestParsePlacement(t *testing.T) {
	for _, p := range []piece.Placement{piece.Origin, piece.Center} {
		parsed, err := piece.ParsePlacement(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err := piece.ParsePlacement("left")
	assert.Error(t, err)

	assert.True(t, piece.Origin.Valid())
	assert.True(t, piece.Center.Valid())
	assert.False(t, piece.Placement(7).Valid())
}

func ExampleSpawner() {
	s := piece.NewSpawner(piece.DefaultShapes(), rand.New(rand.NewPCG(42, 42)), piece.Center, 10)
	p := s.Next()
	fmt.Println(p.Row(), p.Col() == (10-p.Shape().Width())/2)
	// Output: 0 true
}
