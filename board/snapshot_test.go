package board_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsDetachedFromGrid(t *testing.T) {
	g := board.New(3, 3)
	g.Commit([]board.Cell{{Row: 2, Col: 0}})

	snap := g.Snapshot()
	g.Commit([]board.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}})
	g.ClearFullRows()

	assert.True(t, snap.Occupied(2, 0))
	assert.False(t, snap.Occupied(0, 0))
	assert.False(t, snap.Occupied(2, 1))
	assert.Equal(t, "...\n...\n#..\n", snap.String())
}

func TestSnapshotOverlay(t *testing.T) {
	g, err := board.Parse("...\n.#.\n...")
	require.NoError(t, err)

	base := g.Snapshot()
	frame := base.Overlay([]board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 5, Col: 5}})

	assert.Equal(t, "...\n.#.\n...\n", base.String())
	assert.Equal(t, "##.\n.#.\n...\n", frame.String())
	assert.Equal(t, []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, frame.OccupiedCells())
}

func TestSnapshotFree(t *testing.T) {
	g, err := board.Parse("#.\n..")
	require.NoError(t, err)
	snap := g.Snapshot()

	assert.False(t, snap.Free(0, 0))
	assert.True(t, snap.Free(0, 1))
	assert.False(t, snap.Free(-1, 0))
	assert.False(t, snap.Free(0, 2))
	assert.False(t, snap.Free(2, 0))
}

func TestSnapshotOccupiedOutOfBounds(t *testing.T) {
	snap := board.New(2, 2).Snapshot()
	err := recoverError(func() { snap.Occupied(2, 0) })
	assert.ErrorIs(t, err, board.ErrOutOfBounds)
}

func ExampleGrid_ClearFullRows() {
	g, _ := board.Parse(`
		#...
		####
		.#..
		####
	`)

	cleared := g.ClearFullRows()
	fmt.Println(cleared)
	fmt.Print(g)
	// Output:
	// 2
	// ....
	// ....
	// #...
	// .#..
}
