package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := debugui.NewHistory(4)
		assert.Equal(t, 0, h.Len())
		assert.Equal(t, float32(0), h.Average())
		assert.Empty(t, h.Ordered())
		assert.Equal(t, []float32{0, 0, 0, 0}, h.Plot())
	})

	t.Run("partial", func(t *testing.T) {
		h := debugui.NewHistory(4)
		h.Push(1)
		h.Push(3)
		assert.Equal(t, []float32{1, 3}, h.Ordered())
		assert.Equal(t, []float32{0, 0, 1, 3}, h.Plot())
		assert.Equal(t, float32(2), h.Average())
	})

	t.Run("wraps oldest first", func(t *testing.T) {
		h := debugui.NewHistory(3)
		for _, v := range []float32{1, 2, 3, 4, 5} {
			h.Push(v)
		}
		assert.Equal(t, 3, h.Len())
		assert.Equal(t, []float32{3, 4, 5}, h.Ordered())
		assert.Equal(t, []float32{3, 4, 5}, h.Plot())
		assert.Equal(t, float32(4), h.Average())
	})

	t.Run("rejects zero size", func(t *testing.T) {
		assert.Panics(t, func() { debugui.NewHistory(0) })
	})
}

func TestControl(t *testing.T) {
	c := debugui.NewControl()
	assert.True(t, c.ShouldStep())

	c.Paused = true
	assert.False(t, c.ShouldStep())

	c.RequestSteps(2)
	assert.Equal(t, 2, c.Pending())
	assert.True(t, c.ShouldStep())
	assert.True(t, c.ShouldStep())
	assert.False(t, c.ShouldStep())
	assert.Equal(t, 0, c.Pending())
}

func TestRowFill(t *testing.T) {
	g, err := board.Parse(`
		....
		#...
		##.#
	`)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, debugui.RowFill(g.Snapshot()))
}
