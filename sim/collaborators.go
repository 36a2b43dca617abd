package sim

import (
	"image/color"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/input"
)

// Renderer draws one frame per tick. Calls arrive in the order
// FillBackground, DrawCell..., DrawGridLines, Present.
type Renderer interface {
	FillBackground(c color.RGBA)
	DrawCell(row, col int, c color.RGBA)
	DrawGridLines()
	Present()
}

// InputSource yields the commands that arrived since the previous call.
type InputSource interface {
	Poll() []input.Command
}

// Discard is a Renderer that draws nothing.
var Discard Renderer = discard{}

type discard struct{}

func (discard) FillBackground(color.RGBA)     {}
func (discard) DrawCell(int, int, color.RGBA) {}
func (discard) DrawGridLines()                {}
func (discard) Present()                      {}

// InputFunc adapts a function to InputSource.
type InputFunc func() []input.Command

func (f InputFunc) Poll() []input.Command { return f() }

// Frame is what the Loop last handed to the Renderer: the committed board
// as of the tick and the falling piece drawn over it.
type Frame struct {
	Tick  uint64
	Board board.Snapshot
	Piece []board.Cell
}

// Composite returns the board with the piece cells marked.
func (f Frame) Composite() board.Snapshot {
	return f.Board.Overlay(f.Piece)
}
