// Package terminal runs the simulation in a text terminal using tcell.
// Each board cell is two columns wide so cells come out roughly square.
package terminal

import (
	"context"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/sim"
	"go.uber.org/zap"
)

const cellColumns = 2

// Renderer draws the board inside a box starting at the screen's top-left
// corner.
type Renderer struct {
	screen        tcell.Screen
	width, height int
	lines         tcell.Style
	background    tcell.Style
}

func NewRenderer(screen tcell.Screen, height, width int, lines color.RGBA) *Renderer {
	return &Renderer{
		screen: screen,
		width:  width,
		height: height,
		lines:  tcell.StyleDefault.Foreground(toColor(lines)),
	}
}

// Size is the number of terminal columns and rows the box takes.
func (r *Renderer) Size() (int, int) {
	return r.width*cellColumns + 2, r.height + 2
}

func (r *Renderer) FillBackground(c color.RGBA) {
	r.background = tcell.StyleDefault.Background(toColor(c))
	r.lines = r.lines.Background(toColor(c))
	w, h := r.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.background)
		}
	}
}

func (r *Renderer) DrawCell(row, col int, c color.RGBA) {
	x, y := CellOrigin(row, col)
	style := tcell.StyleDefault.Background(toColor(c))
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// DrawGridLines draws the box around the board; a terminal has no room
// for lines between cells.
func (r *Renderer) DrawGridLines() {
	w, h := r.Size()
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, r.lines)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, r.lines)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, r.lines)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, r.lines)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, r.lines)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, r.lines)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, r.lines)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, r.lines)
}

func (r *Renderer) Present() {
	r.screen.Show()
}

// CellOrigin is the screen position of the left column of a board cell.
func CellOrigin(row, col int) (x, y int) {
	return 1 + col*cellColumns, 1 + row
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Translate maps a key event to a command. Escape, Ctrl-C and q quit.
func Translate(ev *tcell.EventKey) (input.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.RotateCW, true
	case tcell.KeyLeft:
		return input.MoveLeft, true
	case tcell.KeyRight:
		return input.MoveRight, true
	case tcell.KeyDown:
		return input.SoftDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return input.Quit, true
		}
	}
	return 0, false
}

// Frontend owns an initialised screen until Run returns.
type Frontend struct {
	screen   tcell.Screen
	renderer *Renderer
	queue    *input.Queue
	logger   *zap.Logger
}

func New(screen tcell.Screen, cfg sim.Config, logger *zap.Logger) *Frontend {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen.HideCursor()
	return &Frontend{
		screen:   screen,
		renderer: NewRenderer(screen, cfg.Height, cfg.Width, cfg.Palette.Lines),
		queue:    input.NewQueue(),
		logger:   logger,
	}
}

func (f *Frontend) Renderer() sim.Renderer { return f.renderer }

func (f *Frontend) Input() sim.InputSource { return f.queue }

// Run pumps terminal events into the input queue while the loop runs, then
// finalises the screen.
func (f *Frontend) Run(ctx context.Context, l *sim.Loop) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.pump()
	}()

	w, h := f.screen.Size()
	f.logger.Info("terminal frontend started", zap.Int("columns", w), zap.Int("rows", h))

	err := l.Run(ctx)
	f.screen.Fini()
	wg.Wait()
	return err
}

// pump returns once the screen is finalised.
func (f *Frontend) pump() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if cmd, ok := Translate(ev); ok {
				f.queue.Push(cmd)
			}
		case *tcell.EventResize:
			f.screen.Sync()
			cols, rows := ev.Size()
			need, needRows := f.renderer.Size()
			if cols < need || rows < needRows {
				f.logger.Warn("terminal smaller than the board",
					zap.Int("columns", cols), zap.Int("rows", rows),
					zap.Int("need_columns", need), zap.Int("need_rows", needRows))
			}
		}
	}
}
