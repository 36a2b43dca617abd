package terminal_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 30)
	return screen
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		cmd  input.Command
		ok   bool
	}{
		{"up rotates", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.RotateCW, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.MoveLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.MoveRight, true},
		{"down drops", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.SoftDrop, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Quit, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.Quit, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.Quit, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := terminal.Translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}

func TestRendererDrawsFrame(t *testing.T) {
	screen := newScreen(t)
	defer screen.Fini()

	cfg := sim.DefaultConfig()
	cfg.Width, cfg.Height = 4, 5
	cfg.Shapes = cfg.Shapes[:1]
	f := terminal.New(screen, cfg, nil)

	l, err := sim.New(cfg, rand.New(rand.NewPCG(1, 1)), f.Input(), f.Renderer(), nil)
	require.NoError(t, err)
	require.NoError(t, l.Step())

	corner, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, corner)
	edge, _, _, _ := screen.GetContent(9, 3)
	assert.Equal(t, tcell.RuneVLine, edge)
	bottom, _, _, _ := screen.GetContent(4, 6)
	assert.Equal(t, tcell.RuneHLine, bottom)

	// The square sits at rows 0-1, columns 0-1 when it is drawn.
	red := tcell.NewRGBColor(255, 0, 0)
	black := tcell.NewRGBColor(0, 0, 0)
	for _, c := range []struct{ row, col int }{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		x, y := terminal.CellOrigin(c.row, c.col)
		for dx := 0; dx < 2; dx++ {
			_, _, style, _ := screen.GetContent(x+dx, y)
			_, bg, _ := style.Decompose()
			assert.Equal(t, red, bg, "cell %d,%d", c.row, c.col)
		}
	}

	x, y := terminal.CellOrigin(3, 3)
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	assert.Equal(t, black, bg)
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)

	cfg := sim.DefaultConfig()
	cfg.FrameInterval = time.Millisecond
	f := terminal.New(screen, cfg, nil)

	l, err := sim.New(cfg, rand.New(rand.NewPCG(3, 3)), f.Input(), f.Renderer(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, l) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, sim.ErrQuit)
	case <-time.After(5 * time.Second):
		t.Fatal("frontend did not stop")
	}
}
