// Package window runs the simulation in a desktop window using ebiten.
// Ebiten paces the frames: the simulation advances one tick per ebiten
// Update, so the configured frame rate becomes the window's TPS.
package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/sim"
	"go.uber.org/zap"
)

const (
	DefaultCellSize = 30

	debugWidth  = 1280
	debugHeight = 720
)

type Options struct {
	Title string

	// CellSize is the edge of a board cell in pixels.
	CellSize int

	// Debug adds the ImGui stats, inspector and pause panels.
	Debug bool

	Logger *zap.Logger
}

// Frontend provides the Renderer and InputSource for a sim.Loop and then
// drives it.
type Frontend struct {
	opts     Options
	renderer *Renderer
	input    *Input
	overlay  *debugui.Overlay
}

func New(cfg sim.Config, opts Options) *Frontend {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.Title == "" {
		opts.Title = "blockfall"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	f := &Frontend{
		opts:     opts,
		renderer: NewRenderer(cfg.Height, cfg.Width, opts.CellSize, cfg.Palette.Lines),
		input:    NewInput(DefaultKeymap()),
	}

	w, h := f.renderer.Size()
	if opts.Debug {
		f.overlay = debugui.NewOverlay(opts.Title, debugWidth, debugHeight)
		f.input.Suppress = func() bool { return f.overlay.Input().WantCaptureKeyboard }
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(opts.Title)
	}
	return f
}

func (f *Frontend) Renderer() sim.Renderer { return f.renderer }

func (f *Frontend) Input() sim.InputSource { return f.input }

// Run blocks until the window closes or the loop reports ErrQuit.
func (f *Frontend) Run(l *sim.Loop) error {
	cfg := l.Config()
	ebiten.SetTPS(int(time.Second / cfg.FrameInterval))

	g := &Game{
		loop:     l,
		renderer: f.renderer,
		overlay:  f.overlay,
		logger:   f.opts.Logger,
		control:  debugui.NewControl(),
	}
	if f.overlay != nil {
		g.timer = debugui.NewFrameTimer()
		g.stats = debugui.NewStatsPanel()
		g.inspector = debugui.NewBoardInspector()
		f.overlay.Add(
			debugui.Item{Render: func() { g.stats.Render(l.Stats()) }},
			debugui.Item{Render: func() { g.inspector.Render(l.Frame(), l.Piece()) }},
			debugui.Item{Render: g.control.Render},
		)
	}

	f.opts.Logger.Info("window frontend started",
		zap.Int("tps", ebiten.TPS()),
		zap.Bool("debug", f.overlay != nil))
	return ebiten.RunGame(g)
}

// Game implements ebiten.Game around a sim.Loop.
type Game struct {
	loop     *sim.Loop
	renderer *Renderer
	logger   *zap.Logger

	overlay   *debugui.Overlay
	control   *debugui.Control
	timer     *debugui.FrameTimer
	stats     *debugui.StatsPanel
	inspector *debugui.BoardInspector
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.stats.Record(g.loop.Stats(), g.timer.Delta())
		g.overlay.Update()
	}

	if !g.control.ShouldStep() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	if err := g.loop.Step(); err != nil {
		if errors.Is(err, sim.ErrQuit) {
			return ebiten.Termination
		}
		g.logger.Error("step failed", zap.Error(err))
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.overlay == nil {
		g.renderer.Draw(screen, 0, 0)
		return
	}

	w, _ := g.renderer.Size()
	g.renderer.Draw(screen, float64(screen.Bounds().Dx()-w-10), 10)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay == nil {
		return g.renderer.Size()
	}
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
