// Package sim drives the falling-block simulation: once per tick it applies
// the pending input to the falling piece, renders, and on gravity ticks
// moves the piece down, locking it into the board when it can fall no
// further.
package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/piece"
	"go.uber.org/zap"
)

// ErrQuit is returned by Step and Run once a Quit command is received.
var ErrQuit = errors.New("quit requested")

// Loop owns the board and the falling piece. It is not safe for concurrent
// use; frontends hand input over through an InputSource.
type Loop struct {
	cfg      Config
	grid     *board.Grid
	current  *piece.Piece
	spawner  *piece.Spawner
	input    InputSource
	renderer Renderer
	logger   *zap.Logger

	tick       uint64
	frame      Frame
	stats      *statsInternal
	shapeNames []string
}

// New validates cfg and spawns the first piece. A nil logger discards logs.
func New(cfg Config, rng piece.Rand, in InputSource, r Renderer, logger *zap.Logger) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil || in == nil || r == nil {
		return nil, fmt.Errorf("%w: rand, input and renderer are required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	names := make([]string, len(cfg.Shapes))
	for i, s := range cfg.Shapes {
		names[i] = s.Name
	}

	l := &Loop{
		cfg:        cfg,
		grid:       board.New(cfg.Height, cfg.Width),
		spawner:    piece.NewSpawner(cfg.Shapes, rng, cfg.Placement, cfg.Width),
		input:      in,
		renderer:   r,
		logger:     logger,
		stats:      newStats(),
		shapeNames: names,
	}
	l.spawn()
	return l, nil
}

// Step runs a single tick.
func (l *Loop) Step() error {
	start := time.Now()

	batch := l.input.Poll()
	if input.ContainsQuit(batch) {
		l.logger.Info("quit requested", zap.Uint64("tick", l.tick))
		return ErrQuit
	}

	snap := l.grid.Snapshot()
	l.current.Apply(batch, snap)
	l.render(snap)

	if l.tick%uint64(l.cfg.GravityEvery) == 0 {
		l.stats.gravityTicks++
		if !l.current.MoveDown(snap) {
			l.lock()
		}
	}

	l.tick++
	l.stats.recordTick(time.Since(start))
	return nil
}

// Run steps the loop, waiting FrameInterval after each tick, until a Quit
// command arrives or ctx is done. Waits are not shortened to make up for
// slow ticks.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("simulation started",
		zap.Int("width", l.cfg.Width),
		zap.Int("height", l.cfg.Height),
		zap.Int("gravity_every", l.cfg.GravityEvery),
		zap.Duration("frame_interval", l.cfg.FrameInterval))

	timer := time.NewTimer(l.cfg.FrameInterval)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Step(); err != nil {
			return err
		}

		timer.Reset(l.cfg.FrameInterval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Loop) render(snap board.Snapshot) {
	palette := l.cfg.Palette
	cells := l.current.Cells()

	l.renderer.FillBackground(palette.Background)
	for _, c := range snap.OccupiedCells() {
		l.renderer.DrawCell(c.Row, c.Col, palette.Board)
	}
	for _, c := range cells {
		if snap.InBounds(c.Row, c.Col) {
			l.renderer.DrawCell(c.Row, c.Col, palette.Piece)
		}
	}
	l.renderer.DrawGridLines()
	l.renderer.Present()

	l.frame = Frame{Tick: l.tick, Board: snap, Piece: cells}
}

func (l *Loop) lock() {
	locked := l.current
	l.grid.Commit(locked.Cells())
	cleared := l.grid.ClearFullRows()
	l.stats.recordLock(cleared)

	l.logger.Debug("piece locked",
		zap.Uint64("tick", l.tick),
		zap.String("shape", locked.Shape().Name),
		zap.Int("row", locked.Row()),
		zap.Int("col", locked.Col()))
	if cleared > 0 {
		l.logger.Info("rows cleared",
			zap.Uint64("tick", l.tick),
			zap.Int("rows", cleared),
			zap.Int64("total", l.stats.linesCleared))
	}

	l.spawn()
}

// spawn places a new piece even when it overlaps the board; there is no
// game over.
func (l *Loop) spawn() {
	l.current = l.spawner.Next()
	l.stats.recordSpawn(l.current.Kind())

	l.logger.Debug("piece spawned",
		zap.Uint64("tick", l.tick),
		zap.String("shape", l.current.Shape().Name),
		zap.Int("col", l.current.Col()))
	if !l.current.Fits(l.grid.Snapshot()) {
		l.logger.Warn("spawned piece overlaps the board",
			zap.Uint64("tick", l.tick),
			zap.String("shape", l.current.Shape().Name))
	}
}

// Tick returns the number of completed ticks.
func (l *Loop) Tick() uint64 { return l.tick }

// Config returns the loop's configuration.
func (l *Loop) Config() Config { return l.cfg }

// Board returns a snapshot of the committed board.
func (l *Loop) Board() board.Snapshot { return l.grid.Snapshot() }

// Piece returns a copy of the falling piece.
func (l *Loop) Piece() *piece.Piece {
	cp := *l.current
	return &cp
}

// Frame returns the last frame handed to the Renderer.
func (l *Loop) Frame() Frame { return l.frame }

// Stats returns counters and tick timings collected so far.
func (l *Loop) Stats() Stats {
	return l.stats.snapshot(l.shapeNames)
}
