package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/frontend/window"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/sim"
	"go.uber.org/zap"
)

type options struct {
	frontend string
	width    int
	height   int
	gravity  int
	fps      int
	seed     uint64
	spawn    string
	cell     int
	debug    bool
	logLevel string
	logFile  string
}

func main() {
	var opts options
	flag.StringVar(&opts.frontend, "frontend", "window", "Frontend to run: window or terminal.")
	flag.IntVar(&opts.width, "width", board.DefaultWidth, "Board width in cells.")
	flag.IntVar(&opts.height, "height", board.DefaultHeight, "Board height in cells.")
	flag.IntVar(&opts.gravity, "gravity", sim.DefaultGravityEvery, "Ticks between automatic downward steps.")
	flag.IntVar(&opts.fps, "fps", sim.DefaultFrameRate, "Ticks per second.")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for piece selection; 0 picks one from the clock.")
	flag.StringVar(&opts.spawn, "spawn", piece.Origin.String(), "Spawn column: origin or center.")
	flag.IntVar(&opts.cell, "cell", window.DefaultCellSize, "Cell size in pixels for the window frontend.")
	flag.BoolVar(&opts.debug, "debug", false, "Show the ImGui debug panels in the window frontend.")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.StringVar(&opts.logFile, "log-file", "", "Log destination; defaults to stderr, or blockfall.log for the terminal frontend.")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("blockfall: %v", err)
	}
}

func run(opts options) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	logger, session, err := logging.New(opts.logLevel, logDestination(opts))
	if err != nil {
		return err
	}
	defer logger.Sync()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	logger.Info("starting blockfall",
		zap.String("frontend", opts.frontend),
		zap.Uint64("seed", seed),
		zap.String("spawn", cfg.Placement.String()))

	switch opts.frontend {
	case "window":
		err = runWindow(cfg, opts, rng, logger)
	case "terminal":
		err = runTerminal(cfg, rng, logger)
	}

	if errors.Is(err, sim.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		logger.Error("blockfall stopped", zap.Error(err))
		return err
	}
	logger.Info("blockfall finished", zap.String("session", session))
	return nil
}

func buildConfig(opts options) (sim.Config, error) {
	if opts.frontend != "window" && opts.frontend != "terminal" {
		return sim.Config{}, fmt.Errorf("unknown frontend %q", opts.frontend)
	}
	placement, err := piece.ParsePlacement(opts.spawn)
	if err != nil {
		return sim.Config{}, err
	}

	cfg := sim.DefaultConfig()
	cfg.Width = opts.width
	cfg.Height = opts.height
	cfg.GravityEvery = opts.gravity
	cfg.FrameInterval = sim.FrameInterval(opts.fps)
	cfg.Placement = placement

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// logDestination keeps the terminal frontend's logs off the screen it owns.
func logDestination(opts options) string {
	if opts.logFile != "" {
		if opts.frontend == "terminal" && (opts.logFile == "stderr" || opts.logFile == "stdout") {
			return "blockfall.log"
		}
		return opts.logFile
	}
	if opts.frontend == "terminal" {
		return "blockfall.log"
	}
	return "stderr"
}

func runWindow(cfg sim.Config, opts options, rng *rand.Rand, logger *zap.Logger) error {
	f := window.New(cfg, window.Options{
		CellSize: opts.cell,
		Debug:    opts.debug,
		Logger:   logger,
	})

	l, err := sim.New(cfg, rng, f.Input(), f.Renderer(), logger)
	if err != nil {
		return err
	}
	return f.Run(l)
}

func runTerminal(cfg sim.Config, rng *rand.Rand, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	f := terminal.New(screen, cfg, logger)
	l, err := sim.New(cfg, rng, f.Input(), f.Renderer(), logger)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return f.Run(ctx, l)
}
