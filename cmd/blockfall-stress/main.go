package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/sim"
	"go.uber.org/zap"
)

var playable = []input.Command{input.RotateCW, input.MoveLeft, input.MoveRight, input.SoftDrop}

// randomInput issues between zero and most commands per tick, never Quit.
func randomInput(rng *rand.Rand, most int) sim.InputFunc {
	return func() []input.Command {
		n := rng.IntN(most + 1)
		if n == 0 {
			return nil
		}
		batch := make([]input.Command, n)
		for i := range batch {
			batch[i] = playable[rng.IntN(len(playable))]
		}
		return batch
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	ticks := flag.Int64("ticks", 0, "Stop after this many ticks; 0 runs for the full duration.")
	width := flag.Int("width", board.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", board.DefaultHeight, "Board height in cells.")
	gravity := flag.Int("gravity", 1, "Ticks between automatic downward steps.")
	maxCommands := flag.Int("commands", 3, "Maximum random commands per tick.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and commands.")
	spawn := flag.String("spawn", piece.Center.String(), "Spawn column: origin or center.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level for progress output.")
	flag.Parse()

	logger, _, err := logging.New(*logLevel, "stderr")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	placement, err := piece.ParsePlacement(*spawn)
	if err != nil {
		logger.Fatal("bad spawn flag", zap.Error(err))
	}

	cfg := sim.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.GravityEvery = *gravity
	cfg.Placement = placement

	cmdRng := rand.New(rand.NewPCG(*seed, *seed+1))
	loop, err := sim.New(cfg, rand.New(rand.NewPCG(*seed, *seed)), randomInput(cmdRng, *maxCommands), sim.Discard, logger.Named("sim").WithOptions(zap.IncreaseLevel(zap.WarnLevel)))
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	report := &Report{
		Duration:       *duration,
		TickLimit:      *ticks,
		Width:          cfg.Width,
		Height:         cfg.Height,
		GravityEvery:   cfg.GravityEvery,
		MaxCommands:    *maxCommands,
		Seed:           *seed,
		Placement:      placement.String(),
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration), zap.Int64("ticks", *ticks))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Run:
	for *ticks == 0 || int64(loop.Tick()) < *ticks {
		select {
		case <-ctx.Done():
			break Run
		default:
			tickStart := time.Now()
			if err := loop.Step(); err != nil {
				if !errors.Is(err, sim.ErrQuit) {
					logger.Error("step failed", zap.Error(err))
				}
				break Run
			}
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = int64(loop.Tick())
	report.Sim = loop.Stats()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished",
		zap.Int64("ticks", report.TotalTicks),
		zap.Int64("lines_cleared", report.Sim.LinesCleared))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
