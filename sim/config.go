package sim

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

const (
	DefaultFrameRate    = 30
	DefaultGravityEvery = 10
)

var ErrInvalidConfig = errors.New("invalid config")

// Palette holds the colors handed to the Renderer.
type Palette struct {
	Background color.RGBA
	Board      color.RGBA
	Piece      color.RGBA
	Lines      color.RGBA
}

// DefaultPalette draws red cells and white grid lines on black.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Board:      color.RGBA{255, 0, 0, 255},
		Piece:      color.RGBA{255, 0, 0, 255},
		Lines:      color.RGBA{255, 255, 255, 255},
	}
}

// Config is fixed for the lifetime of a Loop.
type Config struct {
	Width  int
	Height int

	// GravityEvery is the number of ticks per automatic downward step.
	GravityEvery int

	// FrameInterval is the delay Run waits after each tick.
	FrameInterval time.Duration

	Shapes    []piece.Shape
	Placement piece.Placement
	Palette   Palette
}

// DefaultConfig returns a 10x20 board falling one row every ten ticks at
// thirty ticks per second.
func DefaultConfig() Config {
	return Config{
		Width:         board.DefaultWidth,
		Height:        board.DefaultHeight,
		GravityEvery:  DefaultGravityEvery,
		FrameInterval: FrameInterval(DefaultFrameRate),
		Shapes:        piece.DefaultShapes(),
		Placement:     piece.Origin,
		Palette:       DefaultPalette(),
	}
}

// FrameInterval converts a tick rate to the delay between ticks.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Validate reports every problem with the config, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.GravityEvery <= 0 {
		errs = append(errs, fmt.Errorf("gravity must fire every 1 or more ticks, got %d", c.GravityEvery))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval))
	}
	if !c.Placement.Valid() {
		errs = append(errs, fmt.Errorf("unknown placement %s", c.Placement))
	}
	if len(c.Shapes) == 0 {
		errs = append(errs, errors.New("shape set is empty"))
	}
	for _, s := range c.Shapes {
		if s.Height() > c.Height || s.Width() > c.Width {
			errs = append(errs, fmt.Errorf("shape %s (%dx%d) does not fit a %dx%d board",
				s.Name, s.Height(), s.Width(), c.Height, c.Width))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
