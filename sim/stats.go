package sim

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Stats summarises a Loop's activity since it was created.
type Stats struct {
	Ticks        int64
	GravityTicks int64
	Locks        int64
	Spawns       int64
	LinesCleared int64

	// ClearsByRows[n] counts locks that cleared exactly n rows.
	ClearsByRows []int64
	// SpawnsByShape is indexed by shape kind.
	SpawnsByShape []ShapeCount

	MinTick   time.Duration
	MaxTick   time.Duration
	AvgTick   time.Duration
	LastTick  time.Duration
	TotalTick time.Duration
}

// ShapeCount is the number of times a shape was spawned.
type ShapeCount struct {
	Name  string
	Count int64
}

type statsInternal struct {
	ticks        int64
	gravityTicks int64
	locks        int64
	spawns       int64
	linesCleared int64

	clears   *intmap.Map[int, int64]
	maxClear int
	bySpawn  *intmap.Map[int, int64]

	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

func newStats() *statsInternal {
	return &statsInternal{
		clears:      intmap.New[int, int64](8),
		bySpawn:     intmap.New[int, int64](8),
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *statsInternal) recordTick(d time.Duration) {
	s.ticks++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *statsInternal) recordLock(cleared int) {
	s.locks++
	s.linesCleared += int64(cleared)
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
	s.maxClear = max(s.maxClear, cleared)
}

func (s *statsInternal) recordSpawn(kind int) {
	s.spawns++
	n, _ := s.bySpawn.Get(kind)
	s.bySpawn.Put(kind, n+1)
}

func (s *statsInternal) snapshot(shapeNames []string) Stats {
	out := Stats{
		Ticks:         s.ticks,
		GravityTicks:  s.gravityTicks,
		Locks:         s.locks,
		Spawns:        s.spawns,
		LinesCleared:  s.linesCleared,
		ClearsByRows:  make([]int64, s.maxClear+1),
		SpawnsByShape: make([]ShapeCount, len(shapeNames)),
		MaxTick:       s.maxDuration,
		LastTick:      s.lastDuration,
		TotalTick:     s.totalDuration,
	}

	if s.ticks > 0 {
		out.MinTick = s.minDuration
		out.AvgTick = s.totalDuration / time.Duration(s.ticks)
	}
	for rows := range out.ClearsByRows {
		out.ClearsByRows[rows], _ = s.clears.Get(rows)
	}
	for kind, name := range shapeNames {
		count, _ := s.bySpawn.Get(kind)
		out.SpawnsByShape[kind] = ShapeCount{Name: name, Count: count}
	}
	return out
}
