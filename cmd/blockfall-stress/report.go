package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/sim"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	TickLimit    int64
	Width        int
	Height       int
	GravityEvery int
	MaxCommands  int
	Seed         uint64
	Placement    string

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Sim            sim.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = sorted[percentileIndex(len(sorted), 50)]
	s.P99 = sorted[percentileIndex(len(sorted), 99)]
}

// percentileIndex uses the nearest-rank method.
func percentileIndex(n, p int) int {
	rank := (p*n + 99) / 100
	return max(rank-1, 0)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Tick Limit:** {{if .TickLimit}}{{.TickLimit}}{{else}}none{{end}}
- **Board:** {{.Width}}x{{.Height}}
- **Gravity Every:** {{.GravityEvery}} ticks
- **Max Commands per Tick:** {{.MaxCommands}}
- **Seed:** {{.Seed}}
- **Spawn:** {{.Placement}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
  - **P50:** {{.TickTime.P50}}
  - **P99:** {{.TickTime.P99}}

## Gameplay
- **Gravity Ticks:** {{.Sim.GravityTicks}}
- **Spawns:** {{.Sim.Spawns}}
- **Locks:** {{.Sim.Locks}}
- **Lines Cleared:** {{.Sim.LinesCleared}}

| Rows Cleared | Locks |
|--------------|-------|
{{- range $rows, $count := .Sim.ClearsByRows}}
| {{$rows}} | {{$count}} |
{{- end}}

| Shape | Spawns |
|-------|--------|
{{- range .Sim.SpawnsByShape}}
| {{.Name}} | {{.Count}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
