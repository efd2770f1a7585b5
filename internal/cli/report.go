package cli

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Ticks    int
	Step     time.Duration
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	Simulated      time.Duration
	UpdateTime     Stats
	Games          GameStats
	Systems        []engine.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// GameStats aggregates the events of every session played during a run.
type GameStats struct {
	Games     int
	Pieces    int
	Lines     int
	Clears    [5]int
	AllClears int
	MaxLevel  int
	BestScore int
}

func (g *GameStats) record(ev tetris.Event) {
	switch ev.Kind {
	case tetris.EventPieceLocked:
		g.Pieces++
	case tetris.EventLinesCleared:
		g.Lines += ev.Lines
		if ev.Lines >= 0 && ev.Lines < len(g.Clears) {
			g.Clears[ev.Lines]++
		}
		if ev.AllClear {
			g.AllClears++
		}
	case tetris.EventLevelUp:
		g.MaxLevel = max(g.MaxLevel, ev.Level)
	case tetris.EventGameOver:
		g.Games++
		g.BestScore = max(g.BestScore, ev.Score)
		g.MaxLevel = max(g.MaxLevel, ev.Level)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick Budget:** {{if .Ticks}}{{.Ticks}}{{else}}none{{end}}
- **Tick Step:** {{.Step}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.Simulated}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Games
- **Finished Games:** {{.Games.Games}}
- **Pieces Locked:** {{.Games.Pieces}}
- **Lines Cleared:** {{.Games.Lines}} (single {{index .Games.Clears 1}}, double {{index .Games.Clears 2}}, triple {{index .Games.Clears 3}}, tetris {{index .Games.Clears 4}})
- **All Clears:** {{.Games.AllClears}}
- **Highest Level:** {{.Games.MaxLevel}}
- **Best Score:** {{.Games.BestScore}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
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
		return err
	}

	return tmpl.Execute(w, r)
}
