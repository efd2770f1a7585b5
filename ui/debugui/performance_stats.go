package debugui

import (
	"fmt"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/blockfall/engine"
)

// PerformanceStats tracks frame times and per-system scheduler latency.
type PerformanceStats struct {
	stats         func() *engine.SchedulerStats
	historyFrames int
	frameHistory  *History
	systemLatency map[string]*History
	timer         *FrameTimer
}

func NewPerformanceStats(historyFrames int, stats func() *engine.SchedulerStats) *PerformanceStats {
	return &PerformanceStats{
		stats:         stats,
		historyFrames: historyFrames,
		frameHistory:  NewHistory(historyFrames),
		systemLatency: make(map[string]*History),
		timer:         NewFrameTimer(),
	}
}

// Sample records the current frame time and the latest system timings.
func (ps *PerformanceStats) Sample() {
	ps.frameHistory.Push(float32(ps.timer.Delta().Microseconds()) / 1000.0)
	for _, sys := range ps.stats().Systems {
		h, ok := ps.systemLatency[sys.Name]
		if !ok {
			h = NewHistory(ps.historyFrames)
			ps.systemLatency[sys.Name] = h
		}
		h.Push(float32(sys.LastDuration.Nanoseconds()) / 1000.0)
	}
}

// Render draws the performance window.
func (ps *PerformanceStats) Render() {
	ps.Sample()

	imgui.SetNextWindowPosV(imgui.NewVec2(560, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 400), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.frameHistory.Average()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}
	frames := ps.frameHistory.Ordered()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

	stats := ps.stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Min")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.MaxDuration))
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("System Latency (µs)") {
		names := make([]string, 0, len(ps.systemLatency))
		for name := range ps.systemLatency {
			names = append(names, name)
		}
		slices.Sort(names)

		yMax := float64(1)
		for _, name := range names {
			yMax = max(yMax, float64(ps.systemLatency[name].Max())*1.1)
		}

		if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "µs", 0, 0)
			implot.SetupAxisLimitsV(implot.AxisY1, 0, yMax, implot.CondAlways)
			for _, name := range names {
				samples := ps.systemLatency[name].Ordered()
				implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Delta returns the time since the previous call.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	case d >= time.Microsecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
