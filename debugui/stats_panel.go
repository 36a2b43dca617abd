package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/sim"
)

const tickHistoryFrames = 120

// StatsPanel shows tick timing and gameplay counters.
type StatsPanel struct {
	frameTimes *History
	tickTimes  *History
	lines      *History
}

func NewStatsPanel() *StatsPanel {
	return &StatsPanel{
		frameTimes: NewHistory(tickHistoryFrames),
		tickTimes:  NewHistory(tickHistoryFrames),
		lines:      NewHistory(tickHistoryFrames),
	}
}

// Record stores one frame worth of samples; deltaTime is in seconds.
func (sp *StatsPanel) Record(stats sim.Stats, deltaTime float32) {
	sp.frameTimes.Push(deltaTime * 1000.0)
	sp.tickTimes.Push(float32(stats.LastTick.Microseconds()) / 1000.0)
	sp.lines.Push(float32(stats.LinesCleared))
}

func (sp *StatsPanel) Render(stats sim.Stats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)

	if !imgui.BeginV("Simulation Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrame := sp.frameTimes.Average()
	if avgFrame > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrame, 1000.0/avgFrame))
	}
	imgui.Text(fmt.Sprintf("Tick: min %s / avg %s / max %s", stats.MinTick, stats.AvgTick, stats.MaxTick))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d (gravity %d)", stats.Ticks, stats.GravityTicks))
	imgui.Text(fmt.Sprintf("Spawns: %d", stats.Spawns))
	imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))

	if imgui.BeginTabBar("StatsTabs") {
		if imgui.BeginTabItem("Tick Time") {
			samples := sp.tickTimes.Plot()
			if implot.BeginPlotV("Tick Time", imgui.NewVec2(-1, 160), 0) {
				implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("tick", &samples[0], int32(len(samples)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Lines") {
			samples := sp.lines.Plot()
			imgui.PlotLinesFloatPtr("##lines", &samples[0], int32(len(samples)))
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	if imgui.TreeNodeStr("Clears per Lock") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows")
			imgui.TableSetupColumn("Locks")
			imgui.TableHeadersRow()

			for rows, count := range stats.ClearsByRows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", rows))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawns per Shape") {
		var most int64
		for _, sc := range stats.SpawnsByShape {
			most = max(most, sc.Count)
		}
		for _, sc := range stats.SpawnsByShape {
			imgui.Text(fmt.Sprintf("%-8s %6d", sc.Name, sc.Count))
			if most > 0 {
				barWidth := float32(sc.Count) / float32(most) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.8, 0.2, 0.2, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}
