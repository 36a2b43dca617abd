package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Control pauses the simulation and single-steps it while paused.
type Control struct {
	Paused bool

	stepsRequested int
}

func NewControl() *Control {
	return &Control{}
}

// RequestSteps queues n ticks to run while paused.
func (c *Control) RequestSteps(n int) {
	c.stepsRequested += n
}

// ShouldStep reports whether the simulation may advance this frame,
// consuming one requested step when paused.
func (c *Control) ShouldStep() bool {
	if !c.Paused {
		return true
	}
	if c.stepsRequested > 0 {
		c.stepsRequested--
		return true
	}
	return false
}

// Pending is the number of requested steps not yet taken.
func (c *Control) Pending() int { return c.stepsRequested }

func (c *Control) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 140), imgui.CondOnce)

	if !imgui.BeginV("Simulation Control", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if c.Paused {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			c.Paused = false
			c.stepsRequested = 0
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
		imgui.Separator()
		imgui.Text("Step Forward:")

		if imgui.Button("1 Tick") {
			c.RequestSteps(1)
		}
		imgui.SameLine()
		if imgui.Button("10 Ticks") {
			c.RequestSteps(10)
		}
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
		if imgui.Button("Pause") {
			c.Paused = true
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.End()
}
