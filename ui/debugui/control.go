package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Control pauses and single-steps the simulation from the overlay.
type Control struct {
	Paused        bool
	StepRequested bool
	// TimeToAdvance is the simulated time still to run while paused.
	TimeToAdvance time.Duration
	TimeAdvanced  time.Duration
}

// Advance reports whether the simulation should run a tick of length dt, consuming any
// pending step request.
func (c *Control) Advance(dt time.Duration) bool {
	if !c.Paused {
		return true
	}
	if c.StepRequested {
		c.StepRequested = false
		return true
	}
	if c.TimeAdvanced < c.TimeToAdvance {
		c.TimeAdvanced += dt
		if c.TimeAdvanced >= c.TimeToAdvance {
			c.TimeToAdvance = 0
			c.TimeAdvanced = 0
		}
		return true
	}
	return false
}

// Resume clears the pause and any pending stepping.
func (c *Control) Resume() {
	*c = Control{}
}

// Window returns the render function of the simulation control window.
func (c *Control) Window() func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(560, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(250, 170), imgui.CondOnce)

		if !imgui.BeginV("Simulation Control", nil, 0) {
			imgui.End()
			return
		}

		if c.Paused {
			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
			if imgui.Button("Resume") {
				c.Resume()
			}
			imgui.PopStyleColor()

			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")

			if c.TimeToAdvance > 0 {
				progress := float32(c.TimeAdvanced) / float32(c.TimeToAdvance)
				imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%s/%s", c.TimeAdvanced.Round(time.Millisecond), c.TimeToAdvance))
			}

			imgui.Separator()
			imgui.Text("Step Forward:")
			if imgui.Button("1 Tick") {
				c.StepRequested = true
			}
			imgui.SameLine()
			if imgui.Button("1 Second") {
				c.TimeToAdvance = time.Second
				c.TimeAdvanced = 0
			}
		} else {
			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
			if imgui.Button("Pause") {
				c.Paused = true
			}
			imgui.PopStyleColor()

			imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
		}

		imgui.End()
	}
}
