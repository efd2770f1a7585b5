// Package debugui provides a Dear ImGui debug overlay for the ebiten front-end. Windows are
// plain render functions registered on an Overlay and drawn on top of the game each frame.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay owns the ImGui backend and the windows rendered each frame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	items   []func()
	visible bool
}

// New creates the ImGui backend and its ebiten window.
func New(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend, visible: true}
}

// Add registers a window render function.
func (o *Overlay) Add(render func()) {
	if render == nil {
		panic("debugui: nil render function")
	}
	o.items = append(o.items, render)
}

// Toggle shows or hides every window.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the windows are shown.
func (o *Overlay) Visible() bool { return o.visible }

// BeginFrame starts an ImGui frame. Call it at the start of ebiten's Update.
func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame renders all registered windows and closes the ImGui frame.
func (o *Overlay) EndFrame() {
	if o.visible {
		for _, render := range o.items {
			render()
		}
	}
	o.backend.EndFrame()
}

// Draw paints the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the window size to the backend.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// WantsKeyboard reports whether ImGui is consuming keyboard input.
func (o *Overlay) WantsKeyboard() bool {
	return o.visible && imgui.CurrentIO().WantCaptureKeyboard()
}

// WantsMouse reports whether ImGui is consuming mouse input.
func (o *Overlay) WantsMouse() bool {
	return o.visible && imgui.CurrentIO().WantCaptureMouse()
}
