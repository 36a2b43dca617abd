// Package debugui renders Dear ImGui panels over the ebiten window frontend:
// tick statistics, a board inspector and pause/step controls.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Item holds a Dear ImGui render function run once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui ebiten backend and the items drawn every frame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	items   []Item
	input   InputState
}

// NewOverlay creates the backend and its window. It must be called before
// ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

func (o *Overlay) Add(items ...Item) {
	o.items = append(o.items, items...)
}

// Update builds the ImGui frame. Call it from the game's Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()

	o.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	for _, item := range o.items {
		item.Render()
	}

	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// Input returns the capture state recorded by the last Update.
func (o *Overlay) Input() InputState { return o.input }
