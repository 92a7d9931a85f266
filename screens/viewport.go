package screens

import "github.com/hajimehoshi/ebiten/v2"

// viewport remembers the window size from the last Layout call. Screens
// embed it and override only what they draw.
type viewport struct {
	width, height int
}

// resize stores w and h and reports whether either changed. The first call
// always reports a change.
func (v *viewport) resize(w, h int) bool {
	changed := w != v.width || h != v.height
	v.width, v.height = w, h
	return changed
}

// Size returns the window size in pixels
func (v *viewport) Size() (int, int) {
	return v.width, v.height
}

func (v *viewport) Update() error { return nil }

func (v *viewport) Draw(*ebiten.Image) {}

// Layout keeps the logical size equal to the window, so a tile is always
// config.CellSize pixels wide.
func (v *viewport) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
