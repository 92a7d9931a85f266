package screens

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one layer of the window: the dungeon itself or an overlay on it
type Screen interface {
	// Update advances the screen by one tick
	Update() error
	// Draw draws the screen over whatever lies below it
	Draw(screen *ebiten.Image)
	// Layout receives the window size and returns the logical screen size
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack layers screens bottom to top. Overlays do not pause the
// screens beneath them: every layer is updated and laid out each tick.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Contains reports whether screen is anywhere on the stack
func (s *ScreenStack) Contains(screen Screen) bool {
	return slices.Contains(s.screens, screen)
}

// Toggle pushes screen, or removes it if it is already on the stack.
// It reports whether screen is on the stack afterwards.
func (s *ScreenStack) Toggle(screen Screen) bool {
	if !s.Contains(screen) {
		s.Push(screen)
		return true
	}
	if s.Peek() == screen {
		s.Pop()
	} else {
		s.screens = slices.DeleteFunc(s.screens, func(scr Screen) bool { return scr == screen })
	}
	return false
}

// Update updates every screen from the bottom up
func (s *ScreenStack) Update() error {
	for _, scr := range s.screens {
		if err := scr.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout passes the window size to every screen and returns the bottom
// screen's logical size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(s.screens) == 0 {
		return outsideWidth, outsideHeight
	}
	w, h := s.screens[0].Layout(outsideWidth, outsideHeight)
	for _, scr := range s.screens[1:] {
		scr.Layout(outsideWidth, outsideHeight)
	}
	return w, h
}
