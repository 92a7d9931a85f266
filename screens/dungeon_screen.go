package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-carver/config"
	"dungeon-carver/generation"
	"dungeon-carver/systems"
)

// DungeonScreen draws the current dungeon, one filled square per tile.
// The grid is sized to the window and regenerated when the window resizes.
type DungeonScreen struct {
	viewport
	generator *generation.DungeonGenerator
	cfg       config.GeneratorConfig
	dungeon   *generation.Dungeon
	palette   *systems.Palette
	messages  *systems.MessageLog
	fitWindow bool
	dirty     bool
}

// NewDungeonScreen creates the screen and generates its first dungeon.
// With fitWindow set the grid follows the window size instead of cfg.
func NewDungeonScreen(g *generation.DungeonGenerator, cfg config.GeneratorConfig, messages *systems.MessageLog, fitWindow bool) *DungeonScreen {
	s := &DungeonScreen{
		generator: g,
		cfg:       cfg,
		palette:   systems.NewPalette(g.Seed()),
		messages:  messages,
		fitWindow: fitWindow,
	}
	s.Regenerate()
	return s
}

// Dungeon returns the dungeon on screen
func (s *DungeonScreen) Dungeon() *generation.Dungeon {
	return s.dungeon
}

// Regenerate builds a new dungeon with the current settings
func (s *DungeonScreen) Regenerate() {
	s.dungeon = s.generator.Generate(s.cfg)
	s.dirty = false
}

// Update regenerates once after the window changed size
func (s *DungeonScreen) Update() error {
	if s.dirty {
		s.messages.Addf("window resized, grid now %dx%d", s.cfg.Width, s.cfg.Height)
		s.Regenerate()
	}
	return nil
}

// Draw fills every floor tile with its region's color
func (s *DungeonScreen) Draw(screen *ebiten.Image) {
	screen.Fill(systems.WallColor)

	m := s.dungeon.Map
	size := float32(config.CellSize - config.CellGap)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			id := m.Get(x, y)
			if id == 0 {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(x*config.CellSize), float32(y*config.CellSize),
				size, size, s.palette.Color(id), false)
		}
	}
}

// Layout marks the dungeon for regeneration when the window size maps to a
// different grid size
func (s *DungeonScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.resize(outsideWidth, outsideHeight) && s.fitWindow {
		w, h := config.GridSizeForWindow(outsideWidth, outsideHeight)
		if w != s.cfg.Width || h != s.cfg.Height {
			s.cfg.Width, s.cfg.Height = w, h
			s.dirty = true
		}
	}
	return outsideWidth, outsideHeight
}
