package screens

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-carver/generation"
	"dungeon-carver/systems"
)

const (
	statsPanelWidth   = 300
	statsLineHeight   = 16
	statsPadding      = 10
	statsRecentCount  = 5
	statsMessageWidth = 40
)

// StatsScreen is an overlay listing the current dungeon's statistics and the
// most recent log messages
type StatsScreen struct {
	viewport
	dungeon    func() *generation.Dungeon
	messages   *systems.MessageLog
	background color.Color
}

// NewStatsScreen creates an overlay that reads the dungeon to describe on
// every draw
func NewStatsScreen(dungeon func() *generation.Dungeon, messages *systems.MessageLog) *StatsScreen {
	return &StatsScreen{
		dungeon:    dungeon,
		messages:   messages,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
	}
}

// Draw implements the Screen interface
func (s *StatsScreen) Draw(screen *ebiten.Image) {
	lines := s.lines()
	height := len(lines)*statsLineHeight + 2*statsPadding
	width := statsPanelWidth
	if w, h := s.Size(); w > 0 {
		// small windows clip the panel instead of drawing past the edge
		width, height = min(width, w-1), min(height, h-1)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), s.background, false)
	vector.StrokeRect(screen, 0, 0, float32(width), float32(height), 1, color.White, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), statsPadding, statsPadding)
}

func (s *StatsScreen) lines() []string {
	var lines []string
	if d := s.dungeon(); d != nil {
		for _, row := range systems.StatsRows(d) {
			lines = append(lines, fmt.Sprintf("%-18s %s", row[0], row[1]))
		}
	}
	lines = append(lines, fmt.Sprintf("FPS %.1f", ebiten.ActualFPS()), "")

	for _, msg := range s.messages.RecentMessages(statsRecentCount) {
		if len(msg) > statsMessageWidth {
			msg = msg[:statsMessageWidth-3] + "..."
		}
		lines = append(lines, msg)
	}
	lines = append(lines, "", "space new  tab hide  f fullscreen  esc close")
	return lines
}
