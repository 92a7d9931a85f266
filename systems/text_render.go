package systems

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"dungeon-carver/components"
	"dungeon-carver/config"
	"dungeon-carver/generation"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for headings
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text such as key hints
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	plainWall  = '#'
	plainFloor = '.'
)

// RenderText draws a map as text. Plain output uses one character per tile.
// Colored output paints each tile as TerminalCellWidth spaces on the
// region's background so tiles come out roughly square.
func RenderText(m *components.DungeonMap, palette *Palette, plain bool) string {
	var b strings.Builder
	cell := strings.Repeat(" ", config.TerminalCellWidth)

	for y := 0; y < m.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			id := m.Get(x, y)
			switch {
			case plain && id == components.Wall:
				b.WriteRune(plainWall)
			case plain:
				b.WriteRune(plainFloor)
			case id == components.Wall:
				b.WriteString(cell)
			default:
				b.WriteString(palette.Style(id).Render(cell))
			}
		}
	}
	return b.String()
}

// StatsRows lists a dungeon's statistics as label/value pairs
func StatsRows(d *generation.Dungeon) [][]string {
	s := d.Stats
	return [][]string{
		{"seed", fmt.Sprint(d.Seed)},
		{"size", fmt.Sprintf("%dx%d", d.Map.Width, d.Map.Height)},
		{"rooms", fmt.Sprint(s.Rooms)},
		{"maze blobs", fmt.Sprint(s.MazeBlobs)},
		{"connectors", fmt.Sprint(s.Connectors)},
		{"joins", fmt.Sprint(s.ConnectorsOpened)},
		{"loops", fmt.Sprint(s.LoopsOpened)},
		{"dead ends removed", fmt.Sprint(s.DeadEndsRemoved)},
		{"regions left", fmt.Sprint(s.Regions)},
		{"floor tiles", fmt.Sprint(s.FloorCells)},
		{"duration", s.Duration.Round(time.Microsecond).String()},
	}
}

// RenderStats renders a dungeon's statistics as a bordered table
func RenderStats(d *generation.Dungeon) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Stat", "Value").
		Rows(StatsRows(d)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 1 {
				return StyleNumber.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	return StyleTitle.Render("Dungeon") + "\n" + t.Render()
}
