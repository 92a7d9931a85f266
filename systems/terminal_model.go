package systems

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dungeon-carver/config"
	"dungeon-carver/generation"
)

// TerminalModel is the bubbletea model that shows a dungeon in the terminal.
// The grid follows the terminal size and is regenerated whenever it changes.
type TerminalModel struct {
	generator *generation.DungeonGenerator
	cfg       config.GeneratorConfig
	dungeon   *generation.Dungeon
	palette   *Palette
	messages  *MessageLog
	plain     bool
}

// NewTerminalModel creates a model and generates its first dungeon from cfg
func NewTerminalModel(g *generation.DungeonGenerator, cfg config.GeneratorConfig, messages *MessageLog, plain bool) TerminalModel {
	m := TerminalModel{
		generator: g,
		cfg:       cfg,
		palette:   NewPalette(g.Seed()),
		messages:  messages,
		plain:     plain,
	}
	m.regenerate()
	return m
}

// Dungeon returns the dungeon currently on screen
func (m TerminalModel) Dungeon() *generation.Dungeon {
	return m.dungeon
}

// Config returns the generator settings the current dungeon was built with
func (m TerminalModel) Config() config.GeneratorConfig {
	return m.cfg
}

func (m TerminalModel) Init() tea.Cmd {
	return nil
}

func (m TerminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "r":
			m.regenerate()
		case "s":
			seed := time.Now().UnixNano()
			m.generator.SetSeed(seed)
			m.palette = NewPalette(seed)
			m.messages.Addf("reseeded with %d", seed)
			m.regenerate()
		}
	case tea.WindowSizeMsg:
		cols := msg.Width
		if m.plain {
			// plain output spends one column per tile
			cols *= config.TerminalCellWidth
		}
		w, h := config.GridSizeForTerminal(cols, msg.Height)
		if w != m.cfg.Width || h != m.cfg.Height {
			m.cfg.Width, m.cfg.Height = w, h
			m.regenerate()
		}
	}
	return m, nil
}

func (m TerminalModel) View() string {
	var b strings.Builder

	b.WriteString(RenderText(m.dungeon.Map, m.palette, m.plain))
	b.WriteString("\n")

	s := m.dungeon.Stats
	b.WriteString(StyleTitle.Render("dungeon"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("seed %d  %dx%d  rooms %d  regions %d  floor %d",
		m.dungeon.Seed, m.dungeon.Map.Width, m.dungeon.Map.Height, s.Rooms, s.Regions, s.FloorCells)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space regenerate  s reseed  q quit"))
	if latest := m.messages.Latest(); latest != "" {
		b.WriteString("  ")
		b.WriteString(StyleValue.Render(latest))
	}
	return b.String()
}

func (m *TerminalModel) regenerate() {
	m.dungeon = m.generator.Generate(m.cfg)
}
