package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-carver/cli"
	"dungeon-carver/config"
	"dungeon-carver/generation"
	"dungeon-carver/screens"
	"dungeon-carver/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screens  *screens.ScreenStack
	dungeon  *screens.DungeonScreen
	stats    *screens.StatsScreen
	music    *screens.Music
	messages *systems.MessageLog
	logger   *log.Logger
}

// NewGame creates the window's screens around one generator
func NewGame(g *generation.DungeonGenerator, cfg config.GeneratorConfig, messages *systems.MessageLog, logger *log.Logger, fitWindow bool, music *screens.Music) *Game {
	dungeon := screens.NewDungeonScreen(g, cfg, messages, fitWindow)
	stats := screens.NewStatsScreen(dungeon.Dungeon, messages)

	stack := screens.NewScreenStack()
	stack.Push(dungeon)

	messages.Add("Press space for a new dungeon, tab for stats.")

	return &Game{
		screens:  stack,
		dungeon:  dungeon,
		stats:    stats,
		music:    music,
		messages: messages,
		logger:   logger,
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// esc closes an open overlay first and quits from the map
		if g.screens.Peek() == screens.Screen(g.dungeon) {
			return ebiten.Termination
		}
		g.screens.Pop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		g.logger.Debug("toggled fullscreen", "fullscreen", full)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.screens.Toggle(g.stats)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.dungeon.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.music != nil {
		if g.music.IsPlaying() {
			g.music.Pause()
			g.messages.Add("music paused")
		} else {
			g.music.Resume()
			g.messages.Add("music resumed")
		}
	}

	return g.screens.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}

// runWindow opens the desktop viewer and blocks until it is closed
func runWindow(opts cli.WindowOptions) error {
	width, height := config.GetWindowSize()
	if !opts.FitWindow {
		width, height = opts.Config.Width*config.CellSize, opts.Config.Height*config.CellSize
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetWindowTitle("Dungeon Carver")

	var music *screens.Music
	if opts.MusicPath != "" {
		music = screens.NewMusic(0.5)
		if err := music.Play(opts.MusicPath); err != nil {
			opts.Logger.Warn("music disabled", "err", err)
			music = nil
		} else {
			defer music.Stop()
		}
	}

	return ebiten.RunGame(NewGame(opts.Generator, opts.Config, opts.Messages, opts.Logger, opts.FitWindow, music))
}
