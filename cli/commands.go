package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dungeon-carver/systems"
)

// windowFlags are bound on both the root and the window command
type windowFlags struct {
	fullscreen bool
	fixed      bool
	music      string
}

func (c *CLI) bindWindowFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.window.fullscreen, "fullscreen", false, "start in fullscreen")
	cmd.Flags().BoolVar(&c.window.fixed, "fixed", false, "keep the configured grid size instead of fitting the window")
	cmd.Flags().StringVar(&c.window.music, "music", "", "mp3 or ogg file to loop in the background")
}

// windowCommand creates the window command that opens the desktop viewer.
func (c *CLI) windowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the dungeon in a desktop window",
		Long: `Open the dungeon in a desktop window.

The grid is sized to the window and a new dungeon is carved whenever a resize
changes the grid size. Setting --width or --height, or passing --fixed, keeps
the configured size instead.

Keys: space new dungeon, tab statistics, f fullscreen, m pause music,
esc closes the statistics or quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindowCommand(cmd)
		},
	}
	c.bindWindowFlags(cmd)
	return cmd
}

func (c *CLI) runWindowCommand(cmd *cobra.Command) error {
	if c.runWindow == nil {
		return ErrNoWindow
	}

	messages := systems.GetMessageLog()
	logger := newLogger(io.MultiWriter(c.out, messages), c.Logger.GetLevel())

	cfg, g, err := c.setup(cmd, logger)
	if err != nil {
		return err
	}

	fixed := c.window.fixed || cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
	return c.runWindow(WindowOptions{
		Generator:  g,
		Config:     cfg,
		Messages:   messages,
		Logger:     logger,
		Fullscreen: c.window.fullscreen,
		MusicPath:  c.window.music,
		FitWindow:  !fixed,
	})
}

// tuiCommand creates the tui command, an interactive terminal viewer.
func (c *CLI) tuiCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show dungeons in the terminal",
		Long: `Show dungeons in the terminal.

The grid follows the terminal size. Keys: space or r new dungeon, s new seed,
q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "draw with # and . instead of colors")
	return cmd
}

func (c *CLI) runTUI(cmd *cobra.Command, plain bool) error {
	// The screen belongs to bubbletea, so log lines only go to the footer
	messages := systems.GetMessageLog()
	logger := newLogger(messages, c.Logger.GetLevel())

	cfg, g, err := c.setup(cmd, logger)
	if err != nil {
		return err
	}

	m := systems.NewTerminalModel(g, cfg, messages, plain)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal viewer: %w", err)
	}
	return nil
}

// printCommand creates the print command that writes one dungeon to stdout.
func (c *CLI) printCommand() *cobra.Command {
	var plain, stats bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Generate one dungeon and print it",
		Long: `Generate one dungeon and print it.

Floor tiles are painted in their region's color. With --plain walls print as #
and floor as . so the output can be diffed or piped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPrint(cmd, plain, stats)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print # and . instead of colors")
	cmd.Flags().BoolVar(&stats, "stats", false, "print generation statistics after the map")
	return cmd
}

func (c *CLI) runPrint(cmd *cobra.Command, plain, stats bool) error {
	cfg, g, err := c.setup(cmd, c.Logger)
	if err != nil {
		return err
	}

	d := g.Generate(cfg)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, systems.RenderText(d.Map, systems.NewPalette(d.Seed), plain))
	if stats {
		fmt.Fprintln(out, systems.RenderStats(d))
	}
	return nil
}
