// Package cli implements the dungeon-carver command-line interface.
//
// Every command shares the generator flags registered on the root command.
// Settings resolve as defaults, then the TOML file named by --config, then
// any flag set explicitly on the command line.
//
// # Commands
//
//   - window: open the desktop viewer (the default when no command is given)
//   - tui: show dungeons in the terminal, sized to the terminal
//   - print: generate one dungeon and write it to stdout
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dungeon-carver/config"
	"dungeon-carver/generation"
	"dungeon-carver/systems"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrNoWindow is returned by the window command when the binary was built
// without a window runner
var ErrNoWindow = errors.New("window viewer not available")

// WindowOptions is everything the desktop viewer needs to start
type WindowOptions struct {
	Generator  *generation.DungeonGenerator
	Config     config.GeneratorConfig
	Messages   *systems.MessageLog
	Logger     *log.Logger
	Fullscreen bool
	// MusicPath names an mp3 or ogg track to loop, if any
	MusicPath string
	// FitWindow sizes the grid from the window instead of Config
	FitWindow bool
}

// WindowRunner opens the desktop viewer and blocks until it closes
type WindowRunner func(WindowOptions) error

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out       io.Writer
	runWindow WindowRunner
	flags     generatorFlags
	window    windowFlags
}

// generatorFlags are the values bound to the persistent flags
type generatorFlags struct {
	configPath string
	cfg        config.GeneratorConfig
	selection  string
	prune      string
	verbose    bool
}

// New creates a new CLI instance logging to w. runWindow may be nil for
// builds without a display.
func New(w io.Writer, level log.Level, runWindow WindowRunner) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		out:       w,
		runWindow: runWindow,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it behaves like window.
func (c *CLI) RootCommand() *cobra.Command {
	window := c.windowCommand()

	root := &cobra.Command{
		Use:   "dungeon-carver",
		Short: "Dungeon-carver generates connected room and maze dungeons",
		Long: `Dungeon-carver builds dungeons in four stages: it scatters rooms, fills
the gaps with winding mazes, joins every region through connectors and finally
fills in dead ends until only loops and rooms remain.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
		RunE: window.RunE,
	}
	c.bindWindowFlags(root)

	c.registerGeneratorFlags(root)

	root.AddCommand(window)
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.printCommand())

	return root
}

func (c *CLI) registerGeneratorFlags(root *cobra.Command) {
	defaults := config.DefaultGeneratorConfig()
	flags := root.PersistentFlags()

	flags.StringVarP(&c.flags.configPath, "config", "c", "", "TOML file with generator settings")
	flags.Int64Var(&c.flags.cfg.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&c.flags.cfg.Width, "width", defaults.Width, "grid width in tiles, rounded down to even")
	flags.IntVar(&c.flags.cfg.Height, "height", defaults.Height, "grid height in tiles, rounded down to even")
	flags.IntVar(&c.flags.cfg.MaxRoomSize, "max-room-size", defaults.MaxRoomSize, "largest room edge, made odd")
	flags.IntVar(&c.flags.cfg.RoomAttempts, "room-attempts", defaults.RoomAttempts, "room placement attempts")
	flags.IntVar(&c.flags.cfg.WindingChance, "winding", defaults.WindingChance, "chance (0-100) a corridor turns")
	flags.IntVar(&c.flags.cfg.ConnectivityChance, "connectivity", defaults.ConnectivityChance, "chance (0-100) a redundant connector opens a loop")
	flags.StringVar(&c.flags.selection, "connector-selection", generation.ConnectorRandom.String(), "connector choice: random, first")
	flags.StringVar(&c.flags.prune, "prune", generation.PruneSweep.String(), "dead-end pruning: sweep, first, random")
	flags.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
}

// resolveConfig layers the TOML file and explicitly set flags over the defaults
func (c *CLI) resolveConfig(cmd *cobra.Command) (config.GeneratorConfig, error) {
	cfg := config.DefaultGeneratorConfig()
	if c.flags.configPath != "" {
		loaded, err := config.LoadGeneratorConfig(c.flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	override := func(name string, dst *int, v int) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("width", &cfg.Width, c.flags.cfg.Width)
	override("height", &cfg.Height, c.flags.cfg.Height)
	override("max-room-size", &cfg.MaxRoomSize, c.flags.cfg.MaxRoomSize)
	override("room-attempts", &cfg.RoomAttempts, c.flags.cfg.RoomAttempts)
	override("winding", &cfg.WindingChance, c.flags.cfg.WindingChance)
	override("connectivity", &cfg.ConnectivityChance, c.flags.cfg.ConnectivityChance)
	if flags.Changed("seed") {
		cfg.Seed = c.flags.cfg.Seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// newGenerator builds a generator for cfg that logs to logger
func (c *CLI) newGenerator(cfg config.GeneratorConfig, logger *log.Logger) (*generation.DungeonGenerator, error) {
	selection, err := generation.ParseConnectorSelection(c.flags.selection)
	if err != nil {
		return nil, fmt.Errorf("--connector-selection: %w", err)
	}
	prune, err := generation.ParsePrunePolicy(c.flags.prune)
	if err != nil {
		return nil, fmt.Errorf("--prune: %w", err)
	}

	opts := []generation.Option{
		generation.WithLogger(logger),
		generation.WithConnectorSelection(selection),
		generation.WithPrunePolicy(prune),
	}
	if cfg.Seed != 0 {
		opts = append(opts, generation.WithSeed(cfg.Seed))
	}
	return generation.NewDungeonGenerator(opts...), nil
}

// setup resolves settings and builds the generator in one step
func (c *CLI) setup(cmd *cobra.Command, logger *log.Logger) (config.GeneratorConfig, *generation.DungeonGenerator, error) {
	cfg, err := c.resolveConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	g, err := c.newGenerator(cfg, logger)
	if err != nil {
		return cfg, nil, err
	}
	c.Logger.Debug("resolved settings",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"max_room_size", cfg.MaxRoomSize,
		"room_attempts", cfg.RoomAttempts,
		"winding", cfg.WindingChance,
		"connectivity", cfg.ConnectivityChance,
		"seed", g.Seed())
	return cfg, g, nil
}
