package generation

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"dungeon-carver/components"
	"dungeon-carver/config"
)

// ConnectorSelection decides which connector joins the next region to the main set
type ConnectorSelection int

const (
	// ConnectorRandom picks uniformly among connectors touching the main set
	ConnectorRandom ConnectorSelection = iota
	// ConnectorFirst picks the first touching connector in scan order.
	// It biases joins toward the top-left of the map.
	ConnectorFirst
)

// PrunePolicy decides the order dead ends are filled in
type PrunePolicy int

const (
	// PruneSweep fills every dead end met during a pass, repeating passes
	PruneSweep PrunePolicy = iota
	// PruneFirst fills only the first dead end found per scan
	PruneFirst
	// PruneRandom fills one dead end chosen at random per scan
	PruneRandom
)

var (
	selectionNames = map[ConnectorSelection]string{ConnectorRandom: "random", ConnectorFirst: "first"}
	pruneNames     = map[PrunePolicy]string{PruneSweep: "sweep", PruneFirst: "first", PruneRandom: "random"}
)

func (s ConnectorSelection) String() string { return selectionNames[s] }
func (p PrunePolicy) String() string        { return pruneNames[p] }

// ParseConnectorSelection converts a flag value into a ConnectorSelection
func ParseConnectorSelection(s string) (ConnectorSelection, error) {
	for k, v := range selectionNames {
		if v == s {
			return k, nil
		}
	}
	return ConnectorRandom, fmt.Errorf("unknown connector selection %q (want random or first)", s)
}

// ParsePrunePolicy converts a flag value into a PrunePolicy
func ParsePrunePolicy(s string) (PrunePolicy, error) {
	for k, v := range pruneNames {
		if v == s {
			return k, nil
		}
	}
	return PruneSweep, fmt.Errorf("unknown prune policy %q (want sweep, first or random)", s)
}

// Stats summarizes one generation run
type Stats struct {
	Rooms            int
	MazeBlobs        int
	Regions          int // distinct ids left on the final map
	Connectors       int
	ConnectorsOpened int
	LoopsOpened      int
	DeadEndsRemoved  int
	FloorCells       int
	Duration         time.Duration
}

// Dungeon is the output of one generation run
type Dungeon struct {
	Map   *components.DungeonMap
	Rooms []components.Room
	Seed  int64
	Stats Stats
}

// DungeonGenerator handles procedural generation of dungeon layouts.
// It is not safe for concurrent use: it owns its random source.
type DungeonGenerator struct {
	rng       Random
	seed      int64 // seed of the next run
	injected  bool  // rng came from WithRandom and is never reseeded
	logger    *log.Logger
	selection ConnectorSelection
	prune     PrunePolicy
}

// Option configures a DungeonGenerator
type Option func(*DungeonGenerator)

// WithSeed makes the generator reproducible
func WithSeed(seed int64) Option {
	return func(g *DungeonGenerator) { g.SetSeed(seed) }
}

// WithRandom injects a custom random source. Runs draw from it directly and
// the reported seed is left as is.
func WithRandom(r Random) Option {
	return func(g *DungeonGenerator) {
		g.rng = r
		g.injected = true
	}
}

// WithLogger sets the logger stage progress is reported to
func WithLogger(l *log.Logger) Option {
	return func(g *DungeonGenerator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithConnectorSelection overrides the connector selection policy
func WithConnectorSelection(s ConnectorSelection) Option {
	return func(g *DungeonGenerator) { g.selection = s }
}

// WithPrunePolicy overrides the dead-end pruning policy
func WithPrunePolicy(p PrunePolicy) Option {
	return func(g *DungeonGenerator) { g.prune = p }
}

// NewDungeonGenerator creates a new dungeon generator seeded from the clock
// unless WithSeed or WithRandom is given
func NewDungeonGenerator(opts ...Option) *DungeonGenerator {
	g := &DungeonGenerator{logger: log.Default()}
	g.SetSeed(clockSeed())
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = newSeededRandom(seed)
	g.injected = false
}

// Seed returns the seed the next Generate call will run with
func (g *DungeonGenerator) Seed() int64 {
	return g.seed
}

// Generate runs the four stages (rooms, mazes, connectors, dead ends) on a
// fresh map. Degenerate settings give an all-wall or minimal map, never a panic.
//
// Each run is seeded on its own and the returned Dungeon carries that seed,
// so WithSeed(d.Seed) rebuilds d exactly. The seed for the following run is
// drawn from the finished run's source.
func (g *DungeonGenerator) Generate(cfg config.GeneratorConfig) *Dungeon {
	start := time.Now()
	runSeed := g.seed
	if !g.injected {
		g.rng = newSeededRandom(runSeed)
	}
	m := components.NewDungeonMap(cfg.Width, cfg.Height)

	rooms, nextID := g.PlaceRooms(m, cfg.MaxRoomSize, cfg.RoomAttempts)
	g.logger.Debug("placed rooms", "rooms", len(rooms), "attempts", cfg.RoomAttempts)

	lastID := g.CarveMazes(m, nextID, cfg.WindingChance)
	blobs := int(lastID - nextID)
	g.logger.Debug("carved mazes", "blobs", blobs)

	regionCount := int(lastID) - 1
	cs := g.ConnectRegions(m, regionCount, cfg.ConnectivityChance)
	g.logger.Debug("connected regions",
		"regions", regionCount,
		"connectors", cs.Connectors,
		"opened", cs.Opened,
		"loops", cs.Loops)

	removed := g.RemoveDeadEnds(m)
	g.logger.Debug("removed dead ends", "cells", removed, "policy", g.prune)

	if !g.injected {
		g.seed = nextSeed(g.rng)
	}

	d := &Dungeon{
		Map:   m,
		Rooms: rooms,
		Seed:  runSeed,
		Stats: Stats{
			Rooms:            len(rooms),
			MazeBlobs:        blobs,
			Regions:          len(m.Regions()),
			Connectors:       cs.Connectors,
			ConnectorsOpened: cs.Opened,
			LoopsOpened:      cs.Loops,
			DeadEndsRemoved:  removed,
			FloorCells:       m.FloorCount(),
			Duration:         time.Since(start),
		},
	}

	g.logger.Info("generated dungeon",
		"size", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"rooms", d.Stats.Rooms,
		"floor", d.Stats.FloorCells,
		"seed", d.Seed,
		"duration", d.Stats.Duration.Round(time.Microsecond))
	return d
}
