package generation

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"dungeon-carver/components"
)

// Connector is a wall tile separating two different regions along one axis
type Connector struct {
	X, Y    int
	Regions [2]uint16
}

// Touches reports whether id is on either side of the connector
func (c Connector) Touches(id uint16) bool {
	return c.Regions[0] == id || c.Regions[1] == id
}

// Other returns the region on the opposite side from id
func (c Connector) Other(id uint16) uint16 {
	if c.Regions[0] == id {
		return c.Regions[1]
	}
	return c.Regions[0]
}

// ConnectStats counts what the connector stage did
type ConnectStats struct {
	Connectors int // connectors found by the initial scan
	Opened     int // connectors carved to join a region to the main set
	Loops      int // redundant connectors carved anyway
}

// ConnectRegions merges every region into one connected whole. Starting from
// a random region, it repeatedly opens a random connector touching the main
// set, then discards connectors made redundant by that join, opening each
// with connectivityChance percent probability to leave a loop.
//
// Cells keep their ids; an opened connector takes the id of the region it
// brings in.
func (g *DungeonGenerator) ConnectRegions(m *components.DungeonMap, regionCount, connectivityChance int) ConnectStats {
	connectors := FindConnectors(m)
	stats := ConnectStats{Connectors: len(connectors)}
	if regionCount <= 0 {
		return stats
	}

	main := mapset.New[uint16]()
	main.Put(uint16(1 + g.pick(regionCount)))

	touching := make([]int, 0, len(connectors))
	for len(connectors) > 0 {
		touching = touching[:0]
		for i, c := range connectors {
			if main.Has(c.Regions[0]) || main.Has(c.Regions[1]) {
				touching = append(touching, i)
			}
		}
		if len(touching) == 0 {
			g.logger.Warn("regions unreachable from the main set", "connectors", len(connectors))
			break
		}

		index := touching[0]
		if g.selection == ConnectorRandom {
			index = touching[g.pick(len(touching))]
		}

		current := connectors[index]
		joined := current.Regions[0]
		if main.Has(joined) {
			joined = current.Regions[1]
		}

		m.Set(current.X, current.Y, joined)
		stats.Opened++
		connectors = slices.Delete(connectors, index, index+1)

		// Anything else between the joined region and main is now redundant
		for i := len(connectors) - 1; i >= 0; i-- {
			c := connectors[i]
			if !c.Touches(joined) || !main.Has(c.Other(joined)) {
				continue
			}
			if g.chance(connectivityChance) {
				m.Set(c.X, c.Y, joined)
				stats.Loops++
			}
			connectors = slices.Delete(connectors, i, i+1)
		}

		main.Put(joined)
	}

	return stats
}

// FindConnectors scans the map for every connector, row by row
func FindConnectors(m *components.DungeonMap) []Connector {
	var connectors []Connector
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if regions, ok := connectorRegions(m, x, y); ok {
				connectors = append(connectors, Connector{X: x, Y: y, Regions: regions})
			}
		}
	}
	return connectors
}

// connectorRegions returns the two regions a wall tile separates. Only
// opposite neighbors on one axis count; when both axes qualify the
// vertical pair wins.
func connectorRegions(m *components.DungeonMap, x, y int) ([2]uint16, bool) {
	var regions [2]uint16
	if m.IsFloor(x, y) {
		return regions, false
	}

	found := false
	if left, right := m.Get(x-1, y), m.Get(x+1, y); left != components.Wall && right != components.Wall && left != right {
		regions = [2]uint16{left, right}
		found = true
	}
	if up, down := m.Get(x, y-1), m.Get(x, y+1); up != components.Wall && down != components.Wall && up != down {
		regions = [2]uint16{up, down}
		found = true
	}
	return regions, found
}
