package generation

import (
	"dungeon-carver/components"
)

// RemoveDeadEnds fills floor tiles with exactly one floor neighbor back in
// with rock until none are left, and returns how many tiles were filled.
// The border is never floor, so only interior tiles are examined.
func (g *DungeonGenerator) RemoveDeadEnds(m *components.DungeonMap) int {
	switch g.prune {
	case PruneFirst:
		return g.pruneOneAtATime(m, false)
	case PruneRandom:
		return g.pruneOneAtATime(m, true)
	default:
		return pruneSweep(m)
	}
}

// pruneSweep fills dead ends in place while scanning; a fill can expose a
// neighbor already passed, so passes repeat until one fills nothing
func pruneSweep(m *components.DungeonMap) int {
	removed := 0
	for {
		filled := 0
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				if m.IsFloor(x, y) && m.FloorNeighbors(x, y) == 1 {
					m.Set(x, y, components.Wall)
					filled++
				}
			}
		}
		if filled == 0 {
			return removed
		}
		removed += filled
	}
}

// pruneOneAtATime fills a single dead end per scan, either the first one
// found or one picked at random among all found
func (g *DungeonGenerator) pruneOneAtATime(m *components.DungeonMap, random bool) int {
	removed := 0
	for {
		var deadEnds []components.Point
		if random {
			deadEnds = DeadEnds(m)
		} else if p, ok := firstDeadEnd(m); ok {
			deadEnds = []components.Point{p}
		}
		if len(deadEnds) == 0 {
			return removed
		}

		p := deadEnds[0]
		if random {
			p = deadEnds[g.pick(len(deadEnds))]
		}
		m.Set(p.X, p.Y, components.Wall)
		removed++
	}
}

func firstDeadEnd(m *components.DungeonMap) (components.Point, bool) {
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if m.IsFloor(x, y) && m.FloorNeighbors(x, y) == 1 {
				return components.Point{X: x, Y: y}, true
			}
		}
	}
	return components.Point{}, false
}
