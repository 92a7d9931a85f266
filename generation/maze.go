package generation

import (
	"slices"

	"dungeon-carver/components"
)

// CarveMazes fills every odd-coordinate wall cell left after room placement
// with a growing-tree maze. Each maze gets a fresh id starting at nextID.
// Returns the id following the last maze carved.
func (g *DungeonGenerator) CarveMazes(m *components.DungeonMap, nextID uint16, windingChance int) uint16 {
	id := nextID
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.IsFloor(x, y) {
				continue
			}
			g.growMaze(m, components.Point{X: x, Y: y}, id, windingChance)
			id++
		}
	}
	return id
}

// growMaze runs one backtracking carve from start. Corridors keep their last
// heading unless a winding roll says otherwise.
func (g *DungeonGenerator) growMaze(m *components.DungeonMap, start components.Point, id uint16, windingChance int) {
	lastDir := components.Directions[0]
	cells := []components.Point{start}
	m.Set(start.X, start.Y, id)

	open := make([]components.Point, 0, len(components.Directions))
	for len(cells) > 0 {
		cell := cells[len(cells)-1]

		open = open[:0]
		for _, dir := range components.Directions {
			if canCarve(m, cell, dir) {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			// Dead end for this branch, backtrack
			cells = cells[:len(cells)-1]
			continue
		}

		var dir components.Point
		if slices.Contains(open, lastDir) && !g.chance(windingChance) {
			dir = lastDir
		} else {
			dir = open[g.pick(len(open))]
		}

		step := cell.Add(dir, 1)
		next := cell.Add(dir, 2)
		m.Set(step.X, step.Y, id)
		m.Set(next.X, next.Y, id)

		cells = append(cells, next)
		lastDir = dir
	}
}

// canCarve checks that the cell two steps along dir is still rock and that
// one more cell of wall lies beyond it, so corridors never touch the border
func canCarve(m *components.DungeonMap, cell, dir components.Point) bool {
	edge := cell.Add(dir, 3)
	if !m.InBounds(edge.X, edge.Y) {
		return false
	}
	next := cell.Add(dir, 2)
	return m.IsWall(next.X, next.Y)
}
