package generation

import (
	"dungeon-carver/components"
)

// IsConnected checks that every floor tile can reach every other floor tile
// through 4-connected floor tiles. An all-wall map counts as connected.
func IsConnected(m *components.DungeonMap) bool {
	total := m.FloorCount()
	if total == 0 {
		return true
	}

	var start components.Point
	found := false
	for y := 0; y < m.Height && !found; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsFloor(x, y) {
				start = components.Point{X: x, Y: y}
				found = true
				break
			}
		}
	}

	return floodFillCount(m, start) == total
}

// floodFillCount counts floor tiles reachable from start
func floodFillCount(m *components.DungeonMap, start components.Point) int {
	visited := make([][]bool, m.Height)
	for y := range visited {
		visited[y] = make([]bool, m.Width)
	}

	count := 0
	stack := []components.Point{start}
	visited[start.Y][start.X] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		for _, d := range components.Directions {
			n := p.Add(d, 1)
			if m.IsFloor(n.X, n.Y) && !visited[n.Y][n.X] {
				visited[n.Y][n.X] = true
				stack = append(stack, n)
			}
		}
	}
	return count
}

// DeadEnds lists every interior floor tile with exactly one floor neighbor
func DeadEnds(m *components.DungeonMap) []components.Point {
	var deadEnds []components.Point
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if m.IsFloor(x, y) && m.FloorNeighbors(x, y) == 1 {
				deadEnds = append(deadEnds, components.Point{X: x, Y: y})
			}
		}
	}
	return deadEnds
}

// BorderIsWall checks that the outermost rows and columns are solid
func BorderIsWall(m *components.DungeonMap) bool {
	for x := 0; x < m.Width; x++ {
		if m.IsFloor(x, 0) || m.IsFloor(x, m.Height-1) {
			return false
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.IsFloor(0, y) || m.IsFloor(m.Width-1, y) {
			return false
		}
	}
	return true
}

// OddCellsCarved checks that every odd-coordinate interior tile is floor,
// which holds after the maze stage and before pruning
func OddCellsCarved(m *components.DungeonMap) bool {
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.IsWall(x, y) {
				return false
			}
		}
	}
	return true
}
