package components

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Wall is the tile value for solid rock. Any other value is a region id.
const Wall uint16 = 0

// DungeonMap stores a generated dungeon as region ids, indexed Tiles[y][x]
type DungeonMap struct {
	Width  int
	Height int
	Tiles  [][]uint16
}

// NewDungeonMap creates a new all-wall map with the given dimensions
func NewDungeonMap(width, height int) *DungeonMap {
	width = max(width, 0)
	height = max(height, 0)

	m := &DungeonMap{
		Width:  width,
		Height: height,
		Tiles:  make([][]uint16, height),
	}

	// One backing array keeps rows contiguous in memory
	cells := make([]uint16, width*height)
	for y := 0; y < height; y++ {
		m.Tiles[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}

	return m
}

// InBounds reports whether (x, y) lies inside the map
func (m *DungeonMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Get returns the region id at (x, y); out-of-bounds reads as wall
func (m *DungeonMap) Get(x, y int) uint16 {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Tiles[y][x]
}

// Set writes a region id. Writing outside the map is a programming error.
func (m *DungeonMap) Set(x, y int, id uint16) {
	if !m.InBounds(x, y) {
		panic("components: DungeonMap.Set out of bounds")
	}
	m.Tiles[y][x] = id
}

// IsFloor checks if the tile at (x, y) belongs to a region
func (m *DungeonMap) IsFloor(x, y int) bool {
	return m.Get(x, y) != Wall
}

// IsWall checks if the tile at (x, y) is solid
func (m *DungeonMap) IsWall(x, y int) bool {
	return m.Get(x, y) == Wall
}

// FloorNeighbors counts the 4-connected floor tiles around (x, y)
func (m *DungeonMap) FloorNeighbors(x, y int) int {
	exits := 0
	for _, d := range Directions {
		if m.IsFloor(x+d.X, y+d.Y) {
			exits++
		}
	}
	return exits
}

// Clear resets every tile to wall
func (m *DungeonMap) Clear() {
	for y := range m.Tiles {
		clear(m.Tiles[y])
	}
}

// Clone returns a deep copy of the map
func (m *DungeonMap) Clone() *DungeonMap {
	c := NewDungeonMap(m.Width, m.Height)
	for y := range m.Tiles {
		copy(c.Tiles[y], m.Tiles[y])
	}
	return c
}

// Equal reports whether both maps have the same size and tiles
func (m *DungeonMap) Equal(other *DungeonMap) bool {
	if other == nil || m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for y := range m.Tiles {
		if !slices.Equal(m.Tiles[y], other.Tiles[y]) {
			return false
		}
	}
	return true
}

// FloorCount returns the number of non-wall tiles
func (m *DungeonMap) FloorCount() int {
	n := 0
	for y := range m.Tiles {
		for _, id := range m.Tiles[y] {
			if id != Wall {
				n++
			}
		}
	}
	return n
}

// Regions returns the distinct region ids present on the map, ascending
func (m *DungeonMap) Regions() []uint16 {
	seen := mapset.New[uint16]()
	for y := range m.Tiles {
		for _, id := range m.Tiles[y] {
			if id != Wall {
				seen.Put(id)
			}
		}
	}

	ids := make([]uint16, 0, seen.Size())
	seen.Each(func(id uint16) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}
