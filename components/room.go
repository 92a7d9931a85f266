package components

// Point is a grid coordinate or a unit direction
type Point struct {
	X, Y int
}

// Add returns p shifted by d scaled by n
func (p Point) Add(d Point, n int) Point {
	return Point{X: p.X + d.X*n, Y: p.Y + d.Y*n}
}

// Directions lists the four axis directions: right, down, left, up
var Directions = [4]Point{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// Room represents a rectangular room within the dungeon
type Room struct {
	X, Y, Width, Height int
}

// Overlaps reports whether two rooms overlap. Extents are inclusive of the
// far edge, so rooms that touch count as overlapping and always end up with
// at least one wall tile between them.
func (r Room) Overlaps(other Room) bool {
	if r.X > other.X+other.Width || r.X+r.Width < other.X {
		return false
	}
	if r.Y > other.Y+other.Height || r.Y+r.Height < other.Y {
		return false
	}
	return true
}

// Contains checks if (x, y) is one of the room's tiles
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the middle tile of the room
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
