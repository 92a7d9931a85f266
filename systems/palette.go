package systems

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// WallColor is drawn for every tile that is not part of a region
var WallColor = color.RGBA{0, 0, 0, 255}

// RegionColor derives a display color for a region from its id and the run
// seed. Each channel lands in [0.2, 1.0) of full scale so regions never
// blend into the black walls.
func RegionColor(id uint16, seed int64) color.RGBA {
	rng := rand.New(rand.NewSource(int64(id) + seed))
	channel := func() uint8 {
		return uint8((0.2 + rng.Float64()*0.8) * 255)
	}
	return color.RGBA{R: channel(), G: channel(), B: channel(), A: 255}
}

// LipglossColor converts an RGBA color to a hex lipgloss color
func LipglossColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Palette caches region colors and styles for one seed
type Palette struct {
	seed   int64
	colors map[uint16]color.RGBA
	styles map[uint16]lipgloss.Style
}

// NewPalette creates an empty palette for seed
func NewPalette(seed int64) *Palette {
	return &Palette{
		seed:   seed,
		colors: make(map[uint16]color.RGBA),
		styles: make(map[uint16]lipgloss.Style),
	}
}

// Seed returns the seed colors are derived from
func (p *Palette) Seed() int64 {
	return p.seed
}

// Color returns the color for a tile value; walls are black
func (p *Palette) Color(id uint16) color.RGBA {
	if id == 0 {
		return WallColor
	}
	c, ok := p.colors[id]
	if !ok {
		c = RegionColor(id, p.seed)
		p.colors[id] = c
	}
	return c
}

// Style returns a terminal style painting the region's background
func (p *Palette) Style(id uint16) lipgloss.Style {
	s, ok := p.styles[id]
	if !ok {
		s = lipgloss.NewStyle().Background(LipglossColor(p.Color(id)))
		p.styles[id] = s
	}
	return s
}
