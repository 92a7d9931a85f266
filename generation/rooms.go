package generation

import (
	"dungeon-carver/components"
	"dungeon-carver/config"
)

// PlaceRooms scatters non-overlapping odd-sized rooms at odd coordinates and
// stamps each with its own id. Every attempt spends budget whether or not a
// room lands. Returns the placed rooms and the id following the last one.
func (g *DungeonGenerator) PlaceRooms(m *components.DungeonMap, maxRoomSize, attempts int) ([]components.Room, uint16) {
	id := uint16(1)
	var rooms []components.Room

	if maxRoomSize%2 == 0 {
		maxRoomSize--
	}
	if maxRoomSize < config.MinRoomSize {
		return rooms, id
	}
	sizes := (maxRoomSize - 1) / 2 // odd sizes 3, 5, ..., maxRoomSize

	for attempt := 0; attempt < attempts; attempt++ {
		roomWidth := 2*(1+g.rng.Intn(sizes)) + 1
		roomHeight := 2*(1+g.rng.Intn(sizes)) + 1

		// Rooms sit inside the border: x >= 1 and x+width-1 <= Width-2
		slackX := m.Width - 2 - roomWidth
		slackY := m.Height - 2 - roomHeight
		if slackX < 0 || slackY < 0 {
			continue
		}

		room := components.Room{
			X:      2*g.rng.Intn(slackX/2+1) + 1,
			Y:      2*g.rng.Intn(slackY/2+1) + 1,
			Width:  roomWidth,
			Height: roomHeight,
		}

		overlaps := false
		for _, other := range rooms {
			if room.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				m.Set(x, y, id)
			}
		}
		id++
		rooms = append(rooms, room)
	}

	return rooms, id
}
