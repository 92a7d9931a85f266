package generation

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"dungeon-carver/components"
)

func newScriptedGenerator(values ...int) (*DungeonGenerator, *scriptedRandom) {
	r := &scriptedRandom{values: values}
	return NewDungeonGenerator(WithRandom(r), WithLogger(log.New(io.Discard))), r
}

func TestPlaceRoomsScripted(t *testing.T) {
	// Per attempt: width step, height step, x slot, y slot
	g, _ := newScriptedGenerator(
		0, 0, 0, 0, // 3x3 at (1,1)
		0, 0, 1, 0, // 3x3 at (3,1): overlaps the first
		0, 0, 2, 2, // 3x3 at (5,5)
	)
	m := components.NewDungeonMap(10, 10)

	rooms, next := g.PlaceRooms(m, 3, 3)

	want := []components.Room{
		{X: 1, Y: 1, Width: 3, Height: 3},
		{X: 5, Y: 5, Width: 3, Height: 3},
	}
	if !slices.Equal(rooms, want) {
		t.Fatalf("rooms = %+v, want %+v", rooms, want)
	}
	if next != 3 {
		t.Errorf("next id = %d, want 3", next)
	}
	if m.Get(1, 1) != 1 || m.Get(3, 3) != 1 {
		t.Error("first room should be stamped with id 1")
	}
	if m.Get(5, 5) != 2 || m.Get(7, 7) != 2 {
		t.Error("second room should be stamped with id 2")
	}
	if m.Get(4, 4) != components.Wall || m.Get(8, 8) != components.Wall {
		t.Error("tiles outside rooms should stay wall")
	}
}

func TestPlaceRoomsShape(t *testing.T) {
	g := newTestGenerator(21)
	m := components.NewDungeonMap(64, 36)

	rooms, next := g.PlaceRooms(m, 11, 600)
	if len(rooms) == 0 {
		t.Fatal("expected rooms on a 64x36 map")
	}
	if int(next) != len(rooms)+1 {
		t.Errorf("next id = %d, want %d", next, len(rooms)+1)
	}

	for i, r := range rooms {
		if r.X%2 != 1 || r.Y%2 != 1 {
			t.Errorf("room %+v origin is not odd", r)
		}
		if r.Width%2 != 1 || r.Height%2 != 1 || r.Width < 3 || r.Height < 3 || r.Width > 11 || r.Height > 11 {
			t.Errorf("room %+v size outside odd 3..11", r)
		}
		if r.X < 1 || r.Y < 1 || r.X+r.Width > m.Width-1 || r.Y+r.Height > m.Height-1 {
			t.Errorf("room %+v touches the border", r)
		}
		for _, other := range rooms[i+1:] {
			if r.Overlaps(other) {
				t.Errorf("rooms %+v and %+v overlap", r, other)
			}
		}
		if got := m.Get(r.X, r.Y); got != uint16(i+1) {
			t.Errorf("room %d stamped with id %d", i+1, got)
		}
	}
	if !BorderIsWall(m) {
		t.Error("rooms must not touch the border")
	}
}

func TestPlaceRoomsNoRooms(t *testing.T) {
	tests := []struct {
		name        string
		w, h        int
		maxRoomSize int
		attempts    int
	}{
		{"no attempts", 64, 36, 11, 0},
		{"room size below minimum", 64, 36, 2, 100},
		{"map too small", 4, 4, 11, 100},
		{"empty map", 0, 0, 11, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := components.NewDungeonMap(tt.w, tt.h)
			rooms, next := newTestGenerator(1).PlaceRooms(m, tt.maxRoomSize, tt.attempts)
			if len(rooms) != 0 || next != 1 {
				t.Errorf("got %d rooms, next %d; want none, 1", len(rooms), next)
			}
			if m.FloorCount() != 0 {
				t.Error("no tiles should be carved")
			}
		})
	}
}

func TestPlaceRoomsEvenMaxSize(t *testing.T) {
	m := components.NewDungeonMap(40, 40)
	rooms, _ := newTestGenerator(8).PlaceRooms(m, 4, 200)
	for _, r := range rooms {
		if r.Width != 3 || r.Height != 3 {
			t.Errorf("max size 4 normalizes to 3, got %dx%d", r.Width, r.Height)
		}
	}
}

func TestCarveMazesFillsOddCells(t *testing.T) {
	m := components.NewDungeonMap(8, 6)
	g := newTestGenerator(4)

	next := g.CarveMazes(m, 1, 0)
	if next != 2 {
		t.Fatalf("next id = %d, want 2 (one maze)", next)
	}
	if !OddCellsCarved(m) {
		t.Error("every odd cell should be carved")
	}
	if !BorderIsWall(m) {
		t.Error("maze must not touch the border")
	}
	if !IsConnected(m) {
		t.Error("a single maze is connected")
	}
	// 6 odd cells joined as a tree: 6 cells + 5 passages
	if got := m.FloorCount(); got != 11 {
		t.Errorf("floor = %d, want 11", got)
	}
	if got := m.Regions(); !slices.Equal(got, []uint16{1}) {
		t.Errorf("regions = %v, want [1]", got)
	}
}

func TestCarveMazesAroundRooms(t *testing.T) {
	for _, winding := range []int{0, 50, 100} {
		m := components.NewDungeonMap(40, 24)
		g := newTestGenerator(int64(winding) + 1)

		rooms, nextID := g.PlaceRooms(m, 7, 100)
		roomTiles := m.Clone()
		last := g.CarveMazes(m, nextID, winding)

		if last <= nextID {
			t.Errorf("winding %d: no maze carved", winding)
		}
		if !OddCellsCarved(m) {
			t.Errorf("winding %d: odd cells left uncarved", winding)
		}
		if !BorderIsWall(m) {
			t.Errorf("winding %d: border carved", winding)
		}
		for _, r := range rooms {
			for y := r.Y; y < r.Y+r.Height; y++ {
				for x := r.X; x < r.X+r.Width; x++ {
					if m.Get(x, y) != roomTiles.Get(x, y) {
						t.Fatalf("winding %d: maze overwrote room tile (%d,%d)", winding, x, y)
					}
				}
			}
		}
		// Mazes never carve next to a room, so their ids never touch room ids directly
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				id := m.Get(x, y)
				if id < nextID {
					continue
				}
				for _, d := range components.Directions {
					if n := m.Get(x+d.X, y+d.Y); n != components.Wall && n != id {
						t.Fatalf("winding %d: maze %d touches region %d at (%d,%d)", winding, id, n, x, y)
					}
				}
			}
		}
	}
}

func TestCarveMazesStraightCorridor(t *testing.T) {
	m := components.NewDungeonMap(12, 3)
	newTestGenerator(1).CarveMazes(m, 1, 0)
	for x := 1; x <= 9; x++ {
		if m.Get(x, 1) != 1 {
			t.Errorf("tile (%d,1) = %d, want 1", x, m.Get(x, 1))
		}
	}
	if m.Get(10, 1) != components.Wall {
		t.Error("corridor must stop before the border")
	}
}

func TestFindConnectors(t *testing.T) {
	m := mapFromRows(
		".......",
		".1.2.3.",
		".1...3.",
		".1.4.3.",
		".......",
	)

	got := FindConnectors(m)
	want := []Connector{
		{X: 2, Y: 1, Regions: [2]uint16{1, 2}},
		{X: 4, Y: 1, Regions: [2]uint16{2, 3}},
		{X: 3, Y: 2, Regions: [2]uint16{2, 4}},
		{X: 2, Y: 3, Regions: [2]uint16{1, 4}},
		{X: 4, Y: 3, Regions: [2]uint16{4, 3}},
	}
	if !slices.Equal(got, want) {
		t.Errorf("FindConnectors() = %+v, want %+v", got, want)
	}
}

func TestConnectorPredicate(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"horizontal pair", []string{"...", "1.2", "..."}, true},
		{"vertical pair", []string{".1.", "...", ".2."}, true},
		{"same region", []string{"...", "1.1", "..."}, false},
		{"corner only", []string{".1.", "..2", "..."}, false},
		{"single side", []string{"...", "1..", "..."}, false},
		{"floor tile", []string{"...", "121", "..."}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := connectorRegions(mapFromRows(tt.rows...), 1, 1)
			if ok != tt.want {
				t.Errorf("connector = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestConnectorPredicateVerticalWins(t *testing.T) {
	m := mapFromRows(
		".3.",
		"1.2",
		".4.",
	)
	regions, ok := connectorRegions(m, 1, 1)
	if !ok || regions != [2]uint16{3, 4} {
		t.Errorf("regions = %v, %v; want [3 4], true", regions, ok)
	}
}

func TestConnectRegionsChain(t *testing.T) {
	for _, sel := range []ConnectorSelection{ConnectorRandom, ConnectorFirst} {
		t.Run(sel.String(), func(t *testing.T) {
			m := mapFromRows(
				".......",
				".1.2.3.",
				".......",
			)
			g, _ := newScriptedGenerator(0) // main set starts at region 1
			g.selection = sel

			stats := g.ConnectRegions(m, 3, 0)

			if stats.Connectors != 2 || stats.Opened != 2 || stats.Loops != 0 {
				t.Errorf("stats = %+v, want 2 connectors, 2 opened, 0 loops", stats)
			}
			want := []uint16{0, 1, 2, 2, 3, 3, 0}
			if !slices.Equal(m.Tiles[1], want) {
				t.Errorf("row = %v, want %v", m.Tiles[1], want)
			}
			if !IsConnected(m) {
				t.Error("regions should be connected")
			}
		})
	}
}

func TestConnectRegionsSelection(t *testing.T) {
	rows := []string{
		".....",
		".1.2.",
		".1.2.",
		".....",
	}

	tests := []struct {
		name     string
		sel      ConnectorSelection
		draws    []int // start region, then connector pick when random
		opened   components.Point
		rejected components.Point
	}{
		{
			name:     "random takes the drawn connector",
			sel:      ConnectorRandom,
			draws:    []int{0, 1},
			opened:   components.Point{X: 2, Y: 2},
			rejected: components.Point{X: 2, Y: 1},
		},
		{
			name:     "first takes the scan-order connector",
			sel:      ConnectorFirst,
			draws:    []int{0, 1},
			opened:   components.Point{X: 2, Y: 1},
			rejected: components.Point{X: 2, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mapFromRows(rows...)
			g, _ := newScriptedGenerator(tt.draws...)
			g.selection = tt.sel

			stats := g.ConnectRegions(m, 2, 0)

			if stats.Opened != 1 || stats.Loops != 0 {
				t.Errorf("stats = %+v, want 1 opened, 0 loops", stats)
			}
			if got := m.Get(tt.opened.X, tt.opened.Y); got != 2 {
				t.Errorf("connector %v = %d, want joined region 2", tt.opened, got)
			}
			if m.IsFloor(tt.rejected.X, tt.rejected.Y) {
				t.Errorf("connector %v should stay wall", tt.rejected)
			}
		})
	}
}

func TestConnectRegionsRedundant(t *testing.T) {
	rows := []string{
		".....",
		".1.2.",
		".1.2.",
		".1.2.",
		".....",
	}

	t.Run("no loops", func(t *testing.T) {
		m := mapFromRows(rows...)
		stats := newTestGenerator(1).ConnectRegions(m, 2, 0)
		if stats.Connectors != 3 || stats.Opened != 1 || stats.Loops != 0 {
			t.Errorf("stats = %+v, want 3 connectors, 1 opened, 0 loops", stats)
		}
		open := 0
		for y := 1; y <= 3; y++ {
			if m.IsFloor(2, y) {
				open++
			}
		}
		if open != 1 {
			t.Errorf("%d connectors open, want exactly 1", open)
		}
		if !IsConnected(m) {
			t.Error("regions should be connected")
		}
	})

	t.Run("every loop", func(t *testing.T) {
		m := mapFromRows(rows...)
		stats := newTestGenerator(1).ConnectRegions(m, 2, 100)
		if stats.Opened != 1 || stats.Loops != 2 {
			t.Errorf("stats = %+v, want 1 opened, 2 loops", stats)
		}
		for y := 1; y <= 3; y++ {
			if m.IsWall(2, y) {
				t.Errorf("connector (2,%d) should be open", y)
			}
		}
	})
}

func TestConnectRegionsNothingToDo(t *testing.T) {
	m := mapFromRows(
		".....",
		".111.",
		".....",
	)
	before := m.Clone()
	stats := newTestGenerator(1).ConnectRegions(m, 1, 100)
	if stats != (ConnectStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
	if !m.Equal(before) {
		t.Error("single region map should not change")
	}

	empty := components.NewDungeonMap(6, 6)
	if stats := newTestGenerator(1).ConnectRegions(empty, 0, 50); stats != (ConnectStats{}) {
		t.Errorf("empty map stats = %+v, want zero", stats)
	}
}

func TestConnectRegionsAfterMaze(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := components.NewDungeonMap(48, 30)
		g := newTestGenerator(seed)
		_, nextID := g.PlaceRooms(m, 9, 200)
		last := g.CarveMazes(m, nextID, 40)

		if len(m.Regions()) > 1 && IsConnected(m) {
			t.Fatalf("seed %d: regions should start out disconnected", seed)
		}
		g.ConnectRegions(m, int(last)-1, 10)
		if !IsConnected(m) {
			t.Errorf("seed %d: regions not connected", seed)
		}
		if !BorderIsWall(m) {
			t.Errorf("seed %d: connector stage carved the border", seed)
		}
	}
}

func TestRemoveDeadEnds(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		wantRemoved int
		wantFloor   int
	}{
		{
			name:        "corridor collapses to one tile",
			rows:        []string{".......", ".11111.", "......."},
			wantRemoved: 4,
			wantFloor:   1,
		},
		{
			name:        "ring is kept",
			rows:        []string{".....", ".111.", ".1.1.", ".111.", "....."},
			wantRemoved: 0,
			wantFloor:   8,
		},
		{
			name:        "spur off a ring is removed",
			rows:        []string{".......", ".111...", ".1.122.", ".111...", "......."},
			wantRemoved: 2,
			wantFloor:   8,
		},
		{
			name:        "isolated tile stays",
			rows:        []string{"...", ".1.", "..."},
			wantRemoved: 0,
			wantFloor:   1,
		},
	}

	for _, tt := range tests {
		for _, policy := range []PrunePolicy{PruneSweep, PruneFirst, PruneRandom} {
			t.Run(tt.name+"/"+policy.String(), func(t *testing.T) {
				m := mapFromRows(tt.rows...)
				g := newTestGenerator(3, WithPrunePolicy(policy))

				if got := g.RemoveDeadEnds(m); got != tt.wantRemoved {
					t.Errorf("removed = %d, want %d", got, tt.wantRemoved)
				}
				if got := m.FloorCount(); got != tt.wantFloor {
					t.Errorf("floor = %d, want %d", got, tt.wantFloor)
				}
				if dead := DeadEnds(m); len(dead) != 0 {
					t.Errorf("dead ends left: %v", dead)
				}
			})
		}
	}
}

func TestRemoveDeadEndsIdempotent(t *testing.T) {
	for _, policy := range []PrunePolicy{PruneSweep, PruneFirst, PruneRandom} {
		g := newTestGenerator(17, WithPrunePolicy(policy))
		m := components.NewDungeonMap(40, 30)
		_, nextID := g.PlaceRooms(m, 9, 300)
		last := g.CarveMazes(m, nextID, 50)
		g.ConnectRegions(m, int(last)-1, 10)

		if g.RemoveDeadEnds(m) == 0 {
			t.Errorf("%s: a fresh maze always has dead ends", policy)
		}
		pruned := m.Clone()
		if got := g.RemoveDeadEnds(m); got != 0 {
			t.Errorf("%s: second pass removed %d tiles", policy, got)
		}
		if !m.Equal(pruned) {
			t.Errorf("%s: second pass changed the map", policy)
		}
		if !IsConnected(m) {
			t.Errorf("%s: pruning disconnected the map", policy)
		}
	}
}

func TestAnalysisHelpers(t *testing.T) {
	m := mapFromRows(
		".....",
		".1.2.",
		".....",
	)
	if IsConnected(m) {
		t.Error("two separate tiles are not connected")
	}
	if !IsConnected(components.NewDungeonMap(3, 3)) {
		t.Error("an all-wall map counts as connected")
	}
	if OddCellsCarved(m) != true {
		t.Error("(1,1) and (3,1) are the only odd cells and both are carved")
	}

	border := mapFromRows(
		"1..",
		"...",
		"...",
	)
	if BorderIsWall(border) {
		t.Error("corner tile is on the border")
	}
}
