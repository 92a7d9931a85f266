package config

// Screen layout configuration
const (
	// CellSize is the size of one dungeon tile in pixels
	CellSize = 30

	// CellGap leaves a dark seam between tiles when non-zero
	CellGap = 0

	// Default window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// TerminalCellWidth is how many terminal columns one tile takes
	TerminalCellWidth = 2

	// TerminalFooterRows are reserved under the map for the status line
	TerminalFooterRows = 2
)

// GetWindowSize returns the initial window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}

// GridSizeForWindow returns the even grid dimensions that fill a window of
// the given pixel size
func GridSizeForWindow(width, height int) (int, int) {
	return evenFloor(width / CellSize), evenFloor(height / CellSize)
}

// GridSizeForTerminal returns the even grid dimensions that fit a terminal
// of cols x rows characters, leaving room for the footer
func GridSizeForTerminal(cols, rows int) (int, int) {
	return evenFloor(cols / TerminalCellWidth), evenFloor(rows - TerminalFooterRows)
}
