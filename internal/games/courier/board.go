// Package courier implements the Courier game: a lane-crossing delivery
// arcade game on a fixed 5x6 grid. The courier dodges truck traffic to pick
// up a parcel and carry it to the depot on the top row, while a heart pickup
// periodically appears and restores a life.
package courier

// Board dimensions and row roles. The grid is fixed: the depot sits on the
// top row, trucks cross rows 1-3, a rock blocks one cell of row 4, and the
// courier starts on the bottom row.
const (
	BoardCols = 5
	BoardRows = 6

	RowDepot  = 0 // Delivery target row
	LaneFirst = 1 // First truck lane
	LaneLast  = 3 // Last truck lane
	RowRock   = 4 // Static obstacle row
	RowHome   = 5 // Courier start/respawn row

	HomeCol = 2 // Fixed respawn column on the home row
)

// laneCount is the number of truck lanes.
const laneCount = LaneLast - LaneFirst + 1

// Sprite-sheet contract for graphical front ends: a cell maps to pixel
// coordinates as (col*SpriteCellW, row*SpriteCellH - SpriteYOffset).
const (
	SpriteCellW   = 101
	SpriteCellH   = 80
	SpriteYOffset = 25
)

// Cell is a discrete board coordinate.
type Cell struct {
	Col, Row int
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.Col >= 0 && c.Col < BoardCols && c.Row >= 0 && c.Row < BoardRows
}

// SpritePixel returns the top-left pixel position of the sprite drawn for
// this cell on a graphical front end.
func (c Cell) SpritePixel() (x, y int) {
	return c.Col * SpriteCellW, c.Row*SpriteCellH - SpriteYOffset
}
