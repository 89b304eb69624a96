package courier

import "math"

// Direction is a courier move intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// MoveRecord is one accepted move intent.
type MoveRecord struct {
	Tick     uint64
	Col, Row int // Target cell of the move
}

// Courier is the player avatar. Movement is two-phase: an accepted input
// fixes a target cell one step away, then the per-tick update interpolates
// the fractional position toward it and snaps on arrival. A new move is only
// accepted once Moving is false, so simultaneous key presses cannot
// double-step.
type Courier struct {
	X, Y      float64 // Fractional position
	TargetCol int
	TargetRow int
	Dir       Direction
	Moving    bool
	Speed     float64 // Cells per second, derived from level
	Lives     int
	Level     int
	Moves     []MoveRecord
}

// cell returns the courier's discrete cell when settled on one.
func (c *Courier) cell() (Cell, bool) {
	if c.X != math.Trunc(c.X) || c.Y != math.Trunc(c.Y) {
		return Cell{}, false
	}
	return Cell{Col: int(c.X), Row: int(c.Y)}, true
}

// settledRow returns the courier's row when not moving between rows.
// Horizontal motion keeps the row integral, so lane collisions still apply.
func (c *Courier) settledRow() (int, bool) {
	if c.Y != math.Trunc(c.Y) {
		return 0, false
	}
	return int(c.Y), true
}

// place snaps the courier onto a cell and clears any pending move.
func (c *Courier) place(col, row int) {
	c.X, c.Y = float64(col), float64(row)
	c.TargetCol, c.TargetRow = col, row
	c.Moving = false
	c.Dir = DirNone
}

// newCourier creates a courier on the home cell.
func (g *Game) newCourier() *Courier {
	c := &Courier{
		Lives: g.cfg.Player.Lives,
		Level: 1,
		Speed: g.cfg.Player.BaseSpeed,
	}
	c.place(HomeCol, RowHome)
	return c
}

// handleMove validates a move intent and, if accepted, starts the move.
// Rejected moves (mid-move, pending hit, off-board, into the rock) are
// silent no-ops; only moves that will actually run reach the move log.
func (g *Game) handleMove(dir Direction) bool {
	c := g.courier
	if c.Moving || dir == DirNone || g.hit {
		return false
	}

	col, row := c.TargetCol, c.TargetRow
	switch dir {
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirUp:
		row--
	case DirDown:
		row++
	}

	if !(Cell{Col: col, Row: row}).InBounds() {
		return false
	}
	if g.rock.blocks(Cell{Col: col, Row: row}) {
		return false
	}

	c.Dir = dir
	c.Moving = true
	c.TargetCol, c.TargetRow = col, row
	c.Moves = append(c.Moves, MoveRecord{Tick: g.tick, Col: col, Row: row})
	return true
}

// stepCourier advances the courier by one tick. A hit raised on the
// previous tick preempts movement; the parcel has already dropped by the
// time the courier processes it.
func (g *Game) stepCourier(dt float64) {
	c := g.courier

	if g.hit {
		g.applyHit()
	} else if c.Moving {
		step := c.Speed * dt
		switch c.Dir {
		case DirLeft:
			c.X -= step
			if c.X <= float64(c.TargetCol) {
				c.place(c.TargetCol, c.TargetRow)
			}
		case DirRight:
			c.X += step
			if c.X >= float64(c.TargetCol) {
				c.place(c.TargetCol, c.TargetRow)
			}
		case DirUp:
			c.Y -= step
			if c.Y <= float64(c.TargetRow) {
				c.place(c.TargetCol, c.TargetRow)
			}
		case DirDown:
			c.Y += step
			if c.Y >= float64(c.TargetRow) {
				c.place(c.TargetCol, c.TargetRow)
			}
		}
	}

	g.checkLevel()
}

// applyHit consumes one life, or ends the session on the last one.
func (g *Game) applyHit() {
	g.hit = false
	c := g.courier
	if c.Lives > 1 {
		c.Lives--
		c.place(randBetween(g.rng, 0, BoardCols), RowHome)
		return
	}

	// Last life: back to full lives on the home cell, session over,
	// parcel wiped for the next run.
	c.Lives = g.cfg.Player.Lives
	c.place(HomeCol, RowHome)
	g.gameOver = true
	g.resetParcel()
}

// checkLevel recomputes level and speed from the current score.
func (g *Game) checkLevel() {
	c := g.courier
	c.Level = levelForScore(g.score, g.cfg.Player.LevelBand, g.cfg.Player.MaxLevel)
	c.Speed = speedForLevel(g.cfg.Player.BaseSpeed, c.Level)
}

// levelForScore is the leveling step function: level 1 below one band,
// then one level per additional band, capped at maxLevel. It is monotonic
// and non-decreasing in score.
func levelForScore(score, band, maxLevel int) int {
	if band <= 0 || score < band {
		return 1
	}
	level := score/band + 1
	if level > maxLevel {
		level = maxLevel
	}
	return level
}

// speedForLevel grows the courier's speed by one cell/second per level.
func speedForLevel(base float64, level int) float64 {
	return base + float64(level-1)
}
