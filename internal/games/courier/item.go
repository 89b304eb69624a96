package courier

import "math"

// ItemKind distinguishes the deliverable parcel from the bonus heart.
type ItemKind int

const (
	ItemParcel ItemKind = iota
	ItemHeart
)

// maxParcelDamage is the damage count at which the parcel is destroyed.
const maxParcelDamage = 3

// Item is a pickup on the board. The parcel follows the courier once
// collected and accumulates truck damage; the heart shares the shape but is
// only shown during its time windows.
type Item struct {
	X, Y      float64
	Kind      ItemKind
	Visible   bool
	Collected bool
	Damage    int
}

// cell returns the item's discrete cell when resting on one.
func (it *Item) cell() (Cell, bool) {
	if it.X != math.Trunc(it.X) || it.Y != math.Trunc(it.Y) {
		return Cell{}, false
	}
	return Cell{Col: int(it.X), Row: int(it.Y)}, true
}

// moveTo places the item on a cell.
func (it *Item) moveTo(c Cell) {
	it.X, it.Y = float64(c.Col), float64(c.Row)
}

// hide parks the item off-board.
func (it *Item) hide() {
	it.X, it.Y = -1, -1
	it.Visible = false
}

// DeliveryRecord logs one completed delivery.
type DeliveryRecord struct {
	Tick     uint64
	Col, Row int
	Points   int
}

// LossRecord logs one destroyed parcel.
type LossRecord struct {
	Tick     uint64
	Col, Row int
}

// randomFieldCell picks a random cell in the truck lanes, where parcels and
// hearts appear.
func (g *Game) randomFieldCell() Cell {
	return Cell{
		Col: randBetween(g.rng, 0, BoardCols),
		Row: randBetweenInclusive(g.rng, LaneFirst, LaneLast),
	}
}

// stepParcel runs the parcel's per-tick logic: drop on hit, pickup, carry,
// delivery, destruction. It runs after the courier and trucks, so it sees
// their current-tick state.
func (g *Game) stepParcel() {
	p := g.parcel

	// A hit raised by the trucks this tick drops the parcel immediately;
	// the flag itself stays pending for the courier's next update.
	if g.hit && p.Collected {
		p.Collected = false
		p.moveTo(g.randomFieldCell())
	}

	if !p.Collected {
		if pc, ok := p.cell(); ok {
			if cc, ok2 := g.courier.cell(); ok2 && pc == cc {
				p.Collected = true
			}
		}
	}

	if p.Collected {
		p.X, p.Y = g.courier.X, g.courier.Y
		if cc, ok := g.courier.cell(); ok && cc == g.depot.cell() {
			g.deliverParcel(cc)
		}
	}

	if p.Damage >= maxParcelDamage {
		g.destroyParcel()
	}
}

// deliverParcel scores a delivery (payout shrinks with damage), logs it,
// and freshens the board: new parcel spot, new depot column, new rock column.
func (g *Game) deliverParcel(at Cell) {
	p := g.parcel

	points := 0
	switch p.Damage {
	case 0:
		points = g.cfg.Scoring.DeliveryClean
	case 1:
		points = g.cfg.Scoring.DeliveryScuffed
	case 2:
		points = g.cfg.Scoring.DeliveryBattered
	}
	g.score += points
	g.delivered++
	g.deliveries = append(g.deliveries, DeliveryRecord{Tick: g.tick, Col: at.Col, Row: at.Row, Points: points})

	p.Damage = 0
	p.Collected = false
	p.moveTo(g.randomFieldCell())
	g.depot.relocate(g.rng)
	g.rock.relocate(g.rng)
}

// destroyParcel handles the third truck hit: penalty, loss log, fresh
// parcel, and every truck may damage the new one.
func (g *Game) destroyParcel() {
	p := g.parcel

	at, _ := p.cell()
	g.losses = append(g.losses, LossRecord{Tick: g.tick, Col: at.Col, Row: at.Row})
	g.score -= g.cfg.Scoring.LossPenalty
	g.lost++

	p.Damage = 0
	p.Collected = false
	p.moveTo(g.randomFieldCell())
	g.clearTruckHitFlags()
}

// resetParcel wipes the parcel for a fresh run (game over or session reset).
func (g *Game) resetParcel() {
	p := g.parcel
	p.Damage = 0
	p.Collected = false
	p.moveTo(g.randomFieldCell())
	g.clearTruckHitFlags()
}

func (g *Game) clearTruckHitFlags() {
	for _, t := range g.trucks {
		t.HitParcel = false
	}
}

// stepHeart drives the heart's time windows and collection. The cadence is
// edge-triggered on whole-second transitions: the heart appears on its
// precomputed cell when the elapsed seconds hit the appear modulus, and
// hides (rolling the next appear cell) on the hide modulus.
func (g *Game) stepHeart(secondRolled bool) {
	h := g.heart

	if secondRolled && g.secs > 0 {
		if g.cfg.Heart.AppearEverySecs > 0 && g.secs%g.cfg.Heart.AppearEverySecs == 0 {
			h.moveTo(g.heartNext)
			h.Visible = true
		}
		if g.cfg.Heart.HideEverySecs > 0 && g.secs%g.cfg.Heart.HideEverySecs == 0 {
			h.hide()
			g.heartNext = g.randomFieldCell()
		}
	}

	if !h.Visible {
		return
	}
	if hc, ok := h.cell(); ok {
		if cc, ok2 := g.courier.cell(); ok2 && hc == cc {
			g.collectHeart()
		}
	}
}

// collectHeart grants a life (capped) and bonus points, then hides the heart
// until its next window.
func (g *Game) collectHeart() {
	c := g.courier
	if c.Lives < g.cfg.Player.MaxLives {
		c.Lives++
	}
	g.score += g.cfg.Scoring.HeartPoints
	g.heart.hide()
}
