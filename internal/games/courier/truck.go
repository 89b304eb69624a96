package courier

import "math"

// Truck is a lane-crossing obstacle. The pool is created once per session
// and trucks are recycled: reaching the right edge sends one back to an
// off-board spawn slot instead of destroying it.
type Truck struct {
	X         float64 // Fractional column; negative while queued off-board
	Lane      int     // Board row, LaneFirst..LaneLast
	Speed     int     // Cells per second
	Visible   bool    // On-board flag
	HitParcel bool    // Already damaged the current parcel this pass
	Slot      int     // Recorded slot in the lane tracker
}

// collisionRange is the half-width of the truck/target overlap test.
const collisionRange = 0.5

// overlaps reports whether the truck's column is within collision range of x.
func (t *Truck) overlaps(x float64) bool {
	return math.Abs(t.X-x) <= collisionRange
}

// spawnTrucks fills the truck pool from scratch, all queued off-board.
func (g *Game) spawnTrucks(count int) {
	g.trucks = make([]*Truck, 0, count)
	for i := 0; i < count; i++ {
		t := &Truck{}
		g.respawnTruck(t)
		g.trucks = append(g.trucks, t)
	}
}

// respawnTruck sends a truck back off-board: new lane, new spawn slot clear
// of other queued trucks, new speed, hit flag cleared.
func (g *Game) respawnTruck(t *Truck) {
	if t.Visible {
		g.lanes.leave(t.Lane, t.Slot)
		t.Visible = false
	}
	t.HitParcel = false
	t.Lane = randBetweenInclusive(g.rng, LaneFirst, LaneLast)

	slot, err := randExcludingSet(g.rng, 1, BoardCols, g.lanes.spawnSlots(t.Lane))
	if err != nil {
		// Unreachable while the pool is capped at BoardCols trucks;
		// the far slot at least keeps the truck off-board.
		slot = BoardCols
	}
	t.Slot = slot
	t.X = -float64(slot)
	t.Speed = randBetweenInclusive(g.rng, g.cfg.Traffic.MinSpeed, g.cfg.Traffic.MaxSpeed)
	g.lanes.holdSpawn(t.Lane, slot)
}

// stepTrucks advances all trucks by one tick: movement, board transitions,
// convoy speed matching, and collision checks against courier and parcel.
func (g *Game) stepTrucks(dt float64) {
	for _, t := range g.trucks {
		t.X += float64(t.Speed) * dt

		switch {
		case !t.Visible && t.X >= 0:
			// Off-board -> on-board: hand the slot over to the road.
			t.Visible = true
			g.lanes.releaseSpawn(t.Lane, t.Slot)
			t.Slot = 0
			g.lanes.enter(t.Lane, 0)

		case t.Visible && t.X >= BoardCols:
			g.respawnTruck(t)
			continue

		case t.Visible:
			if col := int(t.X); col > t.Slot {
				g.lanes.advance(t.Lane, t.Slot, col)
				t.Slot = col
			}
		}

		g.matchConvoySpeed(t)
		g.checkTruckCollisions(t)
	}
}

// matchConvoySpeed makes a truck adopt the speed of any slower truck within
// one column ahead in the same lane, so traffic queues up instead of
// overtaking.
func (g *Game) matchConvoySpeed(t *Truck) {
	for _, o := range g.trucks {
		if o == t || o.Lane != t.Lane {
			continue
		}
		gap := o.X - t.X
		if gap > 0 && gap <= 1 && o.Speed < t.Speed {
			t.Speed = o.Speed
		}
	}
}

// checkTruckCollisions flags a courier hit and applies parcel damage.
// The parcel is only vulnerable while resting on an integral cell (on the
// ground or carried by a settled courier); a courier mid-move between rows
// cannot be clipped either.
func (g *Game) checkTruckCollisions(t *Truck) {
	if !t.Visible {
		return
	}
	if row, ok := g.courier.settledRow(); ok && row == t.Lane && t.overlaps(g.courier.X) {
		g.hit = true
	}

	if t.HitParcel {
		return
	}
	if cell, ok := g.parcel.cell(); ok && cell.Row == t.Lane && t.overlaps(float64(cell.Col)) {
		t.HitParcel = true
		g.parcel.Damage++
	}
}
