package courier

import (
	"testing"

	"github.com/lanegames/courier/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestTruckOverlaps(t *testing.T) {
	tr := &Truck{X: 2.0}
	if !tr.overlaps(2.5) {
		t.Error("offset 0.5 should overlap")
	}
	if !tr.overlaps(1.5) {
		t.Error("offset -0.5 should overlap")
	}
	if tr.overlaps(2.6) {
		t.Error("offset 0.6 should not overlap")
	}
	if tr.overlaps(1.4) {
		t.Error("offset -0.6 should not overlap")
	}
}

func TestSpawnTrucksDistinctSlots(t *testing.T) {
	g := newTestGame(11)

	if len(g.trucks) == 0 {
		t.Fatal("no trucks spawned")
	}
	seen := make(map[[2]int]bool)
	for _, tr := range g.trucks {
		if tr.Visible {
			t.Fatal("freshly spawned truck should start off-board")
		}
		if tr.Lane < LaneFirst || tr.Lane > LaneLast {
			t.Fatalf("truck lane %d out of range", tr.Lane)
		}
		if tr.Speed < g.cfg.Traffic.MinSpeed || tr.Speed > g.cfg.Traffic.MaxSpeed {
			t.Fatalf("truck speed %d out of range", tr.Speed)
		}
		if tr.X != -float64(tr.Slot) {
			t.Fatalf("truck X %v does not match slot %d", tr.X, tr.Slot)
		}
		key := [2]int{tr.Lane, tr.Slot}
		if seen[key] {
			t.Fatalf("two trucks share spawn slot lane=%d slot=%d", tr.Lane, tr.Slot)
		}
		seen[key] = true
	}
}

func TestStepTrucksAdvances(t *testing.T) {
	g := newTestGame(21)
	dt := 1.0 / 60.0

	before := make([]float64, len(g.trucks))
	for i, tr := range g.trucks {
		before[i] = tr.X
	}

	for i := 0; i < 10; i++ {
		g.stepTrucks(dt)
	}

	for i, tr := range g.trucks {
		if tr.X <= before[i] {
			t.Errorf("truck %d did not advance: %v -> %v", i, before[i], tr.X)
		}
	}
}

func TestTruckEntersBoardAndRecycles(t *testing.T) {
	g := newTestGame(31)
	g.started = true
	dt := 1.0 / 60.0

	sawVisible := false
	for i := 0; i < 60*20; i++ {
		g.stepTrucks(dt)
		for _, tr := range g.trucks {
			if tr.Visible {
				sawVisible = true
				if tr.X < 0 || tr.X >= BoardCols {
					t.Fatalf("visible truck outside board: X=%v", tr.X)
				}
			} else if tr.X >= 0 {
				t.Fatalf("off-board truck with non-negative X=%v", tr.X)
			}
		}
	}
	if !sawVisible {
		t.Fatal("no truck ever entered the board")
	}
}

func TestConvoySpeedMatching(t *testing.T) {
	g := newTestGame(41)

	lead := g.trucks[0]
	tail := g.trucks[1]
	lead.Lane, lead.X, lead.Speed, lead.Visible = LaneFirst, 2.0, 1, true
	tail.Lane, tail.X, tail.Speed, tail.Visible = LaneFirst, 1.5, 3, true

	g.matchConvoySpeed(tail)
	if tail.Speed != 1 {
		t.Fatalf("tail should adopt lead speed 1, got %d", tail.Speed)
	}

	// A slower truck more than one column ahead does not slow the tail
	tail.Speed = 3
	lead.X = 3.0
	g.matchConvoySpeed(tail)
	if tail.Speed != 3 {
		t.Fatalf("tail slowed by distant truck: %d", tail.Speed)
	}

	// Trucks in other lanes never interact
	tail.Speed = 3
	lead.X = 2.0
	lead.Lane = LaneLast
	g.matchConvoySpeed(tail)
	if tail.Speed != 3 {
		t.Fatalf("tail slowed by truck in another lane: %d", tail.Speed)
	}
}

func TestTruckHitsCourier(t *testing.T) {
	g := newTestGame(51)
	g.courier.place(2, LaneFirst)

	tr := g.trucks[0]
	tr.Lane, tr.X, tr.Visible = LaneFirst, 1.6, true

	g.checkTruckCollisions(tr)
	if !g.hit {
		t.Fatal("overlapping truck should flag a hit")
	}

	// A courier mid-move between rows cannot be clipped
	g.hit = false
	g.courier.Y = 1.4
	g.checkTruckCollisions(tr)
	if g.hit {
		t.Fatal("courier between rows should not be hit")
	}
}

func TestTruckDamagesParcelOncePerPass(t *testing.T) {
	g := newTestGame(61)
	g.courier.place(HomeCol, RowHome)
	g.parcel.moveTo(Cell{Col: 3, Row: LaneFirst + 1})

	tr := g.trucks[0]
	tr.Lane, tr.X, tr.Visible = LaneFirst+1, 2.6, true

	g.checkTruckCollisions(tr)
	if g.parcel.Damage != 1 {
		t.Fatalf("parcel damage = %d, want 1", g.parcel.Damage)
	}
	if !tr.HitParcel {
		t.Fatal("truck should remember hitting the parcel")
	}

	// Same truck cannot damage the same parcel again this pass
	g.checkTruckCollisions(tr)
	if g.parcel.Damage != 1 {
		t.Fatalf("parcel damaged twice by one truck: %d", g.parcel.Damage)
	}
}
