package courier

import "testing"

func TestParcelPickup(t *testing.T) {
	g := newTestGame(7)

	pc, ok := g.parcel.cell()
	if !ok {
		t.Fatal("fresh parcel should rest on a cell")
	}
	if pc.Row < LaneFirst || pc.Row > LaneLast {
		t.Fatalf("parcel spawned outside the lanes: %v", pc)
	}

	g.courier.place(pc.Col, pc.Row)
	g.stepParcel()

	if !g.parcel.Collected {
		t.Fatal("courier on the parcel cell should pick it up")
	}

	// Carried parcel follows the courier
	g.courier.place(0, LaneFirst)
	g.stepParcel()
	if g.parcel.X != g.courier.X || g.parcel.Y != g.courier.Y {
		t.Fatal("carried parcel should track the courier position")
	}
}

func TestParcelDropOnHit(t *testing.T) {
	g := newTestGame(8)
	g.parcel.Collected = true
	g.hit = true

	g.stepParcel()

	if g.parcel.Collected {
		t.Fatal("hit should knock the parcel loose")
	}
	if !g.hit {
		t.Fatal("hit flag should stay pending for the courier")
	}
	pc, ok := g.parcel.cell()
	if !ok || pc.Row < LaneFirst || pc.Row > LaneLast {
		t.Fatalf("dropped parcel should land in the lanes, got %v", pc)
	}
}

func TestDeliveryPayouts(t *testing.T) {
	cases := []struct {
		damage int
		points int
	}{
		{0, 100},
		{1, 50},
		{2, 25},
	}
	for _, tc := range cases {
		g := newTestGame(9)
		g.parcel.Collected = true
		g.parcel.Damage = tc.damage
		depot := g.depot.cell()
		g.courier.place(depot.Col, depot.Row)

		g.stepParcel()

		if g.score != tc.points {
			t.Errorf("damage %d: score = %d, want %d", tc.damage, g.score, tc.points)
		}
		if g.delivered != 1 {
			t.Errorf("damage %d: delivered = %d, want 1", tc.damage, g.delivered)
		}
		if g.parcel.Collected || g.parcel.Damage != 0 {
			t.Errorf("damage %d: parcel not reset after delivery", tc.damage)
		}
		if g.depot.Col == depot.Col {
			t.Errorf("damage %d: depot should move after delivery", tc.damage)
		}
		if len(g.deliveries) != 1 {
			t.Errorf("damage %d: expected a delivery record", tc.damage)
		}
	}
}

func TestParcelDestroyedAtMaxDamage(t *testing.T) {
	g := newTestGame(10)
	g.trucks[0].HitParcel = true
	g.parcel.Damage = maxParcelDamage

	g.stepParcel()

	if g.score != -g.cfg.Scoring.LossPenalty {
		t.Fatalf("score = %d, want %d", g.score, -g.cfg.Scoring.LossPenalty)
	}
	if g.lost != 1 || len(g.losses) != 1 {
		t.Fatalf("lost = %d, records = %d, want 1 each", g.lost, len(g.losses))
	}
	if g.parcel.Damage != 0 {
		t.Fatal("replacement parcel should be pristine")
	}
	for i, tr := range g.trucks {
		if tr.HitParcel {
			t.Fatalf("truck %d hit flag should clear with the new parcel", i)
		}
	}
}

func TestHeartCadence(t *testing.T) {
	g := newTestGame(12)

	if g.heart.Visible {
		t.Fatal("heart should start hidden")
	}
	next := g.heartNext

	// Appear window
	g.secs = g.cfg.Heart.AppearEverySecs
	g.stepHeart(true)
	if !g.heart.Visible {
		t.Fatal("heart should appear on the appear window")
	}
	if hc, _ := g.heart.cell(); hc != next {
		t.Fatalf("heart appeared at %v, want precomputed %v", hc, next)
	}

	// Hide window rerolls the next cell
	g.secs = 36 // Multiple of the 9s hide window, not of the 30s appear window
	g.stepHeart(true)
	if g.heart.Visible {
		t.Fatal("heart should hide on the hide window")
	}

	// Windows only fire on a second transition
	g.secs = g.cfg.Heart.AppearEverySecs
	g.stepHeart(false)
	if g.heart.Visible {
		t.Fatal("heart must not appear without a second rollover")
	}
}

func TestHeartNotShownAtStart(t *testing.T) {
	g := newTestGame(13)
	g.secs = 0
	g.stepHeart(true)
	if g.heart.Visible {
		t.Fatal("second zero must not trigger the appear window")
	}
}

func TestCollectHeart(t *testing.T) {
	g := newTestGame(14)
	g.courier.Lives = g.cfg.Player.Lives

	cell := Cell{Col: 1, Row: LaneFirst}
	g.heart.moveTo(cell)
	g.heart.Visible = true
	g.courier.place(cell.Col, cell.Row)

	g.stepHeart(false)

	if g.courier.Lives != g.cfg.Player.Lives+1 {
		t.Fatalf("lives = %d, want %d", g.courier.Lives, g.cfg.Player.Lives+1)
	}
	if g.score != g.cfg.Scoring.HeartPoints {
		t.Fatalf("score = %d, want %d", g.score, g.cfg.Scoring.HeartPoints)
	}
	if g.heart.Visible {
		t.Fatal("collected heart should hide")
	}
}

func TestCollectHeartCapsLives(t *testing.T) {
	g := newTestGame(15)
	g.courier.Lives = g.cfg.Player.MaxLives

	cell := Cell{Col: 1, Row: LaneFirst}
	g.heart.moveTo(cell)
	g.heart.Visible = true
	g.courier.place(cell.Col, cell.Row)

	g.stepHeart(false)

	if g.courier.Lives != g.cfg.Player.MaxLives {
		t.Fatalf("lives exceeded cap: %d", g.courier.Lives)
	}
	if g.score != g.cfg.Scoring.HeartPoints {
		t.Fatal("points are still granted at the life cap")
	}
}
