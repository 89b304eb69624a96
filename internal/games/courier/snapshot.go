package courier

// SessionState represents the current session phase.
type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateRunning     SessionState = "running"
	StatePaused      SessionState = "paused"
	StateGameOver    SessionState = "game_over"
	StatePausedSmall SessionState = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lives        int
	Level        int
	Delivered    int
	Lost         int
	CourierX     float64
	CourierY     float64
	ParcelX      float64
	ParcelY      float64
	ParcelDamage int
	ParcelHeld   bool
	HeartVisible bool
	HeartX       float64
	HeartY       float64
	DepotCol     int
	RockCol      int
	TruckX       []float64
	TruckLane    []int
	TruckSpeed   []int
	State        SessionState
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case !g.started:
		state = StateIdle
	}

	trucksX := make([]float64, len(g.trucks))
	lanes := make([]int, len(g.trucks))
	speeds := make([]int, len(g.trucks))
	for i, t := range g.trucks {
		trucksX[i] = t.X
		lanes[i] = t.Lane
		speeds[i] = t.Speed
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		Lives:        g.courier.Lives,
		Level:        g.courier.Level,
		Delivered:    g.delivered,
		Lost:         g.lost,
		CourierX:     g.courier.X,
		CourierY:     g.courier.Y,
		ParcelX:      g.parcel.X,
		ParcelY:      g.parcel.Y,
		ParcelDamage: g.parcel.Damage,
		ParcelHeld:   g.parcel.Collected,
		HeartVisible: g.heart.Visible,
		HeartX:       g.heart.X,
		HeartY:       g.heart.Y,
		DepotCol:     g.depot.Col,
		RockCol:      g.rock.Col,
		TruckX:       trucksX,
		TruckLane:    lanes,
		TruckSpeed:   speeds,
		State:        state,
	}
}
