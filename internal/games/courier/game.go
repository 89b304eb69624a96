package courier

import (
	"fmt"
	"math/rand"

	"github.com/lanegames/courier/internal/config"
	"github.com/lanegames/courier/internal/core"
	"github.com/lanegames/courier/internal/registry"
)

// Game implements the Courier game. One tick advances the whole simulation
// in a fixed order: courier, trucks, parcel, heart. The order matters: the
// parcel reads the courier's current-tick position, and a hit raised by the
// trucks drops the parcel on the same tick but costs the courier a life only
// on the next one.
type Game struct {
	rng     *rand.Rand
	cfg     config.CourierConfig
	runtime core.RuntimeConfig

	tick     uint64
	runTicks uint64 // Ticks spent actually running; idle and paused ticks excluded
	tickRate int
	secs     int // Whole elapsed play seconds, derived from runTicks

	// Entities
	courier   *Courier
	trucks    []*Truck
	lanes     *laneTracker
	parcel    *Item
	heart     *Item
	heartNext Cell
	depot     *Depot
	rock      *Rock

	// Session state
	score      int
	delivered  int
	lost       int
	deliveries []DeliveryRecord
	losses     []LossRecord
	hit        bool // A truck reached the courier; pending resolution
	started    bool
	gameOver   bool
	paused     bool
	tooSmall   bool

	// Layout (computed from screen size)
	screenW, screenH int
	cellW, cellH     int
	boardX, boardY   int
	hudHeight        int
}

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// New creates a new Courier game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("courier", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "courier"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Courier"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	cfg, err := config.LoadCourier(configPath)
	if err != nil {
		cfg = config.DefaultCourierConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCourierPreset(&cfg, difficultyPreset)
	}
	sanitizeConfig(&cfg)
	g.cfg = cfg

	g.tick = 0
	g.runTicks = 0
	g.secs = 0
	g.score = 0
	g.delivered = 0
	g.lost = 0
	g.deliveries = nil
	g.losses = nil
	g.hit = false
	g.started = false
	g.gameOver = false
	g.paused = false

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.calculateLayout()

	g.lanes = newLaneTracker()
	g.courier = g.newCourier()
	g.spawnTrucks(cfg.Traffic.Trucks)

	g.depot = &Depot{Col: randBetween(g.rng, 0, BoardCols)}
	g.rock = &Rock{Col: randBetween(g.rng, 0, BoardCols)}

	g.parcel = &Item{Kind: ItemParcel, Visible: true}
	g.parcel.moveTo(g.randomFieldCell())

	g.heart = &Item{Kind: ItemHeart}
	g.heart.hide()
	g.heartNext = g.randomFieldCell()
}

// sanitizeConfig clamps config values the simulation depends on. The truck
// pool must not exceed the board width or respawn could exhaust a lane's
// spawn slots; truck speeds stay in [1, 4].
func sanitizeConfig(cfg *config.CourierConfig) {
	cfg.Traffic.Trucks = core.Clamp(cfg.Traffic.Trucks, 1, BoardCols)
	cfg.Traffic.MinSpeed = core.Clamp(cfg.Traffic.MinSpeed, 1, 4)
	cfg.Traffic.MaxSpeed = core.Clamp(cfg.Traffic.MaxSpeed, cfg.Traffic.MinSpeed, 4)
	if cfg.Player.Lives < 1 {
		cfg.Player.Lives = 1
	}
	if cfg.Player.MaxLives < cfg.Player.Lives {
		cfg.Player.MaxLives = cfg.Player.Lives
	}
	if cfg.Player.BaseSpeed <= 0 {
		cfg.Player.BaseSpeed = 5
	}
	if cfg.Player.MaxLevel < 1 {
		cfg.Player.MaxLevel = 1
	}
	if cfg.Player.LevelBand < 1 {
		cfg.Player.LevelBand = 1000
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restarting after game over is the explicit "play again" confirmation:
	// session state is zeroed and the board rebuilt.
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		g.started = true
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.started && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Idle -> running on the first direction/confirm press. The key that
	// starts the session does not also move the courier.
	if !g.started {
		if directionFor(input) != DirNone || input.Has(core.ActionConfirm) {
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	g.runTicks++

	if dir := directionFor(input); dir != DirNone {
		g.handleMove(dir)
	}

	dt := 1.0 / float64(g.tickRate)

	g.stepCourier(dt)
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.stepTrucks(dt)
	g.stepParcel()

	secs := int(g.runTicks) / g.tickRate
	rolled := secs != g.secs
	g.secs = secs
	g.stepHeart(rolled)

	return core.StepResult{State: g.State()}
}

// directionFor maps an input frame to a single move intent.
func directionFor(input core.InputFrame) Direction {
	switch {
	case input.Has(core.ActionLeft):
		return DirLeft
	case input.Has(core.ActionRight):
		return DirRight
	case input.Has(core.ActionUp):
		return DirUp
	case input.Has(core.ActionDown):
		return DirDown
	default:
		return DirNone
	}
}

// Resize recomputes the board layout for a new screen size without
// disturbing the running simulation. A screen that became too small pauses
// play until it grows back.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.calculateLayout()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// ElapsedClock formats the elapsed play time as HH:MM:SS.
func (g *Game) ElapsedClock() string {
	return fmt.Sprintf("%02d:%02d:%02d", g.secs/3600, (g.secs/60)%60, g.secs%60)
}

// RunSummary reports the session totals, used for run persistence.
type RunSummary struct {
	Score        int
	Delivered    int
	Lost         int
	Level        int
	DurationSecs int
}

// RunSummary returns the totals of the current session.
func (g *Game) RunSummary() RunSummary {
	return RunSummary{
		Score:        g.score,
		Delivered:    g.delivered,
		Lost:         g.lost,
		Level:        g.courier.Level,
		DurationSecs: g.secs,
	}
}
