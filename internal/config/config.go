// Package config provides YAML-based game configuration loading and
// difficulty presets for the courier platform.
package config

// CourierConfig contains all configuration for the Courier game.
type CourierConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Traffic TrafficConfig `yaml:"traffic"`
	Scoring ScoringConfig `yaml:"scoring"`
	Heart   HeartConfig   `yaml:"heart"`
}

// PlayerConfig defines courier parameters.
type PlayerConfig struct {
	Lives     int     `yaml:"lives"`      // Starting lives
	MaxLives  int     `yaml:"max_lives"`  // Cap for heart pickups
	BaseSpeed float64 `yaml:"base_speed"` // Cells per second at level 1
	MaxLevel  int     `yaml:"max_level"`  // Level cap
	LevelBand int     `yaml:"level_band"` // Points per level step
}

// TrafficConfig defines the truck lanes.
type TrafficConfig struct {
	Trucks   int `yaml:"trucks"`    // Truck pool size
	MinSpeed int `yaml:"min_speed"` // Slowest truck, cells per second
	MaxSpeed int `yaml:"max_speed"` // Fastest truck, cells per second
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	DeliveryClean    int `yaml:"delivery_clean"`    // Undamaged parcel
	DeliveryScuffed  int `yaml:"delivery_scuffed"`  // One hit
	DeliveryBattered int `yaml:"delivery_battered"` // Two hits
	LossPenalty      int `yaml:"loss_penalty"`      // Deducted when a parcel is destroyed
	HeartPoints      int `yaml:"heart_points"`      // Awarded for collecting a heart
}

// HeartConfig defines the bonus pickup cadence.
type HeartConfig struct {
	AppearEverySecs int `yaml:"appear_every_secs"` // Elapsed-seconds modulus that shows the heart
	HideEverySecs   int `yaml:"hide_every_secs"`   // Elapsed-seconds modulus that hides it again
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
