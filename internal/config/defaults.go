package config

import (
	_ "embed"
)

//go:embed defaults/courier.yaml
var defaultCourierYAML []byte

// DefaultCourierConfig returns the default Courier configuration.
func DefaultCourierConfig() CourierConfig {
	return CourierConfig{
		Player: PlayerConfig{
			Lives:     3,
			MaxLives:  5,
			BaseSpeed: 5.0,
			MaxLevel:  10,
			LevelBand: 1000,
		},
		Traffic: TrafficConfig{
			Trucks:   5,
			MinSpeed: 1,
			MaxSpeed: 4,
		},
		Scoring: ScoringConfig{
			DeliveryClean:    100,
			DeliveryScuffed:  50,
			DeliveryBattered: 25,
			LossPenalty:      50,
			HeartPoints:      50,
		},
		Heart: HeartConfig{
			AppearEverySecs: 30,
			HideEverySecs:   9,
		},
	}
}
