package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCourierConfig(t *testing.T) {
	cfg := DefaultCourierConfig()

	if cfg.Player.Lives != 3 || cfg.Player.MaxLives != 5 {
		t.Errorf("unexpected lives defaults: %+v", cfg.Player)
	}
	if cfg.Traffic.MinSpeed > cfg.Traffic.MaxSpeed {
		t.Errorf("min speed above max: %+v", cfg.Traffic)
	}
	if cfg.Scoring.DeliveryClean <= cfg.Scoring.DeliveryScuffed ||
		cfg.Scoring.DeliveryScuffed <= cfg.Scoring.DeliveryBattered {
		t.Errorf("delivery payouts must shrink with damage: %+v", cfg.Scoring)
	}
	if cfg.Heart.AppearEverySecs <= 0 || cfg.Heart.HideEverySecs <= 0 {
		t.Errorf("heart windows must be positive: %+v", cfg.Heart)
	}
}

func TestLoadCourierCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courier.yaml")
	data := []byte("player:\n  lives: 7\n  max_lives: 9\ntraffic:\n  trucks: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCourier(path)
	if err != nil {
		t.Fatalf("LoadCourier() failed: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Player.MaxLives != 9 {
		t.Errorf("custom player config not applied: %+v", cfg.Player)
	}
	if cfg.Traffic.Trucks != 2 {
		t.Errorf("custom traffic config not applied: %+v", cfg.Traffic)
	}
}

func TestLoadCourierMissingCustomPath(t *testing.T) {
	if _, err := LoadCourier(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestApplyCourierPreset(t *testing.T) {
	easy := DefaultCourierConfig()
	ApplyCourierPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 || easy.Traffic.MaxSpeed != 3 {
		t.Errorf("easy preset not applied: %+v", easy)
	}

	hard := DefaultCourierConfig()
	ApplyCourierPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 || hard.Traffic.MinSpeed != 2 {
		t.Errorf("hard preset not applied: %+v", hard)
	}

	normal := DefaultCourierConfig()
	ApplyCourierPreset(&normal, DifficultyNormal)
	if normal != DefaultCourierConfig() {
		t.Error("normal preset should leave defaults untouched")
	}
}
