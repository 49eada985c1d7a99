package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLaunchConfigDefaults(t *testing.T) {
	cfg, err := LoadLaunchConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLaunchConfig failed: %v", err)
	}

	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Errorf("screen: expected 1280x720, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("logLevel: expected info, got %s", cfg.LogLevel)
	}
	if cfg.Leaderboard.Backend != LeaderboardBackendGdata {
		t.Errorf("leaderboard backend: expected gdata, got %s", cfg.Leaderboard.Backend)
	}
	if cfg.Leaderboard.TopN != 10 {
		t.Errorf("leaderboard topN: expected 10, got %d", cfg.Leaderboard.TopN)
	}
}

func TestLoadLaunchConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
screenWidth: 1024
screenHeight: 600
seed: 42
leaderboard:
  backend: sqlite
  sqlitePath: scores.db
  topN: 5
`
	if err := os.WriteFile(filepath.Join(dir, "zshooter.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write launch config: %v", err)
	}

	cfg, err := LoadLaunchConfig(dir)
	if err != nil {
		t.Fatalf("LoadLaunchConfig failed: %v", err)
	}
	if cfg.ScreenWidth != 1024 || cfg.ScreenHeight != 600 {
		t.Errorf("screen: expected 1024x600, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed: expected 42, got %d", cfg.Seed)
	}
	if cfg.Leaderboard.Backend != LeaderboardBackendSQLite || cfg.Leaderboard.SQLitePath != "scores.db" {
		t.Errorf("leaderboard: unexpected %+v", cfg.Leaderboard)
	}
	if cfg.Leaderboard.AppName != "zshooter" {
		t.Errorf("leaderboard appName should keep default, got %s", cfg.Leaderboard.AppName)
	}
}

func TestLoadLaunchConfigEnvOverride(t *testing.T) {
	t.Setenv("ZSHOOTER_SCREENWIDTH", "800")
	t.Setenv("ZSHOOTER_LEADERBOARD_BACKEND", "none")

	cfg, err := LoadLaunchConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLaunchConfig failed: %v", err)
	}
	if cfg.ScreenWidth != 800 {
		t.Errorf("screenWidth: expected 800 from env, got %d", cfg.ScreenWidth)
	}
	if cfg.Leaderboard.Backend != LeaderboardBackendNone {
		t.Errorf("backend: expected none from env, got %s", cfg.Leaderboard.Backend)
	}
}

func TestLaunchConfigValidate(t *testing.T) {
	base := LaunchConfig{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Leaderboard: LeaderboardConfig{
			Backend: LeaderboardBackendGdata,
			AppName: "zshooter",
			TopN:    10,
		},
	}

	tests := []struct {
		name   string
		mutate func(c *LaunchConfig)
	}{
		{"zero width", func(c *LaunchConfig) { c.ScreenWidth = 0 }},
		{"unknown backend", func(c *LaunchConfig) { c.Leaderboard.Backend = "redis" }},
		{"gdata without app name", func(c *LaunchConfig) { c.Leaderboard.AppName = "" }},
		{"sqlite without path", func(c *LaunchConfig) { c.Leaderboard.Backend = LeaderboardBackendSQLite }},
		{"postgres without dsn", func(c *LaunchConfig) { c.Leaderboard.Backend = LeaderboardBackendPostgres }},
		{"zero topN", func(c *LaunchConfig) { c.Leaderboard.TopN = 0 }},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
