package app

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/match"
	"github.com/decker502/zshooter/pkg/types"
)

func TestHealthBarFill(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		maxHealth int
		want      float64
	}{
		{"full", 100, 100, 50},
		{"half", 50, 100, 25},
		{"dead", 0, 100, 0},
		{"overheal clamps", 150, 100, 50},
		{"no max", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := healthBarFill(tt.health, tt.maxHealth, 50); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		wheel float64
		want  int
	}{
		{-1, 1},
		{-0.25, 1},
		{0, 0},
		{2, -1},
	}
	for _, tt := range tests {
		if got := wheelDelta(tt.wheel); got != tt.want {
			t.Errorf("wheelDelta(%v) = %d, want %d", tt.wheel, got, tt.want)
		}
	}
}

func TestEntityColorReflectsState(t *testing.T) {
	normal := match.EntityView{Kind: types.EntityZombie, ZombieKind: types.ZombieNormal}
	frozen := normal
	frozen.ZombieState = components.ZombieFrozen
	jumper := match.EntityView{Kind: types.EntityZombie, ZombieKind: types.ZombieJumper}

	if entityColor(normal) == entityColor(frozen) {
		t.Error("Frozen zombie should be drawn differently")
	}
	if entityColor(normal) == entityColor(jumper) {
		t.Error("Jumper should be drawn differently")
	}

	mine := match.EntityView{Kind: types.EntityPlaceable, Item: types.ItemMine}
	trap := match.EntityView{Kind: types.EntityPlaceable, Item: types.ItemFreezeTrap}
	if entityColor(mine) == entityColor(trap) {
		t.Error("Mine and freeze trap should be drawn differently")
	}
}

func TestHUDLines(t *testing.T) {
	snap := match.Snapshot{
		Score:              30,
		HordeIndex:         2,
		PlayerHealth:       80,
		PlayerMaxHealth:    100,
		JetpackFuel:        42.4,
		JetpackMaxFuel:     100,
		ActivePowerUp:      types.PowerUpImmunity,
		PowerUpRemainingMs: 2500,
		Inventory: []match.InventorySlot{
			{Kind: types.ItemGun, Name: "pistol", Selected: true},
			{Kind: types.ItemMine, Name: "mine", Count: 3},
		},
	}

	text := strings.Join(hudLines(snap), "\n")
	for _, want := range []string{"Score: 30", "Horde: 2", "Health: 80/100", "Jetpack: 42/100", "2.5s", "[1:pistol]", "2:minex3"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing %q in:\n%s", want, text)
		}
	}

	snap.ActivePowerUp = types.PowerUpNone
	if got := len(hudLines(snap)); got != 4 {
		t.Errorf("Expected 4 HUD lines without power-up, got %d", got)
	}
}

func TestLeaderboardLines(t *testing.T) {
	if got := leaderboardLines(nil); len(got) != 1 || got[0] != "No scores yet" {
		t.Errorf("Unexpected empty leaderboard lines: %v", got)
	}

	at := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	lines := leaderboardLines([]game.ScoreEntry{{Score: 120, RecordedAt: at}, {Score: 40, RecordedAt: at}})
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 entries, got %v", lines)
	}
	if !strings.HasPrefix(lines[1], " 1.    120") || !strings.Contains(lines[1], "2026-01-02 03:04") {
		t.Errorf("Unexpected first entry %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], " 2.     40") {
		t.Errorf("Unexpected second entry %q", lines[2])
	}

	over := gameOverLines(55, nil)
	if over[1] != "Final score: 55" {
		t.Errorf("Unexpected game over lines %v", over)
	}
}
