package systems

import (
	"testing"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/entities"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/types"
)

const (
	testScreenW = 1280
	testScreenH = 720
)

// testWorld 只包含平台和玩家的最小世界
type testWorld struct {
	em       *ecs.EntityManager
	state    *game.MatchState
	cfg      *config.GameConfig
	platform ecs.EntityID
	player   ecs.EntityID
	combat   *Combat
	index    *SpatialIndex
	camera   *CameraSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	state := game.NewMatchState(testScreenW, testScreenH)
	state.IsStarted = true

	platform, err := entities.NewPlatform(em, testScreenW, testScreenH, cfg.World.PlatformHeight)
	if err != nil {
		t.Fatalf("NewPlatform failed: %v", err)
	}
	player, err := entities.NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	index := NewSpatialIndex(em, testScreenW, testScreenH)
	return &testWorld{
		em:       em,
		state:    state,
		cfg:      cfg,
		platform: platform,
		player:   player,
		combat:   NewCombat(em, state, cfg),
		index:    index,
		camera:   NewCameraSystem(em, state, index, cfg.World.CameraOffset, player, platform),
	}
}

func (w *testWorld) addZombie(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewZombie(w.em, w.cfg, types.ZombieNormal, x, y, w.state.CurrentTimeMs)
	if err != nil {
		t.Fatalf("NewZombie failed: %v", err)
	}
	return id
}

func (w *testWorld) addBlock(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBlock(w.em, x, y, w.cfg.Block.Width, w.cfg.Block.Height, w.cfg.Block.MaxHealth, false)
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}
	return id
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos
}

func (w *testWorld) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h
}

func (w *testWorld) contact(id ecs.EntityID) *components.ContactComponent {
	c, _ := ecs.GetComponent[*components.ContactComponent](w.em, id)
	return c
}

// restPlayerOnPlatform 让玩家直接站在平台上
func (w *testWorld) restPlayerOnPlatform(x float64) {
	pos := w.position(w.player)
	pos.X = x
	pos.Y = testScreenH - w.cfg.World.PlatformHeight - w.cfg.Player.Height
	w.contact(w.player).Bottom = w.platform
}

func countWith[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if !em.IsPendingDestroy(id) {
			n++
		}
	}
	return n
}
