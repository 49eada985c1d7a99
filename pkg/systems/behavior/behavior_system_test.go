package behavior

import (
	"testing"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/entities"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/types"
)

const groundY = 700.0 // 720 高屏幕、20 高平台的平台顶部

type behaviorWorld struct {
	em       *ecs.EntityManager
	state    *game.MatchState
	cfg      *config.GameConfig
	platform ecs.EntityID
	player   ecs.EntityID
	system   *BehaviorSystem
}

func newBehaviorWorld(t *testing.T) *behaviorWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	state := game.NewMatchState(1280, 720)
	state.IsStarted = true

	platform, err := entities.NewPlatform(em, 1280, 720, cfg.World.PlatformHeight)
	if err != nil {
		t.Fatalf("NewPlatform failed: %v", err)
	}
	player, err := entities.NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	pos.Y = groundY - cfg.Player.Height

	combat := systems.NewCombat(em, state, cfg)
	return &behaviorWorld{
		em:       em,
		state:    state,
		cfg:      cfg,
		platform: platform,
		player:   player,
		system:   NewBehaviorSystem(em, state, cfg, combat, systems.NewSpatialIndex(em, 1280, 720), player),
	}
}

// addZombie 创建一个站在平台上的僵尸
func (w *behaviorWorld) addZombie(t *testing.T, kind types.ZombieKind, x float64) ecs.EntityID {
	t.Helper()
	stats, _ := w.cfg.ZombieStatsFor(kind)
	id, err := entities.NewZombie(w.em, w.cfg, kind, x, groundY-stats.Height, w.state.CurrentTimeMs)
	if err != nil {
		t.Fatalf("NewZombie failed: %v", err)
	}
	contact, _ := ecs.GetComponent[*components.ContactComponent](w.em, id)
	contact.Bottom = w.platform
	return id
}

func (w *behaviorWorld) addBlock(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBlock(w.em, x, y, w.cfg.Block.Width, w.cfg.Block.Height, w.cfg.Block.MaxHealth, false)
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}
	return id
}

func (w *behaviorWorld) place(t *testing.T, kind types.ItemKind, x float64) ecs.EntityID {
	t.Helper()
	stats, _ := w.cfg.Placeables.Stats(kind)
	id, err := entities.NewPlaceable(w.em, w.cfg, kind, x, groundY-stats.Height)
	if err != nil {
		t.Fatalf("NewPlaceable failed: %v", err)
	}
	return id
}

func (w *behaviorWorld) zombie(id ecs.EntityID) *components.ZombieComponent {
	z, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
	return z
}

func (w *behaviorWorld) x(id ecs.EntityID) float64 {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos.X
}

func (w *behaviorWorld) hp(id ecs.EntityID) int {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h.CurrentHealth
}

func (w *behaviorWorld) setContact(id ecs.EntityID, set func(c *components.ContactComponent)) {
	c, _ := ecs.GetComponent[*components.ContactComponent](w.em, id)
	set(c)
}

func countBullets(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.BulletComponent](em))
}
