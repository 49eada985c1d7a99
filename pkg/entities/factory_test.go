package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Player should have PositionComponent")
	}
	if pos.X != 700 || pos.Y != 300 {
		t.Errorf("Expected spawn (700,300), got (%v,%v)", pos.X, pos.Y)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.CurrentHealth != 100 || health.MaxHealth != 100 {
		t.Errorf("Expected health 100/100, got %d/%d", health.CurrentHealth, health.MaxHealth)
	}

	if !ecs.HasComponent[*components.GravityComponent](em, id) {
		t.Error("Player should be affected by gravity")
	}
	if !ecs.HasComponent[*components.ContactComponent](em, id) {
		t.Error("Player should track contact state")
	}

	inv, ok := ecs.GetComponent[*components.InventoryComponent](em, id)
	if !ok {
		t.Fatal("Player should have InventoryComponent")
	}
	// 2 把枪 + 4 种放置物
	if len(inv.Items) != len(cfg.Guns)+4 {
		t.Fatalf("Expected %d inventory slots, got %d", len(cfg.Guns)+4, len(inv.Items))
	}
	if inv.Items[0].Kind != types.ItemGun || inv.Items[0].Gun == nil {
		t.Error("First slot should be a gun")
	}
	last := inv.Items[len(inv.Items)-1]
	if last.Kind != types.ItemFreezeTrap || last.Count != cfg.Placeables.FreezeTrap.Count {
		t.Errorf("Last slot should be freeze trap x%d, got %s x%d", cfg.Placeables.FreezeTrap.Count, last.Kind, last.Count)
	}
}

func TestNewPlayerInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.GameConfig)
		wantErr error
	}{
		{"zero width", func(c *config.GameConfig) { c.Player.Width = 0 }, ErrInvalidScale},
		{"negative height", func(c *config.GameConfig) { c.Player.Height = -1 }, ErrInvalidScale},
		{"zero health", func(c *config.GameConfig) { c.Player.MaxHealth = 0 }, ErrInvalidHealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			cfg := config.DefaultGameConfig()
			tt.mutate(cfg)

			id, err := NewPlayer(em, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if id != ecs.InvalidEntity {
				t.Errorf("Expected InvalidEntity, got %d", id)
			}
			if em.EntityCount() != 0 {
				t.Error("No entity should be created on error")
			}
		})
	}
}

func TestNilEntityManager(t *testing.T) {
	cfg := config.DefaultGameConfig()
	if _, err := NewPlayer(nil, cfg); !errors.Is(err, ErrNilEntityManager) {
		t.Errorf("NewPlayer: expected ErrNilEntityManager, got %v", err)
	}
	if _, err := NewBlock(nil, 0, 0, 10, 10, 10, false); !errors.Is(err, ErrNilEntityManager) {
		t.Errorf("NewBlock: expected ErrNilEntityManager, got %v", err)
	}
}

func TestNewZombie(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name  string
		kind  types.ZombieKind
		speed float64
	}{
		{"普通僵尸", types.ZombieNormal, 2},
		{"跳跃僵尸", types.ZombieJumper, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewZombie(em, cfg, tt.kind, 200, 350, 1000)
			if err != nil {
				t.Fatalf("NewZombie failed: %v", err)
			}
			zombie, ok := ecs.GetComponent[*components.ZombieComponent](em, id)
			if !ok {
				t.Fatal("Zombie should have ZombieComponent")
			}
			if zombie.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, zombie.Kind)
			}
			if zombie.Speed != tt.speed {
				t.Errorf("Expected speed %v, got %v", tt.speed, zombie.Speed)
			}
			// 新生成的僵尸可以立即攻击
			if !zombie.CanAttack(1000) {
				t.Error("New zombie should be able to attack immediately")
			}
			if zombie.State != components.ZombiePursuing {
				t.Errorf("Expected pursuing state, got %s", zombie.State)
			}
		})
	}
}

func TestNewZombieInvalidHealth(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	stats := cfg.Zombies["normal"]
	stats.MaxHealth = 0
	cfg.Zombies["normal"] = stats

	if _, err := NewZombie(em, cfg, types.ZombieNormal, 0, 0, 0); !errors.Is(err, ErrInvalidHealth) {
		t.Errorf("Expected ErrInvalidHealth, got %v", err)
	}
}

func TestNewBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	gun := &components.Gun{Name: "pistol", Damage: 25, BulletSpeed: 20, BulletSize: 10, CooldownMs: 250}

	id, err := NewBullet(em, utils.Vector2{X: 100, Y: 100}, 0, 20, gun, 1)
	if err != nil {
		t.Fatalf("NewBullet failed: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 95 || pos.Y != 95 {
		t.Errorf("Bullet should be centered on muzzle, got top-left (%v,%v)", pos.X, pos.Y)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if math.Abs(vel.VX-20) > 1e-9 || math.Abs(vel.VY) > 1e-9 {
		t.Errorf("Expected velocity (20,0), got (%v,%v)", vel.VX, vel.VY)
	}
	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
	if bullet.Damage != 25 || bullet.Radius != 5 || bullet.Source != 1 {
		t.Errorf("Unexpected bullet %+v", bullet)
	}

	gun.BulletSize = 0
	if _, err := NewBullet(em, utils.Vector2{}, 0, 20, gun, 1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Expected ErrInvalidScale, got %v", err)
	}
}

func TestNewPowerUp(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPowerUp(em, &cfg.PowerUps, types.PowerUpImmunity, 500, 100, 2000)
	if err != nil {
		t.Fatalf("NewPowerUp failed: %v", err)
	}
	pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
	if pu.DurationMs != cfg.PowerUps.Immunity.DurationMs {
		t.Errorf("Expected duration %v, got %v", cfg.PowerUps.Immunity.DurationMs, pu.DurationMs)
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("Power-up should have a ground lifetime")
	}
	if lifetime.SpawnedAtMs != 2000 || lifetime.MaxLifetimeMs != cfg.PowerUps.GroundLifetimeMs {
		t.Errorf("Unexpected lifetime %+v", lifetime)
	}

	if _, err := NewPowerUp(em, &cfg.PowerUps, types.PowerUpNone, 0, 0, 0); err == nil {
		t.Error("Expected error for PowerUpNone")
	}
}

func TestNewPlaceable(t *testing.T) {
	cfg := config.DefaultGameConfig()

	t.Run("方块成为静态方块", func(t *testing.T) {
		em := ecs.NewEntityManager()
		id, err := NewPlaceable(em, cfg, types.ItemBlock, 100, 630)
		if err != nil {
			t.Fatalf("NewPlaceable failed: %v", err)
		}
		block, ok := ecs.GetComponent[*components.BlockComponent](em, id)
		if !ok {
			t.Fatal("Placed block should have BlockComponent")
		}
		if !block.PlacedByPlayer {
			t.Error("Placed block should be marked as placed by player")
		}
		if ecs.HasComponent[*components.PlaceableComponent](em, id) {
			t.Error("Placed block should not keep PlaceableComponent")
		}
	})

	t.Run("炮塔带有独立枪械", func(t *testing.T) {
		em := ecs.NewEntityManager()
		id, err := NewPlaceable(em, cfg, types.ItemShooter, 100, 660)
		if err != nil {
			t.Fatalf("NewPlaceable failed: %v", err)
		}
		p, _ := ecs.GetComponent[*components.PlaceableComponent](em, id)
		if p.Gun == nil {
			t.Fatal("Shooter should own a gun")
		}

		// 每个炮塔的冷却状态互不影响
		p.Gun.RecoilActive = true
		p.Gun.RecoilLastMs = 500
		otherID, err := NewPlaceable(em, cfg, types.ItemShooter, 300, 660)
		if err != nil {
			t.Fatalf("NewPlaceable failed: %v", err)
		}
		other, _ := ecs.GetComponent[*components.PlaceableComponent](em, otherID)
		if other.Gun == p.Gun {
			t.Fatal("Shooters should not share a gun")
		}
		if other.Gun.RecoilActive || other.Gun.RecoilLastMs != 0 {
			t.Errorf("New shooter gun should start ready, got %+v", other.Gun)
		}
		if p.Gun.Range != cfg.Placeables.Shooter.Gun.Range {
			t.Errorf("Expected range %v, got %v", cfg.Placeables.Shooter.Gun.Range, p.Gun.Range)
		}
	})

	t.Run("地雷", func(t *testing.T) {
		em := ecs.NewEntityManager()
		id, err := NewPlaceable(em, cfg, types.ItemMine, 100, 690)
		if err != nil {
			t.Fatalf("NewPlaceable failed: %v", err)
		}
		p, _ := ecs.GetComponent[*components.PlaceableComponent](em, id)
		if p.Active {
			t.Error("New mine should not be active")
		}
		if p.Damage != cfg.Placeables.Mine.Damage || p.EffectRadius != cfg.Placeables.Mine.EffectRadius {
			t.Errorf("Unexpected mine %+v", p)
		}
	})

	t.Run("枪械不可放置", func(t *testing.T) {
		em := ecs.NewEntityManager()
		if _, err := NewPlaceable(em, cfg, types.ItemGun, 0, 0); err == nil {
			t.Error("Expected error for gun")
		}
	})
}

func TestNewPlatform(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewPlatform(em, 1280, 720, 20)
	if err != nil {
		t.Fatalf("NewPlatform failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != 700 {
		t.Errorf("Platform top should be at 700, got %v", pos.Y)
	}

	if _, err := NewPlatform(em, 1280, 10, 20); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Expected ErrInvalidScale, got %v", err)
	}
}
