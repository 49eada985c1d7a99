package entities

import (
	"fmt"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// NewPowerUp 创建地面道具
// 道具受重力影响落到地面，未被拾取时在 groundLifetimeMs 后消失（0 表示永久）
func NewPowerUp(em *ecs.EntityManager, cfg *config.PowerUpsConfig, kind types.PowerUpKind, x, y, nowMs float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	if kind == types.PowerUpNone {
		return ecs.InvalidEntity, fmt.Errorf("cannot spawn power-up of kind %s", kind)
	}
	if err := validateScale("power-up", cfg.Width, cfg.Height); err != nil {
		return ecs.InvalidEntity, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	ecs.AddComponent(em, id, &components.ContactComponent{})
	ecs.AddComponent(em, id, &components.GravityComponent{})
	ecs.AddComponent(em, id, &components.PowerUpComponent{
		Kind:       kind,
		DurationMs: cfg.Duration(kind),
	})
	if cfg.GroundLifetimeMs > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			SpawnedAtMs:   nowMs,
			MaxLifetimeMs: cfg.GroundLifetimeMs,
		})
	}
	return id, nil
}
