package entities

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
)

// NewBlock 创建静态可破坏方块
// 方块不受重力影响，生命值归零时由战斗系统移除
func NewBlock(em *ecs.EntityManager, x, y, width, height float64, maxHealth int, placedByPlayer bool) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	if err := validateScale("block", width, height); err != nil {
		return ecs.InvalidEntity, err
	}
	if err := validateHealth("block", maxHealth); err != nil {
		return ecs.InvalidEntity, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: width, Height: height})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: maxHealth, MaxHealth: maxHealth})
	ecs.AddComponent(em, id, &components.BlockComponent{PlacedByPlayer: placedByPlayer})
	return id, nil
}
