package entities

import (
	"fmt"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// NewPlaceable 在指定位置放置一个可放置物
//
// 方块放置后立即成为普通静态方块；炮塔、地雷、冰冻陷阱带有 PlaceableComponent，
// 由放置物行为系统驱动。
//
// 参数:
//   - x, y: 左上角屏幕坐标（调用方负责对齐到落脚面）
func NewPlaceable(em *ecs.EntityManager, cfg *config.GameConfig, kind types.ItemKind, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	stats, ok := cfg.Placeables.Stats(kind)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("item %s is not placeable", kind)
	}

	if kind == types.ItemBlock {
		return NewBlock(em, x, y, stats.Width, stats.Height, cfg.Block.MaxHealth, true)
	}

	if err := validateScale(kind.String(), stats.Width, stats.Height); err != nil {
		return ecs.InvalidEntity, err
	}

	placeable := &components.PlaceableComponent{
		Kind:         kind,
		Damage:       stats.Damage,
		CooldownMs:   stats.CooldownMs,
		EffectRadius: stats.EffectRadius,
	}
	if kind == types.ItemShooter {
		if stats.Gun == nil {
			return ecs.InvalidEntity, fmt.Errorf("shooter has no gun configured")
		}
		placeable.Gun = NewGun(*stats.Gun)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	ecs.AddComponent(em, id, placeable)
	return id, nil
}
