package entities

import (
	"fmt"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// NewZombie 创建僵尸实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（提供该种类僵尸的属性）
//   - kind: 僵尸种类（普通/跳跃）
//   - x, y: 左上角屏幕坐标
//   - nowMs: 当前模拟时钟，新僵尸的近战冷却从这里开始视为已就绪
//
// 返回:
//   - ecs.EntityID: 僵尸实体ID
//   - error: 配置缺失或数值非法时返回错误
func NewZombie(em *ecs.EntityManager, cfg *config.GameConfig, kind types.ZombieKind, x, y, nowMs float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	stats, ok := cfg.ZombieStatsFor(kind)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("no stats configured for zombie kind %s", kind)
	}
	if err := validateScale("zombie", stats.Width, stats.Height); err != nil {
		return ecs.InvalidEntity, err
	}
	if err := validateHealth("zombie", stats.MaxHealth); err != nil {
		return ecs.InvalidEntity, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	ecs.AddComponent(em, id, &components.ContactComponent{})
	ecs.AddComponent(em, id, &components.GravityComponent{})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: stats.MaxHealth, MaxHealth: stats.MaxHealth})
	ecs.AddComponent(em, id, &components.ZombieComponent{
		Kind:            kind,
		Speed:           stats.Speed,
		JumpHeight:      stats.JumpHeight,
		MeleeDamage:     stats.MeleeDamage,
		MeleeReach:      stats.MeleeReach,
		MeleeCooldownMs: stats.MeleeCooldownMs,
		LastHitMs:       nowMs - stats.MeleeCooldownMs,
		State:           components.ZombiePursuing,
	})

	return id, nil
}
