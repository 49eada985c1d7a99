package components

import (
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// PlaceableComponent 已放置的装置（炮塔、地雷、冰冻陷阱）
//
// 方块类放置物放置后直接变成 BlockComponent 实体，不使用此组件。
//
// 状态机：
//   - Shooter: 常驻，每帧重新瞄准最近的可见僵尸，经 Gun 的冷却门控开火
//   - Mine: 待命 → 僵尸进入触发带 → 立即造成一次范围伤害 → 冷却结束后自毁
//   - FreezeTrap: 待命 → 僵尸进入触发带 → 冻结范围内僵尸 → 冷却结束后解冻并自毁
type PlaceableComponent struct {
	Kind         types.ItemKind
	Damage       int
	CooldownMs   float64 // 地雷/冰冻陷阱：触发后到自毁的时长
	EffectRadius float64 // 效果范围：包围盒向四周扩展的距离

	Active   bool    // 已被触发
	UsedAtMs float64 // 触发时的模拟时钟

	// 炮塔
	Gun      *Gun
	TargetID ecs.EntityID
	GunAngle float64

	// 冰冻陷阱冻结的僵尸，用于到期解冻
	Affected []ecs.EntityID
}
