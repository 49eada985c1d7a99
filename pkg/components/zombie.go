package components

import (
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// ZombieState 僵尸行为状态机的状态
type ZombieState int

const (
	// ZombiePursuing 追踪玩家
	ZombiePursuing ZombieState = iota
	// ZombieMeleeAttacking 目标在攻击范围内，原地近战攻击
	ZombieMeleeAttacking
	// ZombieFrozen 被冰冻，暂停所有追踪和攻击逻辑（重力仍然生效）
	ZombieFrozen
)

// String 返回状态名称
func (s ZombieState) String() string {
	switch s {
	case ZombiePursuing:
		return "pursuing"
	case ZombieMeleeAttacking:
		return "melee"
	case ZombieFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// ZombieComponent 僵尸的专属状态
type ZombieComponent struct {
	Kind       types.ZombieKind
	Speed      float64 // 水平移动速度（像素/帧）
	JumpHeight float64 // 起跳初速度（仅跳跃僵尸使用）

	MeleeDamage     int     // 近战伤害
	MeleeReach      float64 // 攻击范围：包围盒向四周扩展的距离
	MeleeCooldownMs float64 // 攻击冷却（毫秒）
	LastHitMs       float64 // 上次成功攻击的模拟时钟

	Frozen   bool         // 是否被冰冻
	FrozenBy ecs.EntityID // 冰冻来源（冰冻陷阱实体）

	State     ZombieState
	Direction int          // 最近一次的移动方向：-1 左，0 静止，1 右
	TargetID  ecs.EntityID // 当前近战目标
}

// CanAttack 冷却是否已结束
func (z *ZombieComponent) CanAttack(nowMs float64) bool {
	return nowMs-z.LastHitMs >= z.MeleeCooldownMs
}
