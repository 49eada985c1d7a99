package behavior

import (
	"math"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

// handleZombieBehavior 僵尸行为
//
// 优先级：
//  1. 被冰冻：什么也不做（重力由物理系统处理）
//  2. 朝向玩家一侧没有方块阻挡，且玩家不在攻击范围内：移动
//  3. 玩家在攻击范围内：攻击玩家
//  4. 跳跃僵尸被可越过的方块挡住：起跳
//  5. 攻击范围内有方块：攻击方块
func (s *BehaviorSystem) handleZombieBehavior(entityID ecs.EntityID) {
	zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if zombie.Frozen {
		zombie.State = components.ZombieFrozen
		zombie.Direction = 0
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	contact, _ := ecs.GetComponent[*components.ContactComponent](s.entityManager, entityID)
	zombieRect, ok := systems.EntityBounds(s.entityManager, entityID)
	if !ok {
		return
	}
	playerRect, ok := systems.EntityBounds(s.entityManager, s.playerID)
	if !ok {
		return
	}

	direction := directionTo(zombieRect, playerRect, zombie.Speed)
	zombie.Direction = direction

	reach := zombieRect.Expand(zombie.MeleeReach)
	playerInReach := utils.DetectCollision(reach, playerRect)
	blockingID := blockingSurface(contact, direction)

	if direction != 0 && blockingID == ecs.InvalidEntity && !playerInReach {
		pos.X += float64(direction) * zombie.Speed
		zombie.State = components.ZombiePursuing
		zombie.TargetID = ecs.InvalidEntity
		return
	}

	if playerInReach {
		zombie.State = components.ZombieMeleeAttacking
		zombie.TargetID = s.playerID
		s.combat.MeleePlayer(zombie, s.playerID)
		return
	}

	if blockingID != ecs.InvalidEntity && zombie.Kind == types.ZombieJumper && s.tryJump(entityID, zombie, zombieRect, blockingID) {
		return
	}

	if target := s.blockInReach(reach, blockingID); target != ecs.InvalidEntity {
		zombie.State = components.ZombieMeleeAttacking
		zombie.TargetID = target
		s.combat.MeleeBlock(zombie, target)
		return
	}

	zombie.State = components.ZombiePursuing
	zombie.TargetID = ecs.InvalidEntity
}

// directionTo 返回朝向目标的水平方向，水平距离小于一步时为 0
func directionTo(from, to utils.Rect, step float64) int {
	dx := to.Center().X - from.Center().X
	if math.Abs(dx) < step {
		return 0
	}
	if dx > 0 {
		return 1
	}
	return -1
}

// blockingSurface 返回移动方向上挡路的方块
func blockingSurface(contact *components.ContactComponent, direction int) ecs.EntityID {
	if contact == nil {
		return ecs.InvalidEntity
	}
	switch direction {
	case -1:
		return contact.Left
	case 1:
		return contact.Right
	default:
		return ecs.InvalidEntity
	}
}

// tryJump 跳跃僵尸站在地面上、且跳跃高度足以越过挡路方块时起跳
func (s *BehaviorSystem) tryJump(entityID ecs.EntityID, zombie *components.ZombieComponent, zombieRect utils.Rect, blockID ecs.EntityID) bool {
	contact, _ := ecs.GetComponent[*components.ContactComponent](s.entityManager, entityID)
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, entityID)
	if !ok || contact == nil || !contact.IsResting() || vel.VY != 0 {
		return false
	}
	blockTop, ok := systems.SurfaceTop(s.entityManager, blockID)
	if !ok {
		return false
	}

	g := s.cfg.World.Gravity
	apex := zombie.JumpHeight * zombie.JumpHeight / (2 * g)
	if zombieRect.Y+zombieRect.H-blockTop > apex {
		return false
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	contact.Bottom = ecs.InvalidEntity
	vel.VY = -zombie.JumpHeight
	pos.Y += vel.VY
	zombie.State = components.ZombiePursuing
	zombie.TargetID = ecs.InvalidEntity
	return true
}

// blockInReach 优先攻击挡路的方块，否则攻击范围内的第一个方块
func (s *BehaviorSystem) blockInReach(reach utils.Rect, preferred ecs.EntityID) ecs.EntityID {
	if preferred != ecs.InvalidEntity && s.entityManager.IsAlive(preferred) {
		if r, ok := systems.EntityBounds(s.entityManager, preferred); ok && utils.DetectCollision(reach, r) {
			return preferred
		}
	}
	if blocks := s.index.Colliding(reach, systems.TagBlock); len(blocks) > 0 {
		return blocks[0]
	}
	return ecs.InvalidEntity
}
