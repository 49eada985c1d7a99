package behavior

import (
	"math"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/utils"
)

// handleShooterBehavior 炮塔：瞄准射程内最近且视线无遮挡的僵尸，冷却就绪时开火
func (s *BehaviorSystem) handleShooterBehavior(entityID ecs.EntityID, placeable *components.PlaceableComponent) {
	if placeable.Gun == nil {
		return
	}
	rect, ok := systems.EntityBounds(s.entityManager, entityID)
	if !ok {
		return
	}
	muzzle := rect.Center()

	target, targetPos := s.nearestVisibleZombie(muzzle, placeable.Gun.Range)
	if target == ecs.InvalidEntity {
		placeable.TargetID = ecs.InvalidEntity
		return
	}

	elevation, ok := utils.AimElevation(muzzle, targetPos, s.combat.BulletSpeed(placeable.Gun), s.cfg.World.Gravity)
	if !ok {
		// 打不到的目标不保留，炮管保持原角度
		placeable.TargetID = ecs.InvalidEntity
		return
	}
	placeable.TargetID = target
	placeable.GunAngle = utils.ScreenAngle(elevation)

	if _, fired := s.combat.Fire(placeable.Gun, muzzle, placeable.GunAngle, entityID); fired {
		logger.Log.Debugf("[BehaviorSystem] Shooter %d fired at zombie %d", entityID, target)
	}
}

func (s *BehaviorSystem) nearestVisibleZombie(from utils.Vector2, maxRange float64) (ecs.EntityID, utils.Vector2) {
	blocked := systems.BlockedByBlocks(s.index)
	steps := s.cfg.World.LineOfSightSteps

	best := ecs.InvalidEntity
	var bestPos utils.Vector2
	bestDist := math.Inf(1)

	area := utils.Rect{X: from.X - maxRange, Y: from.Y - maxRange, W: 2 * maxRange, H: 2 * maxRange}
	for _, zombieID := range s.index.Query(area, systems.TagZombie) {
		r, ok := systems.EntityBounds(s.entityManager, zombieID)
		if !ok {
			continue
		}
		center := r.Center()
		dist := utils.Distance(from, center)
		if dist > maxRange || dist >= bestDist {
			continue
		}
		if !utils.LineOfSight(from, center, steps, blocked) {
			continue
		}
		best, bestPos, bestDist = zombieID, center, dist
	}
	return best, bestPos
}

// zombieInTriggerStrip 是否有僵尸进入放置物正上方的触发带（只比较水平投影）
func (s *BehaviorSystem) zombieInTriggerStrip(rect utils.Rect) bool {
	return len(s.index.InColumn(rect.X, rect.W, systems.TagZombie)) > 0
}

// zombiesInArea 返回与效果范围相交的存活僵尸
func (s *BehaviorSystem) zombiesInArea(area utils.Rect) []ecs.EntityID {
	return s.index.Colliding(area, systems.TagZombie)
}

// handleMineBehavior 地雷：触发时对范围内僵尸造成一次伤害，冷却结束后移除
func (s *BehaviorSystem) handleMineBehavior(entityID ecs.EntityID, placeable *components.PlaceableComponent) {
	now := s.gameState.CurrentTimeMs

	if placeable.Active {
		if now-placeable.UsedAtMs >= placeable.CooldownMs {
			s.entityManager.DestroyEntity(entityID)
		}
		return
	}

	rect, ok := systems.EntityBounds(s.entityManager, entityID)
	if !ok || !s.zombieInTriggerStrip(rect) {
		return
	}

	placeable.Active = true
	placeable.UsedAtMs = now

	victims := s.zombiesInArea(rect.Expand(placeable.EffectRadius))
	for _, zombieID := range victims {
		s.combat.DamageZombie(zombieID, placeable.Damage)
	}
	logger.Log.Infof("[BehaviorSystem] Mine %d exploded, %d zombies hit", entityID, len(victims))
}

// handleFreezeTrapBehavior 冰冻陷阱：触发后持续冻结范围内僵尸，冷却结束后解冻并移除
func (s *BehaviorSystem) handleFreezeTrapBehavior(entityID ecs.EntityID, placeable *components.PlaceableComponent) {
	now := s.gameState.CurrentTimeMs
	rect, ok := systems.EntityBounds(s.entityManager, entityID)
	if !ok {
		return
	}

	if !placeable.Active {
		if !s.zombieInTriggerStrip(rect) {
			return
		}
		placeable.Active = true
		placeable.UsedAtMs = now
		logger.Log.Infof("[BehaviorSystem] Freeze trap %d triggered", entityID)
	}

	if now-placeable.UsedAtMs >= placeable.CooldownMs {
		s.releaseFrozen(entityID, placeable)
		s.entityManager.DestroyEntity(entityID)
		return
	}

	for _, zombieID := range s.zombiesInArea(rect.Expand(placeable.EffectRadius)) {
		zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, zombieID)
		if !ok || zombie.Frozen {
			continue
		}
		zombie.Frozen = true
		zombie.FrozenBy = entityID
		zombie.State = components.ZombieFrozen
		placeable.Affected = append(placeable.Affected, zombieID)
	}
}

// releaseFrozen 解冻由该陷阱冻结的僵尸
func (s *BehaviorSystem) releaseFrozen(entityID ecs.EntityID, placeable *components.PlaceableComponent) {
	for _, zombieID := range placeable.Affected {
		zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, zombieID)
		if !ok || zombie.FrozenBy != entityID {
			continue
		}
		zombie.Frozen = false
		zombie.FrozenBy = ecs.InvalidEntity
		zombie.State = components.ZombiePursuing
	}
	placeable.Affected = nil
}
