package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
)

// PhysicsSystem 重力积分与平台接触
//
// 处理所有带 GravityComponent 的实体（玩家、僵尸、道具）：
//   - 没有底部接触时：velocity.y += g，position.y += velocity.y
//   - 有底部接触时：velocity.y 归零，position.y 对齐到接触面顶部
//
// 玩家喷气时不施加重力，只按喷射速度上升。
// 被冰冻的僵尸仍然受重力影响。
// 子弹的运动由 BulletSystem 负责。
type PhysicsSystem struct {
	em         *ecs.EntityManager
	cfg        *config.WorldConfig
	platformID ecs.EntityID
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.WorldConfig, platformID ecs.EntityID) *PhysicsSystem {
	return &PhysicsSystem{
		em:         em,
		cfg:        cfg,
		platformID: platformID,
	}
}

// Update 执行一帧物理积分
func (s *PhysicsSystem) Update() {
	platformTop, ok := SurfaceTop(s.em, s.platformID)
	if !ok {
		return
	}

	bodies := ecs.GetEntitiesWith4[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.ContactComponent,
		*components.GravityComponent,
	](s.em)

	for _, id := range bodies {
		if s.em.IsPendingDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		contact, _ := ecs.GetComponent[*components.ContactComponent](s.em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok {
			continue
		}

		// 接触面已不存在（理论上在方块移除时已清理）
		if contact.Bottom != ecs.InvalidEntity && !s.em.IsAlive(contact.Bottom) {
			contact.Bottom = ecs.InvalidEntity
		}

		// 平台检测
		if contact.Bottom == ecs.InvalidEntity && vel.VY >= 0 && pos.Y+col.Height >= platformTop {
			contact.Bottom = s.platformID
		}

		if player, isPlayer := ecs.GetComponent[*components.PlayerComponent](s.em, id); isPlayer && player.JetpackActive {
			pos.Y += vel.VY
			continue
		}

		if !contact.IsResting() {
			vel.VY += s.cfg.Gravity
			pos.Y += vel.VY

			// 本帧落到平台上，立即对齐
			if pos.Y+col.Height >= platformTop {
				contact.Bottom = s.platformID
				vel.VY = 0
				pos.Y = platformTop - col.Height
			}
			continue
		}

		top, ok := SurfaceTop(s.em, contact.Bottom)
		if !ok {
			contact.Bottom = ecs.InvalidEntity
			continue
		}
		vel.VY = 0
		pos.Y = top - col.Height
	}
}
