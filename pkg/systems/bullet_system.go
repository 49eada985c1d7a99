package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
)

// BulletSystem 子弹运动与命中判定
//
// 每帧先按当前速度移动，再施加重力。之后按顺序检查：
//  1. 到达平台高度 → 移除
//  2. 碰到任意方块 → 移除（不伤害方块）
//  3. 碰到存活僵尸 → 结算伤害并移除（只命中第一个）
type BulletSystem struct {
	em         *ecs.EntityManager
	cfg        *config.WorldConfig
	combat     *Combat
	index      *SpatialIndex
	platformID ecs.EntityID
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager, cfg *config.WorldConfig, combat *Combat, index *SpatialIndex, platformID ecs.EntityID) *BulletSystem {
	return &BulletSystem{
		em:         em,
		cfg:        cfg,
		combat:     combat,
		index:      index,
		platformID: platformID,
	}
}

// Update 推进所有子弹一帧
func (s *BulletSystem) Update() {
	platformTop, ok := SurfaceTop(s.em, s.platformID)
	if !ok {
		return
	}

	bullets := ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)
	if len(bullets) == 0 {
		return
	}

	s.index.Sync()

	for _, id := range bullets {
		if s.em.IsPendingDestroy(id) {
			continue
		}
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		vel.VY += s.cfg.Gravity

		if pos.Y >= platformTop {
			s.em.DestroyEntity(id)
			continue
		}

		r, ok := EntityBounds(s.em, id)
		if !ok {
			continue
		}
		if len(s.index.Colliding(r, TagBlock)) > 0 {
			s.em.DestroyEntity(id)
			continue
		}

		if hit := s.index.Colliding(r, TagZombie); len(hit) > 0 {
			s.combat.DamageZombie(hit[0], bullet.Damage)
			s.em.DestroyEntity(id)
		}
	}
}
