package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/game"
)

// LifetimeSystem 管理实体的生命周期
// 移除存在时间超过上限的实体（地面上未被拾取的道具）
type LifetimeSystem struct {
	em    *ecs.EntityManager
	state *game.MatchState
}

// NewLifetimeSystem 创建生命周期管理系统
func NewLifetimeSystem(em *ecs.EntityManager, state *game.MatchState) *LifetimeSystem {
	return &LifetimeSystem{em: em, state: state}
}

// Update 标记并删除过期实体
func (s *LifetimeSystem) Update() {
	now := s.state.CurrentTimeMs
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if lifetime.IsExpired {
			continue
		}
		if now-lifetime.SpawnedAtMs >= lifetime.MaxLifetimeMs {
			lifetime.IsExpired = true
			s.em.DestroyEntity(id)
		}
	}
}
