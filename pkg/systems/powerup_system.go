package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
)

// PowerUpSystem 道具拾取与过期
// 同一时刻最多只有一个道具生效，新拾取的道具直接替换旧的
type PowerUpSystem struct {
	em       *ecs.EntityManager
	state    *game.MatchState
	index    *SpatialIndex
	playerID ecs.EntityID
}

// NewPowerUpSystem 创建道具系统
func NewPowerUpSystem(em *ecs.EntityManager, state *game.MatchState, index *SpatialIndex, playerID ecs.EntityID) *PowerUpSystem {
	return &PowerUpSystem{em: em, state: state, index: index, playerID: playerID}
}

// Update 处理过期和拾取
func (s *PowerUpSystem) Update() {
	now := s.state.CurrentTimeMs
	if s.state.PowerUps.Expire(now) {
		logger.Log.Debug("[PowerUp] Active power-up expired")
	}

	playerRect, ok := EntityBounds(s.em, s.playerID)
	if !ok {
		return
	}

	s.index.Sync()
	for _, id := range s.index.Colliding(playerRect, TagPowerUp) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](s.em, id)
		s.state.PowerUps.Activate(pu.Kind, now, pu.DurationMs)
		s.em.DestroyEntity(id)
		logger.Log.Infof("[PowerUp] Picked up %s for %.0fms", pu.Kind, pu.DurationMs)
	}
}
