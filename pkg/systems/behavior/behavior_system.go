package behavior

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/types"
)

// BehaviorSystem 处理僵尸和放置物的行为逻辑
// 放置物（炮塔、地雷、冰冻陷阱）先于僵尸更新，本帧被冻结或炸死的僵尸不再行动
type BehaviorSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.MatchState
	cfg             *config.GameConfig
	combat          *systems.Combat
	index           *systems.SpatialIndex
	playerID        ecs.EntityID
	logFrameCounter int // 日志输出计数器
}

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - gs: 对局状态（模拟时钟、道具）
//   - cfg: 游戏配置
//   - combat: 伤害结算
//   - index: 空间索引（目标与方块查询）
//   - playerID: 玩家实体ID（僵尸的追踪目标）
func NewBehaviorSystem(em *ecs.EntityManager, gs *game.MatchState, cfg *config.GameConfig, combat *systems.Combat, index *systems.SpatialIndex, playerID ecs.EntityID) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager: em,
		gameState:     gs,
		cfg:           cfg,
		combat:        combat,
		index:         index,
		playerID:      playerID,
	}
}

// Update 更新所有放置物和僵尸
func (s *BehaviorSystem) Update() {
	s.index.Sync()
	placeableEntityList := s.queryPlaceables()

	for _, entityID := range placeableEntityList {
		if s.entityManager.IsPendingDestroy(entityID) {
			continue
		}
		placeable, _ := ecs.GetComponent[*components.PlaceableComponent](s.entityManager, entityID)

		switch placeable.Kind {
		case types.ItemShooter:
			s.handleShooterBehavior(entityID, placeable)
		case types.ItemMine:
			s.handleMineBehavior(entityID, placeable)
		case types.ItemFreezeTrap:
			s.handleFreezeTrapBehavior(entityID, placeable)
		default:
			logger.Log.Warnf("[BehaviorSystem] Placeable %d has unknown kind %s", entityID, placeable.Kind)
		}
	}

	zombieEntityList := systems.AliveZombies(s.entityManager)

	if total := len(placeableEntityList) + len(zombieEntityList); total > 0 {
		s.logFrameCounter++
		if s.logFrameCounter%LogOutputFrameInterval == 1 {
			logger.Log.Debugf("[BehaviorSystem] Updating %d entities (placeables: %d, zombies: %d)",
				total, len(placeableEntityList), len(zombieEntityList))
		}
	}

	for _, entityID := range zombieEntityList {
		s.handleZombieBehavior(entityID)
	}
}

func (s *BehaviorSystem) queryPlaceables() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.PlaceableComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)
}
