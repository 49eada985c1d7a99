package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/utils"
)

// EntityBounds 获取实体的包围盒
func EntityBounds(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return components.Bounds(pos, col), true
}

// AliveBlocks 返回所有未被标记删除的方块
func AliveBlocks(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.BlockComponent](em)
	alive := ids[:0]
	for _, id := range ids {
		if !em.IsPendingDestroy(id) {
			alive = append(alive, id)
		}
	}
	return alive
}

// AliveZombies 返回所有未被标记删除的僵尸
func AliveZombies(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.ZombieComponent](em)
	alive := ids[:0]
	for _, id := range ids {
		if !em.IsPendingDestroy(id) {
			alive = append(alive, id)
		}
	}
	return alive
}

// BlockedByBlocks 返回一个判定点是否落在任意方块内的函数，用于轨迹和视线检测
// 候选方块来自空间索引，调用前索引应已同步
func BlockedByBlocks(index *SpatialIndex) func(utils.Vector2) bool {
	return func(p utils.Vector2) bool {
		return len(index.Colliding(utils.PointRect(p), TagBlock)) > 0
	}
}

// SurfaceTop 返回接触面（平台或方块）的顶部Y坐标
func SurfaceTop(em *ecs.EntityManager, surface ecs.EntityID) (float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, surface)
	if !ok {
		return 0, false
	}
	return pos.Y, true
}
