package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/game"
)

// CameraSystem 横向卷轴摄像机
//
// 玩家保持在屏幕中心附近的死区 [w/2 - offset·w, w/2 + offset·w] 内。
// 玩家越过死区边界继续移动时，玩家本身不动，
// 其他所有世界实体（僵尸、方块、子弹、道具、放置物）反向平移，
// 同时累计 CameraX 以便刷怪点随世界一起滚动。平台固定不动。
// 滚动后空间索引立即重新同步。
type CameraSystem struct {
	em         *ecs.EntityManager
	state      *game.MatchState
	index      *SpatialIndex
	offset     float64
	playerID   ecs.EntityID
	platformID ecs.EntityID
}

// NewCameraSystem 创建摄像机系统
func NewCameraSystem(em *ecs.EntityManager, state *game.MatchState, index *SpatialIndex, offset float64, playerID, platformID ecs.EntityID) *CameraSystem {
	return &CameraSystem{
		em:         em,
		state:      state,
		index:      index,
		offset:     offset,
		playerID:   playerID,
		platformID: platformID,
	}
}

// DeadZone 返回死区的左右边界（屏幕坐标X）
func (s *CameraSystem) DeadZone() (minX, maxX float64) {
	w := s.state.ScreenWidth
	return w/2 - s.offset*w, w/2 + s.offset*w
}

// Scroll 世界整体平移 -dx
// dx > 0 表示摄像机向右移动（玩家向右走）
func (s *CameraSystem) Scroll(dx float64) {
	if dx == 0 {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](s.em) {
		if id == s.playerID || id == s.platformID {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X -= dx
	}
	s.state.CameraX += dx
	s.index.Sync()
}
