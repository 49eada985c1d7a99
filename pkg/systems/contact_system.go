package systems

import (
	"math"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/utils"
)

// ContactSystem 方块接触状态解析
//
// 对每个带 ContactComponent 的实体，从空间索引取出附近的方块逐个判定：
//   - 重叠：判定接触边并把实体推到方块边缘
//   - 不重叠：清除该实体指向这个方块的所有接触引用
//
// 接触边判定顺序：
//  1. 站在方块顶上（底边在容差内贴合方块顶边，或本帧下落穿过顶边）→ bottom
//  2. 水平贴合（穿透深度不超过一步移动距离）→ left / right
//  3. 上升时头顶撞到方块底边 → top
//  4. 以上都不满足（放置物或滚动造成的深度重叠）→ 沿最小穿透轴推出
type ContactSystem struct {
	em    *ecs.EntityManager
	cfg   *config.WorldConfig
	index *SpatialIndex
}

// NewContactSystem 创建接触解析系统
func NewContactSystem(em *ecs.EntityManager, cfg *config.WorldConfig, index *SpatialIndex) *ContactSystem {
	return &ContactSystem{em: em, cfg: cfg, index: index}
}

// contactBody 一次解析中用到的实体组件
type contactBody struct {
	id      ecs.EntityID
	pos     *components.PositionComponent
	col     *components.CollisionComponent
	vel     *components.VelocityComponent // 可能为 nil
	contact *components.ContactComponent
	step    float64 // 每帧最大水平位移
}

// Update 执行一帧接触解析
func (s *ContactSystem) Update() {
	bodies := s.collectBodies()
	if len(bodies) == 0 {
		return
	}
	s.index.Sync()

	for i := range bodies {
		s.resolveBody(&bodies[i])
	}
}

// resolveBody 按创建顺序处理实体附近的方块
// 推出距离不超过实体自身尺寸，候选范围按此外扩
func (s *ContactSystem) resolveBody(b *contactBody) {
	reach := math.Max(b.col.Width, b.col.Height) + b.step
	touching := make(map[ecs.EntityID]bool)

	for _, blockID := range s.index.Query(components.Bounds(b.pos, b.col).Expand(reach), TagBlock) {
		blockRect, ok := EntityBounds(s.em, blockID)
		if !ok {
			continue
		}
		if utils.DetectCollision(blockRect, components.Bounds(b.pos, b.col)) {
			s.resolve(b, blockID, blockRect)
			touching[blockID] = true
		} else {
			b.contact.ClearRef(blockID)
		}
	}

	// 已离开候选范围的方块
	for _, ref := range [...]ecs.EntityID{b.contact.Top, b.contact.Bottom, b.contact.Left, b.contact.Right} {
		if ref == ecs.InvalidEntity || touching[ref] || s.em.IsPendingDestroy(ref) {
			continue
		}
		if ecs.HasComponent[*components.BlockComponent](s.em, ref) {
			b.contact.ClearRef(ref)
		}
	}
}

func (s *ContactSystem) collectBodies() []contactBody {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.ContactComponent,
	](s.em)

	bodies := make([]contactBody, 0, len(ids))
	for _, id := range ids {
		if s.em.IsPendingDestroy(id) {
			continue
		}
		b := contactBody{id: id}
		b.pos, _ = ecs.GetComponent[*components.PositionComponent](s.em, id)
		b.col, _ = ecs.GetComponent[*components.CollisionComponent](s.em, id)
		b.contact, _ = ecs.GetComponent[*components.ContactComponent](s.em, id)
		b.vel, _ = ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok {
			b.step = player.Speed
		} else if zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.em, id); ok {
			b.step = zombie.Speed
		}
		bodies = append(bodies, b)
	}
	return bodies
}

func (s *ContactSystem) resolve(b *contactBody, blockID ecs.EntityID, block utils.Rect) {
	if b.contact.Bottom == blockID {
		return
	}
	b.contact.ClearRef(blockID)

	eps := s.cfg.ContactEpsilon
	es := components.Bounds(b.pos, b.col).Sides()
	bs := block.Sides()
	vy := 0.0
	if b.vel != nil {
		vy = b.vel.VY
	}

	// 1. 站立或落地
	if vy >= 0 && es.Bottom >= bs.Top-eps && es.Bottom-bs.Top <= vy+eps {
		s.landOn(b, blockID, bs.Top)
		return
	}

	// 2. 水平贴合
	tolerance := eps + b.step
	if bs.Left < es.Left && bs.Right-es.Left <= tolerance {
		b.contact.Left = blockID
		b.pos.X = bs.Right
		return
	}
	if bs.Right > es.Right && es.Right-bs.Left <= tolerance {
		b.contact.Right = blockID
		b.pos.X = bs.Left - b.col.Width
		return
	}

	// 3. 头顶撞到方块
	if vy < 0 && es.Top >= bs.Top && es.Top <= bs.Bottom {
		b.contact.Top = blockID
		b.pos.Y = bs.Bottom
		b.vel.VY = 0
		return
	}

	// 4. 深度重叠，沿最小穿透轴推出
	overlapX := math.Min(es.Right, bs.Right) - math.Max(es.Left, bs.Left)
	overlapY := math.Min(es.Bottom, bs.Bottom) - math.Max(es.Top, bs.Top)
	if overlapY <= overlapX && es.MiddleY <= bs.MiddleY {
		s.landOn(b, blockID, bs.Top)
		return
	}
	if es.MiddleX < bs.MiddleX {
		b.contact.Right = blockID
		b.pos.X = bs.Left - b.col.Width
	} else {
		b.contact.Left = blockID
		b.pos.X = bs.Right
	}
}

func (s *ContactSystem) landOn(b *contactBody, blockID ecs.EntityID, top float64) {
	b.contact.Bottom = blockID
	b.pos.Y = top - b.col.Height
	if b.vel != nil {
		b.vel.VY = 0
	}
}
