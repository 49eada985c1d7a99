package systems

import (
	"math"
	"slices"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/utils"
	"github.com/solarlune/resolv"
)

// 空间索引中的实体分类
var (
	TagBlock     = resolv.NewTag("block")
	TagZombie    = resolv.NewTag("zombie")
	TagPlayer    = resolv.NewTag("player")
	TagBullet    = resolv.NewTag("bullet")
	TagPowerUp   = resolv.NewTag("powerup")
	TagPlaceable = resolv.NewTag("placeable")
)

const (
	spatialCellSize = 64
	// 网格在屏幕四周额外覆盖的范围，超出部分的实体逐个检测
	spatialMargin = 2048
	// 查询框外扩量，保证边界刚好接触的实体也进入候选集
	queryPad = 1.0
)

type indexedShape struct {
	shape   resolv.IShape // outside 为 true 时为 nil
	tag     resolv.Tags
	rect    utils.Rect
	outside bool
}

// SpatialIndex 基于 resolv.Space 的宽阶段碰撞索引
//
// 索引只负责给出候选实体，最终判定仍由调用方用 utils.DetectCollision
// 或 utils.Overlaps 基于当前包围盒完成。实体位置由 Sync 从
// PositionComponent 同步，使用索引的系统在查询前调用 Sync。
type SpatialIndex struct {
	em     *ecs.EntityManager
	space  *resolv.Space
	area   utils.Rect // 网格覆盖的世界坐标范围
	shapes map[ecs.EntityID]*indexedShape
	owners map[resolv.IShape]ecs.EntityID
}

// NewSpatialIndex 为指定屏幕尺寸创建空间索引
func NewSpatialIndex(em *ecs.EntityManager, screenWidth, screenHeight float64) *SpatialIndex {
	w := int(math.Ceil(screenWidth)) + 2*spatialMargin
	h := int(math.Ceil(screenHeight)) + 2*spatialMargin
	return &SpatialIndex{
		em:     em,
		space:  resolv.NewSpace(w, h, spatialCellSize, spatialCellSize),
		area:   utils.Rect{X: -spatialMargin, Y: -spatialMargin, W: float64(w), H: float64(h)},
		shapes: make(map[ecs.EntityID]*indexedShape),
		owners: make(map[resolv.IShape]ecs.EntityID),
	}
}

// Len 返回当前索引中的实体数量
func (idx *SpatialIndex) Len() int {
	return len(idx.shapes)
}

// Sync 将索引与实体的当前包围盒对齐：新实体加入，移动的实体更新位置，已删除的实体移出
func (idx *SpatialIndex) Sync() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](idx.em)
	seen := make(map[ecs.EntityID]bool, len(ids))
	for _, id := range ids {
		if idx.em.IsPendingDestroy(id) {
			continue
		}
		tag, ok := idx.tagFor(id)
		if !ok {
			continue
		}
		r, _ := EntityBounds(idx.em, id)
		idx.put(id, tag, r)
		seen[id] = true
	}
	for id := range idx.shapes {
		if !seen[id] {
			idx.remove(id)
		}
	}
}

func (idx *SpatialIndex) tagFor(id ecs.EntityID) (resolv.Tags, bool) {
	switch {
	case ecs.HasComponent[*components.BlockComponent](idx.em, id):
		return TagBlock, true
	case ecs.HasComponent[*components.ZombieComponent](idx.em, id):
		return TagZombie, true
	case ecs.HasComponent[*components.PlayerComponent](idx.em, id):
		return TagPlayer, true
	case ecs.HasComponent[*components.BulletComponent](idx.em, id):
		return TagBullet, true
	case ecs.HasComponent[*components.PowerUpComponent](idx.em, id):
		return TagPowerUp, true
	case ecs.HasComponent[*components.PlaceableComponent](idx.em, id):
		return TagPlaceable, true
	}
	return 0, false
}

func (idx *SpatialIndex) put(id ecs.EntityID, tag resolv.Tags, r utils.Rect) {
	entry, ok := idx.shapes[id]
	if ok && entry.rect == r && entry.tag == tag {
		return
	}
	inside := idx.area.Contains(r)
	if ok && inside && !entry.outside && entry.tag == tag && entry.rect.W == r.W && entry.rect.H == r.H {
		// resolv 的矩形以中心点为位置
		entry.shape.SetPosition(r.X+r.W/2-idx.area.X, r.Y+r.H/2-idx.area.Y)
		entry.rect = r
		return
	}
	if ok {
		idx.remove(id)
	}

	entry = &indexedShape{tag: tag, rect: r, outside: !inside}
	if inside {
		entry.shape = resolv.NewRectangleTopLeft(r.X-idx.area.X, r.Y-idx.area.Y, r.W, r.H)
		entry.shape.Tags().Set(tag)
		idx.space.Add(entry.shape)
		idx.owners[entry.shape] = id
	}
	idx.shapes[id] = entry
}

func (idx *SpatialIndex) remove(id ecs.EntityID) {
	entry, ok := idx.shapes[id]
	if !ok {
		return
	}
	if entry.shape != nil {
		idx.space.Remove(entry.shape)
		delete(idx.owners, entry.shape)
	}
	delete(idx.shapes, id)
}

// Query 返回包围盒可能与 area 相交的指定类别实体（宽阶段，按创建顺序）
// 结果只包含未被标记删除的实体，调用方需自行做精确判定
func (idx *SpatialIndex) Query(area utils.Rect, tag resolv.Tags) []ecs.EntityID {
	padded := area.Expand(queryPad)
	found := make(map[ecs.EntityID]bool)

	if idx.area.Contains(padded) {
		q := resolv.NewRectangleTopLeft(padded.X-idx.area.X, padded.Y-idx.area.Y, padded.W, padded.H)
		idx.space.Add(q)
		q.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: q.SelectTouchingCells(0).FilterShapes().ByTags(tag),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if id, ok := idx.owners[set.OtherShape]; ok {
					found[id] = true
				}
				return true
			},
		})
		idx.space.Remove(q)
	} else {
		// 查询框超出网格，逐个检测网格内的实体
		for id, e := range idx.shapes {
			if !e.outside && e.tag == tag && utils.DetectCollision(padded, e.rect) {
				found[id] = true
			}
		}
	}

	for id, e := range idx.shapes {
		if e.outside && e.tag == tag && utils.DetectCollision(padded, e.rect) {
			found[id] = true
		}
	}

	ids := make([]ecs.EntityID, 0, len(found))
	for id := range found {
		if !idx.em.IsPendingDestroy(id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Colliding 返回当前包围盒与 area 相交（含边界接触）的指定类别实体
func (idx *SpatialIndex) Colliding(area utils.Rect, tag resolv.Tags) []ecs.EntityID {
	candidates := idx.Query(area, tag)
	result := candidates[:0]
	for _, id := range candidates {
		if r, ok := EntityBounds(idx.em, id); ok && utils.DetectCollision(area, r) {
			result = append(result, id)
		}
	}
	return result
}

// InColumn 返回水平投影与 [x, x+w] 重叠的指定类别实体，竖直方向覆盖整个网格
func (idx *SpatialIndex) InColumn(x, w float64, tag resolv.Tags) []ecs.EntityID {
	column := utils.Rect{X: x, Y: idx.area.Y + queryPad, W: w, H: idx.area.H - 2*queryPad}
	candidates := idx.Query(column, tag)
	result := candidates[:0]
	for _, id := range candidates {
		if r, ok := EntityBounds(idx.em, id); ok && utils.HorizontalOverlap(column, r) {
			result = append(result, id)
		}
	}
	return result
}
