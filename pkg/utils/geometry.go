// Package utils 提供游戏模拟中常用的几何与弹道工具函数
//
// # 坐标系统
//
// 所有实体使用屏幕坐标系：原点在左上角，X 向右为正，Y 向下为正。
// 实体的位置是其包围盒的左上角，尺寸（Scale）为宽高。
package utils

// Vector2 二维向量，用于位置、尺寸或速度
type Vector2 struct {
	X float64
	Y float64
}

// Add 返回两个向量之和
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回两个向量之差
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect 轴对齐包围盒（左上角 + 宽高）
type Rect struct {
	X, Y float64 // 左上角
	W, H float64 // 宽高，允许为 0（退化矩形）
}

// NewRect 由位置和尺寸构造包围盒
func NewRect(position, scale Vector2) Rect {
	return Rect{X: position.X, Y: position.Y, W: scale.X, H: scale.Y}
}

// PointRect 返回一个零面积的点矩形
func PointRect(p Vector2) Rect {
	return Rect{X: p.X, Y: p.Y}
}

// Sides 包围盒四边及中心坐标
type Sides struct {
	Top     float64
	Bottom  float64
	Left    float64
	Right   float64
	MiddleX float64
	MiddleY float64
}

// Sides 计算包围盒四边及中心
func (r Rect) Sides() Sides {
	return Sides{
		Top:     r.Y,
		Bottom:  r.Y + r.H,
		Left:    r.X,
		Right:   r.X + r.W,
		MiddleX: r.X + r.W/2,
		MiddleY: r.Y + r.H/2,
	}
}

// Center 返回包围盒中心点
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Expand 返回向四周各扩展 d 的包围盒（用于攻击范围、效果范围）
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// DetectCollision AABB 重叠检测
//
// 边界刚好接触也视为碰撞（闭区间）。该函数满足对称性：
// DetectCollision(a, b) == DetectCollision(b, a)。
func DetectCollision(a, b Rect) bool {
	sa := a.Sides()
	sb := b.Sides()
	return sa.Top <= sb.Bottom &&
		sa.Bottom >= sb.Top &&
		sa.Left <= sb.Right &&
		sa.Right >= sb.Left
}

// HorizontalOverlap 检查两个包围盒在 X 轴上的投影是否重叠（闭区间）
func HorizontalOverlap(a, b Rect) bool {
	sa := a.Sides()
	sb := b.Sides()
	return sa.Left <= sb.Right && sa.Right >= sb.Left
}

// Overlaps 严格重叠检测，仅接触边界不算重叠（用于放置物的堆叠判定）
func Overlaps(a, b Rect) bool {
	sa := a.Sides()
	sb := b.Sides()
	return sa.Top < sb.Bottom &&
		sa.Bottom > sb.Top &&
		sa.Left < sb.Right &&
		sa.Right > sb.Left
}

// Contains 检查 o 是否完全位于 r 内（闭区间）
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
