package components

import "github.com/decker502/zshooter/pkg/utils"

// CollisionComponent 定义实体的碰撞盒尺寸（Scale）
// 碰撞盒原点与 PositionComponent 一致（左上角），宽高必须为非负数
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Bounds 由位置和碰撞盒计算轴对齐包围盒
func Bounds(pos *PositionComponent, col *CollisionComponent) utils.Rect {
	return utils.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}
}
