package components

import "github.com/decker502/zshooter/pkg/ecs"

// BulletComponent 子弹的专属状态
// 碰撞盒尺寸由半径推导（2r × 2r），速度由发射角度和初速度推导
type BulletComponent struct {
	Damage int
	Radius float64
	Source ecs.EntityID // 发射者（玩家或炮塔）
}
