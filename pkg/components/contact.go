package components

import "github.com/decker502/zshooter/pkg/ecs"

// ContactComponent 记录实体四个方向上正在接触的表面（平台或方块）
//
// 每个方向保存接触表面的实体句柄，ecs.InvalidEntity 表示该方向无接触。
// 句柄只用于身份比较，不拥有被引用的实体；方块被移除时由
// ContactSystem 统一清理所有指向它的句柄。
type ContactComponent struct {
	Top    ecs.EntityID
	Bottom ecs.EntityID
	Left   ecs.EntityID
	Right  ecs.EntityID
}

// IsResting 实体是否站在某个表面上
func (c *ContactComponent) IsResting() bool {
	return c.Bottom != ecs.InvalidEntity
}

// ClearRef 清除所有指向指定表面的句柄
func (c *ContactComponent) ClearRef(surface ecs.EntityID) {
	if c.Top == surface {
		c.Top = ecs.InvalidEntity
	}
	if c.Bottom == surface {
		c.Bottom = ecs.InvalidEntity
	}
	if c.Left == surface {
		c.Left = ecs.InvalidEntity
	}
	if c.Right == surface {
		c.Right = ecs.InvalidEntity
	}
}

// References 是否有任意方向指向指定表面
func (c *ContactComponent) References(surface ecs.EntityID) bool {
	return c.Top == surface || c.Bottom == surface || c.Left == surface || c.Right == surface
}
