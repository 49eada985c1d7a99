package entities

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/utils"
)

// NewBullet 创建子弹实体
//
// 子弹以 muzzle 为中心生成，速度由屏幕角度和初速度决定：
// (cos(angle)·speed, sin(angle)·speed)。
//
// 参数:
//   - em: 实体管理器
//   - muzzle: 枪口位置（子弹中心）
//   - screenAngle: 屏幕坐标系下的发射角（y 轴向下）
//   - speed: 初速度（已包含道具倍率）
//   - gun: 发射的枪械，提供伤害和子弹尺寸
//   - source: 发射者实体
func NewBullet(em *ecs.EntityManager, muzzle utils.Vector2, screenAngle, speed float64, gun *components.Gun, source ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	if err := validateScale("bullet", gun.BulletSize, gun.BulletSize); err != nil {
		return ecs.InvalidEntity, err
	}

	radius := gun.BulletSize / 2
	v := utils.VelocityFromAngle(screenAngle, speed)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: muzzle.X - radius, Y: muzzle.Y - radius})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: v.X, VY: v.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: gun.BulletSize, Height: gun.BulletSize})
	ecs.AddComponent(em, id, &components.BulletComponent{
		Damage: gun.Damage,
		Radius: radius,
		Source: source,
	})
	return id, nil
}
