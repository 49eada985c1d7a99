package entities

import (
	"fmt"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/types"
)

// NewPlayer 创建玩家实体
//
// 玩家在整局游戏中只有一个实例，携带背包（所有枪械 + 可放置物）和喷气背包。
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 配置中尺寸或生命值非法时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	p := cfg.Player
	if err := validateScale("player", p.Width, p.Height); err != nil {
		return ecs.InvalidEntity, err
	}
	if err := validateHealth("player", p.MaxHealth); err != nil {
		return ecs.InvalidEntity, err
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: p.SpawnX, Y: p.SpawnY})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: p.Width, Height: p.Height})
	ecs.AddComponent(em, id, &components.ContactComponent{})
	ecs.AddComponent(em, id, &components.GravityComponent{})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: p.MaxHealth, MaxHealth: p.MaxHealth})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:          p.Speed,
		JumpHeight:     p.JumpHeight,
		FacingRight:    true,
		JetpackFuel:    p.Jetpack.MaxFuel,
		JetpackMaxFuel: p.Jetpack.MaxFuel,
	})
	ecs.AddComponent(em, id, NewInventory(cfg))

	return id, nil
}

// NewInventory 根据配置构建初始背包
// 槽位顺序：所有枪械，然后是方块、炮塔、地雷、冰冻陷阱
func NewInventory(cfg *config.GameConfig) *components.InventoryComponent {
	inv := &components.InventoryComponent{}
	for _, g := range cfg.Guns {
		inv.Items = append(inv.Items, components.InventoryItem{
			Kind: types.ItemGun,
			Name: g.Name,
			Gun:  NewGun(g),
		})
	}
	for _, kind := range []types.ItemKind{types.ItemBlock, types.ItemShooter, types.ItemMine, types.ItemFreezeTrap} {
		stats, _ := cfg.Placeables.Stats(kind)
		inv.Items = append(inv.Items, components.InventoryItem{
			Kind:  kind,
			Name:  kind.String(),
			Count: stats.Count,
		})
	}
	return inv
}

// NewGun 从配置创建枪械（冷却状态为初始值）
func NewGun(g config.GunConfig) *components.Gun {
	return &components.Gun{
		Name:        g.Name,
		Damage:      g.Damage,
		BulletSpeed: g.BulletSpeed,
		BulletSize:  g.BulletSize,
		CooldownMs:  g.CooldownMs,
		Range:       g.Range,
	}
}

// NewPlatform 创建地面平台
// 平台顶部位于 screenHeight - height，宽度覆盖整个屏幕，不随摄像机滚动
func NewPlatform(em *ecs.EntityManager, screenWidth, screenHeight, height float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, ErrNilEntityManager
	}
	if err := validateScale("platform", screenWidth, height); err != nil {
		return ecs.InvalidEntity, err
	}
	if height >= screenHeight {
		return ecs.InvalidEntity, fmt.Errorf("platform height %v exceeds screen height %v: %w", height, screenHeight, ErrInvalidScale)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: screenHeight - height})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: screenWidth, Height: height})
	ecs.AddComponent(em, id, &components.PlatformComponent{})
	return id, nil
}
