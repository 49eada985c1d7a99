package types

import "fmt"

// ItemKind 背包槽位物品的种类（封闭枚举）
//
// 每个种类对应一种能力：
//   - ItemGun: 开火（Fire）
//   - ItemBlock / ItemShooter / ItemMine / ItemFreezeTrap: 放置（Place）
type ItemKind int

const (
	// ItemGun 直射武器
	ItemGun ItemKind = iota
	// ItemBlock 方块：放置后立即变为静态方块
	ItemBlock
	// ItemShooter 炮塔：自动瞄准最近的可见僵尸并开火
	ItemShooter
	// ItemMine 地雷：僵尸进入触发带后造成一次范围伤害
	ItemMine
	// ItemFreezeTrap 冰冻陷阱：僵尸进入触发带后冻结范围内僵尸
	ItemFreezeTrap
)

// IsPlaceable 返回该物品是否为可放置物
func (k ItemKind) IsPlaceable() bool {
	return k != ItemGun
}

// String 返回物品种类名称
func (k ItemKind) String() string {
	switch k {
	case ItemGun:
		return "gun"
	case ItemBlock:
		return "block"
	case ItemShooter:
		return "shooter"
	case ItemMine:
		return "mine"
	case ItemFreezeTrap:
		return "freezeTrap"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}
