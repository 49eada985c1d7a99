package components

import "github.com/decker502/zshooter/pkg/types"

// InventoryItem 背包中的一个槽位
//
// Kind 决定槽位的能力：ItemGun 使用 Gun 开火，其余种类按 Count 消耗放置。
type InventoryItem struct {
	Kind  types.ItemKind
	Name  string
	Gun   *Gun // 仅 ItemGun
	Count int  // 仅可放置物；剩余数量
}

// InventoryComponent 玩家背包
type InventoryComponent struct {
	Items []InventoryItem
}

// Item 返回指定槽位，越界时返回 nil
func (inv *InventoryComponent) Item(index int) *InventoryItem {
	if index < 0 || index >= len(inv.Items) {
		return nil
	}
	return &inv.Items[index]
}

// Wrap 将任意整数映射到合法槽位（用于滚轮循环切换）
func (inv *InventoryComponent) Wrap(index int) int {
	n := len(inv.Items)
	if n == 0 {
		return 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index
}
