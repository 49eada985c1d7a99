package components

// BlockComponent 标记静态可破坏方块
type BlockComponent struct {
	PlacedByPlayer bool // 由玩家放置（而非关卡初始化）
}
