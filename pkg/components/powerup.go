package components

import "github.com/decker502/zshooter/pkg/types"

// PowerUpComponent 地面上可拾取的道具
// 被玩家拾取后实体被移除，效果转入全局道具状态（game.PowerUpState）
type PowerUpComponent struct {
	Kind       types.PowerUpKind
	DurationMs float64 // 拾取后效果持续时间
}
