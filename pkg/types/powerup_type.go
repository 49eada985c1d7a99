package types

import "fmt"

// PowerUpKind 道具种类
type PowerUpKind int

const (
	// PowerUpNone 无道具（全局状态空槽）
	PowerUpNone PowerUpKind = iota
	// PowerUpImmunity 无敌：僵尸对玩家的攻击无效
	PowerUpImmunity
	// PowerUpIncreasedRange 增程：武器子弹初速提升
	PowerUpIncreasedRange
)

// PowerUpKinds 所有可生成的道具种类
var PowerUpKinds = []PowerUpKind{PowerUpImmunity, PowerUpIncreasedRange}

// String 返回道具种类名称
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "none"
	case PowerUpImmunity:
		return "immunity"
	case PowerUpIncreasedRange:
		return "increasedRange"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}
