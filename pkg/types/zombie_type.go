// Package types 定义共享的基础类型
package types

import "fmt"

// ZombieKind 定义僵尸的种类
type ZombieKind int

const (
	// ZombieNormal 普通僵尸：追踪玩家，被方块挡住时攻击方块
	ZombieNormal ZombieKind = iota
	// ZombieJumper 跳跃僵尸：被可越过的方块挡住时会跳跃
	ZombieJumper
)

// String 返回僵尸种类的配置键名
func (k ZombieKind) String() string {
	switch k {
	case ZombieNormal:
		return "normal"
	case ZombieJumper:
		return "jumper"
	default:
		return fmt.Sprintf("ZombieKind(%d)", int(k))
	}
}

// ParseZombieKind 将配置键名解析为僵尸种类
func ParseZombieKind(s string) (ZombieKind, error) {
	switch s {
	case "normal":
		return ZombieNormal, nil
	case "jumper":
		return ZombieJumper, nil
	default:
		return 0, fmt.Errorf("unknown zombie kind %q", s)
	}
}
