package game

import "github.com/decker502/zshooter/pkg/types"

// PowerUpState 全局道具效果槽
//
// 同一时刻只有一个道具生效：激活新道具会清除其他所有道具。
type PowerUpState struct {
	Active        types.PowerUpKind
	ActivatedAtMs float64
	DurationMs    float64
}

// Activate 激活道具，替换当前效果
func (p *PowerUpState) Activate(kind types.PowerUpKind, nowMs, durationMs float64) {
	p.Active = kind
	p.ActivatedAtMs = nowMs
	p.DurationMs = durationMs
}

// IsActive 检查指定道具是否在生效
func (p *PowerUpState) IsActive(kind types.PowerUpKind, nowMs float64) bool {
	if kind == types.PowerUpNone || p.Active != kind {
		return false
	}
	return nowMs-p.ActivatedAtMs < p.DurationMs
}

// Remaining 当前道具剩余时间（毫秒），无道具时为 0
func (p *PowerUpState) Remaining(nowMs float64) float64 {
	if p.Active == types.PowerUpNone {
		return 0
	}
	remaining := p.DurationMs - (nowMs - p.ActivatedAtMs)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expire 清除已到期的道具
// 返回是否有道具在本次调用中到期
func (p *PowerUpState) Expire(nowMs float64) bool {
	if p.Active == types.PowerUpNone {
		return false
	}
	if nowMs-p.ActivatedAtMs >= p.DurationMs {
		*p = PowerUpState{}
		return true
	}
	return false
}
