package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（如地面上未被拾取的道具）
type LifetimeComponent struct {
	SpawnedAtMs   float64 // 生成时的模拟时钟（毫秒）
	MaxLifetimeMs float64 // 最大生命周期（毫秒）
	IsExpired     bool    // 是否已过期
}
