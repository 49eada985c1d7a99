package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、僵尸、方块等可被攻击的实体
// 不变式：CurrentHealth <= MaxHealth；CurrentHealth <= 0 即视为死亡
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// IsDead 生命值是否已耗尽
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}

// TakeDamage 扣除生命值，返回本次伤害是否致死（从存活变为死亡）
func (h *HealthComponent) TakeDamage(amount int) bool {
	wasAlive := h.CurrentHealth > 0
	h.CurrentHealth -= amount
	return wasAlive && h.CurrentHealth <= 0
}
