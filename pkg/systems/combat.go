package systems

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/entities"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

// Combat 伤害结算与开火的共享逻辑
//
// 子弹系统、僵尸行为、放置物行为都通过 Combat 结算伤害，
// 保证同一实体的死亡和加分在一帧内只发生一次。
type Combat struct {
	em    *ecs.EntityManager
	state *game.MatchState
	cfg   *config.GameConfig
}

// NewCombat 创建战斗结算器
func NewCombat(em *ecs.EntityManager, state *game.MatchState, cfg *config.GameConfig) *Combat {
	return &Combat{em: em, state: state, cfg: cfg}
}

// DamageZombie 对僵尸造成伤害
// 僵尸死亡时标记删除并加分。已标记删除的僵尸不再结算。
// 返回: 本次伤害是否击杀
func (c *Combat) DamageZombie(id ecs.EntityID, amount int) bool {
	if !c.em.IsAlive(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](c.em, id)
	if !ok {
		return false
	}
	if !health.TakeDamage(amount) {
		return false
	}

	c.em.DestroyEntity(id)
	c.state.AddScore(c.cfg.Score.KillReward)
	logger.Log.Debugf("[Combat] Zombie %d killed, score=%d", id, c.state.Score)
	return true
}

// DamageBlock 对方块造成伤害
// 方块被摧毁时，先清除所有实体对它的接触引用，再标记删除。
// 返回: 本次伤害是否摧毁方块
func (c *Combat) DamageBlock(id ecs.EntityID, amount int) bool {
	if !c.em.IsAlive(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](c.em, id)
	if !ok {
		return false
	}
	if !health.TakeDamage(amount) {
		return false
	}

	ReleaseContacts(c.em, id)
	c.em.DestroyEntity(id)
	logger.Log.Debugf("[Combat] Block %d destroyed", id)
	return true
}

// MeleePlayer 僵尸对玩家发起近战攻击
//
// 冷却未结束时不攻击；玩家处于无敌状态时攻击无效，且不重置冷却。
// 返回: 是否造成了伤害
func (c *Combat) MeleePlayer(zombie *components.ZombieComponent, playerID ecs.EntityID) bool {
	now := c.state.CurrentTimeMs
	if !zombie.CanAttack(now) {
		return false
	}
	if c.state.PowerUps.IsActive(types.PowerUpImmunity, now) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](c.em, playerID)
	if !ok {
		return false
	}

	health.TakeDamage(zombie.MeleeDamage)
	zombie.LastHitMs = now
	c.state.Penalize(c.cfg.Score.HitPenalty)
	logger.Log.Debugf("[Combat] Player hit for %d, health=%d", zombie.MeleeDamage, health.CurrentHealth)
	return true
}

// MeleeBlock 僵尸对方块发起近战攻击（不受无敌道具影响）
func (c *Combat) MeleeBlock(zombie *components.ZombieComponent, blockID ecs.EntityID) bool {
	now := c.state.CurrentTimeMs
	if !zombie.CanAttack(now) {
		return false
	}
	c.DamageBlock(blockID, zombie.MeleeDamage)
	zombie.LastHitMs = now
	return true
}

// BulletSpeed 计算枪械当前的子弹初速（增程道具生效时乘以倍率）
func (c *Combat) BulletSpeed(gun *components.Gun) float64 {
	if c.state.PowerUps.IsActive(types.PowerUpIncreasedRange, c.state.CurrentTimeMs) {
		return gun.BulletSpeed * c.cfg.PowerUps.RangeMultiplier
	}
	return gun.BulletSpeed
}

// Fire 使用枪械开火
//
// 后坐力未恢复时拒绝开火。
// 返回: 子弹实体ID，是否成功开火
func (c *Combat) Fire(gun *components.Gun, muzzle utils.Vector2, screenAngle float64, source ecs.EntityID) (ecs.EntityID, bool) {
	now := c.state.CurrentTimeMs
	if !gun.Ready(now) {
		return ecs.InvalidEntity, false
	}

	id, err := entities.NewBullet(c.em, muzzle, screenAngle, c.BulletSpeed(gun), gun, source)
	if err != nil {
		// 枪械配置在加载时已校验，这里只记录
		logger.Log.Errorf("[Combat] Failed to create bullet for %s: %v", gun.Name, err)
		return ecs.InvalidEntity, false
	}
	gun.MarkFired(now)
	return id, true
}

// ReleaseContacts 清除所有实体指向 surface 的接触引用
func ReleaseContacts(em *ecs.EntityManager, surface ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith1[*components.ContactComponent](em) {
		contact, _ := ecs.GetComponent[*components.ContactComponent](em, id)
		contact.ClearRef(surface)
	}
}
