package types

// EntityKind 渲染快照中的实体分类
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityZombie
	EntityBlock
	EntityBullet
	EntityPowerUp
	EntityPlaceable
	EntityPlatform
)
