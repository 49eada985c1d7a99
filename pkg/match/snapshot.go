package match

import (
	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

// EntityView 渲染器看到的单个实体
type EntityView struct {
	ID   ecs.EntityID
	Kind types.EntityKind
	Rect utils.Rect

	// 可受伤实体（玩家、僵尸、方块）的生命值；其余实体为 0
	Health    int
	MaxHealth int

	// 玩家
	FacingRight    bool
	AnimationPhase float64

	// 玩家枪口或炮塔的屏幕角度
	GunAngle float64

	// 僵尸
	ZombieKind  types.ZombieKind
	ZombieState components.ZombieState

	// 放置物
	Item   types.ItemKind
	Active bool

	// 道具
	PowerUp types.PowerUpKind
}

// ShowHealthBar 是否需要绘制血条（受过伤但未死亡）
func (v EntityView) ShowHealthBar() bool {
	return v.Health > 0 && v.Health < v.MaxHealth
}

// InventorySlot 背包槽位的显示信息
type InventorySlot struct {
	Kind     types.ItemKind
	Name     string
	Count    int
	Selected bool
}

// Snapshot 一帧结束时的只读渲染数据
type Snapshot struct {
	TimeMs     float64
	Score      int
	HordeIndex int

	IsStarted  bool
	IsPaused   bool
	IsGameOver bool

	PlayerHealth    int
	PlayerMaxHealth int
	JetpackFuel     float64
	JetpackMaxFuel  float64

	ActivePowerUp      types.PowerUpKind
	PowerUpRemainingMs float64

	Entities   []EntityView
	Trajectory systems.TrajectoryPreview
	Placement  systems.PlacementPreview
	Inventory  []InventorySlot
}

// Snapshot 生成当前帧的渲染数据，实体按创建顺序排列
func (m *Match) Snapshot() Snapshot {
	em := m.entityManager
	now := m.state.CurrentTimeMs

	snap := Snapshot{
		TimeMs:             now,
		Score:              m.state.Score,
		HordeIndex:         m.state.HordeIndex,
		IsStarted:          m.state.IsStarted,
		IsPaused:           m.state.IsPaused,
		IsGameOver:         m.state.IsGameOver,
		ActivePowerUp:      m.state.PowerUps.Active,
		PowerUpRemainingMs: m.state.PowerUps.Remaining(now),
		Trajectory:         m.control.Preview,
		Placement:          m.control.Placement,
	}
	if !m.state.PowerUps.IsActive(snap.ActivePowerUp, now) {
		snap.ActivePowerUp = types.PowerUpNone
		snap.PowerUpRemainingMs = 0
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
		if em.IsPendingDestroy(id) {
			continue
		}
		view, ok := m.viewOf(id)
		if ok {
			snap.Entities = append(snap.Entities, view)
		}
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](em, m.playerID); ok {
		snap.PlayerHealth = health.CurrentHealth
		snap.PlayerMaxHealth = health.MaxHealth
	}
	player, hasPlayer := ecs.GetComponent[*components.PlayerComponent](em, m.playerID)
	if hasPlayer {
		snap.JetpackFuel = player.JetpackFuel
		snap.JetpackMaxFuel = player.JetpackMaxFuel
	}
	if inv, ok := ecs.GetComponent[*components.InventoryComponent](em, m.playerID); ok {
		snap.Inventory = make([]InventorySlot, len(inv.Items))
		for i, item := range inv.Items {
			snap.Inventory[i] = InventorySlot{
				Kind:     item.Kind,
				Name:     item.Name,
				Count:    item.Count,
				Selected: hasPlayer && i == player.CurrentWeapon,
			}
		}
	}
	return snap
}

func (m *Match) viewOf(id ecs.EntityID) (EntityView, bool) {
	em := m.entityManager
	rect, ok := systems.EntityBounds(em, id)
	if !ok {
		return EntityView{}, false
	}
	view := EntityView{ID: id, Rect: rect}
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
		view.Health = health.CurrentHealth
		view.MaxHealth = health.MaxHealth
	}

	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
		view.Kind = types.EntityPlayer
		view.FacingRight = player.FacingRight
		view.AnimationPhase = player.AnimationPhase
		view.GunAngle = player.GunAngle
		return view, true
	}
	if zombie, ok := ecs.GetComponent[*components.ZombieComponent](em, id); ok {
		view.Kind = types.EntityZombie
		view.ZombieKind = zombie.Kind
		view.ZombieState = zombie.State
		view.FacingRight = zombie.Direction >= 0
		return view, true
	}
	if ecs.HasComponent[*components.BlockComponent](em, id) {
		view.Kind = types.EntityBlock
		view.Item = types.ItemBlock
		return view, true
	}
	if ecs.HasComponent[*components.BulletComponent](em, id) {
		view.Kind = types.EntityBullet
		return view, true
	}
	if pu, ok := ecs.GetComponent[*components.PowerUpComponent](em, id); ok {
		view.Kind = types.EntityPowerUp
		view.PowerUp = pu.Kind
		return view, true
	}
	if p, ok := ecs.GetComponent[*components.PlaceableComponent](em, id); ok {
		view.Kind = types.EntityPlaceable
		view.Item = p.Kind
		view.Active = p.Active
		view.GunAngle = p.GunAngle
		return view, true
	}
	if ecs.HasComponent[*components.PlatformComponent](em, id) {
		view.Kind = types.EntityPlatform
		return view, true
	}
	return EntityView{}, false
}
