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
	"github.com/solarlune/resolv"
)

// TrajectoryPreview 当前瞄准的弹道预览
type TrajectoryPreview struct {
	Valid      bool            // 是否存在弹道解
	Path       []utils.Vector2 // 未被阻挡的采样点
	End        utils.Vector2   // 终点（被阻挡时为第一个被阻挡的点）
	Obstructed bool
}

// PlacementPreview 当前选中放置物的落点预览
type PlacementPreview struct {
	Valid bool
	Rect  utils.Rect
}

// PlayerControlSystem 将输入意图应用到玩家
//
// 每帧依次处理：背包切换、水平移动（含摄像机滚动）、跳跃、喷气背包、
// 瞄准与弹道预览、开火、放置。
type PlayerControlSystem struct {
	em         *ecs.EntityManager
	state      *game.MatchState
	cfg        *config.GameConfig
	combat     *Combat
	camera     *CameraSystem
	index      *SpatialIndex
	playerID   ecs.EntityID
	platformID ecs.EntityID

	Preview   TrajectoryPreview
	Placement PlacementPreview
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, state *game.MatchState, cfg *config.GameConfig, combat *Combat, camera *CameraSystem, index *SpatialIndex, playerID, platformID ecs.EntityID) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:         em,
		state:      state,
		cfg:        cfg,
		combat:     combat,
		camera:     camera,
		index:      index,
		playerID:   playerID,
		platformID: platformID,
	}
}

// Update 应用本帧输入
func (s *PlayerControlSystem) Update(input game.InputIntent) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, s.playerID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID)
	contact, _ := ecs.GetComponent[*components.ContactComponent](s.em, s.playerID)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	inv, _ := ecs.GetComponent[*components.InventoryComponent](s.em, s.playerID)
	s.index.Sync()

	s.selectItem(player, inv, input)
	s.move(pos, contact, player, input)
	s.jump(pos, vel, contact, player, input)
	s.updateJetpack(vel, contact, player, input)

	item := inv.Item(player.CurrentWeapon)
	muzzle := components.Bounds(pos, col).Center()
	if input.Cursor.X != muzzle.X {
		player.FacingRight = input.Cursor.X > muzzle.X
	}

	s.Preview = TrajectoryPreview{}
	s.Placement = PlacementPreview{}
	if item == nil {
		return
	}

	switch {
	case item.Gun != nil:
		s.aim(player, item.Gun, muzzle, input.Cursor)
		if input.Fire && s.Preview.Valid {
			s.combat.Fire(item.Gun, muzzle, player.GunAngle, s.playerID)
		}
	case item.Kind.IsPlaceable():
		s.Placement = s.placementFor(item, input.Cursor)
		if input.Place && s.Placement.Valid {
			s.place(item)
		}
	}
}

// selectItem 处理数字键选择和滚轮切换
func (s *PlayerControlSystem) selectItem(player *components.PlayerComponent, inv *components.InventoryComponent, input game.InputIntent) {
	if input.SelectSlot > 0 && input.SelectSlot <= len(inv.Items) {
		player.CurrentWeapon = input.SelectSlot - 1
	}
	if input.ScrollDelta != 0 {
		player.CurrentWeapon = inv.Wrap(player.CurrentWeapon + input.ScrollDelta)
	}
}

// move 水平移动；越过死区时改为滚动世界
func (s *PlayerControlSystem) move(pos *components.PositionComponent, contact *components.ContactComponent, player *components.PlayerComponent, input game.InputIntent) {
	minX, maxX := s.camera.DeadZone()
	moved := false

	if input.Left && contact.Left == ecs.InvalidEntity {
		if pos.X <= minX {
			s.camera.Scroll(-player.Speed)
		} else {
			pos.X -= player.Speed
		}
		moved = true
	}
	if input.Right && contact.Right == ecs.InvalidEntity {
		if pos.X >= maxX {
			s.camera.Scroll(player.Speed)
		} else {
			pos.X += player.Speed
		}
		moved = true
	}

	if moved {
		player.AnimationPhase++
	} else {
		player.AnimationPhase = 0
	}
}

// jump 仅在站立且竖直速度为 0 时起跳
func (s *PlayerControlSystem) jump(pos *components.PositionComponent, vel *components.VelocityComponent, contact *components.ContactComponent, player *components.PlayerComponent, input game.InputIntent) {
	if !input.Jump || vel.VY != 0 || !contact.IsResting() {
		return
	}
	contact.Bottom = ecs.InvalidEntity
	vel.VY = -player.JumpHeight
	pos.Y += vel.VY
}

// updateJetpack 喷射时覆盖重力并消耗燃料；站立时恢复燃料
func (s *PlayerControlSystem) updateJetpack(vel *components.VelocityComponent, contact *components.ContactComponent, player *components.PlayerComponent, input game.InputIntent) {
	jp := s.cfg.Player.Jetpack
	if input.Jetpack && player.JetpackFuel > 0 && jp.Thrust > 0 {
		player.JetpackActive = true
		contact.Bottom = ecs.InvalidEntity
		vel.VY = -jp.Thrust
		player.JetpackFuel -= jp.BurnPerTick
		if player.JetpackFuel < 0 {
			player.JetpackFuel = 0
		}
		return
	}

	if player.JetpackActive {
		// 停止喷射后从静止开始下落
		player.JetpackActive = false
		vel.VY = 0
	}
	if contact.IsResting() && player.JetpackFuel < player.JetpackMaxFuel {
		player.JetpackFuel += jp.RegenPerTick
		if player.JetpackFuel > player.JetpackMaxFuel {
			player.JetpackFuel = player.JetpackMaxFuel
		}
	}
}

// aim 求解指向光标的弹道；无解时保持原角度，预览为空
func (s *PlayerControlSystem) aim(player *components.PlayerComponent, gun *components.Gun, muzzle, cursor utils.Vector2) {
	g := s.cfg.World.Gravity
	speed := s.combat.BulletSpeed(gun)

	elevation, ok := utils.AimElevation(muzzle, cursor, speed, g)
	if !ok {
		return
	}
	player.GunAngle = utils.ScreenAngle(elevation)

	maxTime := utils.TimeToTarget(muzzle, cursor, elevation, speed)
	points := utils.SampleTrajectory(muzzle, elevation, speed, g, maxTime, utils.DefaultTrajectorySamples)
	path, end, obstructed := utils.TraceTrajectory(points, BlockedByBlocks(s.index))

	s.Preview = TrajectoryPreview{
		Valid:      true,
		Path:       path,
		End:        end,
		Obstructed: obstructed,
	}
}

// placementFor 计算放置物落点：以光标为水平中心，落在光标下方最高的表面上
// 方块不能压在玩家或僵尸身上
func (s *PlayerControlSystem) placementFor(item *components.InventoryItem, cursor utils.Vector2) PlacementPreview {
	if item.Count <= 0 {
		return PlacementPreview{}
	}
	stats, ok := s.cfg.Placeables.Stats(item.Kind)
	if !ok {
		return PlacementPreview{}
	}
	surface, ok := SurfaceTop(s.em, s.platformID)
	if !ok {
		return PlacementPreview{}
	}

	rect := utils.Rect{X: cursor.X - stats.Width/2, W: stats.Width, H: stats.Height}
	blocks := make([]utils.Rect, 0)
	for _, id := range s.index.InColumn(rect.X, rect.W, TagBlock) {
		if r, ok := EntityBounds(s.em, id); ok {
			blocks = append(blocks, r)
		}
	}

	for _, b := range blocks {
		if rect.X < b.X+b.W && rect.X+rect.W > b.X && b.Y >= cursor.Y && b.Y < surface {
			surface = b.Y
		}
	}
	rect.Y = surface - rect.H

	// 与方块重叠时继续向上堆叠
	for range len(blocks) {
		stacked := false
		for _, b := range blocks {
			if utils.Overlaps(rect, b) {
				rect.Y = b.Y - rect.H
				stacked = true
			}
		}
		if !stacked {
			break
		}
	}

	if item.Kind == types.ItemBlock && s.overlapsBody(rect) {
		return PlacementPreview{}
	}
	return PlacementPreview{Valid: true, Rect: rect}
}

// overlapsBody 落点是否与玩家或存活僵尸严格重叠
func (s *PlayerControlSystem) overlapsBody(rect utils.Rect) bool {
	for _, tag := range []resolv.Tags{TagPlayer, TagZombie} {
		for _, id := range s.index.Query(rect, tag) {
			if r, ok := EntityBounds(s.em, id); ok && utils.Overlaps(rect, r) {
				return true
			}
		}
	}
	return false
}

// place 在预览位置放置物品并消耗数量
func (s *PlayerControlSystem) place(item *components.InventoryItem) {
	r := s.Placement.Rect
	id, err := entities.NewPlaceable(s.em, s.cfg, item.Kind, r.X, r.Y)
	if err != nil {
		logger.Log.Errorf("[PlayerControl] Failed to place %s: %v", item.Kind, err)
		return
	}
	item.Count--
	logger.Log.Debugf("[PlayerControl] Placed %s %d at (%.1f, %.1f), %d left", item.Kind, id, r.X, r.Y, item.Count)
}
