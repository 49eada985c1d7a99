// Package match 组装单局游戏：实体世界、各阶段系统和对局状态
//
// Match 是模拟核心唯一的可变聚合。宿主每帧调用一次 Tick，传入冻结的输入意图
// 和宿主时间戳；Match 按固定顺序推进各阶段：
//
//	玩家控制 → 物理 → 接触解析 → 子弹 → 行为 → 刷怪/道具/生命周期 → 结束判定
//
// 每个阶段结束后统一清理被标记删除的实体，阶段内部只做标记。
package match

import (
	"fmt"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/entities"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/systems/behavior"
	"github.com/decker502/zshooter/pkg/types"
)

// Match 单局游戏
type Match struct {
	cfg          *config.GameConfig
	screenWidth  float64
	screenHeight float64
	seed         int64

	entityManager *ecs.EntityManager
	state         *game.MatchState
	playerID      ecs.EntityID
	platformID    ecs.EntityID

	combat         *systems.Combat
	index          *systems.SpatialIndex
	camera         *systems.CameraSystem
	control        *systems.PlayerControlSystem
	physics        *systems.PhysicsSystem
	contacts       *systems.ContactSystem
	bullets        *systems.BulletSystem
	behaviorSystem *behavior.BehaviorSystem
	powerUps       *systems.PowerUpSystem
	spawner        *systems.SpawnSystem
	lifetime       *systems.LifetimeSystem

	lastHostMs  float64
	hasHostTime bool
}

// New 创建一局新游戏（未开始）
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
//   - seed: 刷怪随机种子，相同种子和输入得到相同的对局
func New(cfg *config.GameConfig, screenWidth, screenHeight float64, seed int64) (*Match, error) {
	if cfg == nil {
		return nil, fmt.Errorf("match: nil game config")
	}
	m := &Match{
		cfg:          cfg,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		seed:         seed,
	}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// reset 重建实体世界和所有系统
func (m *Match) reset() error {
	em := ecs.NewEntityManager()
	state := game.NewMatchState(m.screenWidth, m.screenHeight)

	platformID, err := entities.NewPlatform(em, m.screenWidth, m.screenHeight, m.cfg.World.PlatformHeight)
	if err != nil {
		return fmt.Errorf("create platform: %w", err)
	}
	playerID, err := entities.NewPlayer(em, m.cfg)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	groundY := m.screenHeight - m.cfg.World.PlatformHeight
	for _, b := range m.cfg.InitialBlocks {
		if _, err := entities.NewBlock(em, b.X, groundY-m.cfg.Block.Height, m.cfg.Block.Width, m.cfg.Block.Height, m.cfg.Block.MaxHealth, false); err != nil {
			return fmt.Errorf("create initial block at x=%v: %w", b.X, err)
		}
	}
	for _, z := range m.cfg.InitialZombies {
		kind, err := types.ParseZombieKind(z.Kind)
		if err != nil {
			return fmt.Errorf("initial zombie: %w", err)
		}
		if _, err := entities.NewZombie(em, m.cfg, kind, z.X, z.Y, state.CurrentTimeMs); err != nil {
			return fmt.Errorf("create initial zombie at (%v,%v): %w", z.X, z.Y, err)
		}
	}

	m.entityManager = em
	m.state = state
	m.playerID = playerID
	m.platformID = platformID

	m.combat = systems.NewCombat(em, state, m.cfg)
	m.index = systems.NewSpatialIndex(em, m.screenWidth, m.screenHeight)
	m.camera = systems.NewCameraSystem(em, state, m.index, m.cfg.World.CameraOffset, playerID, platformID)
	m.control = systems.NewPlayerControlSystem(em, state, m.cfg, m.combat, m.camera, m.index, playerID, platformID)
	m.physics = systems.NewPhysicsSystem(em, &m.cfg.World, platformID)
	m.contacts = systems.NewContactSystem(em, &m.cfg.World, m.index)
	m.bullets = systems.NewBulletSystem(em, &m.cfg.World, m.combat, m.index, platformID)
	m.behaviorSystem = behavior.NewBehaviorSystem(em, state, m.cfg, m.combat, m.index, playerID)
	m.powerUps = systems.NewPowerUpSystem(em, state, m.index, playerID)
	m.spawner = systems.NewSpawnSystem(em, state, m.cfg, m.seed)
	m.lifetime = systems.NewLifetimeSystem(em, state)
	m.spawner.Init()

	logger.Log.Debugf("[Match] World built: %d entities", em.EntityCount())
	return nil
}

// Start 开始对局
func (m *Match) Start() {
	if m.state.IsStarted {
		return
	}
	m.state.IsStarted = true
	logger.Log.Info("[Match] Started")
}

// Pause 暂停；未开始或已结束的对局不受影响
func (m *Match) Pause() {
	if !m.state.IsRunning() {
		return
	}
	m.state.IsPaused = true
	logger.Log.Info("[Match] Paused")
}

// Resume 从暂停中恢复
func (m *Match) Resume() {
	if !m.state.IsPaused || m.state.IsGameOver {
		return
	}
	m.state.IsPaused = false
	logger.Log.Info("[Match] Resumed")
}

// TogglePause 切换暂停状态
func (m *Match) TogglePause() {
	if m.state.IsPaused {
		m.Resume()
	} else {
		m.Pause()
	}
}

// Restart 丢弃当前世界，重新开始一局
func (m *Match) Restart() error {
	if err := m.reset(); err != nil {
		return err
	}
	m.state.IsStarted = true
	logger.Log.Info("[Match] Restarted")
	return nil
}

// Tick 推进一帧
//
// hostNowMs 是宿主提供的单调时间戳。两帧之间的差值被限制在 [0, MaxFrameMs]，
// 暂停或结束时仍会消费时间戳，恢复后时钟不会跳跃。
func (m *Match) Tick(input game.InputIntent, hostNowMs float64) {
	delta := 0.0
	if m.hasHostTime {
		delta = hostNowMs - m.lastHostMs
		if delta < 0 {
			delta = 0
		}
		if maxFrame := m.cfg.World.MaxFrameMs; maxFrame > 0 && delta > maxFrame {
			delta = maxFrame
		}
	}
	m.lastHostMs = hostNowMs
	m.hasHostTime = true

	if input.TogglePause {
		m.TogglePause()
	}
	if !m.state.IsRunning() {
		return
	}
	m.state.CurrentTimeMs += delta

	em := m.entityManager

	m.control.Update(input)
	em.RemoveMarkedEntities()

	m.physics.Update()
	m.contacts.Update()

	m.bullets.Update()
	em.RemoveMarkedEntities()

	m.behaviorSystem.Update()
	em.RemoveMarkedEntities()

	m.spawner.Update()
	m.powerUps.Update()
	m.lifetime.Update()
	em.RemoveMarkedEntities()

	m.checkGameOver()
}

func (m *Match) checkGameOver() {
	health, ok := ecs.GetComponent[*components.HealthComponent](m.entityManager, m.playerID)
	if ok && !health.IsDead() {
		return
	}
	m.state.IsGameOver = true
	logger.Log.Infof("[Match] Game over at %.0fms, final score %d", m.state.CurrentTimeMs, m.state.Score)
}

// State 返回对局状态（只读使用）
func (m *Match) State() *game.MatchState {
	return m.state
}

// IsGameOver 对局是否已结束
func (m *Match) IsGameOver() bool {
	return m.state.IsGameOver
}

// FinalScore 返回当前分数；对局结束后即最终得分
func (m *Match) FinalScore() int {
	return m.state.Score
}
