package systems

import (
	"math/rand"

	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/ecs"
	"github.com/decker502/zshooter/pkg/entities"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/types"
)

// SpawnSystem 按时间波次生成僵尸，并周期性投放道具
//
// 第 n 波（从 0 开始）的僵尸数量为 min(base + n·growth, max)。
// 刷怪点是世界坐标，生成时换算到当前屏幕坐标，所以摄像机滚动后
// 僵尸仍从世界两端出现。同一波的僵尸沿远离屏幕中心的方向错开排列。
//
// 随机源由种子创建，相同种子和相同输入序列得到完全相同的对局。
type SpawnSystem struct {
	em    *ecs.EntityManager
	state *game.MatchState
	cfg   *config.GameConfig
	rng   *rand.Rand
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(em *ecs.EntityManager, state *game.MatchState, cfg *config.GameConfig, seed int64) *SpawnSystem {
	return &SpawnSystem{
		em:    em,
		state: state,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Init 从当前时钟开始计时
func (s *SpawnSystem) Init() {
	now := s.state.CurrentTimeMs
	s.state.HordeIndex = 0
	s.state.NextHordeMs = now + s.cfg.Spawner.FirstHordeDelayMs
	s.state.NextPowerUpMs = now + s.cfg.Spawner.PowerUpIntervalMs
}

// Update 到时间时生成下一波僵尸或道具
func (s *SpawnSystem) Update() {
	now := s.state.CurrentTimeMs
	sp := &s.cfg.Spawner

	if len(sp.SpawnPoints) > 0 && now >= s.state.NextHordeMs {
		s.spawnHorde(s.state.HordeIndex)
		s.state.HordeIndex++
		s.state.NextHordeMs = now + sp.HordeIntervalMs
	}

	if sp.PowerUpIntervalMs > 0 && now >= s.state.NextPowerUpMs {
		s.spawnPowerUp()
		s.state.NextPowerUpMs = now + sp.PowerUpIntervalMs
	}
}

// HordeSize 第 index 波的僵尸数量
func HordeSize(sp *config.SpawnerConfig, index int) int {
	n := sp.BaseHordeSize + index*sp.HordeGrowth
	if sp.MaxHordeSize > 0 && n > sp.MaxHordeSize {
		n = sp.MaxHordeSize
	}
	if n < 0 {
		return 0
	}
	return n
}

func (s *SpawnSystem) spawnHorde(index int) {
	sp := &s.cfg.Spawner
	size := HordeSize(sp, index)
	now := s.state.CurrentTimeMs
	center := s.state.ScreenWidth / 2

	for i := range size {
		kind := types.ZombieNormal
		if s.rng.Float64() < sp.JumperChance {
			kind = types.ZombieJumper
		}
		stats, ok := s.cfg.ZombieStatsFor(kind)
		if !ok {
			logger.Log.Warnf("[Spawner] No stats for %s zombie, skipped", kind)
			continue
		}

		point := sp.SpawnPoints[(index+i)%len(sp.SpawnPoints)]
		x := s.state.WorldToScreenX(point)
		offset := float64(i/len(sp.SpawnPoints)) * stats.Width * 2
		if x < center {
			x -= offset
		} else {
			x += offset
		}

		if _, err := entities.NewZombie(s.em, s.cfg, kind, x, sp.SpawnY, now); err != nil {
			logger.Log.Errorf("[Spawner] Failed to spawn %s zombie: %v", kind, err)
			continue
		}
	}
	logger.Log.Infof("[Spawner] Horde %d spawned with %d zombies", index+1, size)
}

func (s *SpawnSystem) spawnPowerUp() {
	kind := types.PowerUpKinds[s.rng.Intn(len(types.PowerUpKinds))]
	w := s.state.ScreenWidth
	x := w*0.1 + s.rng.Float64()*(w*0.8)

	if _, err := entities.NewPowerUp(s.em, &s.cfg.PowerUps, kind, x, s.cfg.Spawner.PowerUpSpawnY, s.state.CurrentTimeMs); err != nil {
		logger.Log.Errorf("[Spawner] Failed to spawn power-up %s: %v", kind, err)
		return
	}
	logger.Log.Debugf("[Spawner] Power-up %s dropped at x=%.1f", kind, x)
}
