package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/zshooter/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏数值配置
//
// 配置文件位置: data/game.yaml
// 所有距离单位为像素，速度单位为像素/帧，时间单位为毫秒。
type GameConfig struct {
	World          WorldConfig            `yaml:"world"`
	Score          ScoreConfig            `yaml:"score"`
	Player         PlayerConfig           `yaml:"player"`
	Zombies        map[string]ZombieStats `yaml:"zombies"` // 僵尸种类（normal/jumper）到属性的映射
	Block          BlockConfig            `yaml:"block"`
	InitialBlocks  []BlockSpawn           `yaml:"initialBlocks"`
	InitialZombies []ZombieSpawn          `yaml:"initialZombies"`
	Guns           []GunConfig            `yaml:"guns"`
	Placeables     PlaceablesConfig       `yaml:"placeables"`
	PowerUps       PowerUpsConfig         `yaml:"powerUps"`
	Spawner        SpawnerConfig          `yaml:"spawner"`
}

// WorldConfig 世界与物理参数
type WorldConfig struct {
	Gravity          float64 `yaml:"gravity"`          // 每帧竖直速度增量
	CameraOffset     float64 `yaml:"cameraOffset"`     // 摄像机死区相对屏幕中心的偏移比例（0.10 = 10%）
	PlatformHeight   float64 `yaml:"platformHeight"`   // 地面平台厚度
	ContactEpsilon   float64 `yaml:"contactEpsilon"`   // 站立判定容差
	LineOfSightSteps int     `yaml:"lineOfSightSteps"` // 炮塔视线检测的采样步数
	MaxFrameMs       float64 `yaml:"maxFrameMs"`       // 单帧时钟推进上限，防止宿主卡顿导致时钟跳跃
}

// ScoreConfig 计分规则
type ScoreConfig struct {
	KillReward int `yaml:"killReward"` // 击杀僵尸加分
	HitPenalty int `yaml:"hitPenalty"` // 玩家被僵尸击中扣分
}

// PlayerConfig 玩家属性
type PlayerConfig struct {
	SpawnX     float64       `yaml:"spawnX"`
	SpawnY     float64       `yaml:"spawnY"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	MaxHealth  int           `yaml:"maxHealth"`
	Speed      float64       `yaml:"speed"`
	JumpHeight float64       `yaml:"jumpHeight"`
	Jetpack    JetpackConfig `yaml:"jetpack"`
}

// JetpackConfig 喷气背包参数
type JetpackConfig struct {
	MaxFuel      float64 `yaml:"maxFuel"`
	Thrust       float64 `yaml:"thrust"`       // 喷射时的上升速度
	BurnPerTick  float64 `yaml:"burnPerTick"`  // 每帧消耗燃料
	RegenPerTick float64 `yaml:"regenPerTick"` // 站立时每帧恢复燃料
}

// ZombieStats 单个僵尸种类的属性配置
type ZombieStats struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxHealth       int     `yaml:"maxHealth"`
	Speed           float64 `yaml:"speed"`
	JumpHeight      float64 `yaml:"jumpHeight"`
	MeleeDamage     int     `yaml:"meleeDamage"`
	MeleeReach      float64 `yaml:"meleeReach"`
	MeleeCooldownMs float64 `yaml:"meleeCooldownMs"`
}

// BlockConfig 方块属性（关卡方块与玩家放置的方块共用）
type BlockConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHealth int     `yaml:"maxHealth"`
}

// BlockSpawn 关卡初始方块，放置在平台上
type BlockSpawn struct {
	X float64 `yaml:"x"`
}

// ZombieSpawn 关卡初始僵尸
type ZombieSpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// GunConfig 武器属性
type GunConfig struct {
	Name        string  `yaml:"name"`
	Damage      int     `yaml:"damage"`
	BulletSpeed float64 `yaml:"bulletSpeed"`
	BulletSize  float64 `yaml:"bulletSize"`
	CooldownMs  float64 `yaml:"cooldownMs"`
	Range       float64 `yaml:"range"`
}

// PlaceableStats 可放置物属性
type PlaceableStats struct {
	Count        int        `yaml:"count"` // 初始携带数量
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Damage       int        `yaml:"damage"`
	CooldownMs   float64    `yaml:"cooldownMs"`
	EffectRadius float64    `yaml:"effectRadius"`
	Gun          *GunConfig `yaml:"gun,omitempty"` // 仅炮塔
}

// PlaceablesConfig 所有可放置物
type PlaceablesConfig struct {
	Block      PlaceableStats `yaml:"block"`
	Shooter    PlaceableStats `yaml:"shooter"`
	Mine       PlaceableStats `yaml:"mine"`
	FreezeTrap PlaceableStats `yaml:"freezeTrap"`
}

// Stats 按物品种类获取放置物属性
func (p *PlaceablesConfig) Stats(kind types.ItemKind) (*PlaceableStats, bool) {
	switch kind {
	case types.ItemBlock:
		return &p.Block, true
	case types.ItemShooter:
		return &p.Shooter, true
	case types.ItemMine:
		return &p.Mine, true
	case types.ItemFreezeTrap:
		return &p.FreezeTrap, true
	default:
		return nil, false
	}
}

// PowerUpStats 单个道具属性
type PowerUpStats struct {
	DurationMs float64 `yaml:"durationMs"`
}

// PowerUpsConfig 道具配置
type PowerUpsConfig struct {
	Width            float64      `yaml:"width"`
	Height           float64      `yaml:"height"`
	GroundLifetimeMs float64      `yaml:"groundLifetimeMs"` // 未拾取道具在地面上的存留时间
	RangeMultiplier  float64      `yaml:"rangeMultiplier"`  // 增程道具的子弹初速倍率
	Immunity         PowerUpStats `yaml:"immunity"`
	IncreasedRange   PowerUpStats `yaml:"increasedRange"`
}

// Duration 按道具种类获取持续时间
func (p *PowerUpsConfig) Duration(kind types.PowerUpKind) float64 {
	switch kind {
	case types.PowerUpImmunity:
		return p.Immunity.DurationMs
	case types.PowerUpIncreasedRange:
		return p.IncreasedRange.DurationMs
	default:
		return 0
	}
}

// SpawnerConfig 僵尸潮与道具生成配置
type SpawnerConfig struct {
	FirstHordeDelayMs float64   `yaml:"firstHordeDelayMs"`
	HordeIntervalMs   float64   `yaml:"hordeIntervalMs"`
	BaseHordeSize     int       `yaml:"baseHordeSize"`
	HordeGrowth       int       `yaml:"hordeGrowth"`
	MaxHordeSize      int       `yaml:"maxHordeSize"`
	JumperChance      float64   `yaml:"jumperChance"`
	SpawnPoints       []float64 `yaml:"spawnPoints"` // 世界坐标X，随摄像机滚动平移
	SpawnY            float64   `yaml:"spawnY"`
	PowerUpIntervalMs float64   `yaml:"powerUpIntervalMs"`
	PowerUpSpawnY     float64   `yaml:"powerUpSpawnY"`
}

// ZombieStatsFor 获取指定僵尸种类的属性
func (c *GameConfig) ZombieStatsFor(kind types.ZombieKind) (*ZombieStats, bool) {
	stats, ok := c.Zombies[kind.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析并校验 YAML 格式的游戏配置
//
// 文件中未出现的字段保留 DefaultGameConfig 中的默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate 校验配置的完整性和合法性
//
// 非正的尺寸、速度、冷却时间在这里被拒绝，
// 保证实体构造和模拟过程中不会遇到非法数值。
func (c *GameConfig) Validate() error {
	w := c.World
	if w.Gravity <= 0 {
		return invalid("world.gravity must be positive, got %v", w.Gravity)
	}
	if w.CameraOffset < 0 || w.CameraOffset >= 0.5 {
		return invalid("world.cameraOffset must be in [0, 0.5), got %v", w.CameraOffset)
	}
	if w.PlatformHeight <= 0 {
		return invalid("world.platformHeight must be positive, got %v", w.PlatformHeight)
	}
	if w.ContactEpsilon < 0 {
		return invalid("world.contactEpsilon cannot be negative, got %v", w.ContactEpsilon)
	}
	if w.LineOfSightSteps <= 0 {
		return invalid("world.lineOfSightSteps must be positive, got %d", w.LineOfSightSteps)
	}
	if w.MaxFrameMs <= 0 {
		return invalid("world.maxFrameMs must be positive, got %v", w.MaxFrameMs)
	}

	if c.Score.KillReward < 0 || c.Score.HitPenalty < 0 {
		return invalid("score values cannot be negative")
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.MaxHealth <= 0 {
		return invalid("player.maxHealth must be positive, got %d", p.MaxHealth)
	}
	if p.Speed <= 0 || p.JumpHeight <= 0 {
		return invalid("player speed and jumpHeight must be positive")
	}
	if p.Jetpack.MaxFuel < 0 || p.Jetpack.Thrust < 0 || p.Jetpack.BurnPerTick < 0 || p.Jetpack.RegenPerTick < 0 {
		return invalid("player.jetpack values cannot be negative")
	}

	for _, kind := range []types.ZombieKind{types.ZombieNormal, types.ZombieJumper} {
		stats, ok := c.Zombies[kind.String()]
		if !ok {
			return invalid("zombie kind %s is required", kind)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return invalid("zombie %s: size must be positive", kind)
		}
		if stats.MaxHealth <= 0 {
			return invalid("zombie %s: maxHealth must be positive, got %d", kind, stats.MaxHealth)
		}
		if stats.Speed <= 0 {
			return invalid("zombie %s: speed must be positive, got %v", kind, stats.Speed)
		}
		if stats.JumpHeight < 0 || stats.MeleeDamage < 0 || stats.MeleeReach < 0 {
			return invalid("zombie %s: jumpHeight, meleeDamage and meleeReach cannot be negative", kind)
		}
		if stats.MeleeCooldownMs <= 0 {
			return invalid("zombie %s: meleeCooldownMs must be positive, got %v", kind, stats.MeleeCooldownMs)
		}
	}
	for name := range c.Zombies {
		if _, err := types.ParseZombieKind(name); err != nil {
			return invalid("zombies: %v", err)
		}
	}

	if c.Block.Width <= 0 || c.Block.Height <= 0 || c.Block.MaxHealth <= 0 {
		return invalid("block size and maxHealth must be positive")
	}
	for i, z := range c.InitialZombies {
		if _, err := types.ParseZombieKind(z.Kind); err != nil {
			return invalid("initialZombies[%d]: %v", i, err)
		}
	}

	if len(c.Guns) == 0 {
		return invalid("at least one gun is required")
	}
	for i := range c.Guns {
		if err := validateGun(&c.Guns[i], fmt.Sprintf("guns[%d]", i)); err != nil {
			return err
		}
	}

	pl := c.Placeables
	if pl.Block.Count < 0 || pl.Shooter.Count < 0 || pl.Mine.Count < 0 || pl.FreezeTrap.Count < 0 {
		return invalid("placeable counts cannot be negative")
	}
	for name, stats := range map[string]PlaceableStats{"shooter": pl.Shooter, "mine": pl.Mine, "freezeTrap": pl.FreezeTrap} {
		if stats.Width <= 0 || stats.Height <= 0 {
			return invalid("placeables.%s: size must be positive", name)
		}
		if stats.EffectRadius < 0 || stats.Damage < 0 {
			return invalid("placeables.%s: effectRadius and damage cannot be negative", name)
		}
	}
	if pl.Mine.CooldownMs <= 0 || pl.FreezeTrap.CooldownMs <= 0 {
		return invalid("placeables: mine and freezeTrap cooldownMs must be positive")
	}
	if pl.Shooter.Gun == nil {
		return invalid("placeables.shooter.gun is required")
	}
	if err := validateGun(pl.Shooter.Gun, "placeables.shooter.gun"); err != nil {
		return err
	}
	if pl.Shooter.Gun.Range <= 0 {
		return invalid("placeables.shooter.gun.range must be positive")
	}

	pu := c.PowerUps
	if pu.Width <= 0 || pu.Height <= 0 {
		return invalid("powerUps size must be positive")
	}
	if pu.Immunity.DurationMs <= 0 || pu.IncreasedRange.DurationMs <= 0 {
		return invalid("powerUps durations must be positive")
	}
	if pu.RangeMultiplier < 1 {
		return invalid("powerUps.rangeMultiplier must be >= 1, got %v", pu.RangeMultiplier)
	}
	if pu.GroundLifetimeMs < 0 {
		return invalid("powerUps.groundLifetimeMs cannot be negative")
	}

	s := c.Spawner
	if s.HordeIntervalMs <= 0 || s.PowerUpIntervalMs <= 0 || s.FirstHordeDelayMs < 0 {
		return invalid("spawner intervals must be positive")
	}
	if s.BaseHordeSize < 0 || s.HordeGrowth < 0 || s.MaxHordeSize < s.BaseHordeSize {
		return invalid("spawner horde sizes invalid: base=%d growth=%d max=%d", s.BaseHordeSize, s.HordeGrowth, s.MaxHordeSize)
	}
	if s.JumperChance < 0 || s.JumperChance > 1 {
		return invalid("spawner.jumperChance must be in [0, 1], got %v", s.JumperChance)
	}
	if len(s.SpawnPoints) == 0 {
		return invalid("spawner.spawnPoints must not be empty")
	}

	return nil
}

func validateGun(g *GunConfig, path string) error {
	if g.Name == "" {
		return invalid("%s: name is required", path)
	}
	if g.Damage < 0 {
		return invalid("%s: damage cannot be negative", path)
	}
	if g.BulletSpeed <= 0 || g.BulletSize <= 0 {
		return invalid("%s: bulletSpeed and bulletSize must be positive", path)
	}
	if g.CooldownMs <= 0 {
		return invalid("%s: cooldownMs must be positive", path)
	}
	return nil
}
