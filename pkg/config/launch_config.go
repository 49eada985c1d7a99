package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// 排行榜后端类型
const (
	LeaderboardBackendGdata    = "gdata"
	LeaderboardBackendSQLite   = "sqlite"
	LeaderboardBackendPostgres = "postgres"
	LeaderboardBackendNone     = "none"
)

// LaunchConfig 启动参数（窗口、日志、存档后端）
//
// 与 GameConfig 不同，LaunchConfig 描述的是运行环境而非游戏数值，
// 来源依次为：默认值 < zshooter.yaml < ZSHOOTER_* 环境变量。
type LaunchConfig struct {
	ScreenWidth    int    `mapstructure:"screenWidth"`
	ScreenHeight   int    `mapstructure:"screenHeight"`
	GameConfigPath string `mapstructure:"gameConfigPath"` // 为空时使用内嵌的 data/game.yaml
	Seed           int64  `mapstructure:"seed"`           // 0 表示使用当前时间
	LogFile        string `mapstructure:"logFile"`        // 为空时不输出日志
	LogLevel       string `mapstructure:"logLevel"`

	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

// LeaderboardConfig 排行榜存储配置
type LeaderboardConfig struct {
	Backend     string `mapstructure:"backend"`
	AppName     string `mapstructure:"appName"` // gdata 后端的存档目录名
	SQLitePath  string `mapstructure:"sqlitePath"`
	PostgresDSN string `mapstructure:"postgresDSN"`
	TopN        int    `mapstructure:"topN"`
}

func setLaunchDefaults(v *viper.Viper) {
	v.SetDefault("screenWidth", 1280)
	v.SetDefault("screenHeight", 720)
	v.SetDefault("gameConfigPath", "")
	v.SetDefault("seed", 0)
	v.SetDefault("logFile", "")
	v.SetDefault("logLevel", "info")

	v.SetDefault("leaderboard.backend", LeaderboardBackendGdata)
	v.SetDefault("leaderboard.appName", "zshooter")
	v.SetDefault("leaderboard.sqlitePath", "zshooter.db")
	v.SetDefault("leaderboard.postgresDSN", "")
	v.SetDefault("leaderboard.topN", 10)
}

// LoadLaunchConfig 读取启动配置
//
// 在 searchPaths 中查找 zshooter.yaml，找不到配置文件时使用默认值。
// 环境变量 ZSHOOTER_SCREENWIDTH、ZSHOOTER_LEADERBOARD_BACKEND 等可覆盖任意字段。
func LoadLaunchConfig(searchPaths ...string) (*LaunchConfig, error) {
	v := viper.New()
	setLaunchDefaults(v)

	v.SetConfigName("zshooter")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("ZSHOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(searchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read launch config: %w", err)
			}
		}
	}

	var cfg LaunchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode launch config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验启动配置
func (c *LaunchConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return invalid("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	switch c.Leaderboard.Backend {
	case LeaderboardBackendGdata:
		if c.Leaderboard.AppName == "" {
			return invalid("leaderboard.appName is required for gdata backend")
		}
	case LeaderboardBackendSQLite:
		if c.Leaderboard.SQLitePath == "" {
			return invalid("leaderboard.sqlitePath is required for sqlite backend")
		}
	case LeaderboardBackendPostgres:
		if c.Leaderboard.PostgresDSN == "" {
			return invalid("leaderboard.postgresDSN is required for postgres backend")
		}
	case LeaderboardBackendNone:
	default:
		return invalid("unknown leaderboard backend %q", c.Leaderboard.Backend)
	}
	if c.Leaderboard.TopN <= 0 {
		return invalid("leaderboard.topN must be positive, got %d", c.Leaderboard.TopN)
	}
	return nil
}
