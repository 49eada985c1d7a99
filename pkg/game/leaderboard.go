package game

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/decker502/zshooter/pkg/config"
)

// ErrLeaderboardUnavailable 排行榜后端不可用
var ErrLeaderboardUnavailable = errors.New("leaderboard unavailable")

// ScoreEntry 一条历史得分
type ScoreEntry struct {
	Score      int       `yaml:"score"`
	RecordedAt time.Time `yaml:"recordedAt"`
}

// Leaderboard 排行榜存储
//
// 模拟核心只在游戏结束时产出最终分数，由宿主调用 Record 写入。
type Leaderboard interface {
	// Record 记录一次最终得分
	Record(score int) error
	// Top 返回按分数降序排列的前 n 条记录
	Top(n int) ([]ScoreEntry, error)
	// Close 释放底层资源
	Close() error
}

// sortEntries 分数降序；同分时较早的记录在前
func sortEntries(entries []ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
}

func topN(entries []ScoreEntry, n int) []ScoreEntry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]ScoreEntry, n)
	copy(out, entries[:n])
	return out
}

// OpenLeaderboard 根据启动配置打开排行榜后端
func OpenLeaderboard(cfg config.LeaderboardConfig) (Leaderboard, error) {
	switch cfg.Backend {
	case config.LeaderboardBackendGdata:
		lb, err := OpenGdataLeaderboard(cfg.AppName)
		if err != nil {
			return nil, err
		}
		return lb, nil
	case config.LeaderboardBackendSQLite:
		lb, err := OpenSQLiteLeaderboard(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return lb, nil
	case config.LeaderboardBackendPostgres:
		lb, err := OpenPostgresLeaderboard(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return lb, nil
	case config.LeaderboardBackendNone:
		return NewGdataLeaderboard(nil), nil
	default:
		return nil, fmt.Errorf("unknown leaderboard backend %q: %w", cfg.Backend, ErrLeaderboardUnavailable)
	}
}
