package game

import (
	"fmt"
	"time"

	"github.com/decker502/zshooter/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	leaderboardObject   = "leaderboard"
	leaderboardProperty = "scores"

	// maxStoredScores 本地最多保存的记录数
	maxStoredScores = 100
)

// GdataLeaderboard 基于 gdata 的本地排行榜
//
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中，不报错。
type GdataLeaderboard struct {
	gdataManager *gdata.Manager
	entries      []ScoreEntry
}

// OpenGdataLeaderboard 打开应用存档目录中的排行榜
func OpenGdataLeaderboard(appName string) (*GdataLeaderboard, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w: %w", appName, ErrLeaderboardUnavailable, err)
	}
	lb := NewGdataLeaderboard(manager)
	if err := lb.load(); err != nil {
		// 存档损坏不是致命错误，从空排行榜开始
		logger.Log.Warnf("[Leaderboard] Failed to load scores: %v (starting empty)", err)
	}
	return lb, nil
}

// NewGdataLeaderboard 使用已有的 gdata 管理器创建排行榜
func NewGdataLeaderboard(manager *gdata.Manager) *GdataLeaderboard {
	return &GdataLeaderboard{gdataManager: manager}
}

func (lb *GdataLeaderboard) load() error {
	if lb.gdataManager == nil {
		return nil
	}
	if !lb.gdataManager.ObjectPropExists(leaderboardObject, leaderboardProperty) {
		return nil
	}

	data, err := lb.gdataManager.LoadObjectProp(leaderboardObject, leaderboardProperty)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	var entries []ScoreEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}
	sortEntries(entries)
	lb.entries = entries
	return nil
}

func (lb *GdataLeaderboard) save() error {
	if lb.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(lb.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	if err := lb.gdataManager.SaveObjectProp(leaderboardObject, leaderboardProperty, data); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return nil
}

// Record 记录得分并立即持久化
func (lb *GdataLeaderboard) Record(score int) error {
	lb.entries = append(lb.entries, ScoreEntry{Score: score, RecordedAt: time.Now()})
	sortEntries(lb.entries)
	if len(lb.entries) > maxStoredScores {
		lb.entries = lb.entries[:maxStoredScores]
	}
	if err := lb.save(); err != nil {
		return err
	}
	logger.Log.Infof("[Leaderboard] Recorded score %d", score)
	return nil
}

// Top 返回前 n 条记录
func (lb *GdataLeaderboard) Top(n int) ([]ScoreEntry, error) {
	return topN(lb.entries, n), nil
}

// Close gdata 没有需要释放的资源
func (lb *GdataLeaderboard) Close() error {
	return nil
}
