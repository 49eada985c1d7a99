package game

import (
	"fmt"
	"time"

	"github.com/decker502/zshooter/pkg/logger"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ScoreRecord 排行榜数据表
type ScoreRecord struct {
	ID        uint      `gorm:"primarykey"`
	Score     int       `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName 表名
func (ScoreRecord) TableName() string {
	return "scores"
}

// SQLLeaderboard 基于 gorm 的排行榜（SQLite 本地文件或共享 Postgres）
type SQLLeaderboard struct {
	db *gorm.DB
}

// OpenSQLiteLeaderboard 打开 SQLite 排行榜，path 为空时使用内存数据库
func OpenSQLiteLeaderboard(path string) (*SQLLeaderboard, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite leaderboard %q: %w: %w", path, ErrLeaderboardUnavailable, err)
	}
	logger.Log.Infof("[Leaderboard] Using SQLite leaderboard at '%s'", dsn)
	return NewSQLLeaderboard(db)
}

// OpenPostgresLeaderboard 连接共享的 Postgres 排行榜
func OpenPostgresLeaderboard(dsn string) (*SQLLeaderboard, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect postgres leaderboard: %w: %w", ErrLeaderboardUnavailable, err)
	}
	logger.Log.Infof("[Leaderboard] Using Postgres leaderboard")
	return NewSQLLeaderboard(db)
}

// NewSQLLeaderboard 使用已打开的连接创建排行榜，并确保数据表存在
func NewSQLLeaderboard(db *gorm.DB) (*SQLLeaderboard, error) {
	if err := db.AutoMigrate(&ScoreRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate leaderboard table: %w", err)
	}
	return &SQLLeaderboard{db: db}, nil
}

// Record 插入一条得分
func (lb *SQLLeaderboard) Record(score int) error {
	record := ScoreRecord{Score: score}
	if err := lb.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record score %d: %w", score, err)
	}
	logger.Log.Infof("[Leaderboard] Recorded score %d (id=%d)", score, record.ID)
	return nil
}

// Top 按分数降序查询前 n 条
func (lb *SQLLeaderboard) Top(n int) ([]ScoreEntry, error) {
	if n <= 0 {
		return []ScoreEntry{}, nil
	}
	var records []ScoreRecord
	err := lb.db.Model(&ScoreRecord{}).
		Order("score DESC").
		Order("created_at ASC").
		Order("id ASC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, ScoreEntry{Score: r.Score, RecordedAt: r.CreatedAt})
	}
	return entries, nil
}

// Close 关闭数据库连接
func (lb *SQLLeaderboard) Close() error {
	sqlDB, err := lb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
