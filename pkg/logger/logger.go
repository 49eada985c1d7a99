// Package logger 提供全局的 zap 日志实例
//
// 默认是空日志（不输出），调用 Init 后写入滚动日志文件。
// 各系统统一使用 "[系统名] 消息" 的格式。
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局 SugaredLogger
var Log = zap.NewNop().Sugar()

// Init 初始化日志到本地文件（支持滚动）
// filePath: 日志文件路径，为空时保持空日志
// level: debug/info/warn/error
func Init(filePath, level string) error {
	if filePath == "" {
		Log = zap.NewNop().Sugar()
		return nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	// 10MB 每文件，保留3个备份
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), lvl)
	Log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// Sync 刷新缓冲
func Sync() {
	_ = Log.Sync()
}
