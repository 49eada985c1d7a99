package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/zshooter/pkg/app"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/embedded"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configDir = flag.String("config-dir", ".", "zshooter.yaml 所在目录")
	seed      = flag.Int64("seed", 0, "刷怪随机种子，0 表示使用启动配置")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	launch, err := config.LoadLaunchConfig(*configDir)
	if err != nil {
		return err
	}
	if *seed != 0 {
		launch.Seed = *seed
	}

	if err := logger.Init(launch.LogFile, launch.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	gameCfg, err := loadGameConfig(launch.GameConfigPath)
	if err != nil {
		return err
	}

	// 排行榜不可用时仍然可以玩，只是不记录成绩
	leaderboard, err := game.OpenLeaderboard(launch.Leaderboard)
	if err != nil {
		logger.Log.Warnf("[Main] Leaderboard disabled: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Launch:      launch,
		Game:        gameCfg,
		Leaderboard: leaderboard,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := gameApp.Close(); err != nil {
			logger.Log.Warnf("[Main] Failed to close leaderboard: %v", err)
		}
	}()

	ebiten.SetWindowSize(launch.ScreenWidth, launch.ScreenHeight)
	ebiten.SetWindowTitle("Zombie Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		return fmt.Errorf("game loop exited: %w", err)
	}
	return nil
}

// loadGameConfig 优先读取启动配置指定的文件，否则使用内嵌的 data/game.yaml
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.GameConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}
