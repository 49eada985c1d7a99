//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把 data/game.yaml
// 复制到 mobile/data/ 下：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.zshooter -o build/android/zshooter.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ZShooter.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/zshooter/pkg/app"
	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/embedded"
	"github.com/decker502/zshooter/pkg/game"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有配置文件，只使用默认值和环境变量
	launch, err := config.LoadLaunchConfig()
	if err != nil {
		log.Fatalf("启动配置加载失败: %v", err)
	}
	data, err := embedded.GameConfig()
	if err != nil {
		log.Fatalf("游戏配置读取失败: %v", err)
	}
	gameCfg, err := config.ParseGameConfig(data)
	if err != nil {
		log.Fatalf("游戏配置解析失败: %v", err)
	}

	leaderboard, err := game.OpenLeaderboard(launch.Leaderboard)
	if err != nil {
		log.Printf("[Mobile] Leaderboard disabled: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{Launch: launch, Game: gameCfg, Leaderboard: leaderboard})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
