// Package app 提供游戏应用的核心包装器
//
// 该包是模拟核心的 ebiten 宿主：每帧采集键鼠输入并冻结为 InputIntent，
// 用单调时钟驱动 match.Tick，再把快照画到屏幕上。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Launch 窗口尺寸、随机种子、排行榜条数等运行参数
	Launch *config.LaunchConfig
	// Game 已校验的游戏数值配置
	Game *config.GameConfig
	// Leaderboard 排行榜存储，可为 nil（不记录成绩）
	Leaderboard game.Leaderboard
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	match       *match.Match
	leaderboard game.Leaderboard
	topN        int

	// 对局结束后展示的排行榜
	topScores     []game.ScoreEntry
	scoreRecorded bool

	screenWidth  int
	screenHeight int

	// clockStart 宿主单调时钟的起点
	clockStart time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if cfg.Launch == nil || cfg.Game == nil {
		return nil, errors.New("app: launch and game config are required")
	}

	seed := cfg.Launch.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := match.New(cfg.Game, float64(cfg.Launch.ScreenWidth), float64(cfg.Launch.ScreenHeight), seed)
	if err != nil {
		return nil, fmt.Errorf("对局初始化失败: %w", err)
	}
	logger.Log.Infof("[App] Match created (%dx%d, seed=%d)", cfg.Launch.ScreenWidth, cfg.Launch.ScreenHeight, seed)

	a := &App{
		match:        m,
		leaderboard:  cfg.Leaderboard,
		topN:         cfg.Launch.Leaderboard.TopN,
		screenWidth:  cfg.Launch.ScreenWidth,
		screenHeight: cfg.Launch.ScreenHeight,
		clockStart:   time.Now(),
	}
	a.refreshTopScores()
	return a, nil
}

// nowMs 宿主单调时钟（毫秒）
func (a *App) nowMs() float64 {
	return float64(time.Since(a.clockStart).Microseconds()) / 1000
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.updateFullscreen()

	state := a.match.State()
	switch {
	case !state.IsStarted && startPressed():
		a.match.Start()
	case state.IsGameOver && startPressed():
		if err := a.match.Restart(); err != nil {
			return fmt.Errorf("重新开始失败: %w", err)
		}
		a.scoreRecorded = false
	}

	a.match.Tick(captureInput(), a.nowMs())

	if a.match.IsGameOver() && !a.scoreRecorded {
		a.recordScore()
	}
	return nil
}

// updateFullscreen F11 切换全屏
func (a *App) updateFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.screenWidth, a.screenHeight)
			logger.Log.Debugf("[App] Delayed SetWindowSize(%d, %d)", a.screenWidth, a.screenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		logger.Log.Debug("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// recordScore 对局结束时写入一次最终得分
func (a *App) recordScore() {
	a.scoreRecorded = true
	if a.leaderboard == nil {
		return
	}
	score := a.match.FinalScore()
	if err := a.leaderboard.Record(score); err != nil {
		logger.Log.Warnf("[App] Failed to record score %d: %v", score, err)
		return
	}
	logger.Log.Infof("[App] Recorded final score %d", score)
	a.refreshTopScores()
}

func (a *App) refreshTopScores() {
	if a.leaderboard == nil {
		return
	}
	entries, err := a.leaderboard.Top(a.topN)
	if err != nil {
		logger.Log.Warnf("[App] Failed to load leaderboard: %v", err)
		return
	}
	a.topScores = entries
}

// Draw 绘制游戏画面
// 每帧调用一次；暂停时仍然绘制最后一帧
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := a.match.Snapshot()

	drawEntities(screen, snap.Entities)
	if snap.IsStarted && !snap.IsGameOver {
		drawTrajectory(screen, snap.Trajectory)
		drawPlacement(screen, snap.Placement)
	}
	drawHUD(screen, snap)

	switch {
	case !snap.IsStarted:
		drawOverlay(screen, a.screenWidth, a.screenHeight, titleLines(a.topScores))
	case snap.IsGameOver:
		drawOverlay(screen, a.screenWidth, a.screenHeight, gameOverLines(snap.Score, a.topScores))
	case snap.IsPaused:
		drawOverlay(screen, a.screenWidth, a.screenHeight, []string{"PAUSED", "", "P / Esc to resume"})
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// Close 释放排行榜资源
func (a *App) Close() error {
	if a.leaderboard == nil {
		return nil
	}
	return a.leaderboard.Close()
}
