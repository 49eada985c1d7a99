// simulate 无窗口运行一局对局，用于验证平衡性和确定性
//
// 玩家原地不动，每隔固定帧数瞄准最近的僵尸开火，直到死亡或达到时长上限。
// 相同的 seed 和参数总是输出相同的结果。
//
//	go run ./cmd/simulate -seed 42 -seconds 120
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/decker502/zshooter/pkg/config"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/logger"
	"github.com/decker502/zshooter/pkg/match"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
)

const frameMs = 1000.0 / 60.0

var (
	configPath   = flag.String("config", "data/game.yaml", "游戏数值配置文件")
	seed         = flag.Int64("seed", 1, "刷怪随机种子")
	seconds      = flag.Float64("seconds", 60, "模拟时长上限（秒）")
	fireInterval = flag.Int("fire-interval", 15, "开火间隔（帧）")
	width        = flag.Float64("width", 1280, "逻辑屏幕宽度")
	height       = flag.Float64("height", 720, "逻辑屏幕高度")
	logFile      = flag.String("log", "", "日志文件，为空时不输出")
	verbose      = flag.Bool("verbose", false, "每秒输出一次状态")
)

func main() {
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(*logFile, level); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	m, err := match.New(cfg, *width, *height, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "match: %v\n", err)
		os.Exit(1)
	}
	m.Start()

	frames := int(*seconds * 1000 / frameMs)
	for frame := 0; frame < frames && !m.IsGameOver(); frame++ {
		snap := m.Snapshot()
		input := game.InputIntent{Cursor: nearestZombie(snap)}
		if *fireInterval > 0 && frame%*fireInterval == 0 {
			input.Fire = true
		}
		m.Tick(input, float64(frame)*frameMs)

		if *verbose && frame%60 == 0 {
			s := m.Snapshot()
			fmt.Printf("t=%6.0fms score=%4d hp=%3d/%d horde=%d entities=%d\n",
				s.TimeMs, s.Score, s.PlayerHealth, s.PlayerMaxHealth, s.HordeIndex, len(s.Entities))
		}
	}

	s := m.Snapshot()
	fmt.Printf("seed=%d time=%.0fms score=%d hp=%d hordes=%d gameOver=%v\n",
		*seed, s.TimeMs, s.Score, s.PlayerHealth, s.HordeIndex, s.IsGameOver)
}

// nearestZombie 返回离玩家最近的僵尸中心；没有僵尸时瞄准玩家正前方
func nearestZombie(snap match.Snapshot) utils.Vector2 {
	var player utils.Vector2
	for _, e := range snap.Entities {
		if e.Kind == types.EntityPlayer {
			player = e.Rect.Center()
			break
		}
	}

	target := utils.Vector2{X: player.X + 200, Y: player.Y}
	best := math.Inf(1)
	for _, e := range snap.Entities {
		if e.Kind != types.EntityZombie {
			continue
		}
		c := e.Rect.Center()
		if d := utils.Distance(player, c); d < best {
			best = d
			target = c
		}
	}
	return target
}
