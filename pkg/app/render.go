package app

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/zshooter/pkg/components"
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/match"
	"github.com/decker502/zshooter/pkg/systems"
	"github.com/decker502/zshooter/pkg/types"
	"github.com/decker502/zshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarHeight = 5
	healthBarGap    = 8
	gunLength       = 40
	// debugLineHeight ebitenutil 调试字体的行高
	debugLineHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	platformColor   = color.RGBA{R: 96, G: 72, B: 48, A: 255}
	playerColor     = color.RGBA{R: 50, G: 90, B: 200, A: 255}
	zombieColor     = color.RGBA{R: 80, G: 150, B: 60, A: 255}
	jumperColor     = color.RGBA{R: 40, G: 110, B: 30, A: 255}
	frozenColor     = color.RGBA{R: 170, G: 220, B: 255, A: 255}
	blockColor      = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	bulletColor     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	shooterColor    = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	mineColor       = color.RGBA{R: 200, G: 60, B: 40, A: 255}
	trapColor       = color.RGBA{R: 60, G: 160, B: 220, A: 255}
	immunityColor   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	rangeColor      = color.RGBA{R: 220, G: 80, B: 220, A: 255}
	gunColor        = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	healthBackColor = color.RGBA{R: 180, G: 30, B: 30, A: 255}
	healthFillColor = color.RGBA{R: 40, G: 200, B: 40, A: 255}
	previewColor    = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	blockedColor    = color.RGBA{R: 255, G: 80, B: 80, A: 220}
	overlayColor    = color.RGBA{A: 160}
)

// entityColor 按实体种类和状态选择填充色
func entityColor(v match.EntityView) color.Color {
	switch v.Kind {
	case types.EntityPlatform:
		return platformColor
	case types.EntityPlayer:
		return playerColor
	case types.EntityZombie:
		if v.ZombieState == components.ZombieFrozen {
			return frozenColor
		}
		if v.ZombieKind == types.ZombieJumper {
			return jumperColor
		}
		return zombieColor
	case types.EntityBlock:
		return blockColor
	case types.EntityBullet:
		return bulletColor
	case types.EntityPowerUp:
		if v.PowerUp == types.PowerUpImmunity {
			return immunityColor
		}
		return rangeColor
	case types.EntityPlaceable:
		switch v.Item {
		case types.ItemShooter:
			return shooterColor
		case types.ItemMine:
			return mineColor
		default:
			return trapColor
		}
	default:
		return color.White
	}
}

// healthBarFill 血条填充宽度，限制在 [0, width]
func healthBarFill(health, maxHealth int, width float64) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return width
	}
	return width * float64(health) / float64(maxHealth)
}

func fillRect(dst *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawEntities(screen *ebiten.Image, views []match.EntityView) {
	for _, v := range views {
		if v.Kind == types.EntityBullet {
			c := v.Rect.Center()
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(v.Rect.W/2), bulletColor, true)
			continue
		}
		fillRect(screen, v.Rect, entityColor(v))

		if v.Kind == types.EntityPlayer || (v.Kind == types.EntityPlaceable && v.Item == types.ItemShooter) {
			drawGun(screen, v)
		}
		if v.ShowHealthBar() {
			drawHealthBar(screen, v)
		}
	}
}

// drawGun 从实体中心沿枪口角度画一条枪管
func drawGun(screen *ebiten.Image, v match.EntityView) {
	c := v.Rect.Center()
	x1 := c.X + math.Cos(v.GunAngle)*gunLength
	y1 := c.Y + math.Sin(v.GunAngle)*gunLength
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(x1), float32(y1), 4, gunColor, true)
}

func drawHealthBar(screen *ebiten.Image, v match.EntityView) {
	back := utils.Rect{X: v.Rect.X, Y: v.Rect.Y - healthBarGap, W: v.Rect.W, H: healthBarHeight}
	fillRect(screen, back, healthBackColor)
	back.W = healthBarFill(v.Health, v.MaxHealth, v.Rect.W)
	fillRect(screen, back, healthFillColor)
}

// drawTrajectory 画出未被阻挡的弹道采样点，阻挡点用红色标出
func drawTrajectory(screen *ebiten.Image, p systems.TrajectoryPreview) {
	if !p.Valid {
		return
	}
	for i := 1; i < len(p.Path); i += 2 {
		a, b := p.Path[i-1], p.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, previewColor, true)
	}
	endColor := previewColor
	if p.Obstructed {
		endColor = blockedColor
	}
	vector.DrawFilledCircle(screen, float32(p.End.X), float32(p.End.Y), 4, endColor, true)
}

func drawPlacement(screen *ebiten.Image, p systems.PlacementPreview) {
	if !p.Valid {
		return
	}
	r := p.Rect
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, previewColor, false)
}

// hudLines 左上角的状态文字
func hudLines(snap match.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d   Horde: %d", snap.Score, snap.HordeIndex),
		fmt.Sprintf("Health: %d/%d", snap.PlayerHealth, snap.PlayerMaxHealth),
		fmt.Sprintf("Jetpack: %.0f/%.0f", snap.JetpackFuel, snap.JetpackMaxFuel),
	}
	if snap.ActivePowerUp != types.PowerUpNone {
		lines = append(lines, fmt.Sprintf("%s: %.1fs", snap.ActivePowerUp, snap.PowerUpRemainingMs/1000))
	}

	var slots []string
	for i, slot := range snap.Inventory {
		label := fmt.Sprintf("%d:%s", i+1, slot.Name)
		if slot.Kind.IsPlaceable() {
			label += fmt.Sprintf("x%d", slot.Count)
		}
		if slot.Selected {
			label = "[" + label + "]"
		}
		slots = append(slots, label)
	}
	return append(lines, strings.Join(slots, " "))
}

func drawHUD(screen *ebiten.Image, snap match.Snapshot) {
	for i, line := range hudLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*debugLineHeight)
	}
}

// leaderboardLines 排行榜文字，名次从 1 开始
func leaderboardLines(entries []game.ScoreEntry) []string {
	if len(entries) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "Top scores")
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%2d. %6d  %s", i+1, e.Score, e.RecordedAt.Format("2006-01-02 15:04")))
	}
	return lines
}

func titleLines(top []game.ScoreEntry) []string {
	lines := []string{
		"ZOMBIE SHOOTER",
		"",
		"A/D move  W jump  Space jetpack",
		"Left click fire  Right click place  Wheel/1-9 select",
		"Press Enter to start",
		"",
	}
	return append(lines, leaderboardLines(top)...)
}

func gameOverLines(score int, top []game.ScoreEntry) []string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", score),
		"Press Enter or R to restart",
		"",
	}
	return append(lines, leaderboardLines(top)...)
}

// drawOverlay 半透明遮罩加居中的文字
func drawOverlay(screen *ebiten.Image, width, height int, lines []string) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlayColor, false)
	top := height/2 - len(lines)*debugLineHeight/2
	for i, line := range lines {
		// 调试字体每个字符宽 6 像素
		x := width/2 - len(line)*6/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugLineHeight)
	}
}
