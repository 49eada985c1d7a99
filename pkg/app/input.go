package app

import (
	"github.com/decker502/zshooter/pkg/game"
	"github.com/decker502/zshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// slotKeys 数字键 1-9 对应背包槽位
var slotKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// captureInput 在帧开始时读取键鼠状态并冻结为输入意图
//
// A/D 移动，W 跳跃，空格喷气背包，左键开火，右键放置，
// 滚轮或数字键切换背包，P/Esc 暂停。
func captureInput() game.InputIntent {
	cx, cy := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	input := game.InputIntent{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:        ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Jetpack:     ebiten.IsKeyPressed(ebiten.KeySpace),
		Cursor:      utils.Vector2{X: float64(cx), Y: float64(cy)},
		ScrollDelta: wheelDelta(wheelY),
		Fire:        inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Place:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			input.SelectSlot = i + 1
			break
		}
	}
	return input
}

// wheelDelta 把滚轮偏移转换为背包滚动量：向下滚动切到下一个槽位
func wheelDelta(wheelY float64) int {
	switch {
	case wheelY < 0:
		return 1
	case wheelY > 0:
		return -1
	default:
		return 0
	}
}

// startPressed 开始或重新开始对局
func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}
