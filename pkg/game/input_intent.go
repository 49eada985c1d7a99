package game

import "github.com/decker502/zshooter/pkg/utils"

// InputIntent 单帧输入意图
//
// 由宿主在帧开始时采集并冻结，模拟过程中不会再读取实时输入。
// 持续按键为布尔状态，单次事件（开火、放置、暂停、滚轮）只在触发的那一帧为真。
type InputIntent struct {
	Left    bool
	Right   bool
	Jump    bool
	Jetpack bool

	// Cursor 指针在屏幕坐标系中的位置
	Cursor utils.Vector2

	// SelectSlot 直接选择背包槽位，1 起始；0 表示本帧未选择
	SelectSlot int
	// ScrollDelta 背包滚动量，正数向后，负数向前
	ScrollDelta int

	Fire        bool
	Place       bool
	TogglePause bool
}
