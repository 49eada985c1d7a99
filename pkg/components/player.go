package components

// PlayerComponent 玩家角色的专属状态
// 整局游戏只有一个玩家实体，生命值耗尽即游戏结束
type PlayerComponent struct {
	Speed         float64 // 水平移动速度（像素/帧）
	JumpHeight    float64 // 起跳初速度
	GunAngle      float64 // 当前瞄准角度（弧度，屏幕坐标系）
	CurrentWeapon int     // 当前选中的背包槽位
	FacingRight   bool    // 朝向，仅用于渲染

	// AnimationPhase 行走动画相位，仅用于渲染
	AnimationPhase float64

	// 喷气背包
	JetpackFuel    float64
	JetpackMaxFuel float64
	JetpackActive  bool // 本帧是否在喷射
}
