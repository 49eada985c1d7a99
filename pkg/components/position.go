package components

// PositionComponent 存储实体包围盒左上角的世界坐标
// 世界会随摄像机滚动整体平移，因此这里的坐标同时也是屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}
