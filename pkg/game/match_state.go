package game

// MatchState 单局游戏的全局状态
//
// 由 Match 聚合持有，并以指针形式传给每个系统。
// 除 Match 外没有任何包级可变状态。
type MatchState struct {
	Score         int     // 当前分数，不会低于 0
	CurrentTimeMs float64 // 单调递增的模拟时钟（暂停期间冻结）

	IsStarted  bool
	IsPaused   bool
	IsGameOver bool

	ScreenWidth  float64
	ScreenHeight float64

	// CameraX 摄像机累计滚动距离，世界坐标 = 屏幕坐标 + CameraX
	CameraX float64

	PowerUps PowerUpState

	// 刷怪器进度
	HordeIndex    int
	NextHordeMs   float64
	NextPowerUpMs float64
}

// NewMatchState 创建初始状态
func NewMatchState(screenWidth, screenHeight float64) *MatchState {
	return &MatchState{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// IsRunning 模拟是否应当推进
func (s *MatchState) IsRunning() bool {
	return s.IsStarted && !s.IsPaused && !s.IsGameOver
}

// AddScore 增加分数
func (s *MatchState) AddScore(points int) {
	s.Score += points
}

// Penalize 扣除分数，最低为 0
func (s *MatchState) Penalize(points int) {
	s.Score -= points
	if s.Score < 0 {
		s.Score = 0
	}
}

// WorldToScreenX 将世界坐标X转换为当前屏幕坐标X
func (s *MatchState) WorldToScreenX(worldX float64) float64 {
	return worldX - s.CameraX
}
