package components

// Gun 武器定义及其后坐力/冷却状态
//
// 玩家背包的枪械槽位和炮塔各自持有一把 Gun。
// 开火后进入后坐力状态，直到 RecoilLastMs + CooldownMs <= 当前时钟才允许再次开火。
type Gun struct {
	Name        string
	Damage      int
	BulletSpeed float64 // 子弹初速度
	BulletSize  float64 // 子弹直径
	CooldownMs  float64
	Range       float64 // 炮塔索敌距离；玩家枪械不使用

	RecoilActive bool
	RecoilLastMs float64
}

// UpdateRecoil 冷却结束时解除后坐力状态
func (g *Gun) UpdateRecoil(nowMs float64) {
	if g.RecoilActive && g.RecoilLastMs+g.CooldownMs <= nowMs {
		g.RecoilActive = false
	}
}

// Ready 更新后坐力状态并返回当前是否可以开火
func (g *Gun) Ready(nowMs float64) bool {
	g.UpdateRecoil(nowMs)
	return !g.RecoilActive
}

// MarkFired 记录一次开火，进入后坐力状态
func (g *Gun) MarkFired(nowMs float64) {
	g.RecoilActive = true
	g.RecoilLastMs = nowMs
}

// Clone 复制武器定义（不共享后坐力状态）
func (g *Gun) Clone() *Gun {
	c := *g
	c.RecoilActive = false
	c.RecoilLastMs = 0
	return &c
}
