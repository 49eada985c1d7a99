package components

// GravityComponent 标记受重力影响的实体（玩家、僵尸、道具）
// 子弹的重力由 CombatSystem 单独积分，不使用此组件
type GravityComponent struct{}

// PlatformComponent 标记地面平台实体
// 平台横跨整个屏幕宽度，不随摄像机滚动
type PlatformComponent struct{}
