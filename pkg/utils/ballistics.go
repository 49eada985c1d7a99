package utils

import (
	"iter"
	"math"
)

// DefaultTrajectorySamples 轨迹采样点的默认数量
const DefaultTrajectorySamples = 100

// SolveProjectileAngle 求解抛物线发射角（未做象限修正的原始根）
//
// 以初速度 speed、重力加速度 gravity 从 start 发射，命中 end 所需的角度。
// 方程形式：a·T² + b·T + c = 0，其中
//
//	a = g·dx²/(2v²), b = dx, c = dy + a, dy = start.Y - end.Y
//
// 两个实根都映射为 atan 角度，选择绝对值较小的一个（更平的弹道）。
//
// 返回 ok=false 的情况：
//   - 判别式小于 0（该初速度无法到达目标）
//   - a == 0（dx 为 0，方程退化）
//   - speed 或 gravity 非正
//
// 调用者需要自行做象限修正，见 AimElevation。
func SolveProjectileAngle(start, end Vector2, speed, gravity float64) (float64, bool) {
	if speed <= 0 || gravity <= 0 {
		return 0, false
	}

	dx := end.X - start.X
	dy := start.Y - end.Y

	a := gravity * dx * dx / (2 * speed * speed)
	b := dx
	c := dy + a

	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	tan1 := (-b + sqrtD) / (2 * a)
	tan2 := (-b - sqrtD) / (2 * a)

	angle1 := math.Atan(tan1)
	angle2 := math.Atan(tan2)

	if math.Abs(angle1) < math.Abs(angle2) {
		return angle1, true
	}
	return angle2, true
}

// AimElevation 求解并修正象限后的仰角（数学坐标系，向上为正）
//
// 目标在右侧时取原始根的相反数，目标在左侧时以竖直轴镜像（π - angle）。
// 屏幕坐标系下的枪口角度为 -elevation，见 ScreenAngle。
func AimElevation(start, end Vector2, speed, gravity float64) (float64, bool) {
	angle, ok := SolveProjectileAngle(start, end, speed, gravity)
	if !ok {
		return 0, false
	}
	if end.X-start.X < 0 {
		return math.Pi - angle, true
	}
	return -angle, true
}

// ScreenAngle 将仰角转换为屏幕坐标系（Y 向下）下的角度
func ScreenAngle(elevation float64) float64 {
	return -elevation
}

// VelocityFromAngle 由屏幕坐标系角度和速率计算速度向量
func VelocityFromAngle(screenAngle, speed float64) Vector2 {
	return Vector2{
		X: math.Cos(screenAngle) * speed,
		Y: math.Sin(screenAngle) * speed,
	}
}

// TimeToTarget 计算以给定仰角和初速度水平到达 end 所需时间
// 水平速度为 0 时返回 0
func TimeToTarget(start, end Vector2, elevation, speed float64) float64 {
	vx := speed * math.Cos(elevation)
	if vx == 0 {
		return 0
	}
	return math.Abs((end.X - start.X) / vx)
}

// SampleTrajectory 惰性生成抛物线轨迹上的采样点
//
//	x(t) = x0 + vx·t
//	y(t) = y0 - (vy·t - ½·g·t²)
//
// 其中 vx = speed·cos(elevation)，vy = speed·sin(elevation)。
// 采样时间 t = maxTime·i/samples，i 从 0 到 samples（含两端），
// 因此最后一个点恰好落在 maxTime。返回的序列是有限且可重复遍历的。
// samples <= 0 时使用 DefaultTrajectorySamples。
func SampleTrajectory(start Vector2, elevation, speed, gravity, maxTime float64, samples int) iter.Seq[Vector2] {
	if samples <= 0 {
		samples = DefaultTrajectorySamples
	}
	vx := speed * math.Cos(elevation)
	vy := speed * math.Sin(elevation)

	return func(yield func(Vector2) bool) {
		for i := 0; i <= samples; i++ {
			t := maxTime * float64(i) / float64(samples)
			p := Vector2{
				X: start.X + vx*t,
				Y: start.Y - (vy*t - 0.5*gravity*t*t),
			}
			if !yield(p) {
				return
			}
		}
	}
}

// TraceTrajectory 沿采样序列前进，直到第一个被阻挡的点
//
// 返回：
//   - path: 未被阻挡的采样点（按 t 递增）
//   - end: 轨迹终点；若被阻挡则为第一个被阻挡的点
//   - obstructed: 是否被阻挡
func TraceTrajectory(points iter.Seq[Vector2], blocked func(Vector2) bool) (path []Vector2, end Vector2, obstructed bool) {
	path = make([]Vector2, 0, DefaultTrajectorySamples+1)
	for p := range points {
		if blocked != nil && blocked(p) {
			return path, p, true
		}
		path = append(path, p)
		end = p
	}
	return path, end, false
}

// LineOfSight 以离散步长检查两点之间的直线是否被阻挡
//
// 检查点为 from→to 线段上 i/steps 处（i = 1..steps），起点本身不检查。
func LineOfSight(from, to Vector2, steps int, blocked func(Vector2) bool) bool {
	if steps <= 0 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		p := Vector2{
			X: from.X + (to.X-from.X)*f,
			Y: from.Y + (to.Y-from.Y)*f,
		}
		if blocked(p) {
			return false
		}
	}
	return true
}

// Distance 两点间欧氏距离
func Distance(a, b Vector2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
