package game

// ParallaxState 平铺背景的视差滚动状态
//
// origin 每个视觉 tick 累加一次速度，无界增长；
// 环绕由纹理采样端的取模完成，不由本组件处理。
// 生命周期与所属的菜单族场景一致：场景构造时创建，场景销毁时丢弃。
type ParallaxState struct {
	OriginX float64 // 当前水平偏移
	OriginY float64 // 当前垂直偏移

	vx float64 // 每 tick 水平速度（来自配置，只读）
	vy float64 // 每 tick 垂直速度（来自配置，只读）
}

// NewParallaxState 创建视差状态
//
// 参数：
//   - vx, vy: 每 tick 的滚动速度（配置默认 1, 0）
func NewParallaxState(vx, vy float64) *ParallaxState {
	return &ParallaxState{vx: vx, vy: vy}
}

// Tick 推进一帧：origin += velocity
// 菜单族场景在屏幕上时每个视觉帧调用一次。无暂停语义，无失败路径。
func (p *ParallaxState) Tick() {
	p.OriginX += p.vx
	p.OriginY += p.vy
}
