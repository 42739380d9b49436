package game

import "log"

// sessionState 菜单会话状态机的状态
type sessionState int

const (
	// stateOutside 外部世界（地图）
	stateOutside sessionState = iota
	// stateInMenu 菜单会话中（一个或多个菜单族场景）
	stateInMenu
)

// MenuSessionController 菜单会话控制器 —— 场景切换状态机
//
// 职责：把宿主的场景生命周期事件翻译成 MenuAudioController 的
// 捕获/启动/恢复调用，并保证调用顺序：
//   - 捕获严格先于菜单曲启动（Outside → InMenu）
//   - 停止并恢复严格先于控制权返回外部世界（InMenu → Outside）
//
// 状态机没有轮询循环，完全由 SceneManager 在场景切换点驱动。
// 一次会话一旦开始，总是通过 InMenu → Outside 迁移结束
// （由宿主场景栈的构造保证，没有取消路径）。
//
// 显式持有状态而非包级全局变量：控制器由 SceneManager 独占拥有，
// 其他组件不读写其内部状态。
type MenuSessionController struct {
	audio *MenuAudioController
	state sessionState
}

// NewMenuSessionController 创建菜单会话控制器，初始状态为 Outside
func NewMenuSessionController(audio *MenuAudioController) *MenuSessionController {
	return &MenuSessionController{
		audio: audio,
		state: stateOutside,
	}
}

// OnSceneTransition 在场景切换点调用，恰好一次
//
// 参数：
//   - next: 即将激活的场景类别
//
// 状态迁移：
//   - Outside → InMenu: 捕获外部 BGM，然后启动菜单曲
//   - InMenu → InMenu: 音频会话不动（菜单子场景间导航）
//   - InMenu → Outside: 停止菜单曲并恢复外部 BGM
//   - Outside → Outside: 无动作（地图间切换不属于菜单会话）
func (sc *MenuSessionController) OnSceneTransition(next SceneCategory) {
	switch sc.state {
	case stateOutside:
		if next == CategoryMenu {
			log.Printf("[MenuSession] outside -> menu")
			sc.audio.OnLeavingOutsideWorld()
			sc.audio.OnMenuSessionStart()
			sc.state = stateInMenu
		}
	case stateInMenu:
		if next == CategoryMap {
			log.Printf("[MenuSession] menu -> outside")
			sc.audio.OnReturnToOutsideWorld()
			sc.state = stateOutside
		}
		// menu -> menu: 幂等保护已阻止重启音轨，这里无需任何动作
	}
}

// InMenu 返回当前是否处于菜单会话中
func (sc *MenuSessionController) InMenu() bool {
	return sc.state == stateInMenu
}
