package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按标识创建场景，避免 scenes 包与本包的循环依赖
type SceneFactory func(sceneID string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// SceneManager 同时是菜单会话状态机的驱动者：每次 SwitchTo 都是一个
// "当前场景即将终止、且已知下一场景类别"的生命周期通知点，
// 会话钩子在新场景激活之前按顺序触发。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory           // 场景工厂函数，用于创建新场景
	session      *MenuSessionController // 菜单会话控制器，可为 nil（无音频会话模式）
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(session *MenuSessionController) *SceneManager {
	return &SceneManager{
		currentScene: nil,
		sceneFactory: nil,
		session:      session,
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
//
// 切换顺序（顺序敏感）：
//  1. 根据当前/下一场景类别驱动会话状态机
//     （捕获先于菜单曲启动；停止恢复先于外部场景激活）
//  2. 激活新场景
//
// The new scene's Update and Draw methods will be called on subsequent
// game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	next := CategoryOf(scene)
	if sm.session != nil {
		sm.session.OnSceneTransition(next)
	}
	log.Printf("[SceneManager] Switch scene: %s -> %s", CategoryOf(sm.currentScene), next)
	sm.currentScene = scene
}

// SwitchToID 通过场景工厂创建并切换到指定标识的场景
func (sm *SceneManager) SwitchToID(sceneID string) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(sceneID)
	if newScene != nil {
		sm.SwitchTo(newScene)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", sceneID)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
