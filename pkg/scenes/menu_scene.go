package scenes

import (
	"math/rand"
	"time"

	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 主菜单指令索引
const (
	menuCommandItem = iota
	menuCommandClose
)

// MenuScene 主菜单场景
// 菜单会话中的第一站。持有本场景实例的视差状态（场景构造时创建，
// 随场景丢弃；菜单子场景各有自己的实例），并组合三组窗口模块：
// 左侧指令窗口、右侧队伍状态窗口、底部信息窗口带。
//
// 音频不在这里处理：BGM 捕获/启动/恢复全部由 SceneManager
// 驱动的会话状态机完成，场景只管画面。
type MenuScene struct {
	env *Env

	parallax   *game.ParallaxState
	background *ebiten.Image // 视差背景图，配置为空或加载失败时为 nil

	commandWindow *modules.CommandWindow
	statusWindow  *modules.StatusWindow
	infoWindows   *modules.InfoWindows
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(env *Env) *MenuScene {
	s := &MenuScene{
		env:      env,
		parallax: game.NewParallaxState(env.Menu.ParallaxVX, env.Menu.ParallaxVY),
	}

	if env.Menu.BackgroundImage != "" {
		s.background = env.Resources.GetImageByID(env.Menu.BackgroundImage)
	}

	s.commandWindow = modules.NewCommandWindow(
		[]string{"Item", "Close"},
		modules.CommandWindowCallbacks{
			OnConfirm: s.onCommand,
			OnCursor:  func() { env.Audio.PlaySound("SE_CURSOR") },
		},
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.statusWindow = modules.NewStatusWindow(env.Party, env.Resources, rng)
	s.infoWindows = modules.NewInfoWindows(env.Party)

	return s
}

// Category 主菜单属于菜单族场景
func (s *MenuScene) Category() game.SceneCategory {
	return game.CategoryMenu
}

// onCommand 指令窗口确认回调
func (s *MenuScene) onCommand(index int) {
	switch index {
	case menuCommandItem:
		// 菜单子场景间导航：音频会话保持不变
		s.env.Manager.SwitchToID(SceneItem)
	case menuCommandClose:
		s.env.Manager.SwitchToID(SceneMap)
	}
}

// Update 更新主菜单
// 视差每个视觉帧推进一次；ESC/X 关闭菜单返回地图
func (s *MenuScene) Update(deltaTime float64) {
	s.parallax.Tick()
	s.commandWindow.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.env.Manager.SwitchToID(SceneMap)
	}
}

// Draw 渲染主菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	drawMenuBackground(screen, s.background, s.parallax)

	s.commandWindow.Draw(screen)
	s.statusWindow.Draw(screen)
	s.infoWindows.Draw(screen)
}
