package scenes

import (
	"fmt"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ItemScene 物品画面 —— 菜单族子场景
// 从主菜单进入，属于同一个菜单会话：切换到这里不触碰音频会话
// （菜单曲继续播放，不重启），但视差状态是本场景自己的新实例。
type ItemScene struct {
	env *Env

	parallax   *game.ParallaxState
	background *ebiten.Image

	items []string // 演示用物品清单
	index int
}

// NewItemScene 创建物品画面
func NewItemScene(env *Env) *ItemScene {
	s := &ItemScene{
		env:      env,
		parallax: game.NewParallaxState(env.Menu.ParallaxVX, env.Menu.ParallaxVY),
		items:    []string{"Potion x 4", "Hi-Potion x 1", "Antidote x 2", "Tent x 1"},
	}
	if env.Menu.BackgroundImage != "" {
		s.background = env.Resources.GetImageByID(env.Menu.BackgroundImage)
	}
	return s
}

// Category 物品画面属于菜单族场景
func (s *ItemScene) Category() game.SceneCategory {
	return game.CategoryMenu
}

// Update 更新物品画面
// 上下键移动光标；ESC/X 返回主菜单（仍在同一菜单会话内）
func (s *ItemScene) Update(deltaTime float64) {
	s.parallax.Tick()

	if len(s.items) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			s.index = (s.index + 1) % len(s.items)
			s.env.Audio.PlaySound("SE_CURSOR")
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			s.index = (s.index - 1 + len(s.items)) % len(s.items)
			s.env.Audio.PlaySound("SE_CURSOR")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.env.Manager.SwitchToID(SceneMenu)
	}
}

// Draw 渲染物品画面
func (s *ItemScene) Draw(screen *ebiten.Image) {
	drawMenuBackground(screen, s.background, s.parallax)

	utils.DrawWindowFrame(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight-config.InfoWindowHeight)

	utils.DrawText(screen, "Items", config.WindowPadding*2, config.WindowPadding)
	for i, item := range s.items {
		marker := "  "
		if i == s.index {
			marker = "> "
		}
		y := config.WindowPadding + (i+1)*config.LineHeight
		utils.DrawText(screen, fmt.Sprintf("%s%s", marker, item), config.WindowPadding*2, y)
	}
}
