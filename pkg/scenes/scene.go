package scenes

import (
	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景工厂使用的场景标识
const (
	SceneMap  = "map"  // 外部世界（地图）
	SceneMenu = "menu" // 主菜单
	SceneItem = "item" // 物品画面（菜单子场景）
)

// Env 场景共享的运行环境
// 显式传给每个场景构造函数，取代进程级单例：
// 所有跨场景状态（音频会话、队伍数据、配置）都经由这里流动。
type Env struct {
	Resources *game.ResourceManager
	Manager   *game.SceneManager
	Audio     *game.AudioManager
	Party     *game.Party
	Menu      *config.MenuConfig
}

// NewSceneFactory 返回绑定到 env 的场景工厂函数
func NewSceneFactory(env *Env) game.SceneFactory {
	return func(sceneID string) game.Scene {
		switch sceneID {
		case SceneMap:
			return NewMapScene(env)
		case SceneMenu:
			return NewMenuScene(env)
		case SceneItem:
			return NewItemScene(env)
		default:
			return nil
		}
	}
}
