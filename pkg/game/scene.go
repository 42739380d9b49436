package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneCategory 场景类别
// 用于区分"外部世界"（地图）与"菜单族"场景，驱动菜单会话状态机
type SceneCategory int

const (
	// CategoryMap 外部世界场景（地图、战斗等非菜单场景）
	CategoryMap SceneCategory = iota
	// CategoryMenu 菜单族场景（主菜单、物品、状态等，从暂停菜单可达的所有画面）
	CategoryMenu
)

// String returns a human readable name for logging.
func (c SceneCategory) String() string {
	switch c {
	case CategoryMap:
		return "map"
	case CategoryMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Scene represents a game scene (e.g., field map, main menu, item screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Categorized 是一个可选接口，场景通过它声明自己属于哪个类别
//
// SceneManager 在切换场景时读取此类别来驱动菜单会话状态机：
//   - map → menu: 捕获当前 BGM 并启动菜单曲
//   - menu → menu: 音频会话保持不变
//   - menu → map: 停止菜单曲并恢复之前的 BGM
//
// 未实现此接口的场景按 CategoryMap 处理。
type Categorized interface {
	// Category 返回场景类别
	Category() SceneCategory
}

// CategoryOf 返回场景的类别
// nil 场景和未实现 Categorized 的场景按 CategoryMap 处理
func CategoryOf(scene Scene) SceneCategory {
	if scene == nil {
		return CategoryMap
	}
	if c, ok := scene.(Categorized); ok {
		return c.Category()
	}
	return CategoryMap
}
