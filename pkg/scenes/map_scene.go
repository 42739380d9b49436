package scenes

import (
	"image/color"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapScene 外部世界场景（地图）
// 菜单会话状态机视角下的 "Outside"：持有地图 BGM，
// 进入菜单时它的播放状态被快照捕获，返回时从中断处恢复。
//
// 地图本身只是演示用的最小实现：一个可移动的标记，
// 移动累计步数，每帧累计游戏时间。
type MapScene struct {
	env *Env

	playerX    float64
	playerY    float64
	bgmChecked bool // 首帧已检查过地图 BGM
}

// 地图移动速度（每帧像素）
const mapMoveSpeed = 3.0

// NewMapScene 创建地图场景
// 构造函数不触碰音频：场景在 SwitchTo 激活之前就已构造，
// 此时会话状态机的恢复动作可能尚未执行。BGM 检查推迟到首帧。
func NewMapScene(env *Env) *MapScene {
	return &MapScene{
		env:     env,
		playerX: float64(config.GameWindowWidth) / 2,
		playerY: float64(config.GameWindowHeight) / 2,
	}
}

// ensureFieldBgm 首帧启动地图 BGM
// 若配置了地图 BGM 且当前没有在播放它（首次进入），从头播放；
// 从菜单返回时 BGM 已由会话控制器恢复到中断位置，这里不会重启。
func (s *MapScene) ensureFieldBgm() {
	if s.bgmChecked {
		return
	}
	s.bgmChecked = true

	track := s.env.Menu.FieldTrack
	if track != "" && s.env.Audio.CurrentTrack() != track {
		s.env.Audio.Play(track, s.env.Menu.FieldVolume, config.DefaultMenuPitch, 0)
	}
}

// Category 地图场景属于外部世界
func (s *MapScene) Category() game.SceneCategory {
	return game.CategoryMap
}

// Update 更新地图逻辑
// ESC/X 打开主菜单；方向键移动并累计步数；游戏时间每帧累计
func (s *MapScene) Update(deltaTime float64) {
	s.ensureFieldBgm()
	s.env.Party.TickPlaytime()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.env.Manager.SwitchToID(SceneMenu)
		return
	}

	moved := false
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.playerX -= mapMoveSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.playerX += mapMoveSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.playerY -= mapMoveSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.playerY += mapMoveSpeed
		moved = true
	}
	if moved {
		s.clampPlayer()
		s.env.Party.IncrementSteps()
	}
}

// clampPlayer 把标记限制在屏幕内
func (s *MapScene) clampPlayer() {
	if s.playerX < 0 {
		s.playerX = 0
	}
	if s.playerX > float64(config.GameWindowWidth) {
		s.playerX = float64(config.GameWindowWidth)
	}
	if s.playerY < 0 {
		s.playerY = 0
	}
	if s.playerY > float64(config.GameWindowHeight) {
		s.playerY = float64(config.GameWindowHeight)
	}
}

// Draw 渲染地图场景
func (s *MapScene) Draw(screen *ebiten.Image) {
	// 草地底色
	screen.Fill(color.RGBA{R: 52, G: 96, B: 52, A: 255})

	// 玩家标记
	vector.DrawFilledCircle(screen, float32(s.playerX), float32(s.playerY), 10, color.RGBA{R: 232, G: 224, B: 96, A: 255}, false)

	utils.DrawText(screen, "Arrows: move    ESC/X: menu    F9: BGM    -/=: volume", 8, 8)
}
