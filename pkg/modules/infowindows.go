package modules

import (
	"fmt"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InfoWindows 底部信息窗口带
// 游戏时间 / 步数 / 金钱三个窗口把屏幕宽度三等分，各 72 像素高。
// 纯展示：每帧从队伍数据重新推导，没有内部状态。
type InfoWindows struct {
	party *game.Party
}

// NewInfoWindows 创建底部信息窗口带
func NewInfoWindows(party *game.Party) *InfoWindows {
	return &InfoWindows{party: party}
}

// Draw 渲染三个信息窗口
func (w *InfoWindows) Draw(screen *ebiten.Image) {
	labels := [config.InfoWindowCount]string{"Time", "Steps", "Gold"}
	values := [config.InfoWindowCount]string{
		w.party.PlaytimeText(),
		fmt.Sprintf("%d", w.party.Steps),
		fmt.Sprintf("%d G", w.party.Gold),
	}

	for i := 0; i < config.InfoWindowCount; i++ {
		r := config.InfoWindowRect(i)
		utils.DrawWindowFrame(screen, r.X, r.Y, r.W, r.H)
		utils.DrawText(screen, labels[i], r.X+config.WindowPadding, r.Y+config.WindowPadding)
		utils.DrawText(screen, values[i], r.X+config.WindowPadding, r.Y+config.WindowPadding+20)
	}
}
