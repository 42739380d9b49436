package modules

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/decker502/rpgmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// StatusWindow 队伍状态窗口模块
// 每次 Refresh 都从队伍数据重新推导全部显示内容——名字、等级、
// HP/MP/TP 计量条、升级所需经验、AP，以及头像格子索引。
//
// 头像格子索引在每次 Refresh 时重新随机（0~7）。
// 这是源素材的原样行为：跨刷新不稳定，是否刻意无从考证，这里保留。
type StatusWindow struct {
	party *game.Party
	rm    *game.ResourceManager
	rng   *rand.Rand

	faceIndices []int // 每个成员本次刷新选中的头像格子索引
}

// NewStatusWindow 创建状态窗口模块
//
// 参数：
//   - party: 队伍数据提供者（只读）
//   - rm: 资源管理器（用于加载头像表，可为 nil，降级为色块）
//   - rng: 随机源（用于头像格子重掷；nil 时固定为索引 0）
func NewStatusWindow(party *game.Party, rm *game.ResourceManager, rng *rand.Rand) *StatusWindow {
	w := &StatusWindow{
		party: party,
		rm:    rm,
		rng:   rng,
	}
	w.Refresh()
	return w
}

// Refresh 重新推导显示内容
// 窗口内容失效时调用（场景进入、队伍数据变化）；每次调用重掷头像索引
func (w *StatusWindow) Refresh() {
	w.faceIndices = make([]int, len(w.party.Members))
	for i, actor := range w.party.Members {
		w.faceIndices[i] = actor.RollFaceIndex(w.rng)
	}
}

// FaceIndices 返回本次刷新选中的头像格子索引
func (w *StatusWindow) FaceIndices() []int {
	return w.faceIndices
}

// Draw 渲染状态窗口
func (w *StatusWindow) Draw(screen *ebiten.Image) {
	win := config.StatusWindowRect()
	utils.DrawWindowFrame(screen, win.X, win.Y, win.W, win.H)

	for i, actor := range w.party.Members {
		w.drawActorRow(screen, i, actor)
	}
}

// 行内布局参数
const (
	faceCellSize = 96  // 头像格子边长
	gaugeWidth   = 180 // 计量条宽度
	gaugeHeight  = 8   // 计量条高度
)

// drawActorRow 渲染单个角色行
func (w *StatusWindow) drawActorRow(screen *ebiten.Image, row int, actor *game.Actor) {
	r := config.StatusRowRect(row)

	// 头像格子：从头像表按索引取格，表缺失时降级为空框
	w.drawFace(screen, r.X, r.Y, actor, w.faceIndices[row])

	textX := r.X + faceCellSize + config.WindowPadding
	textY := r.Y

	utils.DrawText(screen, fmt.Sprintf("%s  Lv.%d", actor.Name, actor.Level), textX, textY)

	// HP/MP/TP 计量条，数值文本画在条右侧
	gaugeX := textX
	gaugeY := textY + 20
	w.drawStatGauge(screen, gaugeX, gaugeY, "HP", actor.HP, actor.MaxHP, utils.GaugeHPColor)
	w.drawStatGauge(screen, gaugeX, gaugeY+18, "MP", actor.MP, actor.MaxMP, utils.GaugeMPColor)
	w.drawStatGauge(screen, gaugeX, gaugeY+36, "TP", actor.TP, 100, utils.GaugeTPColor)

	// 升级所需经验和 AP
	extraX := gaugeX + gaugeWidth + config.WindowPadding*4
	utils.DrawText(screen, fmt.Sprintf("Next %d", actor.ExpToNext()), extraX, gaugeY)
	utils.DrawText(screen, fmt.Sprintf("AP %d", actor.AP), extraX, gaugeY+18)
}

// drawStatGauge 渲染一条带标签的计量条
func (w *StatusWindow) drawStatGauge(screen *ebiten.Image, x, y int, label string, current, max int, fill color.Color) {
	utils.DrawText(screen, label, x, y-2)
	utils.DrawGauge(screen, x+28, y, gaugeWidth-28, gaugeHeight, current, max, fill)
	utils.DrawText(screen, fmt.Sprintf("%d/%d", current, max), x+gaugeWidth+6, y-2)
}

// drawFace 渲染头像格子
func (w *StatusWindow) drawFace(screen *ebiten.Image, x, y int, actor *game.Actor, cell int) {
	utils.DrawWindowFrame(screen, x, y, faceCellSize, faceCellSize)

	if w.rm == nil {
		return
	}
	sheet := w.rm.GetImageByID(actor.FaceSheet)
	if sheet == nil {
		// 头像表缺失：框内标出格子索引，保持布局可见
		utils.DrawText(screen, fmt.Sprintf("#%d", cell), x+4, y+4)
		return
	}

	// 头像表为 8 格一行的横向图集
	bounds := sheet.Bounds()
	cellW := bounds.Dx() / game.FaceCellCount
	if cellW <= 0 {
		return
	}
	cellRect := image.Rect(bounds.Min.X+cell*cellW, bounds.Min.Y, bounds.Min.X+(cell+1)*cellW, bounds.Max.Y)
	sub := sheet.SubImage(cellRect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	scale := float64(faceCellSize) / float64(cellW)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(sub, op)
}
