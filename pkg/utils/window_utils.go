package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 菜单窗口通用绘制工具
// 窗口皮肤缺失时的降级绘制：半透明底 + 边框 + 调试字体文本。
// 所有函数都是无状态的纯绘制调用。

// 窗口配色（接近宿主引擎默认皮肤的深蓝色调）
var (
	windowFill   = color.RGBA{R: 16, G: 24, B: 48, A: 208}
	windowBorder = color.RGBA{R: 200, G: 208, B: 224, A: 255}

	// GaugeBackColor 计量条底色
	GaugeBackColor = color.RGBA{R: 32, G: 32, B: 48, A: 255}
	// GaugeHPColor HP 计量条颜色
	GaugeHPColor = color.RGBA{R: 96, G: 192, B: 96, A: 255}
	// GaugeMPColor MP 计量条颜色
	GaugeMPColor = color.RGBA{R: 96, G: 128, B: 224, A: 255}
	// GaugeTPColor TP 计量条颜色
	GaugeTPColor = color.RGBA{R: 224, G: 160, B: 64, A: 255}
)

// DrawWindowFrame 绘制窗口底和边框
func DrawWindowFrame(screen *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), windowFill, false)

	// 1px 边框（四条细矩形）
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, windowBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y+h-1), float32(w), 1, windowBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(h), windowBorder, false)
	vector.DrawFilledRect(screen, float32(x+w-1), float32(y), 1, float32(h), windowBorder, false)
}

// DrawText 在指定位置绘制一行文本（调试字体）
func DrawText(screen *ebiten.Image, str string, x, y int) {
	ebitenutil.DebugPrintAt(screen, str, x, y)
}

// DrawGauge 绘制一条计量条（HP/MP/TP）
//
// 参数：
//   - current, max: 当前值和最大值；max <= 0 时按空条处理
//   - fill: 条的填充色
func DrawGauge(screen *ebiten.Image, x, y, w, h int, current, max int, fill color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), GaugeBackColor, false)

	fw := GaugeFillWidth(w, current, max)
	if fw <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(fw), float32(h), fill, false)
}

// GaugeFillWidth 返回计量条填充宽度（像素）
// 纯函数，供渲染和测试共用
func GaugeFillWidth(w, current, max int) int {
	if max <= 0 {
		return 0
	}
	ratio := float64(current) / float64(max)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(float64(w) * ratio)
}
