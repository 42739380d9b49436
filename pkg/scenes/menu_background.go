package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 菜单族场景共用的视差背景渲染
//
// ParallaxState 的 origin 无界增长，这里在采样时对图片尺寸取模实现环绕，
// 然后把背景图平铺到整个屏幕。背景图缺失时降级为纯色填充。

// menuBackdropColor 背景图禁用/缺失时的降级底色
var menuBackdropColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}

// drawMenuBackground 平铺绘制视差背景
func drawMenuBackground(screen *ebiten.Image, bg *ebiten.Image, p *game.ParallaxState) {
	if bg == nil {
		screen.Fill(menuBackdropColor)
		return
	}

	w := float64(bg.Bounds().Dx())
	h := float64(bg.Bounds().Dy())
	if w <= 0 || h <= 0 {
		screen.Fill(menuBackdropColor)
		return
	}

	// origin 对图片尺寸取模得到首块偏移（滚动方向为图片内容反向移动）
	offsetX := math.Mod(p.OriginX, w)
	if offsetX < 0 {
		offsetX += w
	}
	offsetY := math.Mod(p.OriginY, h)
	if offsetY < 0 {
		offsetY += h
	}

	for y := -offsetY; y < float64(config.GameWindowHeight); y += h {
		for x := -offsetX; x < float64(config.GameWindowWidth); x += w {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(bg, op)
		}
	}
}
