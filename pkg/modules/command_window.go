package modules

import (
	"github.com/decker502/rpgmenu/pkg/config"
	"github.com/decker502/rpgmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CommandWindow 主菜单指令窗口模块
// 封装指令列表的选择状态、键盘导航和渲染。
//
// 设计原则：
//   - 高内聚：指令窗口的交互与绘制封装在单一模块中
//   - 低耦合：通过回调集合与场景交互，不持有场景引用
type CommandWindow struct {
	commands []string // 指令文本列表
	index    int      // 当前选中索引

	rect config.Rect // 窗口矩形（布局常量，构造时求值一次）

	// 回调函数（由外部场景提供）
	onConfirm func(index int) // 确认选中指令回调
	onCursor  func()          // 光标移动回调（可选，用于播放光标音效）
}

// CommandWindowCallbacks 指令窗口回调函数集合
// 用于外部场景传递回调逻辑
type CommandWindowCallbacks struct {
	OnConfirm func(index int) // 确认选中指令回调
	OnCursor  func()          // 光标移动回调（可选，传 nil 则静默）
}

// NewCommandWindow 创建指令窗口模块
//
// 参数：
//   - commands: 指令文本列表
//   - callbacks: 回调函数集合
func NewCommandWindow(commands []string, callbacks CommandWindowCallbacks) *CommandWindow {
	return &CommandWindow{
		commands:  commands,
		rect:      config.CommandWindowRect(),
		onConfirm: callbacks.OnConfirm,
		onCursor:  callbacks.OnCursor,
	}
}

// Index 返回当前选中索引
func (w *CommandWindow) Index() int {
	return w.index
}

// Update 处理键盘导航
// 上下键移动光标（循环），回车/Z 确认
func (w *CommandWindow) Update() {
	if len(w.commands) == 0 {
		return
	}

	moved := false
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		w.index = (w.index + 1) % len(w.commands)
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		w.index = (w.index - 1 + len(w.commands)) % len(w.commands)
		moved = true
	}
	if moved && w.onCursor != nil {
		w.onCursor()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if w.onConfirm != nil {
			w.onConfirm(w.index)
		}
	}
}

// Draw 渲染指令窗口
func (w *CommandWindow) Draw(screen *ebiten.Image) {
	utils.DrawWindowFrame(screen, w.rect.X, w.rect.Y, w.rect.W, w.rect.H)

	for i, cmd := range w.commands {
		x := w.rect.X + config.WindowPadding*2
		y := w.rect.Y + config.WindowPadding + i*config.LineHeight
		marker := "  "
		if i == w.index {
			marker = "> "
		}
		utils.DrawText(screen, marker+cmd, x, y)
	}
}
