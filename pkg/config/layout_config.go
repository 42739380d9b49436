package config

// 主菜单布局常量
// 屏幕按宿主引擎的默认逻辑尺寸 816x624 计算。
// 所有窗口矩形都是纯数据 + 纯函数：每次刷新从当前数据重新推导，无内部状态。

// 游戏窗口逻辑尺寸
const (
	GameWindowWidth  = 816
	GameWindowHeight = 624
)

// 窗口布局参数
const (
	// LineHeight 单行文本高度（像素）
	LineHeight = 36

	// InfoWindowHeight 底部信息窗口（游戏时间/步数/金钱）高度
	InfoWindowHeight = 72

	// CommandWindowWidth 左侧指令窗口宽度
	CommandWindowWidth = 240

	// WindowPadding 窗口内边距
	WindowPadding = 12
)

// Rect 窗口矩形（屏幕坐标，左上角原点）
type Rect struct {
	X int
	Y int
	W int
	H int
}

// CommandWindowRect 返回指令窗口矩形
// 指令窗口占据屏幕左侧，从顶部延伸到底部信息栏之上
func CommandWindowRect() Rect {
	return Rect{
		X: 0,
		Y: 0,
		W: CommandWindowWidth,
		H: GameWindowHeight - InfoWindowHeight,
	}
}

// StatusWindowRect 返回状态窗口矩形
// 状态窗口占据指令窗口右侧的剩余宽度，与指令窗口等高
func StatusWindowRect() Rect {
	return Rect{
		X: CommandWindowWidth,
		Y: 0,
		W: GameWindowWidth - CommandWindowWidth,
		H: GameWindowHeight - InfoWindowHeight,
	}
}

// InfoWindowCount 底部信息窗口数量（游戏时间、步数、金钱）
const InfoWindowCount = 3

// InfoWindowRect 返回第 index 个底部信息窗口矩形
//
// 三个窗口把屏幕宽度三等分，各 72 像素高，贴着屏幕底边排列。
// 宽度不能整除时，最后一个窗口吸收余数像素，保证三个窗口恰好铺满屏宽。
//
// 参数：
//   - index: 窗口索引（0=游戏时间, 1=步数, 2=金钱）
//
// 返回：
//   - Rect: 窗口矩形；索引越界返回零值矩形
func InfoWindowRect(index int) Rect {
	if index < 0 || index >= InfoWindowCount {
		return Rect{}
	}

	third := GameWindowWidth / InfoWindowCount
	w := third
	if index == InfoWindowCount-1 {
		w = GameWindowWidth - third*(InfoWindowCount-1)
	}

	return Rect{
		X: third * index,
		Y: GameWindowHeight - InfoWindowHeight,
		W: w,
		H: InfoWindowHeight,
	}
}

// StatusRowHeight 状态窗口中每个角色行的高度
const StatusRowHeight = 132

// StatusRowRect 返回状态窗口内第 row 个角色行的矩形（屏幕坐标）
func StatusRowRect(row int) Rect {
	win := StatusWindowRect()
	return Rect{
		X: win.X + WindowPadding,
		Y: win.Y + WindowPadding + row*StatusRowHeight,
		W: win.W - WindowPadding*2,
		H: StatusRowHeight,
	}
}
