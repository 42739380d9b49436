package game

import (
	"fmt"
	"math/rand"
)

// Actor 队伍成员的只读数据
// 状态窗口每次刷新时从这里重新推导显示内容，窗口自身不保存任何角色状态。
type Actor struct {
	Name      string // 角色名
	Level     int    // 等级
	HP        int    // 当前生命
	MaxHP     int    // 最大生命
	MP        int    // 当前魔力
	MaxMP     int    // 最大魔力
	TP        int    // 当前气力 0 ~ 100
	Exp       int    // 当前累计经验
	LevelExp  int    // 当前等级起点经验
	NextExp   int    // 下一等级所需累计经验
	AP        int    // 能力点
	FaceSheet string // 头像表资源ID（8 格一行的面部图集）
}

// FaceCellCount 每张头像表的格子数
const FaceCellCount = 8

// ExpToNext 返回距离下一等级还需的经验值
// 已满级（NextExp <= Exp）返回 0
func (a *Actor) ExpToNext() int {
	remain := a.NextExp - a.Exp
	if remain < 0 {
		return 0
	}
	return remain
}

// RollFaceIndex 随机选择头像格子索引 0 ~ 7
//
// 每次刷新重新随机——跨刷新不稳定是刻意保留的行为：
// 源素材在每次状态窗口重绘时都重掷头像索引，这里原样保留，
// 并在此注明该行为在素材中没有任何意图说明。
func (a *Actor) RollFaceIndex(rng *rand.Rand) int {
	if rng == nil {
		return 0
	}
	return rng.Intn(FaceCellCount)
}

// Party 队伍数据提供者
// 对菜单窗口只读：名字、HP/MP/TP、经验进度、AP、金钱、步数、游戏时间。
// 实际游戏里这些数据由地图/战斗逻辑写入；菜单运行时只消费。
type Party struct {
	Members []*Actor

	Gold  int // 持有金钱
	Steps int // 累计步数

	playtimeFrames int // 累计游戏帧数（60 帧 = 1 秒）
}

// NewParty 创建队伍
func NewParty(members ...*Actor) *Party {
	return &Party{Members: members}
}

// AddGold 增加金钱，下限 0
func (p *Party) AddGold(amount int) {
	p.Gold += amount
	if p.Gold < 0 {
		p.Gold = 0
	}
}

// IncrementSteps 步数 +1
func (p *Party) IncrementSteps() {
	p.Steps++
}

// TickPlaytime 游戏时间 +1 帧
// 由地图场景每帧调用；菜单场景中时间不走（与宿主引擎一致）
func (p *Party) TickPlaytime() {
	p.playtimeFrames++
}

// PlaytimeText 返回 H:MM:SS 格式的游戏时间
func (p *Party) PlaytimeText() string {
	totalSeconds := p.playtimeFrames / 60
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// DefaultParty 返回演示用的初始队伍
func DefaultParty() *Party {
	return NewParty(
		&Actor{
			Name:      "Harold",
			Level:     7,
			HP:        412,
			MaxHP:     480,
			MP:        74,
			MaxMP:     90,
			TP:        35,
			Exp:       2780,
			LevelExp:  2400,
			NextExp:   3600,
			AP:        12,
			FaceSheet: "IMAGE_FACE_ACTOR1",
		},
		&Actor{
			Name:      "Therese",
			Level:     6,
			HP:        355,
			MaxHP:     390,
			MP:        120,
			MaxMP:     130,
			TP:        60,
			Exp:       1980,
			LevelExp:  1750,
			NextExp:   2600,
			AP:        9,
			FaceSheet: "IMAGE_FACE_ACTOR2",
		},
	)
}
