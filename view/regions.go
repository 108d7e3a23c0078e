package view

// Rect 低分辨率坐标中的轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 边界包含在内
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// 右下角操作按钮，按此顺序判定
var (
	InventoryButton = Rect{X: GameWidth - 60, Y: GameHeight - 30, W: 25, H: 25}
	QuestButton     = Rect{X: GameWidth - 30, Y: GameHeight - 30, W: 25, H: 25}
	InteractButton  = Rect{X: GameWidth - 45, Y: GameHeight - 60, W: 30, H: 25}
)

// 左下角虚拟摇杆
const (
	JoystickCenterX  = 50.0
	JoystickCenterY  = GameHeight - 50.0
	JoystickRadius   = 35.0
	JoystickZone     = JoystickRadius * 1.5 // 按下判定半径
	JoystickDeadZone = 5.0
	JoystickMaxSpeed = 0.08
)

// 标题画面 "NEW GAME" 竖向判定带
const (
	TitleBandHalfHeight = 20.0
	TitleBandCenterY    = GameHeight / 2.0
)

// 对话框
const (
	DialogueBoxTop        = GameHeight - 60.0
	DialogueBoxLeft       = 10.0
	DialogueBoxBottom     = GameHeight - 10.0
	ResponseOffset        = 25.0
	ResponseLineHeight    = 12.0
	ResponseHalfHitHeight = 6.0
)

// ResponseY 第 i 个回答行的基线
func ResponseY(i int) float64 {
	return DialogueBoxTop + ResponseOffset + float64(i)*ResponseLineHeight
}

// ModalBounds 背包/任务日志的点击关闭判定：此矩形外点击即关闭
var ModalBounds = Rect{X: 20, Y: 20, W: GameWidth - 40, H: GameHeight - 40}

// ModalPanel 背包/任务日志面板绘制区域
var ModalPanel = Rect{X: 30, Y: 20, W: GameWidth - 60, H: GameHeight - 40}
