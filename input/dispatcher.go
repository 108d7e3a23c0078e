// Package input 按当前界面把触摸事件转成对游戏状态的修改
package input

import (
	"math"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"neoncity/entity"
	"neoncity/game"
	"neoncity/logging"
	"neoncity/view"
)

// DragThreshold 超过此位移（低分辨率像素）的按下-移动视为拖拽，抑制点击移动
const DragThreshold = 4.0

// Dispatcher 单指触摸分发器；只在循环 goroutine 上调用
type Dispatcher struct {
	proj view.Projection

	scaleX, scaleY float64 // 设备像素 -> 低分辨率像素

	active   touch.Sequence
	down     bool
	joystick bool
	dragging bool
	downX    float64
	downY    float64
	knobX    float64
	knobY    float64
}

// NewDispatcher 初始比例为 1:1，直到收到第一次尺寸事件
func NewDispatcher() *Dispatcher {
	return &Dispatcher{proj: view.Default(), scaleX: 1, scaleY: 1}
}

// SetSurfaceSize 重新计算缩放；非正尺寸被忽略
func (d *Dispatcher) SetSurfaceSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.scaleX = float64(view.GameWidth) / float64(width)
	d.scaleY = float64(view.GameHeight) / float64(height)
}

func (d *Dispatcher) Resize(e size.Event) {
	d.SetSurfaceSize(e.WidthPx, e.HeightPx)
}

// ToGame 设备像素到低分辨率坐标
func (d *Dispatcher) ToGame(x, y float32) (float64, float64) {
	return float64(x) * d.scaleX, float64(y) * d.scaleY
}

// Joystick 摇杆拇指相对中心的偏移（已限制在半径内）
func (d *Dispatcher) Joystick() (dx, dy float64, active bool) {
	return d.knobX, d.knobY, d.joystick
}

// Handle 按当前界面路由事件；总是返回 true（没有事件透传）
func (d *Dispatcher) Handle(st *game.State, e touch.Event) bool {
	switch e.Type {
	case touch.TypeBegin:
		if d.down {
			return true // 只跟踪第一根手指
		}
		d.down = true
		d.active = e.Sequence
		d.resetGesture(st.Player)
	case touch.TypeMove, touch.TypeEnd:
		if !d.down || e.Sequence != d.active {
			return true
		}
		if e.Type == touch.TypeEnd {
			d.down = false
			if st.Screen != game.ScreenPlaying {
				// 手势途中离开了 PLAYING（例如暂停），摇杆状态作废
				d.resetGesture(st.Player)
			}
		}
	}

	gx, gy := d.ToGame(e.X, e.Y)
	switch st.Screen {
	case game.ScreenTitle:
		d.handleTitle(st, e.Type, gx, gy)
	case game.ScreenPlaying:
		d.handlePlaying(st, e.Type, gx, gy)
	case game.ScreenDialogue:
		d.handleDialogue(st, e.Type, gx, gy)
	case game.ScreenInventory:
		if e.Type == touch.TypeEnd && !view.ModalBounds.Contains(gx, gy) {
			st.ToggleInventory()
		}
	case game.ScreenQuestLog:
		if e.Type == touch.TypeEnd && !view.ModalBounds.Contains(gx, gy) {
			st.ToggleQuestLog()
		}
	case game.ScreenPause:
		if e.Type == touch.TypeEnd {
			st.Resume()
		}
	}
	return true
}

func (d *Dispatcher) handleTitle(st *game.State, t touch.Type, _, gy float64) {
	if t != touch.TypeEnd {
		return
	}
	if math.Abs(gy-view.TitleBandCenterY) < view.TitleBandHalfHeight {
		st.StartGame()
	}
}

func (d *Dispatcher) handlePlaying(st *game.State, t touch.Type, gx, gy float64) {
	switch t {
	case touch.TypeBegin:
		d.downX, d.downY = gx, gy
		if math.Hypot(gx-view.JoystickCenterX, gy-view.JoystickCenterY) <= view.JoystickZone {
			d.joystick = true
			st.Player.ClearMoveTarget()
			d.steer(st.Player, gx, gy)
		}
	case touch.TypeMove:
		if d.joystick {
			d.steer(st.Player, gx, gy)
			return
		}
		if math.Hypot(gx-d.downX, gy-d.downY) > DragThreshold {
			d.dragging = true
		}
	case touch.TypeEnd:
		if d.joystick {
			d.releaseJoystick(st.Player)
			return
		}
		if !d.dragging {
			d.tap(st, gx, gy)
		}
		d.dragging = false
	}
}

// steer 由摇杆偏移直接设置玩家速度与朝向
func (d *Dispatcher) steer(p *entity.Player, gx, gy float64) {
	dx := gx - view.JoystickCenterX
	dy := gy - view.JoystickCenterY
	dist := math.Hypot(dx, dy)

	d.knobX, d.knobY = dx, dy
	if dist > view.JoystickRadius {
		d.knobX = dx / dist * view.JoystickRadius
		d.knobY = dy / dist * view.JoystickRadius
	}

	if dist < view.JoystickDeadZone {
		p.VX, p.VY = 0, 0
		return
	}
	speed := math.Min(dist/view.JoystickRadius, 1) * view.JoystickMaxSpeed
	p.VX = dx / dist * speed
	p.VY = dy / dist * speed
	p.Facing = entity.DeriveFacing(dx, dy, p.Facing)
}

// resetGesture 清除上一次手势残留；摇杆残留时玩家停下
func (d *Dispatcher) resetGesture(p *entity.Player) {
	d.dragging = false
	if d.joystick {
		d.releaseJoystick(p)
	}
}

func (d *Dispatcher) releaseJoystick(p *entity.Player) {
	d.joystick = false
	d.knobX, d.knobY = 0, 0
	p.VX, p.VY = 0, 0
}

// tap 按固定优先级判定按钮，否则作为点击移动
func (d *Dispatcher) tap(st *game.State, gx, gy float64) {
	switch {
	case view.InventoryButton.Contains(gx, gy):
		st.ToggleInventory()
	case view.QuestButton.Contains(gx, gy):
		st.ToggleQuestLog()
	case view.InteractButton.Contains(gx, gy):
		st.Interact()
	default:
		wx, wy := d.proj.ScreenToWorld(gx, gy)
		tx, ty := wx+st.CameraX, wy+st.CameraY
		st.Player.SetMoveTarget(tx, ty)
		logging.Log.Debugw("move target", "x", tx, "y", ty)
	}
}

func (d *Dispatcher) handleDialogue(st *game.State, t touch.Type, _, gy float64) {
	if t != touch.TypeEnd || st.Dialogue == nil {
		return
	}
	responses := st.Dialogue.Responses()
	if len(responses) == 0 {
		st.EndDialogue()
		return
	}
	if len(responses) == 1 && responses[0] == entity.Goodbye {
		if st.SelectResponse(0) {
			st.EndDialogue()
		}
		return
	}
	for i := range responses {
		if math.Abs(gy-view.ResponseY(i)) <= view.ResponseHalfHitHeight {
			st.SelectResponse(i)
			return
		}
	}
}
