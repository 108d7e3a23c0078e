// Package host ebiten 宿主：轮询触摸/鼠标/按键转成触摸事件，上报窗口尺寸，绘制最近呈现的帧
package host

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/mobile/event/touch"

	"neoncity/engine"
	"neoncity/logging"
)

// mouseSequence 鼠标左键视作一根独立手指
const mouseSequence touch.Sequence = -1

// Session 宿主需要的会话入口
type Session interface {
	OnTouch(e touch.Event)
	OnSurfaceResized(width, height int)
	RequestPause()
	ToggleDebug()
}

// Game 实现 ebiten.Game；模拟与渲染在会话自己的循环 goroutine 上进行
type Game struct {
	session Session
	frames  *engine.FrameBuffer

	width, height int

	touches map[ebiten.TouchID]image.Point
	ids     []ebiten.TouchID
	mouse   image.Point
	mouseOn bool

	frame *ebiten.Image
}

func New(session Session, frames *engine.FrameBuffer) *Game {
	return &Game{
		session: session,
		frames:  frames,
		touches: make(map[ebiten.TouchID]image.Point),
	}
}

func (g *Game) send(seq touch.Sequence, t touch.Type, p image.Point) {
	g.session.OnTouch(touch.Event{X: float32(p.X), Y: float32(p.Y), Sequence: seq, Type: t})
}

// Update 轮询输入并转成触摸事件
func (g *Game) Update() error {
	g.pollTouches()
	g.pollMouse()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.RequestPause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.session.ToggleDebug()
	}
	return nil
}

func (g *Game) pollTouches() {
	g.ids = inpututil.AppendJustPressedTouchIDs(g.ids[:0])
	for _, id := range g.ids {
		x, y := ebiten.TouchPosition(id)
		p := image.Pt(x, y)
		g.touches[id] = p
		g.send(touch.Sequence(id), touch.TypeBegin, p)
	}

	for id, last := range g.touches {
		if inpututil.IsTouchJustReleased(id) {
			g.send(touch.Sequence(id), touch.TypeEnd, last)
			delete(g.touches, id)
			continue
		}
		x, y := ebiten.TouchPosition(id)
		if p := image.Pt(x, y); p != last {
			g.touches[id] = p
			g.send(touch.Sequence(id), touch.TypeMove, p)
		}
	}
}

func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	p := image.Pt(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseOn = true
		g.mouse = p
		g.send(mouseSequence, touch.TypeBegin, p)
	case g.mouseOn && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseOn = false
		g.send(mouseSequence, touch.TypeEnd, p)
	case g.mouseOn && p != g.mouse:
		g.mouse = p
		g.send(mouseSequence, touch.TypeMove, p)
	}
}

// Draw 把最近呈现的帧拉伸到屏幕；尺寸变化期间旧帧按比例缩放
func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.Latest(func(img *image.RGBA) {
		w, h := img.Rect.Dx(), img.Rect.Dy()
		if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(w, h)
		}
		g.frame.WritePixels(img.Pix)

		sb := screen.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sb.Dx())/float64(w), float64(sb.Dy())/float64(h))
		screen.DrawImage(g.frame, op)
	})
}

// Layout 使用窗口实际像素尺寸；变化时通知会话
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.OnSurfaceResized(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Options 窗口参数
type Options struct {
	Title  string
	Width  int
	Height int
}

// Run 阻塞直到窗口关闭
func Run(g *Game, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logging.Log.Infow("window opening", "width", opts.Width, "height", opts.Height)
	return ebiten.RunGame(g)
}
