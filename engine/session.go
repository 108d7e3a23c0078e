package engine

import (
	"sync"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"neoncity/game"
	"neoncity/input"
	"neoncity/logging"
	"neoncity/render"
)

type resizer interface {
	Resize(w, h int)
}

// Options 会话参数
type Options struct {
	FPS       int
	QueueSize int
}

// Session 持有唯一的 game.State。宿主在任意 goroutine 上投递事件，
// 事件在循环 goroutine 上于 Update 之前依次处理，State 只被循环 goroutine 修改
type Session struct {
	state      *game.State
	dispatcher *input.Dispatcher
	renderer   *render.Renderer
	surface    Surface
	metrics    *FrameMetrics
	loop       *Loop

	inputs chan Input

	// 队列满时到达的抬起事件；非空期间其余事件一律丢弃以保持顺序
	mu      sync.Mutex
	pending []Input
}

func NewSession(st *game.State, r *render.Renderer, surface Surface, opts Options) *Session {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	s := &Session{
		state:      st,
		dispatcher: input.NewDispatcher(),
		renderer:   r,
		surface:    surface,
		metrics:    &FrameMetrics{},
		inputs:     make(chan Input, opts.QueueSize),
	}
	s.loop = NewLoop(opts.FPS, s.Step, s.metrics)
	return s
}

func (s *Session) Metrics() *FrameMetrics { return s.metrics }

// State 仅在循环停止时读取
func (s *Session) State() *game.State { return s.state }

// Resume 启动（或重启）循环
func (s *Session) Resume() {
	logging.Log.Infow("session resume")
	s.loop.Start()
}

// Pause 停止循环并等待其退出。会阻塞到当前帧结束，
// 因此不能在循环 goroutine（帧内）上调用，帧内请用 RequestStop
func (s *Session) Pause() {
	s.loop.Stop()
	logging.Log.Infow("session paused")
}

// RequestStop 不等待的停止：当前帧结束后循环退出，可在帧内调用
func (s *Session) RequestStop() { s.loop.RequestStop() }

func (s *Session) Running() bool { return s.loop.Running() }

// OnInput 非阻塞入队；队列满时丢弃，但抬起事件永不丢弃，
// 否则分发器会一直认为手指按着
func (s *Session) OnInput(in Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		select {
		case s.inputs <- in:
			s.metrics.IncTouchAccepted()
			return
		default:
		}
	}
	if in.isRelease() {
		s.pending = append(s.pending, in)
		s.metrics.IncTouchAccepted()
		return
	}
	s.metrics.IncTouchDropped()
}

func (s *Session) OnTouch(e touch.Event) {
	s.OnInput(Input{kind: inputTouch, touch: e})
}

// OnSurfaceResized 同时影响输入映射与原生分辨率覆盖层
func (s *Session) OnSurfaceResized(width, height int) {
	s.OnInput(Input{kind: inputResize, size: size.Event{WidthPx: width, HeightPx: height}})
}

// RequestPause 进入游戏内暂停界面（不停止循环）
func (s *Session) RequestPause() { s.OnInput(Input{kind: inputPause}) }

func (s *Session) ToggleDebug() { s.OnInput(Input{kind: inputDebug}) }

// ProcessInputs 处理当前帧的所有输入（非阻塞 drain），队列之后是积压的抬起事件
func (s *Session) ProcessInputs() {
drain:
	for {
		select {
		case in := <-s.inputs:
			s.apply(in)
		default:
			break drain
		}
	}

	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, in := range pending {
		s.apply(in)
	}
}

func (s *Session) apply(in Input) {
	switch in.kind {
	case inputTouch:
		s.dispatcher.Handle(s.state, in.touch)
	case inputResize:
		s.dispatcher.Resize(in.size)
		if r, ok := s.surface.(resizer); ok {
			r.Resize(in.size.WidthPx, in.size.HeightPx)
		}
		logging.Log.Infow("surface resized", "width", in.size.WidthPx, "height", in.size.HeightPx)
	case inputPause:
		s.state.Pause()
	case inputDebug:
		s.state.ToggleDebug()
	}
}

// Step 一帧：处理输入 → 更新 → 获取绘制目标 → 渲染 → 呈现
func (s *Session) Step(dt float64) {
	s.ProcessInputs()
	s.state.Update(dt)

	dst := s.surface.AcquireDrawTarget()
	if dst == nil {
		s.metrics.IncSkipped()
		logging.Log.Debugw("no draw target, frame skipped")
		return
	}
	jx, jy, active := s.dispatcher.Joystick()
	s.renderer.Render(dst, s.state, render.FrameInfo{
		Clock:          s.state.Elapsed,
		FPS:            s.metrics.FPS(),
		JoystickX:      jx,
		JoystickY:      jy,
		JoystickActive: active,
	})
	s.surface.Present(dst)
}
