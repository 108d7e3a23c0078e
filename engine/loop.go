package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"neoncity/logging"
)

// Loop 固定步长循环：每次迭代执行一帧工作，剩余时间休眠；超时则立即进入下一帧，
// 不跳帧也不追帧
type Loop struct {
	frame   time.Duration
	dt      float64
	step    func(dt float64)
	metrics *FrameMetrics

	mu      sync.Mutex
	running bool
	quit    chan struct{}
	done    chan struct{}

	stopReq atomic.Bool // 帧内请求的退出，不持有 mu
}

// NewLoop fps 非正时按 60 处理
func NewLoop(fps int, step func(dt float64), metrics *FrameMetrics) *Loop {
	if fps <= 0 {
		fps = 60
	}
	if metrics == nil {
		metrics = &FrameMetrics{}
	}
	return &Loop{
		frame:   time.Second / time.Duration(fps),
		dt:      1 / float64(fps),
		step:    step,
		metrics: metrics,
	}
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alive()
}

// alive 调用方持有 mu；RequestStop 退出的 goroutine 不再算运行中
func (l *Loop) alive() bool {
	if !l.running {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Start 启动循环 goroutine；已在运行时为空操作
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.alive() {
		return
	}
	l.stopReq.Store(false)
	l.running = true
	l.quit = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.quit, l.done)
	logging.Log.Infow("loop started", "frame", l.frame)
}

// Stop 通知退出并等待当前帧结束；返回后不会再有帧被绘制。
// 可重复调用；在 step 内部会死锁，帧内改用 RequestStop
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	close(l.quit)
	<-l.done
	l.running = false
	logging.Log.Infow("loop stopped", "metrics", l.metrics.Snapshot())
}

// RequestStop 只发出退出请求，不等待；当前帧结束后循环退出
func (l *Loop) RequestStop() {
	l.stopReq.Store(true)
}

func (l *Loop) run(quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(l.frame)
	defer timer.Stop()
	last := time.Now()
	for {
		select {
		case <-quit:
			return
		default:
		}

		start := time.Now()
		l.step(l.dt)
		elapsed := time.Since(start)
		l.metrics.AddFrame(elapsed.Nanoseconds())
		if l.stopReq.Load() {
			logging.Log.Infow("loop stop requested", "metrics", l.metrics.Snapshot())
			return
		}

		if elapsed < l.frame {
			timer.Reset(l.frame - elapsed)
			select {
			case <-quit:
				return
			case <-timer.C:
			}
		} else {
			l.metrics.IncOverrun()
			logging.Log.Debugw("frame overrun", "elapsed", elapsed, "budget", l.frame)
		}

		now := time.Now()
		if d := now.Sub(last).Seconds(); d > 0 {
			l.metrics.SetFPS(1 / d)
		}
		last = now
	}
}
