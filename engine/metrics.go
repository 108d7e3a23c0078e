package engine

import (
	"math"
	"sync/atomic"
)

// FrameMetrics 循环运行期指标（调试覆盖层与退出日志使用）
type FrameMetrics struct {
	FrameCount    int64 // 完成的帧数
	Overruns      int64 // 超出帧预算、未休眠的帧
	SkippedDraws  int64 // 拿不到绘制目标而跳过绘制的帧
	TouchAccepted int64 // 入队的输入事件
	TouchDropped  int64 // 因队列满被丢弃的输入事件
	TotalFrameNs  int64 // 帧内工作累计耗时（纳秒）

	fpsBits uint64
}

func (m *FrameMetrics) IncOverrun()       { atomic.AddInt64(&m.Overruns, 1) }
func (m *FrameMetrics) IncSkipped()       { atomic.AddInt64(&m.SkippedDraws, 1) }
func (m *FrameMetrics) IncTouchAccepted() { atomic.AddInt64(&m.TouchAccepted, 1) }
func (m *FrameMetrics) IncTouchDropped()  { atomic.AddInt64(&m.TouchDropped, 1) }

func (m *FrameMetrics) AddFrame(ns int64) {
	atomic.AddInt64(&m.FrameCount, 1)
	atomic.AddInt64(&m.TotalFrameNs, ns)
}

// SetFPS 记录最近一帧的实测帧率
func (m *FrameMetrics) SetFPS(fps float64) {
	atomic.StoreUint64(&m.fpsBits, math.Float64bits(fps))
}

func (m *FrameMetrics) FPS() float64 {
	return math.Float64frombits(atomic.LoadUint64(&m.fpsBits))
}

// Snapshot 返回只读副本，便于日志输出
func (m *FrameMetrics) Snapshot() map[string]any {
	frames := atomic.LoadInt64(&m.FrameCount)
	total := atomic.LoadInt64(&m.TotalFrameNs)
	var avgMs float64
	if frames > 0 {
		avgMs = float64(total) / float64(frames) / 1e6
	}
	return map[string]any{
		"frame_count":    frames,
		"overruns":       atomic.LoadInt64(&m.Overruns),
		"skipped_draws":  atomic.LoadInt64(&m.SkippedDraws),
		"touch_accepted": atomic.LoadInt64(&m.TouchAccepted),
		"touch_dropped":  atomic.LoadInt64(&m.TouchDropped),
		"avg_frame_ms":   avgMs,
		"fps":            m.FPS(),
	}
}
