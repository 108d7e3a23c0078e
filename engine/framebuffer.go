package engine

import (
	"image"
	"sync"
)

// Surface 帧呈现服务。AcquireDrawTarget 返回 nil 表示本帧跳过绘制
type Surface interface {
	AcquireDrawTarget() *image.RGBA
	Present(img *image.RGBA)
}

// FrameBuffer 双缓冲 Surface：循环 goroutine 画后台缓冲，宿主通过 Latest 读取前台缓冲
type FrameBuffer struct {
	mu    sync.Mutex
	w, h  int
	back  *image.RGBA
	front *image.RGBA
}

func NewFrameBuffer() *FrameBuffer { return &FrameBuffer{} }

// Resize 记录新的表面尺寸，下一次 AcquireDrawTarget 时生效
func (f *FrameBuffer) Resize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.w, f.h = w, h
}

func (f *FrameBuffer) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

func sized(img *image.RGBA, w, h int) bool {
	return img != nil && img.Rect.Dx() == w && img.Rect.Dy() == h
}

// AcquireDrawTarget 尺寸未知时返回 nil
func (f *FrameBuffer) AcquireDrawTarget() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.w <= 0 || f.h <= 0 {
		return nil
	}
	if !sized(f.back, f.w, f.h) {
		f.back = image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	}
	return f.back
}

// Present 交换前后台；与当前尺寸不符的旧帧直接丢弃
func (f *FrameBuffer) Present(img *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if img == nil || img != f.back || !sized(img, f.w, f.h) {
		return
	}
	f.back, f.front = f.front, img
}

// Latest 在锁内把最近呈现的帧交给 fn；还没有帧时返回 false
func (f *FrameBuffer) Latest(fn func(img *image.RGBA)) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.front == nil {
		return false
	}
	fn(f.front)
	return true
}
