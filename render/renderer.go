// Package render 两遍绘制：像素风世界层画到 320x180 缓冲后最近邻放大，UI 与文字按目标分辨率直接绘制
package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"neoncity/game"
	"neoncity/view"
)

// FrameInfo 每帧由循环传入；渲染器不读取墙钟
type FrameInfo struct {
	Clock float64 // 累积动画时钟（秒）
	FPS   float64

	// 摇杆拇指相对中心的偏移（低分辨率像素）
	JoystickX, JoystickY float64
	JoystickActive       bool
}

// Renderer 持有低分辨率缓冲与字体缓存；非并发安全，只在循环 goroutine 上使用
type Renderer struct {
	low   *image.RGBA
	proj  view.Projection
	fonts *fontSet
	scene []drawItem
}

func New() (*Renderer, error) {
	fonts, err := newFontSet()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		low:   image.NewRGBA(image.Rect(0, 0, view.GameWidth, view.GameHeight)),
		proj:  view.Default(),
		fonts: fonts,
	}, nil
}

// LowRes 最近一次世界层结果
func (r *Renderer) LowRes() *image.RGBA { return r.low }

func (r *Renderer) Close() { r.fonts.Close() }

// Render 世界层画到低分辨率缓冲并放大到 dst，再在 dst 上画原生分辨率 UI
func (r *Renderer) Render(dst *image.RGBA, st *game.State, fi FrameInfo) {
	if st.Screen == game.ScreenTitle {
		fillRect(r.low, r.low.Rect, background)
		drawSkyline(r.low)
	} else {
		fillRect(r.low, r.low.Rect, st.District.Ambient)
		r.drawWorld(st, fi.Clock)
	}

	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), r.low, r.low.Bounds(), xdraw.Src, nil)
	newOverlay(dst, r.fonts, fi.Clock).draw(st, fi)
}

func (r *Renderer) drawWorld(st *game.State, clock float64) {
	actors := make([]Actor, 0, len(st.NPCs)+1)
	actors = append(actors, st.Player)
	for _, n := range st.NPCs {
		actors = append(actors, n)
	}

	r.scene = buildScene(r.scene, st.District, actors, st.CameraX, st.CameraY)
	night := st.District.Night
	for _, it := range r.scene {
		switch it.kind {
		case itemTile:
			sx, sy := r.proj.WorldToScreen(float64(it.tx)-st.CameraX, float64(it.ty)-st.CameraY)
			drawTile(tileCtx{
				dst: r.low, tile: it.tile, tx: it.tx, ty: it.ty,
				sx: float64(round(sx)), sy: float64(round(sy)), night: night, clock: clock,
			})
		case itemActor:
			x, y := it.actor.Position()
			sx, sy := r.proj.WorldToScreen(x-st.CameraX, y-st.CameraY)
			drawActor(r.low, it.actor.Sprite(), sx, sy, clock)
		}
	}
}

// drawSkyline 标题画面的城市剪影与霓虹线
func drawSkyline(dst *image.RGBA) {
	h := dst.Rect.Dy()
	for _, b := range [][3]int{
		{20, 100, 50}, {45, 80, 80}, {75, 110, 100}, {95, 70, 130}, {125, 90, 155},
		{150, 60, 190}, {185, 85, 210}, {205, 95, 235}, {230, 75, 270}, {265, 105, 300},
	} {
		fillRect(dst, image.Rect(b[0], b[1], b[2], h), silhouette)
	}
	drawLine(dst, 95, 75, 130, 75, cyan)
	drawLine(dst, 150, 65, 190, 65, magenta)
	drawLine(dst, 230, 80, 270, 80, yellow)
}
