// Package view 输入与渲染共用的低分辨率几何：缓冲尺寸、等距投影、界面点击区域
package view

const (
	// GameWidth/GameHeight 低分辨率像素缓冲尺寸
	GameWidth  = 320
	GameHeight = 180

	TileWidth  = 16
	TileHeight = 8
	TileDepth  = 8 // 建筑每层高度（像素）

	HalfTileWidth  = TileWidth / 2
	HalfTileHeight = TileHeight / 2
)

// Projection 2:1 等距投影；CenterX/CenterY 为世界原点（相对相机）在屏幕上的锚点
type Projection struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
}

// Default 低分辨率缓冲上的投影：水平居中，纵向锚在 1/3 高度处
func Default() Projection {
	return Projection{
		CenterX: GameWidth / 2.0,
		CenterY: GameHeight / 3.0,
		HalfW:   HalfTileWidth,
		HalfH:   HalfTileHeight,
	}
}

// WorldToScreen 世界坐标（已减去相机）到屏幕坐标
func (p Projection) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := p.CenterX + (wx-wy)*p.HalfW
	sy := p.CenterY + (wx+wy)*p.HalfH
	return sx, sy
}

// ScreenToWorld WorldToScreen 的逆变换
func (p Projection) ScreenToWorld(sx, sy float64) (float64, float64) {
	a := (sx - p.CenterX) / p.HalfW // wx - wy
	b := (sy - p.CenterY) / p.HalfH // wx + wy
	return (a + b) / 2, (b - a) / 2
}

// Depth 画家算法排序键，与投影的纵向分量单调一致
func Depth(wx, wy float64) float64 {
	return wx + wy
}
