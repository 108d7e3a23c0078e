package render

import (
	"image/color"
	"math"
)

var (
	background   = color.RGBA{13, 13, 26, 255}
	silhouette   = color.RGBA{20, 20, 40, 255}
	tileOutline  = color.RGBA{30, 30, 50, 255}
	shadow       = color.NRGBA{0, 0, 0, 80}
	windowLit    = color.RGBA{200, 180, 100, 255}
	windowDark   = color.RGBA{30, 30, 40, 255}
	windowDay    = color.RGBA{100, 150, 200, 255}
	eyeGlow      = color.RGBA{0, 200, 255, 255}
	cyan         = color.RGBA{0, 255, 255, 255}
	magenta      = color.RGBA{255, 0, 255, 255}
	yellow       = color.RGBA{255, 255, 0, 255}
	gold         = color.RGBA{255, 200, 0, 255}
	white        = color.RGBA{255, 255, 255, 255}
	grey         = color.RGBA{150, 150, 150, 255}
	dimGrey      = color.RGBA{100, 100, 120, 255}
	black        = color.RGBA{0, 0, 0, 255}
	buttonFill   = color.RGBA{40, 40, 60, 255}
	buttonActive = color.RGBA{60, 80, 80, 255}
	healthRed    = color.RGBA{255, 50, 50, 255}
	energyBlue   = color.RGBA{0, 200, 255, 255}
	objectiveOK  = color.RGBA{0, 200, 0, 255}
)

// 建筑立面明暗系数
const (
	frontShade = 0.7
	rightShade = 0.5
)

// darken 逐通道乘以 f 并裁剪到 [0,255]，alpha 不变
func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{scaleChannel(c.R, f), scaleChannel(c.G, f), scaleChannel(c.B, f), c.A}
}

func scaleChannel(v uint8, f float64) uint8 {
	x := float64(v) * f
	switch {
	case x <= 0 || math.IsNaN(x):
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// withAlpha 把不透明颜色转为非预乘的半透明颜色
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, a}
}

// windowLitAt 夜间窗户是否亮灯：按格子与楼层稳定散列，约七成点亮
func windowLitAt(x, y, row, side int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(row)*83492791 ^ uint32(side)*2654435761
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%10 < 7
}
