package render

import (
	"image"
	"image/color"
	"math"
	"slices"

	xdraw "golang.org/x/image/draw"
)

// 像素风光栅化：不做抗锯齿，像素中心采样

type point struct{ X, Y float64 }

// fillRect 以 Over 合成；半透明颜色请传 color.NRGBA
func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// strokeRect 画矩形边框，w 为线宽（像素）
func strokeRect(dst *image.RGBA, r image.Rectangle, w int, c color.Color) {
	if w < 1 {
		w = 1
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), c)
	fillRect(dst, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), c)
}

func blendPixel(dst *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) {
		return
	}
	fillRect(dst, image.Rect(x, y, x+1, y+1), c)
}

// fillPolygon 扫描线填充；像素中心落在多边形内即填充
func fillPolygon(dst *image.RGBA, pts []point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Floor(minY)), dst.Rect.Min.Y)
	y1 := min(int(math.Ceil(maxY)), dst.Rect.Max.Y)

	xs := make([]float64, 0, len(pts))
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= yc && yc < b.Y) || (b.Y <= yc && yc < a.Y) {
				xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := int(math.Ceil(xs[i] - 0.5))
			xb := int(math.Ceil(xs[i+1] - 0.5))
			if xb > xa {
				fillRect(dst, image.Rect(xa, y, xb, y+1), c)
			}
		}
	}
}

// strokePolygon 闭合折线
func strokePolygon(dst *image.RGBA, pts []point, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		drawLine(dst, round(a.X), round(a.Y), round(b.X), round(b.Y), c)
	}
}

// drawLine Bresenham
func drawLine(dst *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		blendPixel(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func fillEllipse(dst *image.RGBA, cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := max(int(math.Floor(cy-ry)), dst.Rect.Min.Y)
	y1 := min(int(math.Ceil(cy+ry)), dst.Rect.Max.Y)
	for y := y0; y < y1; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		if ny*ny > 1 {
			continue
		}
		half := rx * math.Sqrt(1-ny*ny)
		xa := int(math.Ceil(cx - half - 0.5))
		xb := int(math.Ceil(cx + half - 0.5))
		if xb > xa {
			fillRect(dst, image.Rect(xa, y, xb, y+1), c)
		}
	}
}

// strokeEllipse 宽度约 w 像素的椭圆环
func strokeEllipse(dst *image.RGBA, cx, cy, rx, ry, w float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	irx, iry := math.Max(rx-w, 0), math.Max(ry-w, 0)
	y0 := max(int(math.Floor(cy-ry)), dst.Rect.Min.Y)
	y1 := min(int(math.Ceil(cy+ry)), dst.Rect.Max.Y)
	x0 := max(int(math.Floor(cx-rx)), dst.Rect.Min.X)
	x1 := min(int(math.Ceil(cx+rx)), dst.Rect.Max.X)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			outer := (px*px)/(rx*rx) + (py*py)/(ry*ry)
			if outer > 1 {
				continue
			}
			if irx > 0 && iry > 0 && (px*px)/(irx*irx)+(py*py)/(iry*iry) < 1 {
				continue
			}
			blendPixel(dst, x, y, c)
		}
	}
}

func round(v float64) int { return int(math.Round(v)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
