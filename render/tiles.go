package render

import (
	"image"
	"image/color"

	"neoncity/view"
	"neoncity/world"
)

const (
	halfW = view.HalfTileWidth
	halfH = view.HalfTileHeight
)

// tileCtx 单个格子的绘制上下文；(sx, sy) 为菱形中心的屏幕坐标
type tileCtx struct {
	dst    *image.RGBA
	tile   world.Tile
	tx, ty int
	sx, sy float64
	night  bool
	clock  float64
}

// phase 以 period 秒为一拍，返回第几拍（模 n）
func phase(clock, period float64, n int) int {
	if clock < 0 || period <= 0 || n <= 0 {
		return 0
	}
	return int(clock/period) % n
}

func diamond(sx, sy float64) []point {
	return []point{
		{sx, sy - halfH},
		{sx + halfW, sy},
		{sx, sy + halfH},
		{sx - halfW, sy},
	}
}

func drawDiamond(dst *image.RGBA, sx, sy float64, c color.Color) {
	pts := diamond(sx, sy)
	fillPolygon(dst, pts, c)
	strokePolygon(dst, pts, tileOutline)
}

func drawTile(c tileCtx) {
	switch c.tile.Type {
	case world.TileGround, world.TileSidewalk:
		drawDiamond(c.dst, c.sx, c.sy, c.tile.Color)
	case world.TileRoad:
		drawRoad(c)
	case world.TileBuilding:
		drawBuilding(c)
	case world.TileWall:
		drawWall(c)
	case world.TileWater:
		drawWater(c)
	case world.TilePark:
		drawPark(c)
	case world.TileDoor:
		drawDoor(c)
	case world.TileTransition:
		drawTransition(c)
	}
}

func drawRoad(c tileCtx) {
	drawDiamond(c.dst, c.sx, c.sy, c.tile.Color)
	if c.tile.Variant == 1 {
		x, y := round(c.sx), round(c.sy)
		drawLine(c.dst, x-2, y, x+2, y, color.RGBA{80, 80, 60, 255})
	}
}

// frontFace 西南立面
func frontFace(sx, sy, h float64) []point {
	return []point{
		{sx - halfW, sy},
		{sx, sy + halfH},
		{sx, sy + halfH - h},
		{sx - halfW, sy - h},
	}
}

// rightFace 东南立面
func rightFace(sx, sy, h float64) []point {
	return []point{
		{sx, sy + halfH},
		{sx + halfW, sy},
		{sx + halfW, sy - h},
		{sx, sy + halfH - h},
	}
}

// extrude 画出高度为 h 像素的三面体
func extrude(dst *image.RGBA, sx, sy, h float64, top, front, right color.RGBA) {
	fillPolygon(dst, frontFace(sx, sy, h), front)
	fillPolygon(dst, rightFace(sx, sy, h), right)
	drawDiamond(dst, sx, sy-h, top)
}

func drawBuilding(c tileCtx) {
	h := float64(c.tile.Height * view.TileDepth)
	extrude(c.dst, c.sx, c.sy, h, c.tile.Color, darken(c.tile.Color, frontShade), darken(c.tile.Color, rightShade))

	if c.night && c.tile.Neon {
		y := round(c.sy - h + 4)
		x := round(c.sx)
		drawLine(c.dst, x-5, y, x+5, y, c.tile.NeonColor)
	}
	drawWindows(c, h)
}

// drawWindows 每 10 像素高度一排，两个可见立面各一列
func drawWindows(c tileCtx, h float64) {
	rows := int(h) / 10
	x, y := round(c.sx), round(c.sy)
	for i := 0; i < rows; i++ {
		wy := y - 6 - i*10
		for side, wx := range [2]int{x - 5, x + 3} {
			col := windowDay
			if c.night {
				col = windowDark
				if windowLitAt(c.tx, c.ty, i, side) {
					col = windowLit
				}
			}
			fillRect(c.dst, image.Rect(wx, wy-2, wx+2, wy), col)
		}
	}
}

func drawWall(c tileCtx) {
	h := float64(c.tile.Height * view.TileDepth)
	extrude(c.dst, c.sx, c.sy, h, c.tile.Color, darken(c.tile.Color, frontShade), darken(c.tile.Color, rightShade))
}

func drawWater(c tileCtx) {
	base := c.tile.Color
	if phase(c.clock, 0.5, 2) == 1 {
		base = color.RGBA{25, 50, 90, 255}
	}
	drawDiamond(c.dst, c.sx, c.sy, base)
	shimmer := phase(c.clock+float64(c.tx+c.ty)*0.1, 0.2, 8) - 4
	blendPixel(c.dst, round(c.sx)+shimmer, round(c.sy), color.RGBA{60, 100, 150, 255})
}

func drawPark(c tileCtx) {
	drawDiamond(c.dst, c.sx, c.sy, c.tile.Color)
	if c.tile.Variant == 1 {
		x, y := round(c.sx), round(c.sy)
		grass := color.RGBA{40, 80, 45, 255}
		blendPixel(c.dst, x-2, y-1, grass)
		blendPixel(c.dst, x+2, y+1, grass)
	}
}

func drawDoor(c tileCtx) {
	drawDiamond(c.dst, c.sx, c.sy, color.RGBA{50, 45, 40, 255})
	x, y := round(c.sx), round(c.sy)
	fillRect(c.dst, image.Rect(x-2, y-10, x+2, y-2), c.tile.Color)
	if c.tile.Neon && c.night {
		drawLine(c.dst, x-3, y-10, x-3, y-2, c.tile.NeonColor)
		drawLine(c.dst, x+3, y-10, x+3, y-2, c.tile.NeonColor)
	}
}

func drawTransition(c tileCtx) {
	drawDiamond(c.dst, c.sx, c.sy, c.tile.Color)
	pulse := uint8(phase(c.clock, 0.3, 3) * 20)
	glow := color.RGBA{0, 200 + pulse, 200 + pulse, 255}
	strokeEllipse(c.dst, c.sx, c.sy-2, 2.5, 2.5, 1, glow)
}
