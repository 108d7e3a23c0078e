package render

import (
	"slices"

	"neoncity/entity"
	"neoncity/view"
	"neoncity/world"
)

// Actor 可绘制实体：只暴露位置与绘制描述
type Actor interface {
	Position() (float64, float64)
	Sprite() entity.Sprite
}

// 相机周围的可见格子窗口
const (
	viewBehind = 10
	viewAhead  = 20
)

type itemKind int

const (
	itemTile itemKind = iota
	itemActor
)

// drawItem 画家算法中的一项；depth 为 x+y。floor 项先于其它所有项绘制
type drawItem struct {
	kind   itemKind
	tx, ty int
	tile   world.Tile
	actor  Actor
	depth  float64
	floor  bool
}

// raised 会遮挡实体的立体格
func raised(t world.Tile) bool {
	switch t.Type {
	case world.TileBuilding, world.TileWall, world.TileDoor:
		return true
	}
	return false
}

// visibleRange 半开区间 [x0,x1)×[y0,y1)，已与街区边界求交
func visibleRange(d *world.District, camX, camY float64) (x0, y0, x1, y1 int) {
	x0 = max(int(camX-viewBehind), 0)
	y0 = max(int(camY-viewBehind), 0)
	x1 = min(int(camX+viewAhead), d.Width)
	y1 = min(int(camY+viewAhead), d.Height)
	return
}

// buildScene 分两段：先按反对角线画所有平地格，再按 x+y 递增遍历立体格，
// 把实体插在深度不大于它的立体格之后、更深的立体格之前。第二段的 depth 单调不减
func buildScene(buf []drawItem, d *world.District, actors []Actor, camX, camY float64) []drawItem {
	out := buf[:0]

	sorted := make([]drawItem, 0, len(actors))
	for _, a := range actors {
		x, y := a.Position()
		sorted = append(sorted, drawItem{kind: itemActor, actor: a, depth: view.Depth(x, y)})
	}
	slices.SortStableFunc(sorted, func(a, b drawItem) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})

	x0, y0, x1, y1 := visibleRange(d, camX, camY)
	last := x1 - 1 + y1 - 1
	// 对角线 dg 上位于窗口内的格子
	diagonal := func(dg int, fn func(x, y int, t world.Tile)) {
		for x := max(x0, dg-(y1-1)); x <= min(x1-1, dg-y0); x++ {
			if t, ok := d.Tile(x, dg-x); ok {
				fn(x, dg-x, t)
			}
		}
	}

	for dg := x0 + y0; dg <= last; dg++ {
		diagonal(dg, func(x, y int, t world.Tile) {
			if !raised(t) {
				out = append(out, drawItem{kind: itemTile, tx: x, ty: y, tile: t, depth: float64(dg), floor: true})
			}
		})
	}

	next := 0
	for dg := x0 + y0; dg <= last; dg++ {
		for next < len(sorted) && sorted[next].depth < float64(dg) {
			out = append(out, sorted[next])
			next++
		}
		diagonal(dg, func(x, y int, t world.Tile) {
			if raised(t) {
				out = append(out, drawItem{kind: itemTile, tx: x, ty: y, tile: t, depth: float64(dg)})
			}
		})
	}
	return append(out, sorted[next:]...)
}
