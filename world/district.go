package world

import (
	"fmt"
	"image/color"

	"neoncity/entity"
)

// District 城市中的一个独立地块网格
type District struct {
	ID      string
	Name    string
	Width   int
	Height  int
	EntryX  float64
	EntryY  float64
	Night   bool
	Ambient color.RGBA // 世界层底色
	NPCs    []*entity.NPC

	tiles []Tile
	set   []bool
}

// NewDistrict 创建空网格
func NewDistrict(id, name string, width, height int, entryX, entryY float64) *District {
	return &District{
		ID:      id,
		Name:    name,
		Width:   width,
		Height:  height,
		EntryX:  entryX,
		EntryY:  entryY,
		Night:   true,
		Ambient: color.RGBA{20, 20, 40, 255},
		tiles:   make([]Tile, width*height),
		set:     make([]bool, width*height),
	}
}

func (d *District) inBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// Tile 越界或未设置时返回 false
func (d *District) Tile(x, y int) (Tile, bool) {
	if !d.inBounds(x, y) {
		return Tile{}, false
	}
	i := y*d.Width + x
	return d.tiles[i], d.set[i]
}

// SetTile 越界写入被忽略
func (d *District) SetTile(x, y int, t Tile) {
	if !d.inBounds(x, y) {
		return
	}
	i := y*d.Width + x
	d.tiles[i] = t
	d.set[i] = true
}

func (d *District) Walkable(x, y int) bool {
	t, ok := d.Tile(x, y)
	return ok && t.Walkable
}

func (d *District) AddNPC(n *entity.NPC) {
	d.NPCs = append(d.NPCs, n)
}

// Validate 校验所有 NPC 对话
func (d *District) Validate() error {
	for _, n := range d.NPCs {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("district %s: %w", d.ID, err)
		}
	}
	return nil
}

func (d *District) fill(t Tile) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			d.SetTile(x, y, t)
		}
	}
}

// buildingBlock 填充建筑块；边缘格按 (x+y)%3 点亮霓虹
func (d *District) buildingBlock(startX, startY, w, h int, c color.RGBA, height int, neon bool, neonColor color.RGBA) {
	for y := startY; y < startY+h; y++ {
		for x := startX; x < startX+w; x++ {
			edge := x == startX || x == startX+w-1 || y == startY || y == startY+h-1
			d.SetTile(x, y, Building(height, c, neon && edge && (x+y)%3 == 0, neonColor))
		}
	}
}
