package world

import "image/color"

// TileType 地块类型
type TileType int

const (
	TileGround TileType = iota
	TileRoad
	TileSidewalk
	TileBuilding
	TileWall
	TileWater
	TilePark
	TileDoor
	TileTransition
)

func (t TileType) String() string {
	switch t {
	case TileGround:
		return "ground"
	case TileRoad:
		return "road"
	case TileSidewalk:
		return "sidewalk"
	case TileBuilding:
		return "building"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	case TilePark:
		return "park"
	case TileDoor:
		return "door"
	case TileTransition:
		return "transition"
	default:
		return "unknown"
	}
}

var (
	Cyan    = color.RGBA{0, 255, 255, 255}
	Magenta = color.RGBA{255, 0, 255, 255}
	Yellow  = color.RGBA{255, 255, 0, 255}
	Green   = color.RGBA{0, 255, 0, 255}
	White   = color.RGBA{255, 255, 255, 255}
)

// Tile 等距世界中的一格
type Tile struct {
	Type         TileType
	Variant      int
	Height       int // 建筑/墙体高度（单位：tile depth）
	Color        color.RGBA
	Walkable     bool
	Interactable bool
	Neon         bool
	NeonColor    color.RGBA
	LinkedID     string // 门/过渡格指向的街区
}

func Ground() Tile {
	return Tile{Type: TileGround, Height: 1, Color: color.RGBA{40, 40, 50, 255}, Walkable: true, NeonColor: Cyan}
}

func Road(variant int) Tile {
	return Tile{Type: TileRoad, Variant: variant, Height: 1, Color: color.RGBA{35, 35, 45, 255}, Walkable: true, NeonColor: Cyan}
}

func Sidewalk() Tile {
	return Tile{Type: TileSidewalk, Height: 1, Color: color.RGBA{55, 55, 65, 255}, Walkable: true, NeonColor: Cyan}
}

func Building(height int, c color.RGBA, neon bool, neonColor color.RGBA) Tile {
	return Tile{Type: TileBuilding, Height: height, Color: c, Neon: neon, NeonColor: neonColor}
}

func Wall(height int) Tile {
	return Tile{Type: TileWall, Height: height, Color: color.RGBA{50, 50, 60, 255}, NeonColor: Cyan}
}

func Water() Tile {
	return Tile{Type: TileWater, Height: 1, Color: color.RGBA{20, 40, 80, 255}, NeonColor: Cyan}
}

func Park(variant int) Tile {
	return Tile{Type: TilePark, Variant: variant, Height: 1, Color: color.RGBA{30, 60, 35, 255}, Walkable: true, NeonColor: Cyan}
}

func Door(linked string, c, neonColor color.RGBA) Tile {
	return Tile{
		Type: TileDoor, Height: 1, Color: c, Walkable: true, Interactable: true,
		Neon: true, NeonColor: neonColor, LinkedID: linked,
	}
}

func Transition(linked string) Tile {
	return Tile{Type: TileTransition, Height: 1, Color: color.RGBA{60, 60, 80, 255}, Walkable: true, NeonColor: Cyan, LinkedID: linked}
}

// WithColor 返回换色副本
func (t Tile) WithColor(c color.RGBA) Tile {
	t.Color = c
	return t
}
