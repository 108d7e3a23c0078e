package entity

import "math"

// Facing 四方向朝向
type Facing int

const (
	FacingNorth Facing = iota
	FacingEast
	FacingSouth
	FacingWest
)

func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "north"
	case FacingEast:
		return "east"
	case FacingSouth:
		return "south"
	case FacingWest:
		return "west"
	default:
		return "unknown"
	}
}

// DeriveFacing 取位移分量较大的轴决定朝向，相等时取水平轴；零向量保持 fallback
func DeriveFacing(dx, dy float64, fallback Facing) Facing {
	const epsilon = 1e-6

	if math.Abs(dx) < epsilon {
		dx = 0
	}
	if math.Abs(dy) < epsilon {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return fallback
	}

	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return FacingEast
		}
		return FacingWest
	}
	if dy > 0 {
		return FacingSouth
	}
	return FacingNorth
}
