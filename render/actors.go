package render

import (
	"image"
	"image/color"

	"neoncity/entity"
)

var (
	playerLegs = color.RGBA{30, 30, 45, 255}
	npcLegs    = color.RGBA{35, 35, 50, 255}
)

// drawActor 像素小人；(sx, sy) 为脚底中心。动画只取决于 clock
func drawActor(dst *image.RGBA, sp entity.Sprite, sx, sy, clock float64) {
	x, y := round(sx), round(sy)
	fillEllipse(dst, float64(x), float64(y)+0.5, 4, 1.5, shadow)

	if sp.PlayerNear {
		ring := color.RGBA{0, 255, 255, 255}
		if phase(clock, 0.1, 10) >= 5 {
			ring = color.RGBA{0, 180, 200, 255}
		}
		strokeEllipse(dst, float64(x), float64(y)+0.5, 6.5, 3.5, 1, ring)
	}

	frame := 0
	bob := 0
	switch {
	case sp.Moving:
		frame = phase(clock, 0.15, 4)
		if frame == 1 || frame == 3 {
			bob = -1
		}
	case sp.Kind == entity.SpriteNPC:
		bob = -phase(clock, 0.5, 2)
	}
	y += bob

	rect := func(x0, y0, x1, y1 int, c color.Color) {
		fillRect(dst, image.Rect(x+x0, y+y0, x+x1, y+y1), c)
	}

	legs := npcLegs
	if sp.Kind == entity.SpritePlayer {
		legs = playerLegs
	}
	stride := 0
	switch frame {
	case 1:
		stride = 1
	case 3:
		stride = -1
	}
	switch sp.Facing {
	case entity.FacingEast:
		rect(-1, -4, 1, stride, legs)
		rect(0, -4, 2, -stride, legs)
	case entity.FacingWest:
		rect(-2, -4, 0, stride, legs)
		rect(-1, -4, 1, -stride, legs)
	default:
		rect(-2, -4, 0, 0, legs)
		rect(0, -4, 2, 0, legs)
	}

	rect(-3, -12, 3, -4, sp.Body)
	if sp.Kind == entity.SpritePlayer {
		rect(-3, -10, 3, -6, sp.Accent)
	} else {
		rect(-3, -10, 3, -8, sp.Accent)
	}
	rect(-2, -16, 2, -12, sp.Skin)
	rect(-2, -17, 2, -15, sp.Hair)
	if sp.Facing == entity.FacingNorth {
		rect(-2, -15, 2, -12, sp.Hair)
	}

	if sp.Kind == entity.SpritePlayer && sp.Facing != entity.FacingNorth {
		ex := 1
		if sp.Facing == entity.FacingWest {
			ex = -2
		}
		blendPixel(dst, x+ex, y-14, eyeGlow)
	}
}
