package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"neoncity/game"
	"neoncity/view"
)

var (
	panelFill   = color.NRGBA{10, 10, 25, 180}
	modalFill   = color.NRGBA{10, 10, 25, 240}
	dialogFill  = color.NRGBA{10, 10, 25, 230}
	panelBorder = color.RGBA{0, 200, 200, 255}
)

// 低分辨率坐标下的字号
const (
	textSmall  = 6.0
	textNormal = 8.0
	textBody   = 7.0
	textTitle  = 10.0
	textLarge  = 16.0
	textHero   = 24.0
)

// overlay 原生分辨率绘制；所有参数以低分辨率坐标给出，再按 sx/sy 缩放，
// 保证文字与下方放大的像素世界对齐
type overlay struct {
	dst    *image.RGBA
	fonts  *fontSet
	proj   view.Projection
	clock  float64
	sx, sy float64
	s      float64 // 字号缩放 min(sx, sy)
}

func newOverlay(dst *image.RGBA, fonts *fontSet, clock float64) *overlay {
	b := dst.Bounds()
	sx := float64(b.Dx()) / view.GameWidth
	sy := float64(b.Dy()) / view.GameHeight
	return &overlay{dst: dst, fonts: fonts, proj: view.Default(), clock: clock, sx: sx, sy: sy, s: math.Min(sx, sy)}
}

func (o *overlay) X(gx float64) float64 { return float64(o.dst.Rect.Min.X) + gx*o.sx }
func (o *overlay) Y(gy float64) float64 { return float64(o.dst.Rect.Min.Y) + gy*o.sy }

func (o *overlay) rectOf(x, y, w, h float64) image.Rectangle {
	return image.Rect(round(o.X(x)), round(o.Y(y)), round(o.X(x+w)), round(o.Y(y+h)))
}

func (o *overlay) fill(x, y, w, h float64, c color.Color) {
	fillRect(o.dst, o.rectOf(x, y, w, h), c)
}

func (o *overlay) border(x, y, w, h float64, c color.Color) {
	strokeRect(o.dst, o.rectOf(x, y, w, h), max(1, round(o.s/2)), c)
}

func (o *overlay) panel(r view.Rect, bg color.Color) {
	o.fill(r.X, r.Y, r.W, r.H, bg)
	o.border(r.X, r.Y, r.W, r.H, panelBorder)
}

func (o *overlay) text(s string, x, y, size float64, bold bool, al align, c color.Color) {
	drawText(o.dst, o.fonts.face(bold, size*o.s), s, o.X(x), o.Y(y), al, c)
}

func (o *overlay) draw(st *game.State, fi FrameInfo) {
	if st.Screen == game.ScreenTitle {
		o.title()
	} else {
		o.labels(st)
		o.hud(st, fi)
		switch st.Screen {
		case game.ScreenDialogue:
			o.dialogue(st)
		case game.ScreenInventory:
			o.inventory(st)
		case game.ScreenQuestLog:
			o.questLog(st)
		case game.ScreenPause:
			o.pause()
		}
	}
	if st.ShowDebug {
		o.debug(st, fi)
	}
}

func (o *overlay) title() {
	const w, h = view.GameWidth, view.GameHeight
	o.text("NEON CITY", w/2, 50, textHero, true, alignCenter, cyan)
	o.text("A Cyberpunk RPG", w/2, 65, textNormal, false, alignCenter, magenta)

	bx, by := w/2-40.0, h/2-10.0
	o.fill(bx, by, 80, 20, color.RGBA{60, 60, 90, 255})
	o.border(bx, by, 80, 20, cyan)
	o.text("NEW GAME", w/2, h/2+3, textNormal, true, alignCenter, white)

	o.text("v1.0", w/2, h-10, textSmall, false, alignCenter, dimGrey)
}

// labels NPC 任务标记与名字，与世界层使用同一投影并按像素网格取整
func (o *overlay) labels(st *game.State) {
	for _, n := range st.NPCs {
		gx, gy := o.proj.WorldToScreen(n.X-st.CameraX, n.Y-st.CameraY)
		gx, gy = float64(round(gx)), float64(round(gy))
		if gx < -20 || gx > view.GameWidth+20 || gy < -30 || gy > view.GameHeight+30 {
			continue
		}
		if n.Sprite().QuestMarker {
			markerY := gy - 20
			if !n.PlayerNear {
				markerY = gy - 19 - float64(phase(o.clock, 0.3, 3))
			}
			o.text("!", gx, markerY, textNormal, true, alignCenter, gold)
		}
		if n.PlayerNear {
			o.text(n.Name, gx, gy-25, textSmall, false, alignCenter, white)
		}
	}
}

func (o *overlay) hud(st *game.State, fi FrameInfo) {
	const w = view.GameWidth
	p := st.Player

	o.panel(view.Rect{X: 5, Y: 5, W: 75, H: 30}, panelFill)
	o.text(p.Name, 8, 13, textSmall, true, alignLeft, cyan)
	o.bar(8, 16, float64(p.Health)/float64(max(p.MaxHealth, 1)), healthRed)
	o.bar(8, 22, p.Energy/math.Max(p.MaxEnergy, 1), energyBlue)
	o.text("LV "+strconv.Itoa(p.Level), 8, 33, textSmall, false, alignLeft, white)

	o.panel(view.Rect{X: w - 85, Y: 5, W: 80, H: 25}, panelFill)
	o.text(st.District.Name, w-82, 14, textSmall, false, alignLeft, magenta)
	timeColor := color.RGBA{255, 200, 100, 255}
	if st.District.Night {
		timeColor = color.RGBA{100, 100, 200, 255}
	}
	o.text(clockString(st.Hour)+fmt.Sprintf("  Day %d", st.Day+1), w-82, 25, textSmall, false, alignLeft, timeColor)

	o.joystick(fi)

	o.button(view.InventoryButton, "INV", false)
	o.button(view.QuestButton, "QST", false)
	o.button(view.InteractButton, "ACT", st.NearNPC())
}

func (o *overlay) bar(x, y, frac float64, c color.RGBA) {
	frac = math.Max(0, math.Min(1, frac))
	o.fill(x, y, 67, 4, buttonFill)
	o.fill(x, y, 67*frac, 4, c)
}

// clockString "hh:mm" 加上午/下午后缀
func clockString(hour float64) string {
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, period)
}

func (o *overlay) joystick(fi FrameInfo) {
	cx, cy := o.X(view.JoystickCenterX), o.Y(view.JoystickCenterY)
	rx, ry := view.JoystickRadius*o.sx, view.JoystickRadius*o.sy
	fillEllipse(o.dst, cx, cy, rx, ry, color.NRGBA{0, 200, 200, 60})
	strokeEllipse(o.dst, cx, cy, rx, ry, math.Max(1, o.s/2), color.NRGBA{0, 255, 255, 100})

	knob := color.NRGBA{0, 255, 255, 100}
	if fi.JoystickActive {
		knob.A = 160
	}
	kx, ky := o.X(view.JoystickCenterX+fi.JoystickX), o.Y(view.JoystickCenterY+fi.JoystickY)
	fillEllipse(o.dst, kx, ky, 12*o.sx, 12*o.sy, knob)
}

func (o *overlay) button(r view.Rect, label string, highlight bool) {
	bg, edge, fg := buttonFill, color.RGBA{0, 150, 150, 255}, grey
	if highlight {
		bg, edge, fg = buttonActive, color.RGBA{0, 255, 200, 255}, white
	}
	o.fill(r.X, r.Y, r.W, r.H, bg)
	o.border(r.X, r.Y, r.W, r.H, edge)
	o.text(label, r.CenterX(), r.CenterY()+2, textSmall, true, alignCenter, fg)
}

func (o *overlay) dialogue(st *game.State) {
	d := st.Dialogue
	if d == nil {
		return
	}
	const w = view.GameWidth
	top := view.DialogueBoxTop
	left := view.DialogueBoxLeft
	o.fill(left, top, w-2*left, view.DialogueBoxBottom-top, dialogFill)
	o.border(left, top, w-2*left, view.DialogueBoxBottom-top, panelBorder)

	face := o.fonts.face(true, textBody*o.s)
	nameW := textWidth(face, d.NPC.Name)/o.sx + 10
	o.fill(15, top-10, nameW, 10, panelBorder)
	o.text(d.NPC.Name, 20, top-2, textBody, true, alignLeft, black)

	body := o.fonts.face(false, textBody*o.s)
	lineY := top + 10
	for _, line := range wrapText(body, d.Text(), (w-40)*o.sx) {
		drawText(o.dst, body, line, o.X(15), o.Y(lineY), alignLeft, white)
		lineY += 9
	}

	for i, r := range d.Responses() {
		o.text("> "+r, 20, view.ResponseY(i)+3, textBody, false, alignLeft, cyan)
	}
}

func (o *overlay) inventory(st *game.State) {
	p := view.ModalPanel
	o.panel(p, modalFill)
	o.text("INVENTORY", view.GameWidth/2, p.Y+15, textTitle, true, alignCenter, cyan)

	const cols, rows, cell, gap = 8, 4, 20.0, 2.0
	gx0, gy0 := p.X+10, p.Y+25
	items := st.Inventory.Items
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := gx0 + float64(col)*(cell+gap)
			y := gy0 + float64(row)*(cell+gap)
			o.fill(x, y, cell, cell, color.RGBA{30, 30, 45, 255})
			o.border(x, y, cell, cell, panelBorder)

			i := row*cols + col
			if i >= len(items) {
				continue
			}
			it := items[i]
			o.text(string(it.Glyph), x+cell/2, y+cell/2+3, textNormal, true, alignCenter, it.Color)
			if it.Quantity > 1 {
				o.text(strconv.Itoa(it.Quantity), x+cell-2, y+cell-2, 5, false, alignLeft, white)
			}
		}
	}

	bottom := p.Y + p.H - 10
	o.text(fmt.Sprintf("Credits: %d", st.Inventory.Credits), p.X+10, bottom, textNormal, false, alignLeft, gold)
	o.text("Tap outside to close", view.GameWidth/2+30, bottom, textSmall, false, alignCenter, dimGrey)
}

func (o *overlay) questLog(st *game.State) {
	p := view.ModalPanel
	o.panel(p, modalFill)
	o.text("QUEST LOG", view.GameWidth/2, p.Y+15, textTitle, true, alignCenter, magenta)

	y := p.Y + 30
	active := st.Quests.Active()
	if len(active) == 0 {
		o.text("No active quests", p.X+15, y, textNormal, false, alignLeft, dimGrey)
	}
	for _, q := range active {
		o.text(q.Title, p.X+15, y, textNormal, true, alignLeft, gold)
		y += 10
		for _, obj := range q.Objectives {
			marker, c := "[ ]", grey
			if obj.Done() {
				marker, c = "[X]", objectiveOK
			}
			o.text(marker+" "+obj.Description, p.X+20, y, textSmall, false, alignLeft, c)
			y += 9
		}
		y += 5
	}

	bottom := p.Y + p.H - 10
	if done := len(st.Quests.Completed()); done > 0 {
		o.text(fmt.Sprintf("Completed: %d", done), p.X+15, bottom, textSmall, false, alignLeft, objectiveOK)
	}
	o.text("Tap outside to close", view.GameWidth/2+30, bottom, textSmall, false, alignCenter, dimGrey)
}

func (o *overlay) pause() {
	fillRect(o.dst, o.dst.Bounds(), color.NRGBA{0, 0, 0, 180})
	o.text("PAUSED", view.GameWidth/2, view.GameHeight/2, textLarge, true, alignCenter, cyan)
	o.text("Tap to resume", view.GameWidth/2, view.GameHeight/2+20, textNormal, false, alignCenter, grey)
}

func (o *overlay) debug(st *game.State, fi FrameInfo) {
	s := fmt.Sprintf("FPS %.1f  %s (%.1f, %.1f)", fi.FPS, st.District.ID, st.Player.X, st.Player.Y)
	o.text(s, view.GameWidth/2, 42, textSmall, false, alignCenter, yellow)
}
