package input

import (
	"math"
	"testing"

	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"neoncity/entity"
	"neoncity/game"
	"neoncity/view"
)

const eps = 1e-9

func newState(t *testing.T) *game.State {
	t.Helper()
	s, err := game.New(game.Options{Seed: 1})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return s
}

func newPlaying(t *testing.T) *game.State {
	t.Helper()
	s := newState(t)
	s.StartGame()
	return s
}

// tap 在低分辨率坐标 (x,y) 处完成一次按下-抬起
func tap(d *Dispatcher, s *game.State, x, y float64) {
	d.Handle(s, touch.Event{X: float32(x), Y: float32(y), Type: touch.TypeBegin})
	d.Handle(s, touch.Event{X: float32(x), Y: float32(y), Type: touch.TypeEnd})
}

func TestResizeScalesDevicePixels(t *testing.T) {
	d := NewDispatcher()
	d.Resize(size.Event{WidthPx: 640, HeightPx: 360})
	gx, gy := d.ToGame(320, 180)
	if gx != 160 || gy != 90 {
		t.Fatalf("expected (160,90), got (%v,%v)", gx, gy)
	}
	d.SetSurfaceSize(0, 100)
	if gx, _ := d.ToGame(320, 0); gx != 160 {
		t.Fatalf("expected zero size to be ignored, got %v", gx)
	}
}

func TestTitleTapInsideBandStartsGame(t *testing.T) {
	d := NewDispatcher()
	s := newState(t)

	tap(d, s, 160, 10)
	if s.Screen != game.ScreenTitle {
		t.Fatalf("expected title, got %v", s.Screen)
	}
	tap(d, s, 160, view.TitleBandCenterY+5)
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
}

func TestJoystickSetsVelocity(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)
	s.Player.SetMoveTarget(30, 30)

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX + view.JoystickRadius), Y: float32(view.JoystickCenterY), Type: touch.TypeBegin})
	if _, _, ok := s.Player.MoveTarget(); ok {
		t.Fatal("expected joystick to clear move target")
	}
	if math.Abs(s.Player.VX-view.JoystickMaxSpeed) > eps || s.Player.VY != 0 {
		t.Fatalf("expected full speed east, got (%v,%v)", s.Player.VX, s.Player.VY)
	}
	if s.Player.Facing != entity.FacingEast {
		t.Fatalf("expected east, got %v", s.Player.Facing)
	}

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX), Y: float32(view.JoystickCenterY + 14), Type: touch.TypeMove})
	want := 14 / view.JoystickRadius * view.JoystickMaxSpeed
	if s.Player.VX != 0 || math.Abs(s.Player.VY-want) > eps {
		t.Fatalf("expected vy %v, got (%v,%v)", want, s.Player.VX, s.Player.VY)
	}
	if _, _, active := d.Joystick(); !active {
		t.Fatal("expected joystick active")
	}

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX + 200), Y: float32(view.JoystickCenterY), Type: touch.TypeMove})
	kx, _, _ := d.Joystick()
	if math.Abs(kx-view.JoystickRadius) > eps {
		t.Fatalf("expected knob clamped to radius, got %v", kx)
	}

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX), Y: float32(view.JoystickCenterY), Type: touch.TypeEnd})
	if s.Player.VX != 0 || s.Player.VY != 0 {
		t.Fatal("expected release to stop the player")
	}
	if s.Player.IsMoving() {
		t.Fatal("expected player idle after release")
	}
}

func TestJoystickReleasedWhilePausedStopsPlayer(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX + view.JoystickRadius), Y: float32(view.JoystickCenterY), Type: touch.TypeBegin})
	if s.Player.VX == 0 {
		t.Fatal("expected joystick to move the player")
	}
	s.Pause()
	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX), Y: float32(view.JoystickCenterY), Type: touch.TypeEnd})
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected release to resume, got %v", s.Screen)
	}
	if _, _, active := d.Joystick(); active {
		t.Fatal("expected joystick inactive after release")
	}

	x, y := s.Player.X, s.Player.Y
	s.Update(1.0 / 60)
	if s.Player.X != x || s.Player.Y != y {
		t.Fatalf("expected player to stay at (%v,%v), got (%v,%v)", x, y, s.Player.X, s.Player.Y)
	}

	tap(d, s, 160, 100)
	if _, _, ok := s.Player.MoveTarget(); !ok {
		t.Fatal("expected next tap to set a move target")
	}
}

func TestStaleJoystickClearedOnNextTouch(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX + view.JoystickRadius), Y: float32(view.JoystickCenterY), Type: touch.TypeBegin})
	d.joystick, d.down = true, false // 抬起事件丢失

	tap(d, s, 160, 100)
	if _, _, ok := s.Player.MoveTarget(); !ok {
		t.Fatal("expected tap to set a move target")
	}
	if _, _, active := d.Joystick(); active {
		t.Fatal("expected joystick reset by the new touch")
	}
}

func TestJoystickDeadZone(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)
	d.Handle(s, touch.Event{X: float32(view.JoystickCenterX + 2), Y: float32(view.JoystickCenterY), Type: touch.TypeBegin})
	if s.Player.VX != 0 || s.Player.VY != 0 {
		t.Fatalf("expected no velocity inside dead zone, got (%v,%v)", s.Player.VX, s.Player.VY)
	}
}

func TestTapSetsMoveTargetThroughProjection(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	tap(d, s, 160, 100)
	x, y, ok := s.Player.MoveTarget()
	if !ok {
		t.Fatal("expected move target")
	}
	wx, wy := view.Default().ScreenToWorld(160, 100)
	if math.Abs(x-(wx+s.CameraX)) > eps || math.Abs(y-(wy+s.CameraY)) > eps {
		t.Fatalf("expected (%v,%v), got (%v,%v)", wx+s.CameraX, wy+s.CameraY, x, y)
	}
}

func TestDragSuppressesTapToMove(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	d.Handle(s, touch.Event{X: 160, Y: 100, Type: touch.TypeBegin})
	d.Handle(s, touch.Event{X: 190, Y: 100, Type: touch.TypeMove})
	d.Handle(s, touch.Event{X: 190, Y: 100, Type: touch.TypeEnd})
	if _, _, ok := s.Player.MoveTarget(); ok {
		t.Fatal("expected drag to not set a move target")
	}

	tap(d, s, 160, 100)
	if _, _, ok := s.Player.MoveTarget(); !ok {
		t.Fatal("expected following tap to move")
	}
}

func TestButtonsOpenAndModalsClose(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	tap(d, s, view.InventoryButton.CenterX(), view.InventoryButton.CenterY())
	if s.Screen != game.ScreenInventory {
		t.Fatalf("expected inventory, got %v", s.Screen)
	}
	tap(d, s, 160, 90)
	if s.Screen != game.ScreenInventory {
		t.Fatal("expected tap inside panel to keep inventory open")
	}
	tap(d, s, 5, 5)
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}

	tap(d, s, view.QuestButton.CenterX(), view.QuestButton.CenterY())
	if s.Screen != game.ScreenQuestLog {
		t.Fatalf("expected quest log, got %v", s.Screen)
	}
	tap(d, s, view.GameWidth-2, view.GameHeight-2)
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
	if _, _, ok := s.Player.MoveTarget(); ok {
		t.Fatal("expected button taps to not move the player")
	}
}

func TestInteractButtonStartsDialogue(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 14, 22
	s.Update(1.0 / 60)

	tap(d, s, view.InteractButton.CenterX(), view.InteractButton.CenterY())
	if s.Screen != game.ScreenDialogue || s.Dialogue.NPC.ID != "max" {
		t.Fatalf("expected dialogue with max, got %v", s.Screen)
	}

	tap(d, s, 160, view.ResponseY(1))
	if s.Dialogue == nil || s.Dialogue.Node != 2 {
		t.Fatal("expected second response to jump to node 2")
	}
	tap(d, s, 160, view.ResponseY(1)+3)
	if s.Screen != game.ScreenPlaying || s.Dialogue != nil {
		t.Fatalf("expected end edge to close dialogue, got %v", s.Screen)
	}
}

func TestGoodbyeOnlyNodeEndsOnAnyTap(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)
	n := entity.NewNPC("x", "X", 1, 1, entity.NPCCivilian)
	n.Dialogue = []entity.DialogueNode{entity.Node("...")}
	s.StartDialogue(n)

	tap(d, s, 10, 10)
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
}

func TestPauseResumesOnAnyTap(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)
	s.Pause()
	tap(d, s, 300, 10)
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
}

func TestSecondFingerIgnored(t *testing.T) {
	d := NewDispatcher()
	s := newPlaying(t)

	d.Handle(s, touch.Event{X: 160, Y: 100, Sequence: 1, Type: touch.TypeBegin})
	bx, by := float32(view.InventoryButton.CenterX()), float32(view.InventoryButton.CenterY())
	d.Handle(s, touch.Event{X: bx, Y: by, Sequence: 2, Type: touch.TypeBegin})
	d.Handle(s, touch.Event{X: bx, Y: by, Sequence: 2, Type: touch.TypeEnd})
	if s.Screen != game.ScreenPlaying {
		t.Fatalf("expected second finger ignored, got %v", s.Screen)
	}
	d.Handle(s, touch.Event{X: 160, Y: 100, Sequence: 1, Type: touch.TypeEnd})
	if _, _, ok := s.Player.MoveTarget(); !ok {
		t.Fatal("expected first finger tap to move")
	}
}
