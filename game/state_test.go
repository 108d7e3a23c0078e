package game

import (
	"math"
	"testing"

	"neoncity/entity"
	"neoncity/rpg"
	"neoncity/world"
)

func newPlaying(t *testing.T) *State {
	t.Helper()
	s, err := New(Options{Seed: 1})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	s.StartGame()
	return s
}

func groundDistrict(id string, w, h int, entryX, entryY float64) *world.District {
	d := world.NewDistrict(id, id, w, h, entryX, entryY)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.SetTile(x, y, world.Ground())
		}
	}
	return d
}

func newWithCity(t *testing.T, districts ...*world.District) *State {
	t.Helper()
	city, err := world.NewCityMapFrom(districts...)
	if err != nil {
		t.Fatalf("city: %v", err)
	}
	s, err := New(Options{Seed: 1, City: city})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	s.StartGame()
	return s
}

func TestNewStartsOnTitleInDowntown(t *testing.T) {
	s, err := New(Options{})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	if s.Screen != ScreenTitle {
		t.Fatalf("expected title screen, got %v", s.Screen)
	}
	if s.District.ID != world.StartDistrict {
		t.Fatalf("expected %s, got %s", world.StartDistrict, s.District.ID)
	}
	if s.Player.X != s.District.EntryX || s.Player.Y != s.District.EntryY {
		t.Fatalf("expected player at entry, got (%v,%v)", s.Player.X, s.Player.Y)
	}
	q, ok := s.Quests.Quest("main_01")
	if !ok || q.Status != rpg.StatusActive {
		t.Fatalf("expected main_01 active")
	}
	if s.Hour != StartHour || s.Day != 0 {
		t.Fatalf("expected hour %v day 0, got %v day %d", StartHour, s.Hour, s.Day)
	}
}

func TestUpdateOnlyRunsWhilePlaying(t *testing.T) {
	s, _ := New(Options{})
	s.Update(1.0 / 60)
	if s.Hour != StartHour {
		t.Fatalf("expected clock frozen on title, got %v", s.Hour)
	}
	s.StartGame()
	s.Pause()
	s.Update(1.0 / 60)
	if s.Hour != StartHour {
		t.Fatalf("expected clock frozen while paused, got %v", s.Hour)
	}
	s.Resume()
	s.Update(1.0 / 60)
	if s.Hour <= StartHour {
		t.Fatalf("expected clock to advance, got %v", s.Hour)
	}
	if math.Abs(s.Elapsed-3.0/60) > 1e-9 {
		t.Fatalf("expected animation clock to count every update, got %v", s.Elapsed)
	}
}

func TestClockWrapsToNextDay(t *testing.T) {
	s := newPlaying(t)
	s.Hour = 23.9995
	s.Update(1.0 / 60)
	if s.Hour != 0 || s.Day != 1 {
		t.Fatalf("expected hour 0 day 1, got %v day %d", s.Hour, s.Day)
	}
}

func TestCameraTracksPlayer(t *testing.T) {
	s := newPlaying(t)
	s.Player.SetMoveTarget(s.Player.X+3, s.Player.Y)
	for i := 0; i < 5; i++ {
		s.Update(1.0 / 60)
	}
	if s.CameraX != s.Player.X-CameraOffsetX || s.CameraY != s.Player.Y-CameraOffsetY {
		t.Fatalf("expected camera at player-(5,4), got (%v,%v) for player (%v,%v)",
			s.CameraX, s.CameraY, s.Player.X, s.Player.Y)
	}
}

func TestChangeDistrictUnknownLeavesStateUnchanged(t *testing.T) {
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 12, 13
	before := s.District
	npcs := len(s.NPCs)

	if s.ChangeDistrict("moon") {
		t.Fatal("expected unknown district to be rejected")
	}
	if s.District != before || len(s.NPCs) != npcs {
		t.Fatal("expected district and npcs unchanged")
	}
	if s.Player.X != 12 || s.Player.Y != 13 {
		t.Fatalf("expected player unchanged, got (%v,%v)", s.Player.X, s.Player.Y)
	}
}

func TestChangeDistrictMovesPlayerToEntry(t *testing.T) {
	s := newPlaying(t)
	s.Player.SetMoveTarget(30, 30)
	if !s.ChangeDistrict("corporate") {
		t.Fatal("expected corporate to load")
	}
	if s.District.ID != "corporate" {
		t.Fatalf("expected corporate, got %s", s.District.ID)
	}
	if s.Player.X != s.District.EntryX || s.Player.Y != s.District.EntryY {
		t.Fatalf("expected player at entry, got (%v,%v)", s.Player.X, s.Player.Y)
	}
	if s.Player.IsMoving() {
		t.Fatal("expected move target cleared")
	}
	if len(s.NPCs) == 0 || s.NPCs[0].ID != "guard_01" {
		t.Fatal("expected corporate npcs to be active")
	}
}

func TestNearFlagRecomputedEveryTick(t *testing.T) {
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 14, 22
	s.Update(1.0 / 60)
	if !s.NPCNear("max") || !s.NearNPC() {
		t.Fatal("expected max to be near")
	}
	s.Player.X, s.Player.Y = 20, 35
	s.Update(1.0 / 60)
	if s.NPCNear("max") {
		t.Fatal("expected max no longer near")
	}
}

func TestFindingMaxCompletesFirstQuest(t *testing.T) {
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 14, 22
	s.Update(1.0 / 60)

	q, _ := s.Quests.Quest("main_01")
	if q.Status != rpg.StatusCompleted {
		t.Fatalf("expected main_01 completed, got %v", q.Status)
	}
}

func TestDialogueWithMaxClaimsRewards(t *testing.T) {
	s := newPlaying(t)
	s.Player.X, s.Player.Y = 14, 22
	s.Update(1.0 / 60)
	credits := s.Inventory.Credits

	if !s.Interact() {
		t.Fatal("expected interaction with max")
	}
	if s.Screen != ScreenDialogue || s.Dialogue.NPC.ID != "max" {
		t.Fatal("expected dialogue with max")
	}
	if !s.SelectResponse(0) || s.Dialogue.Node != 1 {
		t.Fatal("expected node 1")
	}
	if !s.SelectResponse(0) || s.Dialogue.Node != 3 {
		t.Fatal("expected node 3")
	}
	if s.SelectResponse(0) {
		t.Fatal("expected dialogue to end")
	}
	if s.Screen != ScreenPlaying || s.Dialogue != nil {
		t.Fatalf("expected playing without dialogue, got %v", s.Screen)
	}

	q, _ := s.Quests.Quest("main_01")
	if q.Status != rpg.StatusTurnedIn {
		t.Fatalf("expected main_01 turned in, got %v", q.Status)
	}
	if s.Inventory.Credits != credits+200 {
		t.Fatalf("expected %d credits, got %d", credits+200, s.Inventory.Credits)
	}
	if next, ok := s.Quests.Quest("main_02"); !ok || next.Status != rpg.StatusActive {
		t.Fatal("expected main_02 active")
	}
}

func TestSelectResponseOutOfRangeEndsDialogue(t *testing.T) {
	s := newPlaying(t)
	s.StartDialogue(s.NPCs[0])
	if s.SelectResponse(5) {
		t.Fatal("expected invalid pick to end dialogue")
	}
	if s.Screen != ScreenPlaying || s.Dialogue != nil {
		t.Fatalf("expected playing without dialogue, got %v", s.Screen)
	}
}

func TestTwoNodeDialogueEndsOnEndEdge(t *testing.T) {
	s := newPlaying(t)
	n := entity.NewNPC("x", "X", 1, 1, entity.NPCCivilian)
	n.Dialogue = []entity.DialogueNode{
		entity.Node("hi", entity.Reply("more", entity.GoTo(1)), entity.Reply("bye", entity.End)),
		entity.Node("that's all"),
	}
	s.StartDialogue(n)
	if s.SelectResponse(1) {
		t.Fatal("expected end edge to close dialogue")
	}
	if s.Screen != ScreenPlaying || s.Dialogue != nil {
		t.Fatalf("expected playing without dialogue, got %v", s.Screen)
	}
}

func TestInteractWithoutNearbyNPC(t *testing.T) {
	s := newPlaying(t)
	s.Update(1.0 / 60)
	if s.Interact() {
		t.Fatal("expected no interaction at entry")
	}
	if s.Screen != ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
}

func TestBlockedMoveIsRejected(t *testing.T) {
	d := groundDistrict("yard", 6, 5, 1, 2)
	d.SetTile(3, 2, world.Wall(2))
	s := newWithCity(t, d)

	s.Player.SetMoveTarget(5, 2)
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
	}
	if s.Player.X >= 2.5 {
		t.Fatalf("expected player stopped before wall, got x=%v", s.Player.X)
	}
	if s.Player.IsMoving() {
		t.Fatal("expected move target cleared")
	}
}

func TestWalkingOntoTransitionChangesDistrict(t *testing.T) {
	a := groundDistrict("a", 6, 5, 1, 2)
	a.SetTile(3, 2, world.Transition("b"))
	b := groundDistrict("b", 4, 4, 1, 1)
	s := newWithCity(t, a, b)

	s.Player.SetMoveTarget(3, 2)
	for i := 0; i < 60 && s.District.ID == "a"; i++ {
		s.Update(1.0 / 60)
	}
	if s.District.ID != "b" {
		t.Fatalf("expected district b, got %s", s.District.ID)
	}
	if s.Player.X != 1 || s.Player.Y != 1 {
		t.Fatalf("expected player at b entry, got (%v,%v)", s.Player.X, s.Player.Y)
	}
}

func TestPlayerStaysInsideWorldBounds(t *testing.T) {
	s := newWithCity(t, groundDistrict("a", 3, 3, 1, 1))
	s.Player.VX, s.Player.VY = -0.5, -0.5
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	if s.Player.X < entity.WorldMin || s.Player.Y < entity.WorldMin {
		t.Fatalf("expected clamped position, got (%v,%v)", s.Player.X, s.Player.Y)
	}
}

func TestMenuToggles(t *testing.T) {
	s := newPlaying(t)
	s.ToggleInventory()
	if s.Screen != ScreenInventory {
		t.Fatalf("expected inventory, got %v", s.Screen)
	}
	s.ToggleInventory()
	s.ToggleQuestLog()
	if s.Screen != ScreenQuestLog {
		t.Fatalf("expected quest log, got %v", s.Screen)
	}
	s.ToggleQuestLog()
	if s.Screen != ScreenPlaying {
		t.Fatalf("expected playing, got %v", s.Screen)
	}
	s.Resume()
	if s.Screen != ScreenPlaying {
		t.Fatal("expected resume to be a no-op while playing")
	}
	s.ToggleDebug()
	if !s.ShowDebug {
		t.Fatal("expected debug on")
	}
}
