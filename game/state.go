package game

import (
	"fmt"
	"math"
	"math/rand/v2"

	"neoncity/entity"
	"neoncity/logging"
	"neoncity/rpg"
	"neoncity/world"
)

const (
	// CameraOffsetX/Y 相机锁定在玩家身后固定偏移处
	CameraOffsetX = 5.0
	CameraOffsetY = 4.0

	// NearDistance NPC "玩家在附近" 判定距离
	NearDistance = 1.5

	// ClockStep 每次 Update 推进的游戏小时数
	ClockStep = 0.001
	StartHour = 8.0
)

// Options 构造参数；City/Content 为空时使用内置数据
type Options struct {
	Seed    uint64
	City    *world.CityMap
	Content *rpg.Content
}

// State 会话内唯一的可变状态根，由 Session 持有并显式传递
type State struct {
	Screen    Screen
	ShowDebug bool

	City     *world.CityMap
	District *world.District
	Player   *entity.Player
	NPCs     []*entity.NPC

	Inventory *rpg.Inventory
	Quests    *rpg.QuestManager
	Dialogue  *DialogueState

	CameraX, CameraY float64

	Hour float64
	Day  int

	Elapsed float64 // 动画时钟（秒），dt 之和

	rng *rand.Rand
}

// New 创建新会话：起始街区、初始任务、TITLE 界面
func New(opts Options) (*State, error) {
	city := opts.City
	if city == nil {
		c, err := world.NewCityMap()
		if err != nil {
			return nil, fmt.Errorf("build city: %w", err)
		}
		city = c
	}
	content := opts.Content
	if content == nil {
		c, err := rpg.DefaultContent()
		if err != nil {
			return nil, fmt.Errorf("load quests: %w", err)
		}
		content = c
	}
	start := city.Start()
	if start == nil {
		return nil, fmt.Errorf("city has no districts")
	}

	s := &State{
		Screen:    ScreenTitle,
		City:      city,
		Player:    entity.NewPlayer("Runner", 5, 5),
		Inventory: rpg.NewInventory(),
		Quests:    rpg.NewQuestManager(content),
		Hour:      StartHour,
		rng:       rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	s.loadDistrict(start)
	return s, nil
}

// Update 动画时钟在任何界面都累加 dt；模拟只在 PLAYING 时推进，物理使用每 tick 常量
func (s *State) Update(dt float64) {
	s.Elapsed += dt
	if s.Screen != ScreenPlaying {
		return
	}

	s.updatePlayer()

	s.CameraX = s.Player.X - CameraOffsetX
	s.CameraY = s.Player.Y - CameraOffsetY

	for _, n := range s.NPCs {
		n.Update(s.rng)
	}

	s.Hour += ClockStep
	if s.Hour >= 24 {
		s.Hour = 0
		s.Day++
		logging.Log.Infow("new day", "day", s.Day)
	}

	for _, n := range s.NPCs {
		n.PlayerNear = math.Hypot(s.Player.X-n.X, s.Player.Y-n.Y) < NearDistance
	}

	s.Quests.Update(s)
}

func tileCoord(v float64) int { return int(math.Round(v)) }

func (s *State) updatePlayer() {
	p := s.Player
	fromX, fromY := tileCoord(p.X), tileCoord(p.Y)
	prevX, prevY := p.X, p.Y

	p.Update()

	tx, ty := tileCoord(p.X), tileCoord(p.Y)
	tile, ok := s.District.Tile(tx, ty)
	if !ok {
		return
	}
	if !tile.Walkable && (tx != fromX || ty != fromY) {
		p.X, p.Y = prevX, prevY
		p.ClearMoveTarget()
		return
	}
	if tile.Type == world.TileTransition && tile.LinkedID != s.District.ID {
		s.ChangeDistrict(tile.LinkedID)
	}
}

func (s *State) loadDistrict(d *world.District) {
	s.District = d
	s.NPCs = d.NPCs
	s.Player.X, s.Player.Y = d.EntryX, d.EntryY
	s.Player.ClearMoveTarget()
	s.CameraX = s.Player.X - CameraOffsetX
	s.CameraY = s.Player.Y - CameraOffsetY
}

// ChangeDistrict 传送到目标街区入口；未知 id 时不做任何修改
func (s *State) ChangeDistrict(id string) bool {
	d, ok := s.City.District(id)
	if !ok {
		logging.Log.Debugw("unknown district", "district", id)
		return false
	}
	from := s.District.ID
	s.loadDistrict(d)
	logging.Log.Infow("district changed", "from", from, "to", id)
	return true
}

func (s *State) setScreen(next Screen) {
	if s.Screen == next {
		return
	}
	logging.Log.Debugw("screen", "from", s.Screen.String(), "to", next.String())
	s.Screen = next
}

// StartGame TITLE -> PLAYING
func (s *State) StartGame() {
	if s.Screen == ScreenTitle {
		s.setScreen(ScreenPlaying)
	}
}

func (s *State) StartDialogue(n *entity.NPC) {
	s.Dialogue = &DialogueState{NPC: n}
	s.setScreen(ScreenDialogue)
	logging.Log.Infow("dialogue started", "npc", n.ID)
}

func (s *State) EndDialogue() {
	if s.Dialogue != nil {
		logging.Log.Infow("dialogue ended", "npc", s.Dialogue.NPC.ID)
	}
	s.Dialogue = nil
	s.setScreen(ScreenPlaying)
}

// SelectResponse 选择回答并触发当前节点的任务动作；结束边或非法下标都会结束对话，此时返回 false
func (s *State) SelectResponse(i int) bool {
	d := s.Dialogue
	if d == nil {
		return false
	}
	if action := d.QuestAction(); action != "" && i >= 0 && i < len(d.Responses()) {
		s.Quests.HandleAction(action, s.Player, s.Inventory)
	}
	if d.Select(i) {
		return true
	}
	s.EndDialogue()
	return false
}

// Interact 与第一个在附近的 NPC 对话
func (s *State) Interact() bool {
	for _, n := range s.NPCs {
		if n.PlayerNear {
			s.StartDialogue(n)
			return true
		}
	}
	return false
}

func (s *State) ToggleInventory() {
	if s.Screen == ScreenInventory {
		s.setScreen(ScreenPlaying)
		return
	}
	s.setScreen(ScreenInventory)
}

func (s *State) ToggleQuestLog() {
	if s.Screen == ScreenQuestLog {
		s.setScreen(ScreenPlaying)
		return
	}
	s.setScreen(ScreenQuestLog)
}

// Pause 仅从 PLAYING 进入
func (s *State) Pause() {
	if s.Screen == ScreenPlaying {
		s.setScreen(ScreenPause)
	}
}

func (s *State) Resume() {
	if s.Screen == ScreenPause {
		s.setScreen(ScreenPlaying)
	}
}

func (s *State) ToggleDebug() { s.ShowDebug = !s.ShowDebug }

// NPCNear 实现 rpg.World
func (s *State) NPCNear(id string) bool {
	for _, n := range s.NPCs {
		if n.ID == id {
			return n.PlayerNear
		}
	}
	return false
}

func (s *State) DistrictID() string { return s.District.ID }

func (s *State) HasItem(id string) bool { return s.Inventory.HasItem(id, 1) }

// NearNPC 是否有 NPC 在附近（HUD 高亮交互按钮）
func (s *State) NearNPC() bool {
	for _, n := range s.NPCs {
		if n.PlayerNear {
			return true
		}
	}
	return false
}
