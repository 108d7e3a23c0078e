package entity

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
	"math/rand/v2"
)

// ErrDanglingEdge 对话边指向了不存在的节点
var ErrDanglingEdge = errors.New("dialogue edge points outside node list")

// NPCType NPC 类别
type NPCType int

const (
	NPCCivilian NPCType = iota
	NPCMerchant
	NPCQuestGiver
	NPCInformant
	NPCGuard
	NPCGangMember
)

func (t NPCType) String() string {
	switch t {
	case NPCCivilian:
		return "civilian"
	case NPCMerchant:
		return "merchant"
	case NPCQuestGiver:
		return "quest_giver"
	case NPCInformant:
		return "informant"
	case NPCGuard:
		return "guard"
	case NPCGangMember:
		return "gang_member"
	default:
		return "unknown"
	}
}

// Behavior NPC 行为
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorPatrol
	BehaviorWander
	BehaviorFollowPlayer // 预留
)

const (
	patrolSpeed     = 0.02
	patrolTolerance = 0.2
	wanderChance    = 0.01
	wanderStep      = 0.05
)

// Waypoint 巡逻点
type Waypoint struct{ X, Y float64 }

// NPC 非玩家角色
type NPC struct {
	ID       string
	Name     string
	X, Y     float64
	Type     NPCType
	Behavior Behavior

	Dialogue  []DialogueNode
	QuestID   string // 为空表示不发任务
	ShopItems []string
	Patrol    []Waypoint

	SkinColor   color.RGBA
	HairColor   color.RGBA
	BodyColor   color.RGBA
	AccentColor color.RGBA

	PlayerNear bool // 每 tick 由距离重新计算

	patrolIndex int
}

// NewNPC 以默认外观创建 NPC
func NewNPC(id, name string, x, y float64, t NPCType) *NPC {
	return &NPC{
		ID:          id,
		Name:        name,
		X:           x,
		Y:           y,
		Type:        t,
		SkinColor:   color.RGBA{220, 180, 160, 255},
		HairColor:   color.RGBA{50, 40, 30, 255},
		BodyColor:   color.RGBA{60, 60, 80, 255},
		AccentColor: color.RGBA{100, 50, 50, 255},
	}
}

func (n *NPC) HasQuest() bool { return n.QuestID != "" }

// PatrolIndex 当前巡逻目标下标
func (n *NPC) PatrolIndex() int { return n.patrolIndex }

// Update 推进一个 tick 的行为
func (n *NPC) Update(rng *rand.Rand) {
	switch n.Behavior {
	case BehaviorPatrol:
		if len(n.Patrol) == 0 {
			return
		}
		wp := n.Patrol[n.patrolIndex]
		dx, dy := wp.X-n.X, wp.Y-n.Y
		dist := math.Hypot(dx, dy)
		if dist < patrolTolerance {
			n.patrolIndex = (n.patrolIndex + 1) % len(n.Patrol)
			return
		}
		n.X += dx / dist * patrolSpeed
		n.Y += dy / dist * patrolSpeed
	case BehaviorWander:
		if rng == nil || rng.Float64() >= wanderChance {
			return
		}
		n.X += rng.Float64()*2*wanderStep - wanderStep
		n.Y += rng.Float64()*2*wanderStep - wanderStep
	case BehaviorIdle, BehaviorFollowPlayer:
	}
}

// Validate 检查每条对话边都指向本 NPC 的有效节点
func (n *NPC) Validate() error {
	for i, node := range n.Dialogue {
		for j, r := range node.Responses {
			if target, ok := r.Next.Target(); ok && target >= len(n.Dialogue) {
				return fmt.Errorf("npc %s node %d response %d -> %d: %w", n.ID, i, j, target, ErrDanglingEdge)
			}
		}
	}
	return nil
}

// Position 世界坐标
func (n *NPC) Position() (float64, float64) { return n.X, n.Y }

// Sprite 渲染描述
func (n *NPC) Sprite() Sprite {
	return Sprite{
		Kind:        SpriteNPC,
		Name:        n.Name,
		Body:        n.BodyColor,
		Accent:      n.AccentColor,
		Skin:        n.SkinColor,
		Hair:        n.HairColor,
		Facing:      FacingSouth,
		QuestMarker: n.HasQuest(),
		PlayerNear:  n.PlayerNear,
	}
}

// NewCivilian 普通市民；衣服颜色由 id 决定，保证每次启动外观一致
func NewCivilian(id, name string, x, y float64) *NPC {
	n := NewNPC(id, name, x, y, NPCCivilian)
	n.Dialogue = []DialogueNode{
		Node("Hey there. Crazy night, huh?",
			Reply("Yeah, it's wild out here.", End),
			Reply("Stay safe.", End)),
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum32()
	n.BodyColor = color.RGBA{
		R: uint8(40 + sum%41),
		G: uint8(40 + (sum>>8)%41),
		B: uint8(60 + (sum>>16)%41),
		A: 255,
	}
	return n
}

// NewMerchant 商人
func NewMerchant(id, name string, x, y float64, items []string) *NPC {
	n := NewNPC(id, name, x, y, NPCMerchant)
	n.ShopItems = append([]string(nil), items...)
	n.AccentColor = color.RGBA{200, 150, 50, 255}
	n.Dialogue = []DialogueNode{
		Node("Welcome! Looking to buy or sell?",
			Reply("Show me what you've got.", GoTo(1)),
			Reply("Maybe later.", End)),
		Node("Take a look at my wares.",
			Reply("Thanks.", End)),
	}
	return n
}

// NewQuestGiver 任务发布者
func NewQuestGiver(id, name string, x, y float64, questID string, nodes []DialogueNode) *NPC {
	n := NewNPC(id, name, x, y, NPCQuestGiver)
	n.QuestID = questID
	n.AccentColor = color.RGBA{255, 200, 0, 255}
	n.Dialogue = nodes
	return n
}

// NewInformant 情报贩子
func NewInformant(id, name string, x, y float64) *NPC {
	n := NewNPC(id, name, x, y, NPCInformant)
	n.AccentColor = color.RGBA{0, 200, 200, 255}
	n.Dialogue = []DialogueNode{
		Node("You looking for information? Everything has a price in Neon City.",
			Reply("What do you know?", GoTo(1)),
			Reply("Nevermind.", End)),
		Node("The corpo towers control everything. But there are ways around their surveillance... if you know where to look.",
			Reply("Tell me more.", End),
			Reply("Thanks for the tip.", End)),
	}
	return n
}
