package rpg

import (
	"slices"
	"strings"

	"neoncity/logging"
)

// World 目标判定所需的世界视图
type World interface {
	NPCNear(id string) bool
	DistrictID() string
	HasItem(id string) bool
}

// ExperienceSink 接收经验奖励
type ExperienceSink interface {
	AddExperience(amount int)
}

// QuestManager 以任务 id 管理全部任务
type QuestManager struct {
	quests  map[string]*Quest
	content *Content
}

// NewQuestManager 加入 content 中的起始任务
func NewQuestManager(content *Content) *QuestManager {
	m := &QuestManager{quests: make(map[string]*Quest), content: content}
	for _, id := range content.Starting {
		m.enqueue(id)
	}
	return m
}

func (m *QuestManager) enqueue(id string) bool {
	if _, exists := m.quests[id]; exists {
		return false
	}
	q, ok := m.content.NewQuest(id)
	if !ok {
		return false
	}
	m.quests[id] = q
	return true
}

// AddQuest 覆盖同 id 任务
func (m *QuestManager) AddQuest(q *Quest) {
	m.quests[q.ID] = q
}

func (m *QuestManager) Quest(id string) (*Quest, bool) {
	q, ok := m.quests[id]
	return q, ok
}

// Active 进行中的任务（按 id 排序，仅用于展示）
func (m *QuestManager) Active() []*Quest {
	return m.filter(func(q *Quest) bool { return q.Status == StatusActive })
}

// Completed 已完成或已交付的任务
func (m *QuestManager) Completed() []*Quest {
	return m.filter(func(q *Quest) bool { return q.Status == StatusCompleted || q.Status == StatusTurnedIn })
}

func (m *QuestManager) filter(keep func(*Quest) bool) []*Quest {
	var out []*Quest
	for _, q := range m.quests {
		if keep(q) {
			out = append(out, q)
		}
	}
	slices.SortFunc(out, func(a, b *Quest) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// CompleteObjective 标记目标完成；只对 ACTIVE 任务生效
func (m *QuestManager) CompleteObjective(questID, objectiveID string) bool {
	q, ok := m.quests[questID]
	if !ok || q.Status != StatusActive {
		return false
	}
	o := q.objective(objectiveID)
	if o == nil || o.Completed {
		return false
	}
	o.Completed = true
	m.promote(q)
	return true
}

// IncrementObjective 推进计数型目标
func (m *QuestManager) IncrementObjective(questID, objectiveID string, amount int) bool {
	q, ok := m.quests[questID]
	if !ok || q.Status != StatusActive {
		return false
	}
	o := q.objective(objectiveID)
	if o == nil || o.Completed {
		return false
	}
	o.Current += amount
	if o.Current >= o.Target {
		o.Completed = true
	}
	m.promote(q)
	return true
}

func (m *QuestManager) IsQuestComplete(id string) bool {
	q, ok := m.quests[id]
	return ok && q.AllDone()
}

// Update 每 tick 评估以目标 id 为键的判定，并提升全部满足的任务
func (m *QuestManager) Update(w World) {
	for _, q := range m.quests {
		if q.Status != StatusActive {
			continue
		}
		for i := range q.Objectives {
			o := &q.Objectives[i]
			if o.Completed {
				continue
			}
			trig, ok := m.content.Triggers[o.ID]
			if ok && trig.satisfied(w) {
				o.Completed = true
			}
		}
		m.promote(q)
	}
}

func (t Trigger) satisfied(w World) bool {
	switch t.Kind {
	case TriggerNPCNear:
		return w.NPCNear(t.Target)
	case TriggerDistrict:
		return w.DistrictID() == t.Target
	case TriggerHasItem:
		return w.HasItem(t.Target)
	default:
		return false
	}
}

func (m *QuestManager) promote(q *Quest) {
	if q.promote() {
		logging.Log.Infow("quest completed", "quest", q.ID)
	}
}

// ClaimRewards 仅对 COMPLETED 任务有效：发放奖励、置为 TURNED_IN、加入后续任务
func (m *QuestManager) ClaimRewards(id string, player ExperienceSink, inv *Inventory) bool {
	q, ok := m.quests[id]
	if !ok || q.Status != StatusCompleted {
		return false
	}

	player.AddExperience(q.Rewards.Experience)
	inv.AddCredits(q.Rewards.Credits)
	for _, itemID := range q.Rewards.Items {
		if it, ok := NewItem(itemID); ok {
			inv.AddItem(it)
		}
	}
	q.Status = StatusTurnedIn
	logging.Log.Infow("quest rewards claimed", "quest", id,
		"experience", q.Rewards.Experience, "credits", q.Rewards.Credits)

	for _, next := range m.content.Chains[id] {
		if m.enqueue(next) {
			logging.Log.Infow("follow-up quest added", "quest", next, "after", id)
		}
	}
	return true
}

// HandleAction 执行对话携带的任务动作；未知动作返回 false
func (m *QuestManager) HandleAction(name string, player ExperienceSink, inv *Inventory) bool {
	a, ok := m.content.Actions[name]
	if !ok {
		return false
	}
	for _, ref := range a.Complete {
		m.CompleteObjective(ref.Quest, ref.Objective)
	}
	for _, id := range a.Claim {
		m.ClaimRewards(id, player, inv)
	}
	return true
}
