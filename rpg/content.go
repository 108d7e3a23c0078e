package rpg

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownQuest 引用了不存在的任务定义
var ErrUnknownQuest = errors.New("unknown quest")

//go:embed content/quests.json
var defaultContent []byte

// TriggerKind 目标自动完成的判定类型
type TriggerKind string

const (
	TriggerNPCNear  TriggerKind = "npc_near"
	TriggerDistrict TriggerKind = "district"
	TriggerHasItem  TriggerKind = "has_item"
)

// Trigger 以目标 id 为键的判定
type Trigger struct {
	Kind   TriggerKind `json:"kind"`
	Target string      `json:"target"`
}

// ObjectiveRef 指向某任务的某目标
type ObjectiveRef struct {
	Quest     string `json:"quest"`
	Objective string `json:"objective"`
}

// Action 对话触发的任务动作
type Action struct {
	Complete []ObjectiveRef `json:"complete"`
	Claim    []string       `json:"claim"`
}

type objectiveDef struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Target      int    `json:"target"`
}

type rewardsDef struct {
	Experience int      `json:"experience"`
	Credits    int      `json:"credits"`
	Items      []string `json:"items"`
}

type questDef struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Objectives  []objectiveDef `json:"objectives"`
	Rewards     rewardsDef     `json:"rewards"`
}

// Content 任务数据：定义、起始任务、后续链、目标判定与对话动作
type Content struct {
	Quests   map[string]questDef `json:"quests"`
	Starting []string            `json:"starting"`
	Chains   map[string][]string `json:"chains"`
	Triggers map[string]Trigger  `json:"triggers"`
	Actions  map[string]Action   `json:"actions"`
}

// DefaultContent 解析内置任务数据
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent 解析并校验任务数据
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode quest content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	check := func(id, where string) error {
		if _, ok := c.Quests[id]; !ok {
			return fmt.Errorf("%s references %q: %w", where, id, ErrUnknownQuest)
		}
		return nil
	}
	for _, id := range c.Starting {
		if err := check(id, "starting"); err != nil {
			return err
		}
	}
	for from, next := range c.Chains {
		if err := check(from, "chain"); err != nil {
			return err
		}
		for _, id := range next {
			if err := check(id, "chain "+from); err != nil {
				return err
			}
		}
	}
	for name, a := range c.Actions {
		for _, ref := range a.Complete {
			if err := check(ref.Quest, "action "+name); err != nil {
				return err
			}
		}
		for _, id := range a.Claim {
			if err := check(id, "action "+name); err != nil {
				return err
			}
		}
	}
	for id, q := range c.Quests {
		for _, item := range q.Rewards.Items {
			if _, ok := catalog[item]; !ok {
				return fmt.Errorf("quest %s reward %q: %w", id, item, ErrUnknownItem)
			}
		}
	}
	return nil
}

// NewQuest 按定义实例化一个 ACTIVE 任务
func (c *Content) NewQuest(id string) (*Quest, bool) {
	def, ok := c.Quests[id]
	if !ok {
		return nil, false
	}
	q := &Quest{
		ID:          id,
		Title:       def.Title,
		Description: def.Description,
		Status:      StatusActive,
		Rewards: Rewards{
			Experience: def.Rewards.Experience,
			Credits:    def.Rewards.Credits,
			Items:      append([]string(nil), def.Rewards.Items...),
		},
	}
	for _, o := range def.Objectives {
		target := o.Target
		if target <= 0 {
			target = 1
		}
		q.Objectives = append(q.Objectives, Objective{ID: o.ID, Description: o.Description, Target: target})
	}
	return q, true
}
