package rpg

import (
	"errors"
	"image/color"
)

// ErrUnknownItem 目录中不存在该物品
var ErrUnknownItem = errors.New("unknown item")

// ItemCategory 物品类别
type ItemCategory int

const (
	CategoryConsumable ItemCategory = iota
	CategoryWeapon
	CategoryArmor
	CategoryKeyItem
	CategoryCyberware
	CategoryChip
)

// EffectType 使用效果
type EffectType int

const (
	EffectHeal EffectType = iota
	EffectRestoreEnergy
	EffectDamage
	EffectBuffStrength
	EffectBuffAgility
)

// Effect 物品效果
type Effect struct {
	Type  EffectType
	Value int
}

// Item 一格物品堆叠
type Item struct {
	ID          string
	Name        string
	Description string
	Category    ItemCategory
	Glyph       rune // 背包格内显示的单字符
	Color       color.RGBA
	Quantity    int
	Stackable   bool
	Value       int // 信用点价值
	Effect      *Effect
}

var catalog = map[string]Item{
	"medkit": {
		ID: "medkit", Name: "Medkit", Description: "Restores 50 health.",
		Category: CategoryConsumable, Glyph: '+', Color: color.RGBA{255, 100, 100, 255},
		Stackable: true, Value: 50, Effect: &Effect{Type: EffectHeal, Value: 50},
	},
	"stim_pack": {
		ID: "stim_pack", Name: "Stim Pack", Description: "Restores 25 energy.",
		Category: CategoryConsumable, Glyph: 'S', Color: color.RGBA{100, 200, 255, 255},
		Stackable: true, Value: 30, Effect: &Effect{Type: EffectRestoreEnergy, Value: 25},
	},
	"hack_chip": {
		ID: "hack_chip", Name: "Hack Chip", Description: "Bypass basic security.",
		Category: CategoryChip, Glyph: 'H', Color: color.RGBA{0, 255, 200, 255},
		Stackable: true, Value: 100,
	},
	"data_chip": {
		ID: "data_chip", Name: "Data Chip", Description: "Contains encrypted corporate data.",
		Category: CategoryKeyItem, Glyph: 'D', Color: color.RGBA{255, 200, 0, 255},
		Stackable: false, Value: 500,
	},
	"military_stim": {
		ID: "military_stim", Name: "Military Stim", Description: "Powerful combat stimulant. +50 energy, temporary stat boost.",
		Category: CategoryConsumable, Glyph: 'M', Color: color.RGBA{200, 50, 50, 255},
		Stackable: true, Value: 200, Effect: &Effect{Type: EffectRestoreEnergy, Value: 50},
	},
	"stealth_chip": {
		ID: "stealth_chip", Name: "Stealth Chip", Description: "Makes you harder to detect.",
		Category: CategoryCyberware, Glyph: '?', Color: color.RGBA{100, 100, 150, 255},
		Stackable: false, Value: 300,
	},
	"emp_grenade": {
		ID: "emp_grenade", Name: "EMP Grenade", Description: "Disables electronics in an area.",
		Category: CategoryWeapon, Glyph: 'E', Color: color.RGBA{100, 200, 255, 255},
		Stackable: true, Value: 150,
	},
}

// NewItem 从目录创建数量为 1 的物品
func NewItem(id string) (Item, bool) {
	it, ok := catalog[id]
	if !ok {
		return Item{}, false
	}
	it.Quantity = 1
	if it.Effect != nil {
		e := *it.Effect
		it.Effect = &e
	}
	return it, true
}

// MustItem 仅用于编译期已知的物品 id
func MustItem(id string) Item {
	it, ok := NewItem(id)
	if !ok {
		panic("rpg: unknown item " + id)
	}
	return it
}
