package entity

import (
	"image/color"
	"math"
)

const (
	// WorldMin/WorldMax 世界坐标边界
	WorldMin = 0.0
	WorldMax = 100.0

	// ArrivalTolerance 点击移动的到达判定距离
	ArrivalTolerance = 0.1

	baseSpeed       = 0.06
	energyRegenRate = 0.01
)

// Player 玩家角色：位置、速度、属性与点击移动目标
type Player struct {
	Name   string
	X, Y   float64
	VX, VY float64
	Facing Facing

	Level             int
	Experience        int
	ExperienceToLevel int

	Health    int
	MaxHealth int
	Energy    float64
	MaxEnergy float64

	Strength     int
	Agility      int
	Intelligence int
	Charisma     int

	HairColor     color.RGBA
	ClothingColor color.RGBA

	target    struct{ x, y float64 }
	hasTarget bool
}

// NewPlayer 创建一级角色
func NewPlayer(name string, x, y float64) *Player {
	return &Player{
		Name:              name,
		X:                 x,
		Y:                 y,
		Facing:            FacingSouth,
		Level:             1,
		ExperienceToLevel: 100,
		Health:            100,
		MaxHealth:         100,
		Energy:            50,
		MaxEnergy:         50,
		Strength:          5,
		Agility:           5,
		Intelligence:      5,
		Charisma:          5,
		HairColor:         color.RGBA{40, 30, 20, 255},
		ClothingColor:     color.RGBA{80, 40, 120, 255},
	}
}

// Speed 每 tick 的移动距离，随敏捷提高
func (p *Player) Speed() float64 {
	return baseSpeed * (1 + float64(p.Agility)*0.02)
}

// IsMoving 有速度或存在移动目标
func (p *Player) IsMoving() bool {
	return p.VX != 0 || p.VY != 0 || p.hasTarget
}

// MoveTarget 返回当前点击移动目标
func (p *Player) MoveTarget() (x, y float64, ok bool) {
	return p.target.x, p.target.y, p.hasTarget
}

func (p *Player) SetMoveTarget(x, y float64) {
	p.target.x, p.target.y = x, y
	p.hasTarget = true
}

// ClearMoveTarget 清除目标并停下
func (p *Player) ClearMoveTarget() {
	p.hasTarget = false
	p.VX, p.VY = 0, 0
}

// Update 推进一个 tick：追踪目标、积分速度、裁剪边界、空闲回能
func (p *Player) Update() {
	if p.hasTarget {
		dx := p.target.x - p.X
		dy := p.target.y - p.Y
		dist := math.Hypot(dx, dy)
		if dist < ArrivalTolerance {
			p.ClearMoveTarget()
		} else {
			speed := p.Speed()
			p.VX = dx / dist * speed
			p.VY = dy / dist * speed
			p.Facing = DeriveFacing(dx, dy, p.Facing)
		}
	}

	p.X = clamp(p.X+p.VX, WorldMin, WorldMax)
	p.Y = clamp(p.Y+p.VY, WorldMin, WorldMax)

	if !p.IsMoving() && p.Energy < p.MaxEnergy {
		p.Energy = math.Min(p.Energy+energyRegenRate, p.MaxEnergy)
	}
}

// AddExperience 增加经验，可能连续升级
func (p *Player) AddExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.Experience += amount
	for p.Experience >= p.ExperienceToLevel {
		p.levelUp()
	}
}

func (p *Player) levelUp() {
	p.Experience -= p.ExperienceToLevel
	p.Level++
	p.ExperienceToLevel = int(float64(p.ExperienceToLevel) * 1.5)

	p.MaxHealth += 10
	p.Health = p.MaxHealth
	p.MaxEnergy += 5
	p.Energy = p.MaxEnergy
}

func (p *Player) TakeDamage(amount int) {
	p.Health = max(p.Health-amount, 0)
}

func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// UseEnergy 能量不足时返回 false 且不扣除
func (p *Player) UseEnergy(amount float64) bool {
	if p.Energy < amount {
		return false
	}
	p.Energy -= amount
	return true
}

func (p *Player) RestoreEnergy(amount float64) {
	p.Energy = math.Min(p.Energy+amount, p.MaxEnergy)
}

// Position 世界坐标
func (p *Player) Position() (float64, float64) { return p.X, p.Y }

// Sprite 渲染描述
func (p *Player) Sprite() Sprite {
	return Sprite{
		Kind:   SpritePlayer,
		Name:   p.Name,
		Body:   color.RGBA{40, 40, 60, 255},
		Accent: p.ClothingColor,
		Skin:   color.RGBA{220, 180, 160, 255},
		Hair:   p.HairColor,
		Facing: p.Facing,
		Moving: p.IsMoving(),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
