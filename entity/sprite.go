package entity

import "image/color"

// SpriteKind 精灵种类
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteNPC
)

// Sprite 像素小人的绘制描述，渲染器只依赖它而不关心具体实体类型
type Sprite struct {
	Kind   SpriteKind
	Name   string
	Body   color.RGBA
	Accent color.RGBA
	Skin   color.RGBA
	Hair   color.RGBA
	Facing Facing
	Moving bool

	QuestMarker bool // 头顶显示 "!"
	PlayerNear  bool // 显示高亮环与名字
}
