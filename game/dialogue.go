package game

import "neoncity/entity"

// DialogueState 仅在 DIALOGUE 界面存在：对话对象与当前节点
type DialogueState struct {
	NPC  *entity.NPC
	Node int
}

func (d *DialogueState) node() (entity.DialogueNode, bool) {
	if d.Node < 0 || d.Node >= len(d.NPC.Dialogue) {
		return entity.DialogueNode{}, false
	}
	return d.NPC.Dialogue[d.Node], true
}

// Text 当前节点文本；节点缺失时为空
func (d *DialogueState) Text() string {
	n, _ := d.node()
	return n.Text
}

// Responses 当前回答列表；节点缺失时为 ["Goodbye"]
func (d *DialogueState) Responses() []string {
	n, ok := d.node()
	if !ok {
		return []string{entity.Goodbye}
	}
	return n.Labels()
}

// QuestAction 当前节点携带的任务动作
func (d *DialogueState) QuestAction() string {
	n, _ := d.node()
	return n.QuestAction
}

// Select 校验回答下标与目标节点后跳转；非法或结束边返回 false 且游标不变
func (d *DialogueState) Select(i int) bool {
	n, ok := d.node()
	if !ok || i < 0 || i >= len(n.Responses) {
		return false
	}
	target, ok := n.Responses[i].Next.Target()
	if !ok || target >= len(d.NPC.Dialogue) {
		return false
	}
	d.Node = target
	return true
}
