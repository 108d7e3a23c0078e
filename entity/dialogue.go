package entity

// Edge 对话分支的去向：结束或跳转到同一 NPC 的某个节点
type Edge struct {
	next int // 节点下标 + 1，零值表示结束
}

// End 结束对话
var End = Edge{}

// GoTo 跳转到节点 i；负数等价于 End
func GoTo(i int) Edge {
	if i < 0 {
		return End
	}
	return Edge{next: i + 1}
}

// Target 返回目标节点；结束边返回 false
func (e Edge) Target() (int, bool) {
	if e.next == 0 {
		return 0, false
	}
	return e.next - 1, true
}

func (e Edge) IsEnd() bool { return e.next == 0 }

// Response 一个可选回答
type Response struct {
	Label string
	Next  Edge
}

// DialogueNode 对话节点
type DialogueNode struct {
	Text        string
	Responses   []Response
	QuestAction string // 选择本节点任一回答时触发，可为空
}

// Goodbye 缺省回答
const Goodbye = "Goodbye"

// Node 构造节点的便捷函数
func Node(text string, responses ...Response) DialogueNode {
	if len(responses) == 0 {
		responses = []Response{{Label: Goodbye, Next: End}}
	}
	return DialogueNode{Text: text, Responses: responses}
}

// Reply 构造回答
func Reply(label string, next Edge) Response {
	return Response{Label: label, Next: next}
}

// Labels 回答文本列表
func (n DialogueNode) Labels() []string {
	out := make([]string, len(n.Responses))
	for i, r := range n.Responses {
		out[i] = r.Label
	}
	return out
}
