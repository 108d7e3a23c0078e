package game

import (
	"testing"

	"neoncity/entity"
)

func testDialogue() *DialogueState {
	npc := entity.NewNPC("n", "N", 0, 0, entity.NPCCivilian)
	npc.Dialogue = []entity.DialogueNode{
		entity.Node("hello", entity.Reply("more", entity.GoTo(1)), entity.Reply("bye", entity.End)),
		entity.Node("tail", entity.Reply("loop", entity.GoTo(7))),
	}
	return &DialogueState{NPC: npc}
}

func TestDialogueSelectFollowsEdge(t *testing.T) {
	d := testDialogue()
	if d.Text() != "hello" {
		t.Fatalf("expected hello, got %q", d.Text())
	}
	if got := d.Responses(); len(got) != 2 || got[0] != "more" {
		t.Fatalf("unexpected responses %v", got)
	}
	if !d.Select(0) || d.Node != 1 {
		t.Fatalf("expected node 1, got %d", d.Node)
	}
}

func TestDialogueSelectRejectsEndAndDanglingEdges(t *testing.T) {
	d := testDialogue()
	if d.Select(1) {
		t.Fatalf("end edge should not advance")
	}
	if d.Select(5) || d.Select(-1) {
		t.Fatalf("out-of-range index should not advance")
	}
	d.Node = 1
	if d.Select(0) || d.Node != 1 {
		t.Fatalf("edge past node list should not advance, node=%d", d.Node)
	}
}

func TestDialogueMissingNodeFallsBackToGoodbye(t *testing.T) {
	d := testDialogue()
	d.Node = 9
	if d.Text() != "" {
		t.Fatalf("expected empty text, got %q", d.Text())
	}
	if got := d.Responses(); len(got) != 1 || got[0] != entity.Goodbye {
		t.Fatalf("expected [Goodbye], got %v", got)
	}
}
