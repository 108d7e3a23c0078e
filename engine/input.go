package engine

import (
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

type inputKind int

const (
	inputTouch inputKind = iota
	inputResize
	inputPause
	inputDebug
)

// Input 入站事件：只记录意图，由循环 goroutine 在下一帧开始时处理
type Input struct {
	kind  inputKind
	touch touch.Event
	size  size.Event
}

func (in Input) isRelease() bool {
	return in.kind == inputTouch && in.touch.Type == touch.TypeEnd
}
