package game

// Screen 当前界面状态
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenDialogue
	ScreenInventory
	ScreenQuestLog
	ScreenPause
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenDialogue:
		return "dialogue"
	case ScreenInventory:
		return "inventory"
	case ScreenQuestLog:
		return "quest_log"
	case ScreenPause:
		return "pause"
	default:
		return "unknown"
	}
}
