package rpg

// QuestStatus 任务状态
type QuestStatus int

const (
	StatusAvailable QuestStatus = iota
	StatusActive
	StatusCompleted
	StatusTurnedIn
)

func (s QuestStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusTurnedIn:
		return "turned_in"
	default:
		return "unknown"
	}
}

// Objective 任务中的单个可追踪条件
type Objective struct {
	ID          string
	Description string
	Completed   bool
	Current     int
	Target      int
}

// Done 已完成或计数达标
func (o *Objective) Done() bool {
	return o.Completed || o.Current >= o.Target
}

// Rewards 奖励包
type Rewards struct {
	Experience int
	Credits    int
	Items      []string
}

// Quest 任务
type Quest struct {
	ID          string
	Title       string
	Description string
	Objectives  []Objective
	Status      QuestStatus
	Rewards     Rewards
}

// AllDone 全部目标满足
func (q *Quest) AllDone() bool {
	for i := range q.Objectives {
		if !q.Objectives[i].Done() {
			return false
		}
	}
	return true
}

func (q *Quest) objective(id string) *Objective {
	for i := range q.Objectives {
		if q.Objectives[i].ID == id {
			return &q.Objectives[i]
		}
	}
	return nil
}

// promote ACTIVE -> COMPLETED 当且仅当所有目标满足
func (q *Quest) promote() bool {
	if q.Status == StatusActive && q.AllDone() {
		q.Status = StatusCompleted
		return true
	}
	return false
}
