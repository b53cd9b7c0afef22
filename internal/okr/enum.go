package okr

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var AllStatuses = []Status{
	StatusDraft,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var AllPriorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}

type AssignmentKind string

const (
	AssignmentKindUser AssignmentKind = "user"
	AssignmentKindTeam AssignmentKind = "team"
)

func (k AssignmentKind) IsValid() bool {
	return k == AssignmentKindUser || k == AssignmentKindTeam
}
