package constants

type Role string

type TaskStatus string

type TaskPriority string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusCompleted  TaskStatus = "completed"
)

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

func ValidStatus(s TaskStatus) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

func ValidPriority(p TaskPriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
