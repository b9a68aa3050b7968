package model

import "time"

// TaskStatus values are stored as-is, there is no transition restriction:
// any status may move to any other.
type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	TaskID      string     `json:"taskId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AdminID     string     `json:"adminId"`    // creator, immutable
	ResolverID  string     `json:"resolverId"` // defaults to the creator
	ProjectID   *string    `json:"projectId"`  // nil until assigned
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
