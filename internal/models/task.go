package models

import "time"

// Board statuses. Transitions are unconstrained: any status may move to any
// other, including back to itself.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a card on the board. Status defaults to todo and priority to
// medium when omitted at creation.
type Task struct {
	BaseModel

	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"not null;default:todo;index" json:"status"`
	Priority    string     `gorm:"not null;default:medium" json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`

	ProjectID  uint  `gorm:"not null;index" json:"projectId"`
	AssignedID *uint `json:"assignedId,omitempty"`

	Project  *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assigned *User     `gorm:"foreignKey:AssignedID" json:"assigned,omitempty"`
	Comments []Comment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// ValidStatus reports whether the supplied status is one of the three board
// columns.
func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether the supplied priority is a known literal.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
