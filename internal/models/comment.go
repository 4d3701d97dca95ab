package models

// Comment is a short note attached to a task.
type Comment struct {
	BaseModel

	Content  string `gorm:"not null" json:"content"`
	TaskID   uint   `gorm:"not null;index" json:"taskId"`
	AuthorID uint   `gorm:"not null" json:"authorId"`

	Task   *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
