package models

import "time"

// BaseModel provides shared fields for all persistent entities. Identifiers
// are auto-incremented numeric keys; deletion is physical (no soft delete).
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
