package models

// User is a registered account. The password column stores a bcrypt hash and
// is never serialized.
type User struct {
	BaseModel

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Memberships []TeamMember `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
	Projects    []Project    `gorm:"foreignKey:OwnerID" json:"projects,omitempty"`
}
