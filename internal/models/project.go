package models

// Project belongs to a team and has a responsible owner. Both references are
// validated in the service layer before insert.
type Project struct {
	BaseModel

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	TeamID  uint `gorm:"not null;index" json:"teamId"`
	OwnerID uint `gorm:"not null;index" json:"ownerId"`

	Team  *Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Owner *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}
