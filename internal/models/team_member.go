package models

// Membership roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// TeamMember joins a User to a Team with a role. The (UserID, TeamID) pair is
// unique: a user cannot be added to the same team twice.
type TeamMember struct {
	BaseModel

	UserID uint   `gorm:"not null;uniqueIndex:idx_team_members_user_team" json:"userId"`
	TeamID uint   `gorm:"not null;uniqueIndex:idx_team_members_user_team" json:"teamId"`
	Role   string `gorm:"not null;default:member" json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// ValidRole reports whether the supplied role is one of the known literals.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleAdmin
}
