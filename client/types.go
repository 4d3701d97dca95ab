package client

import "time"

// User mirrors the server's user payload. Password hashes never appear on
// the wire.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember links a user to a team with a role.
type TeamMember struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userId"`
	TeamID uint   `json:"teamId"`
	Role   string `json:"role"`
	User   *User  `json:"user,omitempty"`
}

// Team is a named group of members owning projects.
type Team struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members,omitempty"`
	Projects    []Project    `json:"projects,omitempty"`
}

// Project belongs to a team and owns tasks.
type Project struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TeamID      uint   `json:"teamId"`
	OwnerID     uint   `json:"ownerId"`
	Team        *Team  `json:"team,omitempty"`
	Owner       *User  `json:"owner,omitempty"`
	Tasks       []Task `json:"tasks,omitempty"`
}

// Task statuses and priorities as the server accepts them.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a unit of work on a project board.
type Task struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ProjectID   uint       `json:"projectId"`
	AssignedID  *uint      `json:"assignedId,omitempty"`
}

// Comment is attached to a task by an author.
type Comment struct {
	ID       uint   `json:"id"`
	Content  string `json:"content"`
	TaskID   uint   `json:"taskId"`
	AuthorID uint   `json:"authorId"`
	Author   *User  `json:"author,omitempty"`
}

// Board groups a project's tasks into the three status columns.
type Board struct {
	Todo  []Task `json:"todo"`
	Doing []Task `json:"doing"`
	Done  []Task `json:"done"`
}

// AuthResult bundles the authenticated user with its signed token.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// CreateTeamRequest creates a team; MemberIDs become member-role memberships.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberIDs   []uint `json:"memberIds,omitempty"`
}

// UpdateTeamRequest applies a partial team update. A non-empty MemberIDs
// list replaces the whole membership set.
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MemberIDs   []uint  `json:"memberIds,omitempty"`
}

// CreateProjectRequest creates a project under a team.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TeamID      uint   `json:"teamId"`
	OwnerID     uint   `json:"ownerId"`
}

// UpdateProjectRequest applies a partial project update.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTaskRequest creates a task; status and priority fall back to the
// server defaults (todo, medium) when omitted.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ProjectID   uint       `json:"projectId"`
	AssignedID  *uint      `json:"assignedId,omitempty"`
}

// UpdateTaskRequest applies a partial task update.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedID  *uint      `json:"assignedId,omitempty"`
}

// UpdateUserRequest applies a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CreateCommentRequest attaches a comment to a task.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	TaskID   uint   `json:"taskId"`
	AuthorID uint   `json:"authorId"`
}
