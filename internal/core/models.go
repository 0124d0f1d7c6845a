package core

import "time"

type Credentials struct {
	Username string
	Password string
}

type UserSummary struct {
	ID       string
	Username string
}

type Session struct {
	Token string
	User  UserSummary
}

// Identity is what a verified bearer token says about its holder.
type Identity struct {
	UserID   string
	Username string
}

type EmployeeRecord struct {
	ID        string
	Name      string
	Role      string
	Email     string
	Avatar    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskRecord struct {
	ID          string
	Title       string
	Description string
	Status      string
	AssignedTo  *string
	// Assignee is only loaded by ListTasks. It stays nil when the task is
	// unassigned or the employee no longer exists.
	Assignee  *EmployeeRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskDraft struct {
	Title       string
	Description string
	Status      string
	AssignedTo  *string
}

// TaskPatch holds a partial update. Nil fields are left untouched; when
// AssignedToSet is true AssignedTo replaces the assignee, nil clearing it.
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *string
	AssignedTo    *string
	AssignedToSet bool
}

type DashboardStats struct {
	Total      int64
	Completed  int64
	Pending    int64
	InProgress int64
	Rate       int
}
