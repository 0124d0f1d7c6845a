package repository

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Employee struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Avatar    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task.AssignedTo is a weak reference: no constraint is created and deleting
// an employee leaves the reference dangling.
type Task struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Status      string    `gorm:"type:varchar(32);not null;default:'Pending';index"`
	AssignedTo  *string   `gorm:"type:uuid;index"`
	Assignee    *Employee `gorm:"foreignKey:AssignedTo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
