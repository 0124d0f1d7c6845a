package repository

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/db"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrUserExists    error = errors.New("user already exists")
	ErrTaskNotFound  error = errors.New("task not found")
	ErrNothingToSave error = errors.New("nothing to save")
)

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Employee{}, &Task{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BoardRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BoardRepository) GetEmployees(ctx context.Context) ([]Employee, error) {
	employees := []Employee{}
	if err := r.db.GetAll(ctx, &employees); err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	return employees, nil
}

// GetTasks returns every task with its assignee loaded.
func (r *BoardRepository) GetTasks(ctx context.Context) ([]Task, error) {
	tasks := []Task{}
	if err := r.db.GetAll(ctx, &tasks, "Assignee"); err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}

	return tasks, nil
}

func (r *BoardRepository) GetTasksByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	tasks := []Task{}
	if err := r.db.GetAllBy(ctx, "assigned_to", []string{employeeID}, &tasks); err != nil {
		return nil, fmt.Errorf("get tasks by assignee: %w", err)
	}

	return tasks, nil
}

func (r *BoardRepository) GetTask(ctx context.Context, id string) (Task, error) {
	var task Task

	err := r.db.GetOneBy(ctx, "id", id, &task)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("get task by id: %w", err)
	}

	return task, nil
}

func (r *BoardRepository) CreateTask(ctx context.Context, task Task) (Task, error) {
	if err := r.db.Create(ctx, &task); err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies fields to the task and returns the stored result.
func (r *BoardRepository) UpdateTask(ctx context.Context, id string, fields map[string]any) (Task, error) {
	if len(fields) == 0 {
		return r.GetTask(ctx, id)
	}

	affected, err := r.db.UpdateBy(ctx, &Task{}, "id", id, fields)
	if err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return Task{}, ErrTaskNotFound
	}

	return r.GetTask(ctx, id)
}

func (r *BoardRepository) DeleteTask(ctx context.Context, id string) error {
	affected, err := r.db.DeleteBy(ctx, &Task{}, "id", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CountTasks counts tasks in the given status. An empty status counts all tasks.
func (r *BoardRepository) CountTasks(ctx context.Context, status string) (int64, error) {
	var (
		count int64
		err   error
	)
	if status == "" {
		count, err = r.db.CountBy(ctx, &Task{}, "", nil)
	} else {
		count, err = r.db.CountBy(ctx, &Task{}, "status", status)
	}
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}

	return count, nil
}

// ReplaceBoard wipes all tasks and employees and inserts the given ones in a
// single transaction.
func (r *BoardRepository) ReplaceBoard(ctx context.Context, employees []Employee, tasks []Task) error {
	if len(employees) == 0 && len(tasks) == 0 {
		return ErrNothingToSave
	}

	err := r.db.WithTransaction(ctx, func(ctx context.Context) error {
		if err := r.db.DeleteAll(ctx, &Task{}); err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if err := r.db.DeleteAll(ctx, &Employee{}); err != nil {
			return fmt.Errorf("clear employees: %w", err)
		}
		if err := r.db.Create(ctx, &employees); err != nil {
			return fmt.Errorf("insert employees: %w", err)
		}
		if err := r.db.Create(ctx, &tasks); err != nil {
			return fmt.Errorf("insert tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace board: %w", err)
	}

	return nil
}
