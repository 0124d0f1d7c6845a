package core

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"taskboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound  error = errors.New("task not found")
	ErrInvalidStatus error = errors.New("invalid task status")
)

var TaskStatuses = []string{
	repository.StatusPending,
	repository.StatusInProgress,
	repository.StatusCompleted,
}

// ListTasks returns every task with its assignee expanded.
func (b *Board) ListTasks(ctx context.Context) ([]TaskRecord, error) {
	tasks, err := b.repo.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}

	return repoTasksToRecords(tasks), nil
}

func (b *Board) ListEmployees(ctx context.Context) ([]EmployeeRecord, error) {
	employees, err := b.repo.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	records := make([]EmployeeRecord, len(employees))
	for i, emp := range employees {
		records[i] = repoEmployeeToRecord(emp)
	}
	return records, nil
}

// ListEmployeeTasks returns the tasks assigned to employeeID without
// expanding the assignee. Unknown employees simply have no tasks.
func (b *Board) ListEmployeeTasks(ctx context.Context, employeeID string) ([]TaskRecord, error) {
	tasks, err := b.repo.GetTasksByAssignee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get tasks by assignee: %w", err)
	}

	return repoTasksToRecords(tasks), nil
}

func (b *Board) CreateTask(ctx context.Context, draft TaskDraft) (TaskRecord, error) {
	status := draft.Status
	if status == "" {
		status = repository.StatusPending
	}
	if !slices.Contains(TaskStatuses, status) {
		return TaskRecord{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	task, err := b.repo.CreateTask(ctx, repository.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      status,
		AssignedTo:  normalizeAssignee(draft.AssignedTo),
	})
	if err != nil {
		return TaskRecord{}, fmt.Errorf("create task: %w", err)
	}

	b.logs.Infow("task created", "taskId", task.ID, "status", task.Status)
	return repoTaskToRecord(task), nil
}

// UpdateTask applies a partial update. Concurrent updates of the same task
// are last-write-wins.
func (b *Board) UpdateTask(ctx context.Context, id string, patch TaskPatch) (TaskRecord, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		if !slices.Contains(TaskStatuses, *patch.Status) {
			return TaskRecord{}, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
		}
		fields["status"] = *patch.Status
	}
	if patch.AssignedToSet {
		fields["assigned_to"] = normalizeAssignee(patch.AssignedTo)
	}

	task, err := b.repo.UpdateTask(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("update task: %w", err)
	}

	return repoTaskToRecord(task), nil
}

func (b *Board) DeleteTask(ctx context.Context, id string) error {
	if err := b.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	b.logs.Infow("task deleted", "taskId", id)
	return nil
}

// normalizeAssignee stores an empty reference as NULL.
func normalizeAssignee(assignee *string) *string {
	if assignee == nil || *assignee == "" {
		return nil
	}
	return assignee
}

func repoTasksToRecords(tasks []repository.Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = repoTaskToRecord(task)
	}
	return records
}

func repoTaskToRecord(task repository.Task) TaskRecord {
	record := TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Assignee != nil {
		assignee := repoEmployeeToRecord(*task.Assignee)
		record.Assignee = &assignee
	}
	return record
}

func repoEmployeeToRecord(emp repository.Employee) EmployeeRecord {
	return EmployeeRecord{
		ID:        emp.ID,
		Name:      emp.Name,
		Role:      emp.Role,
		Email:     emp.Email,
		Avatar:    emp.Avatar,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
}
