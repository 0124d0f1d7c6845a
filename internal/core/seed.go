package core

import (
	"context"
	"fmt"

	"taskboard/internal/repository"

	"github.com/google/uuid"
)

// Seed replaces every employee and task with the fixed sample board. The
// reset and the inserts happen in one transaction, so calling it repeatedly
// always leaves two employees and three tasks behind.
func (b *Board) Seed(ctx context.Context) error {
	alice := repository.Employee{
		ID:     uuid.NewString(),
		Name:   "Alice Johnson",
		Role:   "Frontend Dev",
		Email:  "alice@prou.com",
		Avatar: ptr("https://i.pravatar.cc/150?u=a"),
	}
	bob := repository.Employee{
		ID:     uuid.NewString(),
		Name:   "Bob Smith",
		Role:   "Backend Dev",
		Email:  "bob@prou.com",
		Avatar: ptr("https://i.pravatar.cc/150?u=b"),
	}

	tasks := []repository.Task{
		{ID: uuid.NewString(), Title: "Build Login", Status: repository.StatusCompleted, AssignedTo: ptr(alice.ID)},
		{ID: uuid.NewString(), Title: "API Setup", Status: repository.StatusInProgress, AssignedTo: ptr(bob.ID)},
		{ID: uuid.NewString(), Title: "Design DB", Status: repository.StatusPending, AssignedTo: ptr(bob.ID)},
	}

	if err := b.repo.ReplaceBoard(ctx, []repository.Employee{alice, bob}, tasks); err != nil {
		return fmt.Errorf("seed board: %w", err)
	}

	b.logs.Infow("board seeded", "employees", 2, "tasks", len(tasks))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
