package core

import (
	"context"
	"fmt"
	"math"

	"taskboard/internal/repository"
)

// Dashboard counts tasks per status on every call.
func (b *Board) Dashboard(ctx context.Context) (DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)

	counts := []struct {
		status string
		dest   *int64
	}{
		{"", &stats.Total},
		{repository.StatusCompleted, &stats.Completed},
		{repository.StatusPending, &stats.Pending},
		{repository.StatusInProgress, &stats.InProgress},
	}
	for _, c := range counts {
		*c.dest, err = b.repo.CountTasks(ctx, c.status)
		if err != nil {
			return DashboardStats{}, fmt.Errorf("count tasks %q: %w", c.status, err)
		}
	}

	stats.Rate = CompletionRate(stats.Completed, stats.Total)
	return stats, nil
}

// CompletionRate is completed/total as a rounded percentage, 0 for an empty board.
func CompletionRate(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
