package handler

import (
	"context"
	"net/http"

	"taskboard/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, creds core.Credentials) error
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
}

//counterfeiter:generate -o fake -fake-name BoardService . BoardService
type BoardService interface {
	Dashboard(ctx context.Context) (core.DashboardStats, error)
	ListTasks(ctx context.Context) ([]core.TaskRecord, error)
	ListEmployees(ctx context.Context) ([]core.EmployeeRecord, error)
	ListEmployeeTasks(ctx context.Context, employeeID string) ([]core.TaskRecord, error)
	CreateTask(ctx context.Context, draft core.TaskDraft) (core.TaskRecord, error)
	UpdateTask(ctx context.Context, id string, patch core.TaskPatch) (core.TaskRecord, error)
	DeleteTask(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
