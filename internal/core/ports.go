package core

import (
	"context"

	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetEmployees(ctx context.Context) ([]repository.Employee, error)
	GetTasks(ctx context.Context) ([]repository.Task, error)
	GetTasksByAssignee(ctx context.Context, employeeID string) ([]repository.Task, error)
	CreateTask(ctx context.Context, task repository.Task) (repository.Task, error)
	UpdateTask(ctx context.Context, id string, fields map[string]any) (repository.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CountTasks(ctx context.Context, status string) (int64, error)
	ReplaceBoard(ctx context.Context, employees []repository.Employee, tasks []repository.Task) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
