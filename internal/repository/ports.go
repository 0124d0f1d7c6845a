package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Create(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any, preload ...string) error
	GetAll(ctx context.Context, entity any, preload ...string) error
	CountBy(ctx context.Context, model any, column string, value any) (int64, error)
	UpdateBy(ctx context.Context, model any, column string, value any, fields map[string]any) (int64, error)
	DeleteBy(ctx context.Context, model any, column string, value any) (int64, error)
	DeleteAll(ctx context.Context, model any) error
}
