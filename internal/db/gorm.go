package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

type txKey struct{}

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dsn string, logLevel logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config(logLevel))
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// NewFromGorm wraps an already opened connection.
func NewFromGorm(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

// Config is shared by the production connection and tests. Weak references
// such as a task's assignee must not turn into foreign key constraints.
func Config(logLevel logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                                   logger.Default.LogMode(logLevel),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// ParseLogLevel maps silent, error, warn and info to gorm levels. Anything
// else is treated as warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// conn returns the transaction bound to ctx, if any, otherwise the pool.
func (f *GormDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return f.db.WithContext(ctx)
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// WithTransaction runs fn in a database transaction. Every GormDB call made
// with the context handed to fn joins that transaction.
func (f *GormDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (f *GormDB) Create(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}
	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.conn(ctx).Create(records).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.conn(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any, preload ...string) error {
	tx := f.conn(ctx)
	for _, assoc := range preload {
		tx = tx.Preload(assoc)
	}

	tx = tx.Where(fmt.Sprintf("%s IN ?", column), value).Order("created_at").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, entity any, preload ...string) error {
	tx := f.conn(ctx)
	for _, assoc := range preload {
		tx = tx.Preload(assoc)
	}

	if err := tx.Order("created_at").Find(entity).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// CountBy counts rows of model. An empty column counts the whole table.
func (f *GormDB) CountBy(ctx context.Context, model any, column string, value any) (int64, error) {
	tx := f.conn(ctx).Model(model)
	if column != "" {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}

func (f *GormDB) UpdateBy(ctx context.Context, model any, column string, value any, fields map[string]any) (int64, error) {
	tx := f.conn(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Updates(fields)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) DeleteBy(ctx context.Context, model any, column string, value any) (int64, error) {
	tx := f.conn(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *GormDB) DeleteAll(ctx context.Context, model any) error {
	err := f.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
	if err != nil {
		return fmt.Errorf("deleting all records: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
