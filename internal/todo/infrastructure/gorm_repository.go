package infrastructure

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	"github.com/mateusmacedo/go-todo/pkg/application"
)

type gormTodoItemRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormTodoItemRepository(dsn string, logger application.AppLogger) (domain.TodoItemRepository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return NewGormTodoItemRepositoryFromDB(db, logger)
}

// NewGormTodoItemRepositoryFromDB migra o schema e usa uma conexão já aberta.
func NewGormTodoItemRepositoryFromDB(db *gorm.DB, logger application.AppLogger) (domain.TodoItemRepository, error) {
	if err := db.AutoMigrate(&domain.TodoItem{}); err != nil {
		return nil, err
	}

	return &gormTodoItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTodoItemRepository) Save(ctx context.Context, item domain.TodoItem) error {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTodoItemExists
		}
		application.LogError(ctx, r.logger, "failed to save todoItem", err, map[string]interface{}{
			"todo_item_id": item.ID,
		})
		return err
	}

	application.LogDebug(ctx, r.logger, "todoItem saved", map[string]interface{}{
		"todo_item_id": item.ID,
	})
	return nil
}

func (r *gormTodoItemRepository) FindByID(ctx context.Context, id string) (domain.TodoItem, error) {
	var item domain.TodoItem

	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TodoItem{}, domain.ErrTodoItemNotFound
		}
		application.LogError(ctx, r.logger, "failed to find todoItem", err, map[string]interface{}{
			"todo_item_id": id,
		})
		return domain.TodoItem{}, err
	}

	return item, nil
}

func (r *gormTodoItemRepository) FindAll(ctx context.Context, filter domain.TodoItemFilter) ([]domain.TodoItem, error) {
	var items []domain.TodoItem

	query := r.db.WithContext(ctx).Order("created_at, id")
	if filter.Done != nil {
		query = query.Where("done = ?", *filter.Done)
	}

	if err := query.Find(&items).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to list todoItems", err, nil)
		return nil, err
	}

	return items, nil
}

func (r *gormTodoItemRepository) Update(ctx context.Context, item domain.TodoItem) error {
	// Select("*") grava também os campos zerados, como done=false.
	result := r.db.WithContext(ctx).Model(&domain.TodoItem{}).Where("id = ?", item.ID).Select("*").Updates(item)
	if result.Error != nil {
		application.LogError(ctx, r.logger, "failed to update todoItem", result.Error, map[string]interface{}{
			"todo_item_id": item.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTodoItemNotFound
	}

	application.LogDebug(ctx, r.logger, "todoItem updated", map[string]interface{}{
		"todo_item_id": item.ID,
	})
	return nil
}

func (r *gormTodoItemRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.TodoItem{}, "id = ?", id)
	if result.Error != nil {
		application.LogError(ctx, r.logger, "failed to delete todoItem", result.Error, map[string]interface{}{
			"todo_item_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTodoItemNotFound
	}

	return nil
}
