package infrastructure

import (
	"context"
	"sync"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	"github.com/mateusmacedo/go-todo/pkg/application"
)

type InMemoryTodoItemRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.TodoItem
	logger application.AppLogger
}

func NewInMemoryTodoItemRepository(logger application.AppLogger) *InMemoryTodoItemRepository {
	return &InMemoryTodoItemRepository{
		data:   make(map[string]domain.TodoItem),
		logger: logger,
	}
}

func (r *InMemoryTodoItemRepository) Save(ctx context.Context, item domain.TodoItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[item.ID]; exists {
		application.LogInfo(ctx, r.logger, "todoItem already exists", map[string]interface{}{
			"todo_item_id": item.ID,
		})
		return domain.ErrTodoItemExists
	}

	r.data[item.ID] = item
	application.LogDebug(ctx, r.logger, "todoItem saved", map[string]interface{}{
		"todo_item_id": item.ID,
	})

	return nil
}

func (r *InMemoryTodoItemRepository) FindByID(ctx context.Context, id string) (domain.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.data[id]
	if !exists {
		return domain.TodoItem{}, domain.ErrTodoItemNotFound
	}

	return item, nil
}

func (r *InMemoryTodoItemRepository) FindAll(ctx context.Context, filter domain.TodoItemFilter) ([]domain.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.TodoItem, 0, len(r.data))
	for _, item := range r.data {
		if filter.Done != nil && item.Done != *filter.Done {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *InMemoryTodoItemRepository) Update(ctx context.Context, item domain.TodoItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[item.ID]; !exists {
		return domain.ErrTodoItemNotFound
	}

	r.data[item.ID] = item
	application.LogDebug(ctx, r.logger, "todoItem updated", map[string]interface{}{
		"todo_item_id": item.ID,
	})

	return nil
}

func (r *InMemoryTodoItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return domain.ErrTodoItemNotFound
	}

	delete(r.data, id)
	application.LogDebug(ctx, r.logger, "todoItem deleted", map[string]interface{}{
		"todo_item_id": id,
	})

	return nil
}
