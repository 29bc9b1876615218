package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTodoItemNotFound = errors.New("todo item not found")
	ErrTodoItemExists   = errors.New("todo item already exists")
	ErrInvalidTodoItem  = errors.New("invalid todo item")
)

type PriorityLevel int

const (
	PriorityNone PriorityLevel = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func (p PriorityLevel) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "None"
	}
}

type TodoItem struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Title     string        `json:"title"`
	Note      string        `json:"note"`
	Priority  PriorityLevel `json:"priority"`
	Done      bool          `json:"done" gorm:"index"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TodoItemFilter restringe FindAll; Done nil traz todos os itens.
type TodoItemFilter struct {
	Done *bool
}

type TodoItemRepository interface {
	Save(ctx context.Context, item TodoItem) error
	FindByID(ctx context.Context, id string) (TodoItem, error)
	FindAll(ctx context.Context, filter TodoItemFilter) ([]TodoItem, error)
	Update(ctx context.Context, item TodoItem) error
	Delete(ctx context.Context, id string) error
}
