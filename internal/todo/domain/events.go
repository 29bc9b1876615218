package domain

import (
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

const (
	TodoItemCreatedEventName   = "TodoItemCreatedEvent"
	TodoItemCompletedEventName = "TodoItemCompletedEvent"
	TodoItemDeletedEventName   = "TodoItemDeletedEvent"
)

// EventNames lista todos os eventos de domínio do item, na ordem em que costumam ocorrer.
var EventNames = []string{
	TodoItemCreatedEventName,
	TodoItemCompletedEventName,
	TodoItemDeletedEventName,
}

// todoItemEvent carrega uma cópia do item no momento da publicação; não é alterado depois.
type todoItemEvent struct {
	name string
	item TodoItem
}

func (e todoItemEvent) EventName() string {
	return e.name
}

func (e todoItemEvent) Payload() TodoItem {
	return e.item
}

func NewTodoItemCreatedEvent(item TodoItem) pkgDomain.Event[TodoItem] {
	return todoItemEvent{name: TodoItemCreatedEventName, item: item}
}

func NewTodoItemCompletedEvent(item TodoItem) pkgDomain.Event[TodoItem] {
	return todoItemEvent{name: TodoItemCompletedEventName, item: item}
}

func NewTodoItemDeletedEvent(item TodoItem) pkgDomain.Event[TodoItem] {
	return todoItemEvent{name: TodoItemDeletedEventName, item: item}
}
