package application

import (
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

const (
	GetTodoItemQueryName  = "GetTodoItem"
	GetTodoItemsQueryName = "GetTodoItems"
)

type GetTodoItemData struct {
	ID string
}

type getTodoItemQuery struct {
	data GetTodoItemData
}

func (q getTodoItemQuery) QueryName() string {
	return GetTodoItemQueryName
}

func (q getTodoItemQuery) Payload() GetTodoItemData {
	return q.data
}

func NewGetTodoItemQuery(data GetTodoItemData) pkgDomain.Query[GetTodoItemData] {
	return getTodoItemQuery{data: data}
}

// GetTodoItemsData filtra a listagem; Done nil lista todos.
type GetTodoItemsData struct {
	Done *bool
}

type getTodoItemsQuery struct {
	data GetTodoItemsData
}

func (q getTodoItemsQuery) QueryName() string {
	return GetTodoItemsQueryName
}

func (q getTodoItemsQuery) Payload() GetTodoItemsData {
	return q.data
}

func NewGetTodoItemsQuery(data GetTodoItemsData) pkgDomain.Query[GetTodoItemsData] {
	return getTodoItemsQuery{data: data}
}
