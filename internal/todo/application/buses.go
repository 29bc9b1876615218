package application

import (
	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

type (
	CreateTodoItemBus = pkgApp.CommandBus[pkgDomain.Command[CreateTodoItemData], CreateTodoItemData]
	UpdateTodoItemBus = pkgApp.CommandBus[pkgDomain.Command[UpdateTodoItemData], UpdateTodoItemData]
	DeleteTodoItemBus = pkgApp.CommandBus[pkgDomain.Command[DeleteTodoItemData], DeleteTodoItemData]
	GetTodoItemBus    = pkgApp.QueryBus[pkgDomain.Query[GetTodoItemData], GetTodoItemData, domain.TodoItem]
	GetTodoItemsBus   = pkgApp.QueryBus[pkgDomain.Query[GetTodoItemsData], GetTodoItemsData, []domain.TodoItem]
)

// Buses agrupa os barramentos de comandos e consultas do item.
type Buses struct {
	Create  CreateTodoItemBus
	Update  UpdateTodoItemBus
	Delete  DeleteTodoItemBus
	GetOne  GetTodoItemBus
	GetMany GetTodoItemsBus
}
