package application

import (
	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

const (
	CreateTodoItemCommandName = "CreateTodoItem"
	UpdateTodoItemCommandName = "UpdateTodoItem"
	DeleteTodoItemCommandName = "DeleteTodoItem"
)

// CreateTodoItemData contém os dados para criar um item. ID vazio faz o
// manipulador gerar um novo identificador.
type CreateTodoItemData struct {
	ID       string               `json:"id"`
	Title    string               `json:"title" validate:"required,max=200"`
	Note     string               `json:"note" validate:"max=2000"`
	Priority domain.PriorityLevel `json:"priority" validate:"gte=0,lte=3"`
}

type createTodoItemCommand struct {
	data CreateTodoItemData
}

func (c createTodoItemCommand) CommandName() string {
	return CreateTodoItemCommandName
}

func (c createTodoItemCommand) Payload() CreateTodoItemData {
	return c.data
}

func NewCreateTodoItemCommand(data CreateTodoItemData) pkgDomain.Command[CreateTodoItemData] {
	return createTodoItemCommand{data: data}
}

type UpdateTodoItemData struct {
	ID       string               `json:"id" validate:"required"`
	Title    string               `json:"title" validate:"required,max=200"`
	Note     string               `json:"note" validate:"max=2000"`
	Priority domain.PriorityLevel `json:"priority" validate:"gte=0,lte=3"`
	Done     bool                 `json:"done"`
}

type updateTodoItemCommand struct {
	data UpdateTodoItemData
}

func (c updateTodoItemCommand) CommandName() string {
	return UpdateTodoItemCommandName
}

func (c updateTodoItemCommand) Payload() UpdateTodoItemData {
	return c.data
}

func NewUpdateTodoItemCommand(data UpdateTodoItemData) pkgDomain.Command[UpdateTodoItemData] {
	return updateTodoItemCommand{data: data}
}

type DeleteTodoItemData struct {
	ID string `json:"id" validate:"required"`
}

type deleteTodoItemCommand struct {
	data DeleteTodoItemData
}

func (c deleteTodoItemCommand) CommandName() string {
	return DeleteTodoItemCommandName
}

func (c deleteTodoItemCommand) Payload() DeleteTodoItemData {
	return c.data
}

func NewDeleteTodoItemCommand(data DeleteTodoItemData) pkgDomain.Command[DeleteTodoItemData] {
	return deleteTodoItemCommand{data: data}
}
