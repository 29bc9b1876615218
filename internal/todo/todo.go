package todo

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-todo/internal/todo/application"
	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	"github.com/mateusmacedo/go-todo/internal/todo/infrastructure"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-todo/pkg/infrastructure"
)

type SliceConfig struct {
	RequestTimeout       time.Duration
	SlowCommandThreshold time.Duration
}

type TodoSlice struct {
	buses       application.Buses
	httpHandler *infrastructure.TodoItemHTTPHandler
}

// NewTodoSlice monta os barramentos de comandos e consultas do item e registra
// os manipuladores de eventos de domínio no eventBus recebido.
func NewTodoSlice(
	eventBus application.TodoItemEventBus,
	repository domain.TodoItemRepository,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	cfg SliceConfig,
) *TodoSlice {
	slow := pkgInfra.WithSlowThreshold(cfg.SlowCommandThreshold)

	buses := application.Buses{
		Create:  pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateTodoItemData], application.CreateTodoItemData](logger, slow),
		Update:  pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.UpdateTodoItemData], application.UpdateTodoItemData](logger, slow),
		Delete:  pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.DeleteTodoItemData], application.DeleteTodoItemData](logger, slow),
		GetOne:  pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.GetTodoItemData], application.GetTodoItemData, domain.TodoItem](logger),
		GetMany: pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.GetTodoItemsData], application.GetTodoItemsData, []domain.TodoItem](logger),
	}

	buses.Create.RegisterHandler(application.CreateTodoItemCommandName, application.NewCreateTodoItemHandler(eventBus, repository, idGenerator, logger))
	buses.Update.RegisterHandler(application.UpdateTodoItemCommandName, application.NewUpdateTodoItemHandler(eventBus, repository, logger))
	buses.Delete.RegisterHandler(application.DeleteTodoItemCommandName, application.NewDeleteTodoItemHandler(eventBus, repository, logger))
	buses.GetOne.RegisterHandler(application.GetTodoItemQueryName, application.NewGetTodoItemHandler(repository, logger))
	buses.GetMany.RegisterHandler(application.GetTodoItemsQueryName, application.NewGetTodoItemsHandler(repository, logger))

	eventBus.RegisterHandler(domain.TodoItemCreatedEventName, application.NewTodoItemCreatedEventHandler(logger))
	eventBus.RegisterHandler(domain.TodoItemCompletedEventName, application.NewTodoItemCompletedEventHandler(logger))

	return &TodoSlice{
		buses:       buses,
		httpHandler: infrastructure.NewTodoItemHTTPHandler(buses, idGenerator, cfg.RequestTimeout, logger),
	}
}

func (s *TodoSlice) Buses() application.Buses {
	return s.buses
}

func (s *TodoSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
