package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

// TodoItemEventBus é o barramento de eventos de domínio do item.
type TodoItemEventBus = pkgApp.EventBus[pkgDomain.Event[domain.TodoItem], domain.TodoItem]

type createTodoItemHandler struct {
	eventBus    TodoItemEventBus
	repository  domain.TodoItemRepository
	idGenerator pkgDomain.IDGenerator[string]
	now         func() time.Time
	logger      pkgApp.AppLogger
}

// Handle persiste o item e só então publica TodoItemCreatedEvent. Uma falha na
// publicação é devolvida ao chamador, mas o item já está salvo.
func (h *createTodoItemHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateTodoItemData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	if err := validatePayload(data); err != nil {
		return err
	}

	id := data.ID
	if id == "" {
		id = h.idGenerator()
	}

	now := h.now().UTC()
	item := domain.TodoItem{
		ID:        id,
		Title:     data.Title,
		Note:      data.Note,
		Priority:  data.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repository.Save(ctx, item); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao salvar item", err, map[string]interface{}{"todo_item_id": item.ID})
		return err
	}

	if err := h.eventBus.Publish(ctx, domain.NewTodoItemCreatedEvent(item)); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao publicar evento", err, map[string]interface{}{"todo_item_id": item.ID})
		return err
	}

	pkgApp.LogInfo(ctx, h.logger, "Item criado", map[string]interface{}{"todo_item_id": item.ID})
	return nil
}

func NewCreateTodoItemHandler(eventBus TodoItemEventBus, repo domain.TodoItemRepository, idGenerator pkgDomain.IDGenerator[string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateTodoItemData], CreateTodoItemData] {
	return &createTodoItemHandler{
		eventBus:    eventBus,
		repository:  repo,
		idGenerator: idGenerator,
		now:         time.Now,
		logger:      logger,
	}
}

type updateTodoItemHandler struct {
	// mu serializa a leitura e a gravação do item neste processo.
	mu         sync.Mutex
	eventBus   TodoItemEventBus
	repository domain.TodoItemRepository
	now        func() time.Time
	logger     pkgApp.AppLogger
}

// Handle publica TodoItemCompletedEvent apenas na transição de pendente para concluído.
func (h *updateTodoItemHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateTodoItemData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	if err := validatePayload(data); err != nil {
		return err
	}

	item, completed, err := h.apply(ctx, data)
	if err != nil {
		return err
	}

	if completed {
		if err := h.eventBus.Publish(ctx, domain.NewTodoItemCompletedEvent(item)); err != nil {
			pkgApp.LogError(ctx, h.logger, "Erro ao publicar evento", err, map[string]interface{}{"todo_item_id": item.ID})
			return err
		}
	}

	pkgApp.LogInfo(ctx, h.logger, "Item atualizado", map[string]interface{}{"todo_item_id": item.ID, "done": item.Done})
	return nil
}

func (h *updateTodoItemHandler) apply(ctx context.Context, data UpdateTodoItemData) (domain.TodoItem, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	item, err := h.repository.FindByID(ctx, data.ID)
	if err != nil {
		return domain.TodoItem{}, false, err
	}

	completed := !item.Done && data.Done

	item.Title = data.Title
	item.Note = data.Note
	item.Priority = data.Priority
	item.Done = data.Done
	item.UpdatedAt = h.now().UTC()

	if err := h.repository.Update(ctx, item); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao atualizar item", err, map[string]interface{}{"todo_item_id": item.ID})
		return domain.TodoItem{}, false, err
	}

	return item, completed, nil
}

func NewUpdateTodoItemHandler(eventBus TodoItemEventBus, repo domain.TodoItemRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdateTodoItemData], UpdateTodoItemData] {
	return &updateTodoItemHandler{
		eventBus:   eventBus,
		repository: repo,
		now:        time.Now,
		logger:     logger,
	}
}

type deleteTodoItemHandler struct {
	eventBus   TodoItemEventBus
	repository domain.TodoItemRepository
	logger     pkgApp.AppLogger
}

func (h *deleteTodoItemHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteTodoItemData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "Contexto cancelado", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	if err := validatePayload(data); err != nil {
		return err
	}

	item, err := h.repository.FindByID(ctx, data.ID)
	if err != nil {
		return err
	}

	if err := h.repository.Delete(ctx, item.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao remover item", err, map[string]interface{}{"todo_item_id": item.ID})
		return err
	}

	if err := h.eventBus.Publish(ctx, domain.NewTodoItemDeletedEvent(item)); err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao publicar evento", err, map[string]interface{}{"todo_item_id": item.ID})
		return err
	}

	pkgApp.LogInfo(ctx, h.logger, "Item removido", map[string]interface{}{"todo_item_id": item.ID})
	return nil
}

func NewDeleteTodoItemHandler(eventBus TodoItemEventBus, repo domain.TodoItemRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteTodoItemData], DeleteTodoItemData] {
	return &deleteTodoItemHandler{
		eventBus:   eventBus,
		repository: repo,
		logger:     logger,
	}
}

type getTodoItemHandler struct {
	repository domain.TodoItemRepository
	logger     pkgApp.AppLogger
}

func (h *getTodoItemHandler) Handle(ctx context.Context, query pkgDomain.Query[GetTodoItemData]) (domain.TodoItem, error) {
	if ctx.Err() != nil {
		return domain.TodoItem{}, ctx.Err()
	}

	item, err := h.repository.FindByID(ctx, query.Payload().ID)
	if err != nil {
		return domain.TodoItem{}, err
	}

	pkgApp.LogDebug(ctx, h.logger, "Item encontrado", map[string]interface{}{"todo_item_id": item.ID})
	return item, nil
}

func NewGetTodoItemHandler(repo domain.TodoItemRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[GetTodoItemData], GetTodoItemData, domain.TodoItem] {
	return &getTodoItemHandler{
		repository: repo,
		logger:     logger,
	}
}

type getTodoItemsHandler struct {
	repository domain.TodoItemRepository
	logger     pkgApp.AppLogger
}

func (h *getTodoItemsHandler) Handle(ctx context.Context, query pkgDomain.Query[GetTodoItemsData]) ([]domain.TodoItem, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	items, err := h.repository.FindAll(ctx, domain.TodoItemFilter{Done: query.Payload().Done})
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "Erro ao listar itens", err, nil)
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	pkgApp.LogDebug(ctx, h.logger, "Itens encontrados", map[string]interface{}{"count": len(items)})
	return items, nil
}

func NewGetTodoItemsHandler(repo domain.TodoItemRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[GetTodoItemsData], GetTodoItemsData, []domain.TodoItem] {
	return &getTodoItemsHandler{
		repository: repo,
		logger:     logger,
	}
}
