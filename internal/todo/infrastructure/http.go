package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-todo/internal/todo/application"
	"github.com/mateusmacedo/go-todo/internal/todo/domain"
	pkgApp "github.com/mateusmacedo/go-todo/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-todo/pkg/domain"
)

type TodoItemHTTPHandler struct {
	buses          application.Buses
	idGenerator    pkgDomain.IDGenerator[string]
	requestTimeout time.Duration
	logger         pkgApp.AppLogger
}

func NewTodoItemHTTPHandler(
	buses application.Buses,
	idGenerator pkgDomain.IDGenerator[string],
	requestTimeout time.Duration,
	logger pkgApp.AppLogger,
) *TodoItemHTTPHandler {
	return &TodoItemHTTPHandler{
		buses:          buses,
		idGenerator:    idGenerator,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

func (h *TodoItemHTTPHandler) HandleCreateTodoItem(w http.ResponseWriter, r *http.Request) {
	var data application.CreateTodoItemData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.ID = h.idGenerator()

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.buses.Create.Dispatch(ctx, application.NewCreateTodoItemCommand(data)); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	item, err := h.buses.GetOne.Dispatch(ctx, application.NewGetTodoItemQuery(application.GetTodoItemData{ID: data.ID}))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/todoitems/"+item.ID)
	writeJSON(w, http.StatusCreated, item)
}

func (h *TodoItemHTTPHandler) HandleGetTodoItems(w http.ResponseWriter, r *http.Request) {
	var data application.GetTodoItemsData
	if raw := r.URL.Query().Get("done"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(w, "Invalid done filter", http.StatusBadRequest)
			return
		}
		data.Done = &done
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	items, err := h.buses.GetMany.Dispatch(ctx, application.NewGetTodoItemsQuery(data))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *TodoItemHTTPHandler) HandleGetTodoItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	query := application.NewGetTodoItemQuery(application.GetTodoItemData{ID: chi.URLParam(r, "todoItemID")})
	item, err := h.buses.GetOne.Dispatch(ctx, query)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *TodoItemHTTPHandler) HandleUpdateTodoItem(w http.ResponseWriter, r *http.Request) {
	var data application.UpdateTodoItemData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.ID = chi.URLParam(r, "todoItemID")

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.buses.Update.Dispatch(ctx, application.NewUpdateTodoItemCommand(data)); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoItemHTTPHandler) HandleDeleteTodoItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	command := application.NewDeleteTodoItemCommand(application.DeleteTodoItemData{ID: chi.URLParam(r, "todoItemID")})
	if err := h.buses.Delete.Dispatch(ctx, command); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoItemHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/todoitems", func(r chi.Router) {
		r.Post("/", h.HandleCreateTodoItem)
		r.Get("/", h.HandleGetTodoItems)
		r.Get("/{todoItemID}", h.HandleGetTodoItem)
		r.Put("/{todoItemID}", h.HandleUpdateTodoItem)
		r.Delete("/{todoItemID}", h.HandleDeleteTodoItem)
	})
}

func (h *TodoItemHTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTodoItem):
		handleError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrTodoItemNotFound):
		handleError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrTodoItemExists):
		handleError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, context.DeadlineExceeded):
		handleError(w, "request timed out", http.StatusGatewayTimeout)
	default:
		pkgApp.LogError(ctx, h.logger, "request failed", err, nil)
		handleError(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}
