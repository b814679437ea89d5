package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/models"
	"portfolio-api/service"
)

type TodosHandler struct {
	logger  *log.Logger
	service *service.TodoService
}

func NewTodosHandler(l *log.Logger, s *service.TodoService) *TodosHandler {
	return &TodosHandler{l, s}
}

func (h *TodosHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.GetTodos(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "fetching todos", err, msgTodoNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, todos)
}

func (h *TodosHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, "adding todo", err, msgTodoNotFound)
		return
	}

	todo, err := h.service.CreateTodo(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, "adding todo", err, msgTodoNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, todo)
}

func (h *TodosHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		writeError(w, r, h.logger, "deleting todo", err, msgTodoNotFound)
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Todo deleted")
}

func (h *TodosHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	completed, err := h.service.ToggleTodo(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, "toggling todo status", err, msgTodoNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, models.ToggleResponse{Message: "Todo status toggled", Completed: completed})
}
