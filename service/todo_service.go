package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/events"
	"portfolio-api/models"
)

type TodoRepository interface {
	FindAll(ctx context.Context) ([]models.Todo, error)
	Insert(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Toggle(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type TodoService struct {
	repo   TodoRepository
	events events.Publisher
	logger *log.Logger
}

func NewTodoService(repo TodoRepository, pub events.Publisher, logger *log.Logger) *TodoService {
	return &TodoService{repo: repo, events: pub, logger: logger}
}

// GetTodos returns every todo in storage order. An empty collection yields an
// empty, non-nil slice.
func (s *TodoService) GetTodos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// CreateTodo inserts a new, not yet completed todo.
func (s *TodoService) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	todo := &models.Todo{Text: req.Text, Completed: false}
	if err := s.repo.Insert(ctx, todo); err != nil {
		return nil, err
	}

	s.publish(events.TodoCreated, events.TodoEvent{ID: todo.ID.Hex(), Text: todo.Text, At: time.Now()})
	return todo, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	s.publish(events.TodoDeleted, events.TodoEvent{ID: id, At: time.Now()})
	return nil
}

// ToggleTodo flips the completed flag and returns the new value.
func (s *TodoService) ToggleTodo(ctx context.Context, id string) (bool, error) {
	objectID, err := parseID(id)
	if err != nil {
		return false, err
	}
	completed, err := s.repo.Toggle(ctx, objectID)
	if err != nil {
		return false, err
	}

	s.publish(events.TodoToggled, events.TodoEvent{ID: id, Completed: completed, At: time.Now()})
	return completed, nil
}

func (s *TodoService) publish(subject string, payload interface{}) {
	if err := s.events.Publish(subject, payload); err != nil {
		s.logger.Println("Error publishing event:", err)
	}
}
