// Package testutil provides in-memory stand-ins for the Mongo repositories and
// the event publisher.
package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/models"
)

// FakeTodoRepo keeps todos in insertion order. When Err is set every call
// fails with it.
type FakeTodoRepo struct {
	mu    sync.Mutex
	todos []models.Todo
	Err   error
}

func (r *FakeTodoRepo) FindAll(context.Context) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.Todo, len(r.todos))
	copy(out, r.todos)
	return out, nil
}

func (r *FakeTodoRepo) Insert(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	todo.ID = primitive.NewObjectID()
	r.todos = append(r.todos, *todo)
	return nil
}

func (r *FakeTodoRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, t := range r.todos {
		if t.ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *FakeTodoRepo) Toggle(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos[i].Completed = !r.todos[i].Completed
			return r.todos[i].Completed, nil
		}
	}
	return false, models.ErrNotFound
}

func (r *FakeTodoRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.todos)
}

type FakeCatalogRepo struct {
	mu       sync.Mutex
	projects []models.Project
	Err      error
}

func (r *FakeCatalogRepo) FindAll(context.Context) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *FakeCatalogRepo) Insert(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	project.ID = primitive.NewObjectID()
	r.projects = append(r.projects, *project)
	return nil
}

func (r *FakeCatalogRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *FakeCatalogRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.projects)
}
