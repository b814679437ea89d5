package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-api/models"
)

type TodoRepo struct {
	store  *Store
	logger *log.Logger
}

func NewTodoRepo(store *Store, logger *log.Logger) *TodoRepo {
	return &TodoRepo{store: store, logger: logger}
}

func (r *TodoRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	cols, err := r.store.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return cols.Todos, nil
}

func (r *TodoRepo) FindAll(ctx context.Context) ([]models.Todo, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	todos, err := findAll[models.Todo](ctx, coll)
	if err != nil {
		r.logger.Println(err)
		return nil, err
	}
	r.logger.Printf("Returning %d todos", len(todos))
	return todos, nil
}

// Insert stores the todo and sets its ID to the one generated on insert.
func (r *TodoRepo) Insert(ctx context.Context, todo *models.Todo) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	id, err := insertOne(ctx, coll, todo)
	if err != nil {
		r.logger.Println(err)
		return fmt.Errorf("insert todo: %w", err)
	}
	todo.ID = id
	return nil
}

func (r *TodoRepo) InsertMany(ctx context.Context, todos []models.Todo) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(todos))
	for _, t := range todos {
		docs = append(docs, t)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert todos: %w", err)
	}
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	return deleteByID(ctx, coll, id)
}

// Toggle flips the completed flag in a single update and returns the new value.
func (r *TodoRepo) Toggle(ctx context.Context, id primitive.ObjectID) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	flip := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "completed", Value: bson.D{{Key: "$not", Value: "$completed"}}}}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo models.Todo
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, flip, opts).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, models.ErrNotFound
	} else if err != nil {
		r.logger.Println(err)
		return false, fmt.Errorf("toggle todo %s: %w", id.Hex(), err)
	}
	return todo.Completed, nil
}

func (r *TodoRepo) Count(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	return coll.CountDocuments(ctx, bson.D{})
}
