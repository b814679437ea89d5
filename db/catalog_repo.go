package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/models"
)

type CatalogRepo struct {
	store  *Store
	logger *log.Logger
}

func NewCatalogRepo(store *Store, logger *log.Logger) *CatalogRepo {
	return &CatalogRepo{store: store, logger: logger}
}

func (r *CatalogRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	cols, err := r.store.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return cols.Projects, nil
}

func (r *CatalogRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	projects, err := findAll[models.Project](ctx, coll)
	if err != nil {
		r.logger.Println(err)
		return nil, err
	}
	r.logger.Printf("Returning %d projects", len(projects))
	return projects, nil
}

func (r *CatalogRepo) Insert(ctx context.Context, project *models.Project) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	id, err := insertOne(ctx, coll, project)
	if err != nil {
		r.logger.Println(err)
		return fmt.Errorf("insert project: %w", err)
	}
	project.ID = id
	return nil
}

func (r *CatalogRepo) InsertMany(ctx context.Context, projects []models.Project) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(projects))
	for _, p := range projects {
		docs = append(docs, p)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert projects: %w", err)
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	return deleteByID(ctx, coll, id)
}

func (r *CatalogRepo) Count(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	ctx, cancel := r.store.opContext(ctx)
	defer cancel()

	return coll.CountDocuments(ctx, bson.D{})
}
