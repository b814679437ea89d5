package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/events"
	"portfolio-api/models"
)

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	Insert(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CatalogService struct {
	repo   CatalogRepository
	events events.Publisher
	logger *log.Logger
}

func NewCatalogService(repo CatalogRepository, pub events.Publisher, logger *log.Logger) *CatalogService {
	return &CatalogService{repo: repo, events: pub, logger: logger}
}

func (s *CatalogService) GetProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *CatalogService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project := req.Project()
	if err := s.repo.Insert(ctx, &project); err != nil {
		return nil, err
	}

	s.publish(events.CatalogCreated, events.ProjectEvent{
		ID:    project.ID.Hex(),
		Name:  project.Name,
		Owner: project.Owner,
		At:    time.Now(),
	})
	return &project, nil
}

func (s *CatalogService) DeleteProject(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	s.publish(events.CatalogDeleted, events.ProjectEvent{ID: id, At: time.Now()})
	return nil
}

func (s *CatalogService) publish(subject string, payload interface{}) {
	if err := s.events.Publish(subject, payload); err != nil {
		s.logger.Println("Error publishing event:", err)
	}
}
