package bootstrap

import (
	"context"
	"fmt"
	"log"

	"portfolio-api/models"
)

type todoSeeder interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, todos []models.Todo) error
}

type projectSeeder interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, projects []models.Project) error
}

// InsertInitialTodos seeds an empty todo collection with sample items.
func InsertInitialTodos(ctx context.Context, repo todoSeeder, logger *log.Logger) {
	count, err := repo.Count(ctx)
	if err != nil {
		logger.Println("Error counting todos:", err)
		return
	}
	if count > 0 {
		return
	}

	var todos []models.Todo
	for i := 1; i <= 5; i++ {
		todos = append(todos, models.Todo{
			Text:      fmt.Sprintf("Sample todo %d", i),
			Completed: i%2 == 0,
		})
	}

	if err := repo.InsertMany(ctx, todos); err != nil {
		logger.Println("Error inserting initial todos:", err)
	} else {
		logger.Println("Inserted initial todos")
	}
}

func InsertInitialProjects(ctx context.Context, repo projectSeeder, logger *log.Logger) {
	count, err := repo.Count(ctx)
	if err != nil {
		logger.Println("Error counting projects:", err)
		return
	}
	if count > 0 {
		return
	}

	var projects []models.Project
	for i := 1; i <= 3; i++ {
		projects = append(projects, models.Project{
			Name:       fmt.Sprintf("Project %d", i),
			GithubLink: fmt.Sprintf("https://github.com/example/project-%d", i),
			Owner:      fmt.Sprintf("owner%d", i),
		})
	}

	if err := repo.InsertMany(ctx, projects); err != nil {
		logger.Println("Error inserting initial projects:", err)
	} else {
		logger.Println("Inserted initial projects")
	}
}
