package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-api/events"
	"portfolio-api/models"
	"portfolio-api/service"
	"portfolio-api/testutil"
)

func newCatalogService() (*service.CatalogService, *testutil.FakeCatalogRepo, *testutil.RecordingPublisher) {
	repo := &testutil.FakeCatalogRepo{}
	pub := &testutil.RecordingPublisher{}
	return service.NewCatalogService(repo, pub, testutil.DiscardLogger()), repo, pub
}

func TestCreateProjectEchoesFields(t *testing.T) {
	svc, _, pub := newCatalogService()

	req := models.CreateProjectRequest{
		Name:       "portfolio",
		GithubLink: "https://github.com/ana/portfolio",
		ReportLink: strPtr("https://example.com/report.pdf"),
		MediaLink:  strPtr("https://example.com/demo.mp4"),
		Owner:      "ana",
	}
	project, err := svc.CreateProject(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, project.ID.IsZero())
	assert.Equal(t, req.Name, project.Name)
	assert.Equal(t, req.GithubLink, project.GithubLink)
	assert.Equal(t, req.ReportLink, project.ReportLink)
	assert.Equal(t, req.MediaLink, project.MediaLink)
	assert.Equal(t, req.Owner, project.Owner)
	assert.Equal(t, []string{events.CatalogCreated}, pub.Subjects())
}

func TestCreateProjectRequiredFields(t *testing.T) {
	full := models.CreateProjectRequest{Name: "n", GithubLink: "g", Owner: "o"}

	tests := []struct {
		name   string
		modify func(r *models.CreateProjectRequest)
	}{
		{"missing name", func(r *models.CreateProjectRequest) { r.Name = "" }},
		{"missing githubLink", func(r *models.CreateProjectRequest) { r.GithubLink = "" }},
		{"missing owner", func(r *models.CreateProjectRequest) { r.Owner = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newCatalogService()
			req := full
			tt.modify(&req)

			_, err := svc.CreateProject(context.Background(), req)
			require.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, "Required fields missing", err.Error())
			assert.Zero(t, repo.Len())
		})
	}
}

func TestCreateProjectOptionalLinks(t *testing.T) {
	svc, _, _ := newCatalogService()

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{Name: "n", GithubLink: "g", Owner: "o"})
	require.NoError(t, err)
	assert.Nil(t, project.ReportLink)
	assert.Nil(t, project.MediaLink)
}

func TestCreateProjectKeepsEmptyLinks(t *testing.T) {
	svc, _, _ := newCatalogService()

	req := models.CreateProjectRequest{Name: "n", GithubLink: "g", ReportLink: strPtr(""), MediaLink: strPtr(""), Owner: "o"}
	project, err := svc.CreateProject(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, project.ReportLink)
	require.NotNil(t, project.MediaLink)
	assert.Equal(t, "", *project.ReportLink)
	assert.Equal(t, "", *project.MediaLink)
}

func strPtr(s string) *string { return &s }

func TestDeleteProject(t *testing.T) {
	svc, _, _ := newCatalogService()
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, models.CreateProjectRequest{Name: "n", GithubLink: "g", Owner: "o"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, project.ID.Hex()))
	projects, err := svc.GetProjects(ctx)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	assert.ErrorIs(t, svc.DeleteProject(ctx, project.ID.Hex()), models.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteProject(ctx, "bad"), models.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteProject(ctx, primitive.NewObjectID().Hex()), models.ErrNotFound)
}

func TestCatalogStoreFailure(t *testing.T) {
	svc, repo, _ := newCatalogService()
	repo.Err = errors.New("server selection timeout")

	_, err := svc.GetProjects(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
