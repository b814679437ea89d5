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

func newTodoService() (*service.TodoService, *testutil.FakeTodoRepo, *testutil.RecordingPublisher) {
	repo := &testutil.FakeTodoRepo{}
	pub := &testutil.RecordingPublisher{}
	return service.NewTodoService(repo, pub, testutil.DiscardLogger()), repo, pub
}

func TestGetTodosEmpty(t *testing.T) {
	svc, _, _ := newTodoService()

	todos, err := svc.GetTodos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestCreateTodo(t *testing.T) {
	svc, repo, pub := newTodoService()
	ctx := context.Background()

	first, err := svc.CreateTodo(ctx, models.CreateTodoRequest{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", first.Text)
	assert.False(t, first.Completed)
	assert.False(t, first.ID.IsZero())

	second, err := svc.CreateTodo(ctx, models.CreateTodoRequest{Text: "walk dog"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	assert.Equal(t, 2, repo.Len())
	assert.Equal(t, []string{events.TodoCreated, events.TodoCreated}, pub.Subjects())
}

func TestCreateTodoRequiresText(t *testing.T) {
	svc, repo, pub := newTodoService()

	_, err := svc.CreateTodo(context.Background(), models.CreateTodoRequest{})
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "Todo text is required", err.Error())
	assert.Zero(t, repo.Len())
	assert.Empty(t, pub.Subjects())
}

func TestToggleTodoRoundTrip(t *testing.T) {
	svc, _, _ := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, models.CreateTodoRequest{Text: "x"})
	require.NoError(t, err)

	completed, err := svc.ToggleTodo(ctx, todo.ID.Hex())
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = svc.ToggleTodo(ctx, todo.ID.Hex())
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestToggleTodoNotFound(t *testing.T) {
	svc, _, pub := newTodoService()
	ctx := context.Background()

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-id", ""} {
		_, err := svc.ToggleTodo(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound, "id %q", id)
	}
	assert.Empty(t, pub.Subjects())
}

func TestDeleteTodo(t *testing.T) {
	svc, _, pub := newTodoService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, models.CreateTodoRequest{Text: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, todo.ID.Hex()))
	todos, err := svc.GetTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, todo.ID.Hex()), models.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteTodo(ctx, "zzz"), models.ErrNotFound)
	assert.Equal(t, []string{events.TodoCreated, events.TodoDeleted}, pub.Subjects())
}

func TestTodoStoreFailure(t *testing.T) {
	svc, repo, _ := newTodoService()
	ctx := context.Background()
	repo.Err = &models.ConnectionError{Err: errors.New("dial tcp: refused")}

	_, err := svc.GetTodos(ctx)
	assert.ErrorIs(t, err, models.ErrConnection)

	_, err = svc.CreateTodo(ctx, models.CreateTodoRequest{Text: "x"})
	assert.ErrorIs(t, err, models.ErrConnection)

	_, err = svc.ToggleTodo(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrConnection)
}

func TestPublishFailureDoesNotFailCreate(t *testing.T) {
	repo := &testutil.FakeTodoRepo{}
	pub := &testutil.RecordingPublisher{Err: errors.New("nats: connection closed")}
	svc := service.NewTodoService(repo, pub, testutil.DiscardLogger())

	_, err := svc.CreateTodo(context.Background(), models.CreateTodoRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())
}
