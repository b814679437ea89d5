package db

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"

	"portfolio-api/models"
)

const (
	TodoDatabase      = "todo_db"
	TodoCollection    = "todos"
	CatalogDatabase   = "catalog_db"
	CatalogCollection = "projects"
)

type Collections struct {
	Todos    *mongo.Collection
	Projects *mongo.Collection
}

// Store holds the single process-wide Mongo client. The client is created on
// first use and reused for the lifetime of the process.
type Store struct {
	uri     string
	timeout time.Duration
	logger  *log.Logger

	connecting singleflight.Group

	mu     sync.Mutex
	client *mongo.Client
	cols   *Collections
}

func New(uri string, timeout time.Duration, logger *log.Logger) *Store {
	return &Store{uri: uri, timeout: timeout, logger: logger}
}

// Collections connects on the first call and returns the cached handles
// afterwards. Concurrent first callers share one connection attempt, and each
// stops waiting when its own ctx is done. A failed attempt is not cached.
func (s *Store) Collections(ctx context.Context) (*Collections, error) {
	if cols := s.cached(); cols != nil {
		return cols, nil
	}

	ch := s.connecting.DoChan("connect", func() (interface{}, error) {
		return s.connect()
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Collections), nil
	case <-ctx.Done():
		return nil, &models.ConnectionError{Err: ctx.Err()}
	}
}

func (s *Store) cached() *Collections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols
}

// connect runs detached from any single request so that a caller giving up
// does not abort the attempt the others are waiting on.
func (s *Store) connect() (*Collections, error) {
	if cols := s.cached(); cols != nil {
		return cols, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.logger.Println("Connecting to MongoDB...")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		s.logger.Println("Error connecting to MongoDB:", err)
		return nil, &models.ConnectionError{Err: err}
	}
	// Connect does not dial, so ping to surface a bad URI or unreachable server.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		s.logger.Println("Error pinging MongoDB:", err)
		_ = client.Disconnect(context.Background())
		return nil, &models.ConnectionError{Err: err}
	}
	s.logger.Println("Connected to MongoDB")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
	s.cols = &Collections{
		Todos:    client.Database(TodoDatabase).Collection(TodoCollection),
		Projects: client.Database(CatalogDatabase).Collection(CatalogCollection),
	}
	return s.cols, nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.cols = nil
	return err
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}
