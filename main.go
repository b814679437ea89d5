package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/bootstrap"
	"portfolio-api/config"
	"portfolio-api/db"
	"portfolio-api/events"
	"portfolio-api/handlers"
	"portfolio-api/service"
)

func main() {
	logger := log.New(os.Stdout, "[portfolio-api] ", log.LstdFlags)
	storeLogger := log.New(os.Stdout, "[portfolio-store] ", log.LstdFlags)
	eventsLogger := log.New(os.Stdout, "[portfolio-events] ", log.LstdFlags)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Error loading configuration: %v", err)
	}

	// The Mongo client is created on the first request that needs it.
	store := db.New(cfg.DBURI, cfg.DBTimeout, storeLogger)
	todoRepo := db.NewTodoRepo(store, storeLogger)
	catalogRepo := db.NewCatalogRepo(store, storeLogger)

	var publisher events.Publisher = events.Noop{}
	if cfg.NATSURL != "" {
		nc, err := events.NewNATSPublisher(cfg.NATSURL, eventsLogger)
		if err != nil {
			logger.Printf("Change events disabled: %v", err)
		} else {
			publisher = nc
		}
	}

	if cfg.EnableBootstrap {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		bootstrap.InsertInitialTodos(ctx, todoRepo, storeLogger)
		bootstrap.InsertInitialProjects(ctx, catalogRepo, storeLogger)
		cancel()
	}

	todosHandler := handlers.NewTodosHandler(logger, service.NewTodoService(todoRepo, publisher, eventsLogger))
	catalogHandler := handlers.NewCatalogHandler(logger, service.NewCatalogService(catalogRepo, publisher, eventsLogger))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlers.NewRouter(logger, os.Stdout, todosHandler, catalogHandler),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Printf("Server is running on http://localhost%s\n", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Could not listen on %s: %v\n", cfg.Addr(), err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sig := <-sigCh
	logger.Printf("Received signal %s, shutting down...\n", sig)

	timeoutContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(timeoutContext); err != nil {
		logger.Printf("Could not gracefully shutdown the server: %v\n", err)
	}
	publisher.Close()
	if err := store.Disconnect(timeoutContext); err != nil {
		logger.Printf("Error disconnecting from MongoDB: %v\n", err)
	}
	logger.Println("Server stopped gracefully")
}
