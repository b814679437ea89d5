package handlers

import (
	"io"
	"log"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires every route behind permissive CORS, an access log and panic
// recovery.
func NewRouter(logger *log.Logger, accessLog io.Writer, todos *TodosHandler, catalog *CatalogHandler) http.Handler {
	router := mux.NewRouter()
	router.Use(MiddlewareRequestID)

	router.HandleFunc("/health", Health(logger)).Methods(http.MethodGet)

	todo := router.PathPrefix("/todo").Subrouter()
	todo.HandleFunc("/get-todos", todos.GetTodos).Methods(http.MethodGet)
	todo.HandleFunc("/add-todo", todos.AddTodo).Methods(http.MethodPost)
	todo.HandleFunc("/delete-todo/{id}", todos.DeleteTodo).Methods(http.MethodDelete)
	todo.HandleFunc("/toggle-todo/{id}", todos.ToggleTodo).Methods(http.MethodPost)

	projects := router.PathPrefix("/catalog").Subrouter()
	projects.HandleFunc("/get-projects", catalog.GetProjects).Methods(http.MethodGet)
	projects.HandleFunc("/add-project", catalog.AddProject).Methods(http.MethodPost)
	projects.HandleFunc("/delete-project/{id}", catalog.DeleteProject).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, logger, http.StatusNotFound, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, logger, http.StatusMethodNotAllowed, "Method not allowed")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	recovery := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(logger),
		gorillaHandlers.PrintRecoveryStack(true),
	)
	return gorillaHandlers.CombinedLoggingHandler(accessLog, recovery(c.Handler(router)))
}

func Health(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	}
}
