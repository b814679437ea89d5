package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/models"
	"portfolio-api/service"
)

type CatalogHandler struct {
	logger  *log.Logger
	service *service.CatalogService
}

func NewCatalogHandler(l *log.Logger, s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{l, s}
}

func (h *CatalogHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetProjects(r.Context())
	if err != nil {
		writeError(w, r, h.logger, "fetching projects", err, msgProjectNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, projects)
}

func (h *CatalogHandler) AddProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, "adding project", err, msgProjectNotFound)
		return
	}

	project, err := h.service.CreateProject(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, "adding project", err, msgProjectNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, project)
}

func (h *CatalogHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteProject(r.Context(), id); err != nil {
		writeError(w, r, h.logger, "deleting project", err, msgProjectNotFound)
		return
	}
	writeMessage(w, h.logger, http.StatusOK, "Project deleted")
}
