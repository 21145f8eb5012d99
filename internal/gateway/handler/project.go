package handler

import (
	"errors"
	"net/http"
	"strings"

	"algolens/internal/gateway/entity"
	projectrepo "algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/service/workspace"

	"go.uber.org/zap"
)

type ProjectHandler struct {
	svc    *workspace.Service
	logger *zap.Logger
}

func NewProjectHandler(svc *workspace.Service, logger *zap.Logger) *ProjectHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectHandler{svc: svc, logger: logger}
}

func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID   string `json:"userId"`
		Name     string `json:"name"`
		Code     string `json:"code"`
		Language string `json:"language"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required", "name")
		return
	}

	p, err := h.svc.CreateProject(r.Context(), entity.Project{
		UserID:   in.UserID,
		Name:     in.Name,
		Code:     in.Code,
		Language: in.Language,
	})
	if err != nil {
		h.logger.Error("create project failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create project failed")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error("get project failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get project failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list projects failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Code     string `json:"code"`
		Language string `json:"language"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), entity.Project{
		ID:       r.PathValue("id"),
		Name:     in.Name,
		Code:     in.Code,
		Language: in.Language,
	})
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error("update project failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "update project failed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteProject(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error("delete project failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete project failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
