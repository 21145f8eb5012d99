package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	projectrepo "algolens/internal/gateway/repository/project"
	"algolens/internal/gateway/repository/stepblob"
	visualizationrepo "algolens/internal/gateway/repository/visualization"
	"algolens/internal/gateway/service/workspace"

	"go.uber.org/zap"
)

type VisualizationHandler struct {
	svc    *workspace.Service
	logger *zap.Logger
}

func NewVisualizationHandler(svc *workspace.Service, logger *zap.Logger) *VisualizationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisualizationHandler{svc: svc, logger: logger}
}

// HandleCreate executes the named project through the pipeline and stores
// the resulting trace. The response carries both the stored row and the
// full trace so the UI can start playback without a second round trip.
func (h *VisualizationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProjectID string `json:"projectId"`
		Input     string `json:"input"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.ProjectID) == "" {
		writeError(w, http.StatusBadRequest, "projectId is required", "projectId")
		return
	}

	v, result, err := h.svc.CreateVisualization(r.Context(), in.ProjectID, in.Input)
	if err != nil {
		if errors.Is(err, projectrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error("create visualization failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create visualization failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"visualization": v,
		"result":        result,
	})
}

func (h *VisualizationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, err := h.svc.GetVisualization(r.Context(), id)
	if err != nil {
		if errors.Is(err, visualizationrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "visualization not found")
			return
		}
		h.logger.Error("get visualization failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get visualization failed")
		return
	}

	steps, err := h.svc.Steps(r.Context(), id)
	if err != nil && !errors.Is(err, stepblob.ErrNotFound) {
		h.logger.Error("load steps failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "load steps failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"visualization": v,
		"steps":         steps,
	})
}

func (h *VisualizationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	visualizations, err := h.svc.ListVisualizations(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		h.logger.Error("list visualizations failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list visualizations failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visualizations": visualizations})
}

func (h *VisualizationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteVisualization(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, visualizationrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "visualization not found")
			return
		}
		h.logger.Error("delete visualization failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete visualization failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFrame renders one stored step as a standalone SVG document.
func (h *VisualizationHandler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stepIndex, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "step must be an integer", "step")
		return
	}

	frame, _, err := h.svc.Frame(r.Context(), id, stepIndex)
	if err != nil {
		switch {
		case errors.Is(err, visualizationrepo.ErrNotFound), errors.Is(err, stepblob.ErrNotFound):
			writeError(w, http.StatusNotFound, "visualization not found")
		case errors.Is(err, workspace.ErrStepOutOfRange):
			writeError(w, http.StatusNotFound, "step index out of range")
		default:
			h.logger.Error("render frame failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "render frame failed")
		}
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if frame.Unsupported {
		w.Header().Set("X-Render-Unsupported", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(frame.SVG))
}

// HandleCursor applies one playback navigation operation server-side and
// returns where it landed. Boundary hits are no-ops, not errors.
func (h *VisualizationHandler) HandleCursor(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Op    string `json:"op"`
		Index int    `json:"index"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	state, err := h.svc.MoveCursor(r.Context(), r.PathValue("id"), in.Op, in.Index)
	if err != nil {
		switch {
		case errors.Is(err, visualizationrepo.ErrNotFound), errors.Is(err, stepblob.ErrNotFound):
			writeError(w, http.StatusNotFound, "visualization not found")
		case errors.Is(err, workspace.ErrUnknownCursorOp):
			writeError(w, http.StatusBadRequest, "unknown cursor operation", "op")
		default:
			h.logger.Error("cursor move failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "cursor move failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, state)
}
