package handler

import (
	"errors"
	"net/http"
	"strings"

	"algolens/internal/gateway/service/pipeline"

	"go.uber.org/zap"
)

type PipelineHandler struct {
	svc    *pipeline.Service
	logger *zap.Logger
}

func NewPipelineHandler(svc *pipeline.Service, logger *zap.Logger) *PipelineHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineHandler{svc: svc, logger: logger}
}

func requirePipelineFields(w http.ResponseWriter, code, language string) bool {
	var missing []string
	if strings.TrimSpace(code) == "" {
		missing = append(missing, "code")
	}
	if strings.TrimSpace(language) == "" {
		missing = append(missing, "language")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "code and language are required", missing...)
		return false
	}
	return true
}

// HandleDetect classifies the submitted source without executing it.
func (h *PipelineHandler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code     string `json:"code"`
		Language string `json:"language"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if !requirePipelineFields(w, in.Code, in.Language) {
		return
	}

	d, err := h.svc.Detect(r.Context(), in.Language, in.Code)
	if err != nil {
		if errors.Is(err, pipeline.ErrCodeRequired) {
			writeError(w, http.StatusBadRequest, "code is required", "code")
			return
		}
		h.logger.Error("detect failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "detection failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"algorithmType": d.Category,
		"confidence":    d.Confidence,
		"details":       d.Details,
		"matches":       d.Matches,
	})
}

// HandleExecute runs the full pipeline: classify, then fabricate a trace
// for the detected category.
func (h *PipelineHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code     string `json:"code"`
		Language string `json:"language"`
		Input    string `json:"input"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if !requirePipelineFields(w, in.Code, in.Language) {
		return
	}

	result, err := h.svc.Execute(r.Context(), in.Language, in.Code, in.Input)
	if err != nil {
		if errors.Is(err, pipeline.ErrCodeRequired) {
			writeError(w, http.StatusBadRequest, "code is required", "code")
			return
		}
		h.logger.Error("execute failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "execution failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
