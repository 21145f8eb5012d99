package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"algolens/internal/gateway/entity"
	algorithmrepo "algolens/internal/gateway/repository/algorithm"
	"algolens/internal/trace"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AlgorithmHandler struct {
	store  algorithmrepo.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewAlgorithmHandler(store algorithmrepo.Store, logger *zap.Logger) *AlgorithmHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlgorithmHandler{store: store, logger: logger, now: time.Now}
}

func (h *AlgorithmHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Language    string `json:"language"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required", "name")
		return
	}

	a, err := h.store.Create(r.Context(), entity.Algorithm{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    trace.Category(in.Category),
		Language:    in.Language,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   h.now(),
	})
	if err != nil {
		h.logger.Error("create algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create algorithm failed")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AlgorithmHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, algorithmrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "algorithm not found")
			return
		}
		h.logger.Error("get algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get algorithm failed")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleList filters by optional category and language query parameters.
func (h *AlgorithmHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	algorithms, err := h.store.List(r.Context(),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("language"))
	if err != nil {
		h.logger.Error("list algorithms failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list algorithms failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"algorithms": algorithms})
}

func (h *AlgorithmHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Language    string `json:"language"`
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	a, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, algorithmrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "algorithm not found")
			return
		}
		h.logger.Error("get algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "update algorithm failed")
		return
	}
	if a.Seeded {
		writeError(w, http.StatusBadRequest, "seeded algorithms are read-only")
		return
	}
	if strings.TrimSpace(in.Name) != "" {
		a.Name = in.Name
	}
	if strings.TrimSpace(in.Category) != "" {
		a.Category = trace.Category(in.Category)
	}
	if strings.TrimSpace(in.Language) != "" {
		a.Language = in.Language
	}
	if in.Code != "" {
		a.Code = in.Code
	}
	if in.Description != "" {
		a.Description = in.Description
	}

	a, err = h.store.Update(r.Context(), a)
	if err != nil {
		h.logger.Error("update algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "update algorithm failed")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AlgorithmHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, algorithmrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "algorithm not found")
			return
		}
		h.logger.Error("get algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete algorithm failed")
		return
	}
	if a.Seeded {
		writeError(w, http.StatusBadRequest, "seeded algorithms are read-only")
		return
	}

	if err := h.store.Delete(r.Context(), a.ID); err != nil {
		h.logger.Error("delete algorithm failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete algorithm failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
