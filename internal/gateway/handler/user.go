package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"algolens/internal/gateway/entity"
	userrepo "algolens/internal/gateway/repository/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	store  userrepo.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewUserHandler(store userrepo.Store, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{store: store, logger: logger, now: time.Now}
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required", "name")
		return
	}

	u, err := h.store.Create(r.Context(), entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: h.now(),
	})
	if err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create user failed")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get user failed")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list users failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	u, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "update user failed")
		return
	}
	if strings.TrimSpace(in.Name) != "" {
		u.Name = in.Name
	}
	if strings.TrimSpace(in.Email) != "" {
		u.Email = in.Email
	}

	u, err = h.store.Update(r.Context(), u)
	if err != nil {
		h.logger.Error("update user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "update user failed")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("delete user failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete user failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
