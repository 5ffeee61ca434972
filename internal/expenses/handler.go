package expenses

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lagranja/vetstore/internal/platform/httpx"
	"github.com/lagranja/vetstore/internal/shared"
)

// Handler exposes the expense tracking surface.
type Handler struct {
	logger             *slog.Logger
	service            *Service
	weekStartsOnMonday bool
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, weekStartsOnMonday bool) *Handler {
	return &Handler{logger: logger, service: service, weekStartsOnMonday: weekStartsOnMonday}
}

// MountRoutes registers expense routes; the caller wraps them with the role
// guard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/categories", h.categories)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var rng *shared.Range
	if p := r.URL.Query().Get("period"); p != "" {
		resolved := shared.ResolveRange(shared.Period(p), h.weekStartsOnMonday, time.Now())
		rng = &resolved
	}

	list, err := h.service.List(r.Context(), rng)
	if err != nil {
		h.logger.Error("list expenses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, SuggestedCategories)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	expense, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, expense)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	expense, err := h.service.Create(r.Context(), in, sess.UserID())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("expense recorded", slog.String("id", expense.ID), slog.Float64("amount", expense.Amount))
	httpx.JSON(w, http.StatusCreated, expense)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	expense, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, expense)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
