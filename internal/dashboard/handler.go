package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lagranja/vetstore/internal/platform/httpx"
	"github.com/lagranja/vetstore/internal/shared"
)

// Handler exposes the dashboard aggregate endpoint.
type Handler struct {
	logger             *slog.Logger
	service            *Service
	weekStartsOnMonday bool
	now                func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, weekStartsOnMonday bool) *Handler {
	return &Handler{
		logger:             logger,
		service:            service,
		weekStartsOnMonday: weekStartsOnMonday,
		now:                time.Now,
	}
}

// MountRoutes registers dashboard routes; the caller wraps them with the
// role guard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type summaryResponse struct {
	Summary
	TotalSalesFormatted    string `json:"total_sales_formatted"`
	TotalExpensesFormatted string `json:"total_expenses_formatted"`
	ProfitFormatted        string `json:"profit_formatted"`
	AvgTicketFormatted     string `json:"avg_ticket_formatted"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	period := shared.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = shared.PeriodMonth
	}
	rng := shared.ResolveRange(period, h.weekStartsOnMonday, h.now())

	summary, err := h.service.Summary(r.Context(), period, rng)
	if err != nil {
		h.logger.Error("dashboard summary", slog.Any("error", err), slog.String("period", string(period)))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, summaryResponse{
		Summary:                summary,
		TotalSalesFormatted:    shared.FormatCOP(summary.TotalSales),
		TotalExpensesFormatted: shared.FormatCOP(summary.TotalExpenses),
		ProfitFormatted:        shared.FormatCOP(summary.Profit),
		AvgTicketFormatted:     shared.FormatCOP(summary.AvgTicket),
	})
}
