package pos

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lagranja/vetstore/internal/platform/httpx"
	"github.com/lagranja/vetstore/internal/sales"
	"github.com/lagranja/vetstore/internal/shared"
)

const cartSessionKey = "pos_cart"

// Handler exposes the point-of-sale surface. The cart rides in the operator's
// session so it survives page reloads, but it is never shared across
// sessions.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers POS routes; the caller wraps them with the role
// guard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/cart", h.showCart)
	r.Put("/cart", h.updateCart)
	r.Delete("/cart", h.clearCart)
	r.Post("/cart/items", h.addItem)
	r.Post("/cart/free-items", h.addFreeItem)
	r.Put("/cart/items/{index}", h.updateQuantity)
	r.Delete("/cart/items/{index}", h.removeLine)
	r.Post("/checkout", h.checkout)
}

type cartView struct {
	*Cart
	SubtotalAmount float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}

func viewOf(c *Cart) cartView {
	return cartView{
		Cart:           c,
		SubtotalAmount: c.Subtotal(),
		DiscountAmount: c.DiscountAmount(),
		TotalAmount:    c.Total(),
		TotalFormatted: shared.FormatCOP(c.Total()),
	}
}

func (h *Handler) showCart(w http.ResponseWriter, r *http.Request) {
	cart := h.loadCart(r)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

type updateCartRequest struct {
	DiscountPercent *float64 `json:"discount_percent"`
	PaymentMethod   *string  `json:"payment_method"`
	CustomerName    *string  `json:"customer_name"`
	Notes           *string  `json:"notes"`
}

func (h *Handler) updateCart(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	cart := h.loadCart(r)
	if req.DiscountPercent != nil {
		cart.SetDiscountPercent(*req.DiscountPercent)
	}
	if req.PaymentMethod != nil {
		method := sales.PaymentMethod(*req.PaymentMethod)
		if !method.Valid() {
			httpx.RespondError(w, shared.ErrValidation)
			return
		}
		cart.PaymentMethod = method
	}
	if req.CustomerName != nil {
		cart.CustomerName = *req.CustomerName
	}
	if req.Notes != nil {
		cart.Notes = *req.Notes
	}
	h.storeCart(r, cart)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		sess.DeleteValue(cartSessionKey)
	}
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	cart := h.loadCart(r)
	if err := h.service.AddCatalogItem(r.Context(), cart, req.ProductID, req.Quantity); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.storeCart(r, cart)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

type addFreeItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (h *Handler) addFreeItem(w http.ResponseWriter, r *http.Request) {
	var req addFreeItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	cart := h.loadCart(r)
	if err := cart.AddFreeformItem(req.Name, req.Price, req.Quantity); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.storeCart(r, cart)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid line index")
		return
	}
	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	cart := h.loadCart(r)
	if err := cart.UpdateQuantity(index, req.Quantity); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.storeCart(r, cart)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid line index")
		return
	}

	cart := h.loadCart(r)
	if err := cart.RemoveLine(index); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.storeCart(r, cart)
	httpx.JSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	cart := h.loadCart(r)

	sale, err := h.service.Submit(r.Context(), cart, sess.UserID())
	if err != nil {
		// Failed submits keep the cart intact so the operator can retry.
		httpx.RespondError(w, err)
		return
	}

	h.storeCart(r, cart)
	h.logger.Info("pos checkout",
		slog.String("sale_id", sale.ID),
		slog.Float64("total", sale.Total))
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *Handler) loadCart(r *http.Request) *Cart {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		return NewCart()
	}
	raw := sess.Value(cartSessionKey)
	if raw == "" {
		return NewCart()
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		h.logger.Warn("discarding corrupt session cart", slog.Any("error", err))
		return NewCart()
	}
	if cart.PaymentMethod == "" {
		cart.PaymentMethod = sales.PaymentCash
	}
	return &cart
}

func (h *Handler) storeCart(r *http.Request, cart *Cart) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		return
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		h.logger.Error("marshal cart", slog.Any("error", err))
		return
	}
	sess.SetValue(cartSessionKey, string(raw))
}
