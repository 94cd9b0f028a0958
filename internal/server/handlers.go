package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/checkout/internal/port"
	"github.com/nikolayk812/checkout/internal/repository"
	"github.com/nikolayk812/checkout/internal/service"
	"github.com/rs/zerolog"
)

type Handler struct {
	items    port.ItemRepository
	orders   port.OrderRepository
	checkout service.CheckoutService

	views           *views
	stripePublicKey string
	logger          zerolog.Logger
}

func NewHandler(items port.ItemRepository, orders port.OrderRepository,
	checkout service.CheckoutService, stripePublicKey string, logger zerolog.Logger) (*Handler, error) {
	v, err := newViews()
	if err != nil {
		return nil, err
	}

	return &Handler{
		items:           items,
		orders:          orders,
		checkout:        checkout,
		views:           v,
		stripePublicKey: stripePublicKey,
		logger:          logger,
	}, nil
}

// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var itemViews []itemView
	for _, item := range items {
		itemViews = append(itemViews, toItemView(item))
	}

	h.renderPage(w, r, "home.html", map[string]any{"Items": itemViews})
}

// GET /item/{id}
func (h *Handler) ItemDetail(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	item, err := h.items.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.renderPage(w, r, "item.html", map[string]any{
		"Item":            toItemView(item),
		"StripePublicKey": h.stripePublicKey,
	})
}

// GET /buy/{id}
func (h *Handler) BuyItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}

	sessionID, err := h.checkout.CheckoutItem(r.Context(), itemID)
	if err != nil {
		h.writeCheckoutError(w, r, err, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": sessionID})
}

// GET /order/{id}
func (h *Handler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.renderPage(w, r, "order.html", map[string]any{
		"Order":           toOrderView(order),
		"StripePublicKey": h.stripePublicKey,
	})
}

// GET /buy/order/{id}
func (h *Handler) BuyOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
		return
	}

	sessionID, err := h.checkout.CheckoutOrder(r.Context(), orderID)
	if err != nil {
		h.writeCheckoutError(w, r, err, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": sessionID})
}

// GET /success/
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "success.html", nil)
}

// GET /cancel/
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "cancel.html", nil)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.views.render(w, name, data); err != nil {
		h.logger.Error().
			Str("request_id", requestIDFromContext(r.Context())).
			Err(err).
			Msg("render failed")
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().
		Str("request_id", requestIDFromContext(r.Context())).
		Err(err).
		Msg("request failed")

	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// writeCheckoutError keeps the JSON contract of the buy endpoints: 404 with
// a fixed message for a missing entity, 500 with the raw error otherwise.
func (h *Handler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": notFoundMsg})
		return
	}

	h.logger.Error().
		Str("request_id", requestIDFromContext(r.Context())).
		Err(err).
		Msg("checkout failed")

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
