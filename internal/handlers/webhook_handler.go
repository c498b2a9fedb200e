package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mealflow/production-api/internal/repository"
	"github.com/mealflow/production-api/internal/webhook"
)

// eventIDHeader carries the platform's delivery ID, used to drop retried
// deliveries of the same event.
const eventIDHeader = "X-Event-Id"

// WebhookHandler receives order and customer events from the commerce
// platform and applies them to the stores the pipeline snapshots from.
type WebhookHandler struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	dedupe    *webhook.Deduper
	logger    *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(orders repository.OrderRepository, customers repository.CustomerRepository, dedupe *webhook.Deduper, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		orders:    orders,
		customers: customers,
		dedupe:    dedupe,
		logger:    logger,
	}
}

// OrderCreated handles POST /webhooks/order-created. OrderUpdated shares
// the same logic: both upsert the order record, and an update keeps the
// order's position in the pending queue.
func (h *WebhookHandler) OrderCreated(w http.ResponseWriter, r *http.Request) {
	h.applyOrder(w, r, "order-created")
}

// OrderUpdated handles POST /webhooks/order-updated.
func (h *WebhookHandler) OrderUpdated(w http.ResponseWriter, r *http.Request) {
	h.applyOrder(w, r, "order-updated")
}

func (h *WebhookHandler) applyOrder(w http.ResponseWriter, r *http.Request, topic string) {
	eventID := r.Header.Get(eventIDHeader)
	if h.dedupe.Seen(eventID) {
		h.logger.Info("duplicate webhook delivery skipped", "topic", topic, "event_id", eventID)
		WriteJSON(w, http.StatusOK, map[string]bool{"duplicate": true}, h.logger)
		return
	}

	var payload webhook.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("failed to decode order payload", "topic", topic, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := payload.Validate(); err != nil {
		h.logger.Warn("rejected malformed order payload", "topic", topic, "order_id", payload.ID, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.orders.Upsert(r.Context(), payload.ToOrder()); err != nil {
		h.logger.Error("failed to store order", "topic", topic, "order_id", payload.ID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("order stored", "topic", topic, "order_id", payload.ID, "items", len(payload.LineItems))
	WriteJSON(w, http.StatusOK, map[string]bool{"duplicate": false}, h.logger)
}

// CustomerCreated handles POST /webhooks/customer-created.
func (h *WebhookHandler) CustomerCreated(w http.ResponseWriter, r *http.Request) {
	eventID := r.Header.Get(eventIDHeader)
	if h.dedupe.Seen(eventID) {
		h.logger.Info("duplicate webhook delivery skipped", "topic", "customer-created", "event_id", eventID)
		WriteJSON(w, http.StatusOK, map[string]bool{"duplicate": true}, h.logger)
		return
	}

	var payload webhook.CustomerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("failed to decode customer payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := payload.Validate(); err != nil {
		h.logger.Warn("rejected malformed customer payload", "customer_id", payload.ID, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.customers.Upsert(r.Context(), payload.ToCustomer()); err != nil {
		h.logger.Error("failed to store customer", "customer_id", payload.ID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("customer stored", "customer_id", payload.ID)
	WriteJSON(w, http.StatusOK, map[string]bool{"duplicate": false}, h.logger)
}
