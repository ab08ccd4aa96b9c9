package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcmexdev/storefront/internal/billing"
	"github.com/jcmexdev/storefront/internal/catalog"
	"github.com/jcmexdev/storefront/internal/checkout"
	"github.com/jcmexdev/storefront/internal/checkout/journal"
	"github.com/jcmexdev/storefront/internal/inventory"
	"github.com/jcmexdev/storefront/internal/ordering"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/requestmeta"
)

// idempotencyTTL bounds how long a placed-order response can be replayed.
const idempotencyTTL = 24 * time.Hour

// Handler drives the single-customer retail session over HTTP: it collects
// product input for the factory, runs checkouts, and serves the billing
// statement. The core model never sees HTTP types.
type Handler struct {
	customer *ordering.Customer
	inv      *inventory.Service
	gateway  checkout.Gateway
	journal  journal.Repository // nil-safe: checkout transitions not recorded if nil
	cache    cache.Cache        // nil-safe: idempotent replay disabled if nil

	mu           sync.Mutex
	products     map[int]catalog.Product
	reservations map[int]string // order id -> reservation key, for release on cancel
}

func NewHandler(
	customer *ordering.Customer,
	inv *inventory.Service,
	gateway checkout.Gateway,
	repo journal.Repository,
	c cache.Cache,
) *Handler {
	return &Handler{
		customer:     customer,
		inv:          inv,
		gateway:      gateway,
		journal:      repo,
		cache:        c,
		products:     make(map[int]catalog.Product),
		reservations: make(map[int]string),
	}
}

// CreateProduct hands the collected field values to the product factory.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_category", err.Error())
		return
	}
	variant, err := catalog.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_variant", err.Error())
		return
	}

	product, err := catalog.Create(category, variant, catalog.Fields{
		ID:         req.ID,
		Name:       req.Name,
		Price:      req.Price,
		Brand:      req.Brand,
		Processor:  req.Processor,
		RAM:        req.RAM,
		Storage:    req.Storage,
		Material:   req.Material,
		Color:      req.Color,
		ChairType:  req.ChairType,
		Capacity:   req.Capacity,
		Size:       req.Size,
		Fabric:     req.Fabric,
		DenimStyle: req.DenimStyle,
	})
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	h.mu.Lock()
	if _, exists := h.products[product.ID()]; exists {
		h.mu.Unlock()
		writeError(w, http.StatusConflict, "duplicate_product_id", "product id already in the session")
		return
	}
	h.products[product.ID()] = product
	h.mu.Unlock()

	slog.InfoContext(r.Context(), "product created",
		"request_id", requestmeta.RequestID(r.Context()),
		"product_id", product.ID(), "variant", product.Variant())

	writeJSON(w, http.StatusCreated, product.Describe())
}

// GetProduct serves the product's Describe record.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromURL(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, product.Describe())
}

// IncreaseStock adds units to a product's stock level.
func (h *Handler) IncreaseStock(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromURL(w, r)
	if !ok {
		return
	}

	var req IncreaseStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := product.IncreaseStock(req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, "negative_quantity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, product.Describe())
}

// PlaceOrder resolves the requested products and runs the checkout:
// reserve stock, then charge and commit. An X-Idempotency-Key header makes
// the call replay-safe when a cache is wired.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "items are required")
		return
	}

	idempKey := requestmeta.IdempotencyKey(r.Context())
	if replayed := h.replay(w, r, idempKey); replayed {
		return
	}

	lines := make([]ordering.Line, 0, len(req.Items))
	for _, item := range req.Items {
		h.mu.Lock()
		product, exists := h.products[item.ProductID]
		h.mu.Unlock()
		if !exists {
			writeError(w, http.StatusNotFound, "product_not_found",
				"product "+strconv.Itoa(item.ProductID)+" is not in the session")
			return
		}
		lines = append(lines, ordering.Line{Product: product, Quantity: item.Quantity})
	}

	checkoutID := uuid.NewString()
	reserve := checkout.NewReserveStockStep(h.inv, checkoutID, lines)
	place := checkout.NewPlaceOrderStep(h.customer, h.gateway, lines)

	orch := checkout.NewOrchestrator(checkoutID, []checkout.Step{reserve, place}, h.journal)
	if payload, err := json.Marshal(req); err == nil {
		orch.Payload = string(payload)
	}

	if err := orch.Start(r.Context()); err != nil {
		writeCheckoutError(w, err)
		return
	}

	order := place.Order()
	h.mu.Lock()
	h.reservations[order.ID()] = checkoutID
	h.mu.Unlock()

	slog.InfoContext(r.Context(), "order placed",
		"request_id", requestmeta.RequestID(r.Context()),
		"order_id", order.ID(), "total", order.Total())

	resp := mapOrderToResponse(order)
	h.remember(r, idempKey, resp)
	writeJSON(w, http.StatusCreated, resp)
}

// CancelOrder removes the order from the history, restores its reserved
// stock and refunds the charge.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return
	}

	order, err := h.customer.CancelOrder(orderID)
	if err != nil {
		writeError(w, http.StatusNotFound, "invalid_order_id", err.Error())
		return
	}

	h.mu.Lock()
	key, reserved := h.reservations[orderID]
	delete(h.reservations, orderID)
	h.mu.Unlock()

	if reserved {
		if err := h.inv.Release(key); err != nil {
			slog.ErrorContext(r.Context(), "stock release failed", "order_id", orderID, "error", err)
		}
	}
	if err := h.gateway.Refund(r.Context(), orderID); err != nil {
		slog.ErrorContext(r.Context(), "refund failed", "order_id", orderID, "error", err)
	}

	slog.InfoContext(r.Context(), "order cancelled",
		"request_id", requestmeta.RequestID(r.Context()), "order_id", orderID)

	writeJSON(w, http.StatusOK, CancelOrderResponse{
		OrderID:   orderID,
		Cancelled: true,
		Refunded:  order.Total(),
	})
}

// GetStatement serves the billing report for the session.
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, billing.BuildStatement(h.customer))
}

// replay serves the cached response for a previously seen idempotency key.
// It reports whether the request was answered.
func (h *Handler) replay(w http.ResponseWriter, r *http.Request, idempKey string) bool {
	if h.cache == nil || idempKey == "" {
		return false
	}
	cached, err := h.cache.Get(r.Context(), h.cache.GenerateKey("place_order", idempKey))
	if err != nil {
		slog.WarnContext(r.Context(), "idempotency lookup failed", "error", err)
		return false
	}
	if cached == "" {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cached))
	return true
}

// remember stores the response for future replays of the same key.
func (h *Handler) remember(r *http.Request, idempKey string, resp OrderResponse) {
	if h.cache == nil || idempKey == "" {
		return
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := h.cache.GenerateKey("place_order", idempKey)
	if err := h.cache.Set(r.Context(), key, string(b), idempotencyTTL); err != nil {
		slog.WarnContext(r.Context(), "idempotency store failed", "error", err)
	}
}

func (h *Handler) productFromURL(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return nil, false
	}

	h.mu.Lock()
	product, exists := h.products[id]
	h.mu.Unlock()
	if !exists {
		writeError(w, http.StatusNotFound, "product_not_found",
			"product "+strconv.Itoa(id)+" is not in the session")
		return nil, false
	}
	return product, true
}

func mapOrderToResponse(order *ordering.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:   order.ID(),
		Paid:      order.Paid(),
		Total:     order.Total(),
		CreatedAt: order.CreatedAt().Format(time.RFC3339),
	}
	for _, l := range order.Lines() {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: l.Product.ID(),
			Name:      l.Product.Name(),
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price(),
			Subtotal:  l.Subtotal(),
		})
	}
	return resp
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var creation *catalog.CreationError
	switch {
	case errors.Is(err, catalog.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid_category", err.Error())
	case errors.Is(err, catalog.ErrInvalidVariant):
		writeError(w, http.StatusBadRequest, "invalid_variant", err.Error())
	case errors.As(err, &creation):
		writeError(w, http.StatusUnprocessableEntity, "product_creation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	var declined *ordering.PaymentDeclinedError
	switch {
	case errors.As(err, &declined):
		writeError(w, http.StatusPaymentRequired, "payment_declined", err.Error())
	case errors.Is(err, catalog.ErrInsufficientStock):
		writeError(w, http.StatusConflict, "insufficient_stock", err.Error())
	case errors.Is(err, catalog.ErrNegativeQuantity):
		writeError(w, http.StatusBadRequest, "negative_quantity", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "checkout_failed", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
