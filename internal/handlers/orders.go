package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ucpmaroc-backend/internal/middleware"
	"ucpmaroc-backend/internal/models"
)

// OrderStore is the subset of the database client the order handlers need.
type OrderStore interface {
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(orderID uuid.UUID) (*models.Order, error)
	ListOrdersByActor(actorID uuid.UUID) ([]models.Order, error)
}

type OrdersHandler struct {
	store OrderStore
}

func NewOrdersHandler(store OrderStore) *OrdersHandler {
	return &OrdersHandler{
		store: store,
	}
}

// CreateOrder godoc
// @Summary     Create a new order
// @Description Creates a new client order for a talent. Called by the public checkout page; client_id is always NULL on insert and is linked later.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order fields"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.ActorID == "" || req.ClientEmail == "" || req.ClientName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "actor_id, client_name and client_email are required",
		})
		return
	}

	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid actor id"})
		return
	}

	orderID := uuid.New()
	if req.OrderID != "" {
		orderID, err = uuid.Parse(req.OrderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
			return
		}
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	order := &models.Order{
		ID:            orderID,
		ActorID:       actorID,
		ClientName:    req.ClientName,
		ClientEmail:   strings.ToLower(req.ClientEmail),
		WordCount:     req.WordCount,
		Usage:         req.Usage,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
	}
	if req.Script != "" {
		order.Script = sql.NullString{String: req.Script, Valid: true}
	}
	if req.StripePaymentIntentID != "" {
		order.StripePaymentIntentID = sql.NullString{String: req.StripePaymentIntentID, Valid: true}
	}

	inserted, err := h.store.CreateOrder(order)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to create order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orderResponse(inserted))
}

// GetOrder godoc
// @Summary     Get order details
// @Description Returns one of the authenticated actor's orders
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.store.GetOrder(orderID)
	if err != nil || order.ActorID != actorID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all orders addressed to the authenticated actor
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	orders, err := h.store.ListOrdersByActor(actorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list orders",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = orderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Orders: responses})
}

func actorIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	actorIDStr, exists := c.Get(middleware.ActorIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "actor id not found"})
		return uuid.Nil, false
	}

	actorID, err := uuid.Parse(actorIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid actor id"})
		return uuid.Nil, false
	}

	return actorID, true
}

func orderResponse(order *models.Order) models.OrderResponse {
	response := models.OrderResponse{
		ID:               order.ID.String(),
		ActorID:          order.ActorID.String(),
		ClientName:       order.ClientName,
		ClientEmail:      order.ClientEmail,
		WordCount:        order.WordCount,
		Usage:            order.Usage,
		TotalPrice:       order.TotalPrice,
		MaterialFileURLs: order.MaterialFileURLs,
		PaymentMethod:    order.PaymentMethod,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.ClientID.Valid {
		clientID := order.ClientID.UUID.String()
		response.ClientID = &clientID
	}
	if order.Script.Valid {
		response.Script = order.Script.String
	}
	if order.ProjectNotes.Valid {
		response.ProjectNotes = order.ProjectNotes.String
	}
	if order.StripePaymentIntentID.Valid {
		response.StripePaymentIntentID = order.StripePaymentIntentID.String
	}
	return response
}
