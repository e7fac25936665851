package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ucpmaroc-backend/internal/handlers"
	"ucpmaroc-backend/internal/models"
)

type stubOrderStore struct {
	created   *models.Order
	createErr error
	orders    map[uuid.UUID]*models.Order
}

func (s *stubOrderStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = order
	inserted := *order
	inserted.CreatedAt = time.Now()
	inserted.UpdatedAt = inserted.CreatedAt
	return &inserted, nil
}

func (s *stubOrderStore) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	if order, ok := s.orders[orderID]; ok {
		return order, nil
	}
	return nil, assert.AnError
}

func (s *stubOrderStore) ListOrdersByActor(actorID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range s.orders {
		if o.ActorID == actorID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func newOrderRouter(store *stubOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders", handlers.NewOrdersHandler(store).CreateOrder)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_LowercasesEmailAndNullsClientID(t *testing.T) {
	store := &stubOrderStore{}
	router := newOrderRouter(store)

	w := postJSON(t, router, "/orders", models.CreateOrderRequest{
		ActorID:     uuid.New().String(),
		ClientName:  "Yasmine B",
		ClientEmail: "Yasmine.B@Example.COM",
		WordCount:   350,
		Usage:       "commercial",
		TotalPrice:  70,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, "yasmine.b@example.com", store.created.ClientEmail)
	assert.False(t, store.created.ClientID.Valid)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "yasmine.b@example.com", resp.ClientEmail)
	assert.Nil(t, resp.ClientID)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateOrder_MissingClientEmail(t *testing.T) {
	store := &stubOrderStore{}
	router := newOrderRouter(store)

	w := postJSON(t, router, "/orders", models.CreateOrderRequest{
		ActorID:    uuid.New().String(),
		ClientName: "Yasmine B",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.created)
}

func TestCreateOrder_MissingActorID(t *testing.T) {
	store := &stubOrderStore{}
	router := newOrderRouter(store)

	w := postJSON(t, router, "/orders", models.CreateOrderRequest{
		ClientName:  "Yasmine B",
		ClientEmail: "yasmine@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.created)
}

func TestCreateOrder_StoreErrorForwarded(t *testing.T) {
	store := &stubOrderStore{createErr: assert.AnError}
	router := newOrderRouter(store)

	w := postJSON(t, router, "/orders", models.CreateOrderRequest{
		ActorID:     uuid.New().String(),
		ClientName:  "Yasmine B",
		ClientEmail: "yasmine@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to create order", resp.Error)
	assert.Contains(t, resp.Message, assert.AnError.Error())
}

func TestCreateOrder_InvalidActorID(t *testing.T) {
	store := &stubOrderStore{}
	router := newOrderRouter(store)

	w := postJSON(t, router, "/orders", models.CreateOrderRequest{
		ActorID:     "not-a-uuid",
		ClientName:  "Yasmine B",
		ClientEmail: "yasmine@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.created)
}
