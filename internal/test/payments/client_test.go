package payments_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ucpmaroc-backend/internal/payments"
)

func TestIntentParams_MinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{70, 7000},
		{120.5, 12050},
		{0.1, 10},
		{19.999, 2000},
	}
	for _, tt := range tests {
		params := payments.IntentParams{Amount: tt.amount}
		assert.Equal(t, tt.want, params.MinorUnits(), "amount %v", tt.amount)
	}
}

// stripeMux fakes the two Stripe endpoints the client touches.
func stripeMux(t *testing.T, existingCustomer bool, created *bool, intentForm *map[string]string) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/customers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "client@example.com", r.URL.Query().Get("email"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			if existingCustomer {
				fmt.Fprint(w, `{"object":"list","url":"/v1/customers","has_more":false,"data":[{"id":"cus_existing","object":"customer","email":"client@example.com"}]}`)
			} else {
				fmt.Fprint(w, `{"object":"list","url":"/v1/customers","has_more":false,"data":[]}`)
			}
		case http.MethodPost:
			if created != nil {
				*created = true
			}
			fmt.Fprint(w, `{"id":"cus_new","object":"customer","email":"client@example.com"}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if intentForm != nil {
			form := map[string]string{}
			for key := range r.PostForm {
				form[key] = r.PostForm.Get(key)
			}
			*intentForm = form
		}
		fmt.Fprint(w, `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret","amount":7000,"currency":"mad","customer":{"id":"cus_existing","object":"customer"}}`)
	})

	return mux
}

func TestClient_ResolveCustomer_ReusesExisting(t *testing.T) {
	created := false
	srv := httptest.NewServer(stripeMux(t, true, &created, nil))
	defer srv.Close()

	client := payments.NewClientWithBackend("sk_test_123", srv.URL)

	id, err := client.ResolveCustomer("client@example.com", "Client Name")
	require.NoError(t, err)
	assert.Equal(t, "cus_existing", id)
	assert.False(t, created, "existing customer must not be duplicated")
}

func TestClient_ResolveCustomer_CreatesWhenMissing(t *testing.T) {
	created := false
	srv := httptest.NewServer(stripeMux(t, false, &created, nil))
	defer srv.Close()

	client := payments.NewClientWithBackend("sk_test_123", srv.URL)

	id, err := client.ResolveCustomer("client@example.com", "Client Name")
	require.NoError(t, err)
	assert.Equal(t, "cus_new", id)
	assert.True(t, created)
}

func TestClient_CreateIntent_SendsMinorUnits(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(stripeMux(t, true, nil, &form))
	defer srv.Close()

	client := payments.NewClientWithBackend("sk_test_123", srv.URL)

	intent, err := client.CreateIntent(payments.IntentParams{
		Amount:           70,
		Currency:         "mad",
		CustomerID:       "cus_existing",
		SetupFutureUsage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, "cus_existing", intent.CustomerID)

	assert.Equal(t, "7000", form["amount"])
	assert.Equal(t, "mad", form["currency"])
	assert.Equal(t, "cus_existing", form["customer"])
	assert.Equal(t, "true", form["automatic_payment_methods[enabled]"])
	assert.Equal(t, "off_session", form["setup_future_usage"])
}
