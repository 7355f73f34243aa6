package stockservice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	circuitbreaker "github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/pettech-microservices/core-service/internal/dto"
	"github.com/alimikegami/pettech-microservices/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (Client, func()) {
	server := httptest.NewServer(handler)
	client := CreateNewClient(server.URL+"/", httpclient.New(time.Second), circuitbreaker.CreateCircuitBreaker("stock-service-test", time.Minute, ErrClientStatus))
	return client, server.Close
}

func TestCreateStock(t *testing.T) {
	var calls int
	client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stock", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ração","quantity":0,"relationId":"p-1"}`, string(body))

		w.WriteHeader(http.StatusCreated)
	})
	defer closeServer()

	_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCreateStock_NonSuccessStatus(t *testing.T) {
	type TestCase struct {
		Name     string
		Status   int
		Rejected bool
	}

	testCases := []TestCase{
		{Name: "Unauthorized", Status: http.StatusUnauthorized, Rejected: true},
		{Name: "Bad request", Status: http.StatusBadRequest, Rejected: true},
		{Name: "Server error", Status: http.StatusInternalServerError},
		{Name: "Bad gateway", Status: http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.Status)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error"})
			})
			defer closeServer()

			_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")

			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.Equal(t, tc.Rejected, errors.Is(err, ErrClientStatus))
		})
	}
}

func TestCreateStock_RejectedCallsKeepBreakerClosed(t *testing.T) {
	var calls int
	client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Header.Get("Authorization") != "Bearer user-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	defer closeServer()

	for i := 0; i < 5; i++ {
		_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "")
		require.ErrorIs(t, err, ErrClientStatus)
	}

	_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")

	require.NoError(t, err)
	assert.Equal(t, 6, calls)
}

func TestCreateStock_ServerFailuresOpenBreaker(t *testing.T) {
	var calls int
	client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer closeServer()

	for i := 0; i < 3; i++ {
		_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
	}

	_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, calls)
}

func TestCreateStock_Unreachable(t *testing.T) {
	client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	closeServer()

	_, err := client.CreateStock(context.Background(), dto.StockRequest{Name: "Ração", RelationID: "p-1"}, "user-token")

	assert.Error(t, err)
}

func TestStockExists(t *testing.T) {
	client, closeServer := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case "/stock/known":
			_, _ = w.Write([]byte(`{"id":"65f0","name":"Ração","quantity":0,"relationId":"known"}`))
		case "/stock/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	defer closeServer()

	exists, err := client.StockExists(context.Background(), "known")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.StockExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = client.StockExists(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
