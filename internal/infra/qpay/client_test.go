package qpay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"optika/config"
	"optika/internal/domain/entity"
	"optika/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (service.PaymentGateway, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		QPay: &config.QPayConfig{
			BaseURL:     server.URL,
			Username:    "merchant",
			Password:    "secret",
			InvoiceCode: "OPTIKA_INVOICE",
			CallbackURL: "https://shop.example/payments/qpay/callback",
		},
	}

	gateway := New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(testWriter{t}, nil)),
	})

	return gateway, server
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))

	return len(p), nil
}

func writeAuthToken(w http.ResponseWriter, token string) {
	_ = json.NewEncoder(w).Encode(authTokenResponse{
		TokenType:   "bearer",
		AccessToken: token,
		ExpiresIn:   3600,
	})
}

func TestClient_CreateInvoice(t *testing.T) {
	t.Parallel()

	var authCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, r *http.Request) {
		authCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "merchant", user)
		assert.Equal(t, "secret", pass)
		writeAuthToken(w, "token-1")
	})
	mux.HandleFunc(invoicePath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req createInvoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "OPTIKA_INVOICE", req.InvoiceCode)
		assert.Equal(t, "order-42", req.SenderInvoiceNo)
		assert.InDelta(t, 150000.0, req.Amount, 0.001)

		_ = json.NewEncoder(w).Encode(createInvoiceResponse{
			InvoiceID: "inv-123",
			QRText:    "0002010102121531...",
			ShortURL:  "https://s.qpay.mn/abc",
		})
	})

	gateway, _ := newTestClient(t, mux)

	invoice, err := gateway.CreateInvoice(context.Background(), service.CreateInvoiceInput{
		Amount:          decimal.NewFromInt(150000),
		Description:     "Optika order 42",
		ReceiverCode:    "terminal",
		SenderInvoiceNo: "order-42",
	})

	require.NoError(t, err)
	assert.Equal(t, "inv-123", invoice.InvoiceID)
	assert.Equal(t, "https://s.qpay.mn/abc", invoice.ShortURL)
	assert.NotEmpty(t, invoice.QRText)
}

func TestClient_TokenIsCachedAcrossCalls(t *testing.T) {
	t.Parallel()

	var authCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, _ *http.Request) {
		authCalls.Add(1)
		writeAuthToken(w, "token-1")
	})
	mux.HandleFunc(paymentCheckPath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(paymentCheckResponse{})
	})

	gateway, _ := newTestClient(t, mux)

	ctx := context.Background()
	_, err := gateway.CheckPayment(ctx, "inv-1")
	require.NoError(t, err)
	_, err = gateway.CheckPayment(ctx, "inv-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), authCalls.Load())
}

func TestClient_CheckPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		response   paymentCheckResponse
		wantStatus entity.PaymentStatus
		wantAmount decimal.Decimal
	}{
		{
			name:       "no settlement rows yet",
			response:   paymentCheckResponse{},
			wantStatus: entity.PaymentStatusNew,
			wantAmount: decimal.Zero,
		},
		{
			name: "paid",
			response: paymentCheckResponse{
				Count: 1,
				Rows: []paymentCheckRow{
					{PaymentID: "pay-9", PaymentStatus: "PAID", PaymentAmount: "150000"},
				},
			},
			wantStatus: entity.PaymentStatusPaid,
			wantAmount: decimal.NewFromInt(150000),
		},
		{
			name: "unknown provider status treated as new",
			response: paymentCheckResponse{
				Count: 1,
				Rows: []paymentCheckRow{
					{PaymentID: "pay-9", PaymentStatus: "SOMETHING_ELSE", PaymentAmount: "100"},
				},
			},
			wantStatus: entity.PaymentStatusNew,
			wantAmount: decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc(authPath, func(w http.ResponseWriter, _ *http.Request) {
				writeAuthToken(w, "token-1")
			})
			mux.HandleFunc(paymentCheckPath, func(w http.ResponseWriter, r *http.Request) {
				var req paymentCheckRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "INVOICE", req.ObjectType)
				assert.Equal(t, "inv-1", req.ObjectID)
				_ = json.NewEncoder(w).Encode(tt.response)
			})

			gateway, _ := newTestClient(t, mux)

			record, err := gateway.CheckPayment(context.Background(), "inv-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, record.Status)
			assert.True(t, tt.wantAmount.Equal(record.Amount),
				"amount mismatch: want %s got %s", tt.wantAmount, record.Amount)
		})
	}
}

func TestClient_AuthFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	gateway, _ := newTestClient(t, mux)

	err := gateway.Authenticate(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth failed")
}

func TestClient_UpstreamErrorDropsToken(t *testing.T) {
	t.Parallel()

	var authCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(authPath, func(w http.ResponseWriter, _ *http.Request) {
		authCalls.Add(1)
		writeAuthToken(w, "token")
	})
	var checkCalls atomic.Int64
	mux.HandleFunc(paymentCheckPath, func(w http.ResponseWriter, _ *http.Request) {
		if checkCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "AUTH_EXPIRED"})

			return
		}
		_ = json.NewEncoder(w).Encode(paymentCheckResponse{})
	})

	gateway, _ := newTestClient(t, mux)

	ctx := context.Background()
	_, err := gateway.CheckPayment(ctx, "inv-1")
	require.Error(t, err)

	// The expired token was discarded, so the retry authenticates again.
	_, err = gateway.CheckPayment(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), authCalls.Load())
}
