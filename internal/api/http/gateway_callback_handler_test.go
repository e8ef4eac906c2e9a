package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/service"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) InitiatePayment(ctx context.Context, renterID, rentalID int32, method domain.PaymentMethod) (*domain.Payment, string, error) {
	args := m.Called(ctx, renterID, rentalID, method)
	return nil, "", args.Error(2)
}

func (m *MockPaymentService) HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) (*domain.Payment, error) {
	args := m.Called(ctx, cb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) AdminSetPaymentStatus(ctx context.Context, actorID, paymentID int32, status domain.PaymentStatus, notes string) (*domain.Payment, error) {
	args := m.Called(ctx, actorID, paymentID, status, notes)
	return nil, args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, actorID, paymentID int32) (*domain.Payment, error) {
	args := m.Called(ctx, actorID, paymentID)
	return nil, args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, actorID int32, scope service.ListScope, filter domain.PaymentFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, actorID, scope, filter, page, pageSize)
	return nil, 0, args.Error(2)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

const callbackPath = "/api/v1/payments/gateway-callback"

func postCallback(t *testing.T, router http.Handler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, callbackPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGatewayCallback(t *testing.T) {
	body := `{"transaction_id":"txn_1","status":"success","amount":"175.00","gateway_ref":"gw-9"}`

	t.Run("Processed with verbatim payload", func(t *testing.T) {
		svc := new(MockPaymentService)
		router := NewRouter(svc, RouterOptions{})
		svc.On("HandleGatewayCallback", mock.Anything, mock.MatchedBy(func(cb domain.GatewayCallback) bool {
			return cb.TransactionID == "txn_1" && cb.Outcome == domain.GatewayOutcomeSuccess && string(cb.Payload) == body
		})).Return(&domain.Payment{ID: 3, Status: domain.PaymentStatusPaid}, nil)

		rec := postCallback(t, router, body, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, "processed", out["status"])
		assert.Equal(t, "paid", out["payment_status"])
		svc.AssertExpectations(t)
	})

	t.Run("Replay answers 200", func(t *testing.T) {
		svc := new(MockPaymentService)
		router := NewRouter(svc, RouterOptions{})
		svc.On("HandleGatewayCallback", mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyProcessed.WithEntity(3))

		rec := postCallback(t, router, body, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "already_processed", decode(t, rec)["status"])
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		svc := new(MockPaymentService)
		router := NewRouter(svc, RouterOptions{})
		svc.On("HandleGatewayCallback", mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentNotFound)

		rec := postCallback(t, router, body, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, "NotFound", out["kind"])
		assert.Equal(t, "PaymentNotFound", out["code"])
	})

	t.Run("Unexpected error is hidden", func(t *testing.T) {
		svc := new(MockPaymentService)
		router := NewRouter(svc, RouterOptions{})
		svc.On("HandleGatewayCallback", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		rec := postCallback(t, router, body, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("Invalid requests never reach the service", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"malformed", `{"transaction_id":`},
			{"missing transaction", `{"status":"success"}`},
			{"unknown status", `{"transaction_id":"txn_1","status":"refunded"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(MockPaymentService)
				router := NewRouter(svc, RouterOptions{})

				rec := postCallback(t, router, tt.body, "")
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "ValidationError", decode(t, rec)["kind"])
				svc.AssertNotCalled(t, "HandleGatewayCallback", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Signature", func(t *testing.T) {
		const secret = "whsec_test"
		tests := []struct {
			name      string
			signature string
			want      int
		}{
			{"valid", Sign(secret, []byte(body)), http.StatusOK},
			{"missing", "", http.StatusUnauthorized},
			{"wrong secret", Sign("other", []byte(body)), http.StatusUnauthorized},
			{"not hex", "zz", http.StatusUnauthorized},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(MockPaymentService)
				router := NewRouter(svc, RouterOptions{WebhookSecret: secret})
				svc.On("HandleGatewayCallback", mock.Anything, mock.Anything).
					Return(&domain.Payment{ID: 3, Status: domain.PaymentStatusPaid}, nil).Maybe()

				rec := postCallback(t, router, body, tt.signature)
				assert.Equal(t, tt.want, rec.Code)
				if tt.want != http.StatusOK {
					svc.AssertNotCalled(t, "HandleGatewayCallback", mock.Anything, mock.Anything)
				}
			})
		}
	})

	t.Run("GET is not routed", func(t *testing.T) {
		router := NewRouter(new(MockPaymentService), RouterOptions{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, callbackPath, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		router := NewRouter(new(MockPaymentService), RouterOptions{DB: fakePinger{}})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Database down", func(t *testing.T) {
		router := NewRouter(new(MockPaymentService), RouterOptions{DB: fakePinger{err: errors.New("dial tcp: refused")}})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Metrics endpoint", func(t *testing.T) {
		router := NewRouter(new(MockPaymentService), RouterOptions{MetricsPath: "/metrics"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Metrics disabled", func(t *testing.T) {
		router := NewRouter(new(MockPaymentService), RouterOptions{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
