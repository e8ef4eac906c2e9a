package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go4rent-backend/internal/service"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterOptions struct {
	WebhookSecret string
	MetricsPath   string // empty disables the metrics endpoint
	DB            Pinger // nil skips the database check in /healthz
}

// NewRouter registers the public HTTP endpoints: the gateway callback, the
// health check and, optionally, Prometheus metrics.
func NewRouter(paymentSvc service.PaymentService, opts RouterOptions) *mux.Router {
	router := mux.NewRouter()

	callback := NewGatewayCallbackHandler(paymentSvc, opts.WebhookSecret)
	router.HandleFunc("/api/v1/payments/gateway-callback", callback.HandleCallback).Methods(http.MethodPost)
	router.HandleFunc("/healthz", healthHandler(opts.DB)).Methods(http.MethodGet)
	if opts.MetricsPath != "" {
		router.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}
	return router
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
