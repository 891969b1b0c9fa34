// Package httptransport wires the HTTP surface. Handlers live with their
// domains; this package only assembles them behind the shared middleware
// stack.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alerthandler "caresignal/internal/alert/handler"
	consenthandler "caresignal/internal/consent/handler"
	"caresignal/internal/disclosure"
	"caresignal/internal/platform/health"
	"caresignal/internal/platform/metrics"
	"caresignal/internal/platform/middleware"
)

// Deps carries everything the router needs. Keeping it a struct makes main's
// wiring explicit and lets tests assemble partial routers.
type Deps struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	JWTSigningKey string
	Health        *health.Handler
	Alerts        *alerthandler.Handler
	Consents      *consenthandler.Handler
	Disclosures   *disclosure.Handler
}

// NewRouter wires all endpoints with middleware. Health and metrics are
// served unauthenticated; every domain endpoint requires a bearer token.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(d.Metrics))

	d.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Auth(d.JWTSigningKey, d.Logger, d.Metrics))
		pr.Use(middleware.ContentTypeJSON)
		pr.Use(middleware.ClientMetadata)

		d.Alerts.Register(pr)
		d.Consents.Register(pr)
		d.Disclosures.Register(pr)
	})

	return r
}
