package rest

import (
	"log/slog"
	"net/http"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/auth"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/observability"
)

// Router assembles the HTTP surface of the service.
type Router struct {
	Health   *HealthHandler
	Soil     *SoilHandler
	Loans    *LoanHandler
	Advisory *AdvisoryHandler
	Market   *MarketHandler

	Logger  *slog.Logger
	Metrics *observability.HTTPMetrics
	JWT     *auth.JWTService

	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

// Handler builds the full middleware chain. Health probes and metrics bypass
// authentication.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	rt.Health.RegisterRoutes(mux)
	rt.Soil.RegisterRoutes(mux)
	rt.Loans.RegisterRoutes(mux)
	rt.Advisory.RegisterRoutes(mux)
	rt.Market.RegisterRoutes(mux)

	if rt.MetricsHandler != nil {
		mux.Handle("GET /metrics", rt.MetricsHandler)
	}

	var handler http.Handler = mux
	if rt.JWT != nil {
		handler = auth.Middleware(rt.JWT, []string{"/healthz", "/readyz", "/metrics"})(handler)
	}
	if rt.Metrics != nil {
		handler = MetricsMiddleware(rt.Metrics)(handler)
	}
	handler = LoggingMiddleware(rt.Logger)(handler)
	return handler
}
