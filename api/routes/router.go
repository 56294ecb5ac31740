package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edupaylabs/edupay-backend/api/controllers"
	ordercontrollers "github.com/edupaylabs/edupay-backend/api/controllers/orders"
	webhookcontrollers "github.com/edupaylabs/edupay-backend/api/controllers/webhooks"
	"github.com/edupaylabs/edupay-backend/api/middleware"
	"github.com/edupaylabs/edupay-backend/internal/orders"
	"github.com/edupaylabs/edupay-backend/internal/payments"
	"github.com/edupaylabs/edupay-backend/internal/webhooks"
	"github.com/edupaylabs/edupay-backend/pkg/config"
	"github.com/edupaylabs/edupay-backend/pkg/db"
	"github.com/edupaylabs/edupay-backend/pkg/logger"
	"github.com/edupaylabs/edupay-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	ordersService orders.Service,
	webhookService webhooks.Service,
	paymentIssuer *payments.Issuer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/orders", func(r chi.Router) {
		// The gateway calls back without a credential.
		r.Post("/webhook", webhookcontrollers.Gateway(webhookService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Post("/", ordercontrollers.Create(ordersService, logg))
			r.Get("/transactions", ordercontrollers.Transactions(ordersService, logg))
			r.Get("/transactions/school/{schoolId}", ordercontrollers.SchoolTransactions(ordersService, logg))
			r.Get("/transaction-status/{customOrderId}", ordercontrollers.TransactionStatus(ordersService, logg))
			r.Post("/create-payment", ordercontrollers.CreatePayment(paymentIssuer, logg))
		})
	})

	return r
}
