package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yos-x/weardict/internal/adapter/provider/fanyi"
	"github.com/yos-x/weardict/internal/adapter/provider/youdao"
	"github.com/yos-x/weardict/internal/config"
	"github.com/yos-x/weardict/internal/provider"
	"github.com/yos-x/weardict/internal/service/lookup"
	"github.com/yos-x/weardict/internal/transport/middleware"
	"github.com/yos-x/weardict/internal/transport/rest"
)

// NewLookupService wires the shared fetcher and both upstream clients into
// a lookup.Service. rec may be nil when metrics are not collected.
func NewLookupService(cfg *config.Config, logger *slog.Logger, rec provider.Recorder) *lookup.Service {
	opts := []provider.Option{
		provider.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}),
		provider.WithUserAgent(cfg.Client.UserAgent),
	}
	if rec != nil {
		opts = append(opts, provider.WithMetrics(rec))
	}
	fetcher := provider.NewFetcher(logger, opts...)

	dictionary := youdao.NewProviderWithURL(cfg.Dictionary.BaseURL, fetcher, logger)
	translator := fanyi.NewProviderWithURL(cfg.Translation.BaseURL, fetcher, logger)

	return lookup.NewService(logger, dictionary, translator)
}

// NewRouter builds the HTTP handler: middleware chain, health probes,
// the lookup API under /api/v1 and Prometheus exposition of reg.
func NewRouter(cfg *config.Config, logger *slog.Logger, svc *lookup.Service, reg *prometheus.Registry) http.Handler {
	health := rest.NewHealthHandler(BuildVersion())
	lookupHandler := rest.NewLookupHandler(svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	))

	r.Get("/live", health.Live)
	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Route("/api/v1", lookupHandler.Register)

	return r
}
