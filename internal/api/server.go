// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the theme resolver service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"themeconf/internal/api/handler/v1handler"
	"themeconf/internal/config"
	"themeconf/pkg/controller"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// AuthOptions configures bearer token verification for v1 endpoints.
	AuthOptions *v1handler.AuthOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the timeout applied via http.TimeoutHandler to every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes bounds the declaration accepted by the resolve endpoint.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigin is the origin allowed for browser calls.
	CORSOrigin string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AuthOptions: v1handler.NewAuthOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigin:        cfg.HTTP.CORSOrigin,
	}
}

type Deps struct {
	v1handler.Deps

	// Registry is served on the metrics path. Nil uses a fresh registry.
	Registry *prometheus.Registry
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through registry, along with the Go and process collectors.
func NewMeterProvider(registry *prometheus.Registry) (*sdkmetric.MeterProvider, error) {
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server. It sets up:
//   - the Prometheus registry served on MetricsPath
//   - the embedded OpenAPI v1 spec and Swagger UI
//   - the v1 API routes, behind bearer authentication when a key is configured
//   - pprof endpoints and a health check
//
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Theme Resolver Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	h := v1handler.New(deps.Deps, v1handler.Options{})
	auth, err := v1handler.NewAuth(h, opts.AuthOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create auth handler: %w", err)
	}
	limit := controller.WithBodyLimit(opts.MaxBodyBytes)
	h.Register(mux, func(next http.Handler) http.Handler { return auth.Middleware(limit(next)) })

	// pprof
	mux.Handle(controller.PprofPrefix, controller.Pprof())

	// cors
	handler := controller.WithCORS(opts.CORSOrigin)(mux)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"INTERNAL","message":"request timed out"}`)
	}

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
