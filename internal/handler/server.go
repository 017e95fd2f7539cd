// Package handler implements the HTTP surface of the Lakbay Region 8 site:
// server-rendered pages, the JSON API used by the map script, and the SEO
// and operational endpoints. Handlers are methods on Server and are split
// into files by surface (pages.go, api.go, seo.go, health.go).
package handler

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nightowldevx/lakbayregion8/api"
	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/middleware"
)

// DestinationServicer defines the destination queries the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type DestinationServicer interface {
	List(ctx context.Context) ([]domain.Destination, error)
	GetBySlug(ctx context.Context, slug string) (domain.Destination, error)
	Related(ctx context.Context, d domain.Destination) []domain.Destination
	Search(ctx context.Context, query string, province domain.Province, category domain.Category) ([]domain.Destination, error)
}

// Branding supplies the navbar labels and how long each one is shown.
// The page rotates them client side; Current is rendered inline.
type Branding interface {
	Current() string
	Labels() []string
	Interval() time.Duration
}

// Checker is a dependency probed by /healthz.
type Checker interface {
	Ping(ctx context.Context) error
}

// Options carries the deployment settings the handlers need.
type Options struct {
	// BaseURL is the public origin, without trailing slash.
	BaseURL string
	// CORSOrigins may call /api from the browser.
	CORSOrigins []string
	// SearchRateLimit is requests per minute per client IP on the search endpoint.
	SearchRateLimit int
	// Checks are probed by /healthz, keyed by name.
	Checks map[string]Checker
}

// Server holds the dependencies shared by every handler.
type Server struct {
	dests DestinationServicer
	brand   Branding
	brandJS template.JS
	log     *slog.Logger
	opts  Options
	pages map[string]*template.Template
}

// NewServer constructs the Server and parses the embedded page templates.
// Template errors are programming errors and panic.
func NewServer(dests DestinationServicer, brand Branding, log *slog.Logger, opts Options) *Server {
	if opts.SearchRateLimit <= 0 {
		opts.SearchRateLimit = 60
	}
	labels, err := scriptJSON(brand.Labels())
	if err != nil {
		panic(fmt.Sprintf("handler.NewServer: encode brand labels: %v", err))
	}
	return &Server{
		dests:   dests,
		brand:   brand,
		brandJS: labels,
		log:     log,
		opts:    opts,
		pages:   mustParsePages(),
	}
}

// Register mounts every route on r. Request-wide middleware (request id,
// logging, recovery, metrics) is expected to be installed on r by the caller.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.home)
	r.Get("/destinations/{slug}", s.destinationPage)
	r.Get("/map", s.mapPage)
	r.Get("/about", s.about)
	r.Get("/search", s.searchRedirect)

	r.Get("/sitemap.xml", s.sitemap)
	r.Get("/robots.txt", s.robots)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPI)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCORSHandler(s.opts.CORSOrigins))
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, notFoundBody("resource not found"))
		})

		r.Get("/destinations", s.listDestinations)
		r.With(middleware.NewRateLimitByIP(s.opts.SearchRateLimit, time.Minute, "/api/destinations/search")).
			Get("/destinations/search", s.searchDestinations)
		r.Get("/destinations/{slug}", s.getDestination)
		r.Get("/map", s.mapState)
	})

	r.NotFound(s.notFound)
}
