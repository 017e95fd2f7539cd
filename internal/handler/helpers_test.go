package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/handler"
)

// mockDestinationServicer is a test double for handler.DestinationServicer.
// Set only the method fields your test needs.
type mockDestinationServicer struct {
	list      func(ctx context.Context) ([]domain.Destination, error)
	getBySlug func(ctx context.Context, slug string) (domain.Destination, error)
	related   func(ctx context.Context, d domain.Destination) []domain.Destination
	search    func(ctx context.Context, query string, province domain.Province, category domain.Category) ([]domain.Destination, error)
}

func (m *mockDestinationServicer) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationServicer) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	return m.getBySlug(ctx, slug)
}
func (m *mockDestinationServicer) Related(ctx context.Context, d domain.Destination) []domain.Destination {
	if m.related == nil {
		return []domain.Destination{}
	}
	return m.related(ctx, d)
}
func (m *mockDestinationServicer) Search(ctx context.Context, query string, province domain.Province, category domain.Category) ([]domain.Destination, error) {
	return m.search(ctx, query, province, category)
}

// compile-time check: mockDestinationServicer must satisfy handler.DestinationServicer.
var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

type fixedBrand []string

func (b fixedBrand) Current() string         { return b[0] }
func (b fixedBrand) Labels() []string        { return b }
func (b fixedBrand) Interval() time.Duration { return 5 * time.Second }

var _ handler.Branding = fixedBrand(nil)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ---- helpers ---------------------------------------------------------------

const testBaseURL = "https://lakbayregion8.test"

var errStore = errors.New("connection refused")

// newHTTPHandler wires a Server with the given mock into a chi router the way
// main.go does.
func newHTTPHandler(svc handler.DestinationServicer) http.Handler {
	return newHTTPHandlerWith(svc, handler.Options{BaseURL: testBaseURL})
}

func newHTTPHandlerWith(svc handler.DestinationServicer, opts handler.Options) http.Handler {
	srv := handler.NewServer(svc, fixedBrand{"Explore Region 8", "Lakbay Region 8"}, slog.New(slog.NewJSONHandler(io.Discard, nil)), opts)
	r := chi.NewRouter()
	srv.Register(r)
	return r
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func ptr(v float64) *float64 { return &v }

func kalanggaman() domain.Destination {
	id := uuid.New()
	return domain.Destination{
		ID:             id,
		Name:           "Kalanggaman Island",
		Slug:           "kalanggaman-island",
		Province:       domain.Leyte,
		Category:       domain.Beach,
		Description:    "A sandbar island with powdery white sand.\n\nBest visited early.",
		EntranceFee:    "₱150",
		GoogleMapsLink: "https://www.google.com/maps/embed?pb=!1m18!2d124.2686!3d11.1089!4f13.1",
		TravelTips:     "Bring cash.",
		CreatedAt:      time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		Images: []domain.Image{
			{ID: uuid.New(), DestinationID: id, URL: "https://img.test/kal-2.jpg", SortOrder: 2},
			{ID: uuid.New(), DestinationID: id, URL: "https://img.test/kal-hero.jpg", IsHero: true, AltText: "Kalanggaman sandbar"},
			{ID: uuid.New(), DestinationID: id, URL: "https://img.test/kal-1.jpg", SortOrder: 1},
		},
	}
}

func sanJuanico() domain.Destination {
	return domain.Destination{
		ID:        uuid.New(),
		Name:      "San Juanico Bridge",
		Slug:      "san-juanico-bridge",
		Province:  domain.Leyte,
		Category:  domain.Heritage,
		Latitude:  ptr(11.2797),
		Longitude: ptr(125.0403),
		CreatedAt: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
		Images:    []domain.Image{},
	}
}

func limasawa() domain.Destination {
	return domain.Destination{
		ID:        uuid.New(),
		Name:      "Limasawa Island",
		Slug:      "limasawa-island",
		Province:  domain.SouthernLeyte,
		Category:  domain.Heritage,
		CreatedAt: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		Images:    []domain.Image{},
	}
}

func listOf(dests ...domain.Destination) func(ctx context.Context) ([]domain.Destination, error) {
	return func(ctx context.Context) ([]domain.Destination, error) { return dests, nil }
}
