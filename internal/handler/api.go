package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/filter"
	"github.com/nightowldevx/lakbayregion8/internal/gallery"
	"github.com/nightowldevx/lakbayregion8/internal/geo"
	"github.com/nightowldevx/lakbayregion8/internal/mapview"
	"github.com/nightowldevx/lakbayregion8/internal/validation"
)

// listQuery holds the parameters of GET /api/destinations.
type listQuery struct {
	Q        string `query:"q" validate:"max=200"`
	Category string `query:"category" validate:"omitempty,category"`
	Province string `query:"province" validate:"omitempty,province"`
	Page     *int   `query:"page" validate:"omitempty,gte=1"`
	Limit    *int   `query:"limit" validate:"omitempty,gte=1"`
}

// searchQuery holds the parameters of GET /api/destinations/search.
type searchQuery struct {
	Q        string `query:"q" validate:"max=200"`
	Category string `query:"category" validate:"omitempty,category"`
	Province string `query:"province" validate:"omitempty,province"`
}

type mapQuery struct {
	Focus string `query:"focus"`
	Style string `query:"style"`
}

// slugParam is the {slug} path segment of the detail routes.
type slugParam struct {
	Slug string `query:"slug" validate:"required,slug"`
}

// validSlug reports whether slug could name a destination at all. Malformed
// slugs are answered with 404 without a store round trip.
func validSlug(slug string) bool {
	return validation.Struct(slugParam{Slug: slug}) == nil
}

// destinationSummary is a destination with its listing cover and resolved
// map position.
type destinationSummary struct {
	domain.Destination
	Cover      gallery.Image `json:"cover"`
	Coordinate *geo.Point    `json:"coordinate,omitempty"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type listResponse struct {
	Data       []destinationSummary `json:"data"`
	Pagination pagination           `json:"pagination"`
}

type searchResponse struct {
	Data []destinationSummary `json:"data"`
}

type detailResponse struct {
	Destination domain.Destination   `json:"destination"`
	Hero        gallery.Image        `json:"hero"`
	Gallery     []string             `json:"gallery"`
	Coordinate  *geo.Point           `json:"coordinate,omitempty"`
	Fee         string               `json:"fee"`
	Hours       string               `json:"hours"`
	Related     []destinationSummary `json:"related"`
}

// listDestinations handles GET /api/destinations.
// The filter engine runs over the full collection, then the result is paginated.
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := bindQuery(r,
		param{"q", &q.Q}, param{"category", &q.Category}, param{"province", &q.Province},
		param{"page", &q.Page}, param{"limit", &q.Limit},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	if err := validation.Struct(q); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	all, err := s.dests.List(r.Context())
	if err != nil {
		s.apiError(w, r, err)
		return
	}

	matched := filter.Apply(all, filter.Criteria{
		Query:    q.Q,
		Category: domain.Category(q.Category),
		Province: domain.Province(q.Province),
	})
	p := domain.NewPaginationParams(q.Page, q.Limit)

	writeJSON(w, http.StatusOK, listResponse{
		Data:       summarize(domain.Paginate(matched, p)),
		Pagination: pagination{Page: p.Page, Limit: p.Limit, Total: len(matched)},
	})
}

// searchDestinations handles GET /api/destinations/search.
func (s *Server) searchDestinations(w http.ResponseWriter, r *http.Request) {
	var q searchQuery
	if err := bindQuery(r,
		param{"q", &q.Q}, param{"category", &q.Category}, param{"province", &q.Province},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	if err := validation.Struct(q); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	found, err := s.dests.Search(r.Context(), q.Q, domain.Province(q.Province), domain.Category(q.Category))
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Data: summarize(found)})
}

// getDestination handles GET /api/destinations/{slug}.
// Lookup failures of any kind are a 404, matching the detail page.
func (s *Server) getDestination(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !validSlug(slug) {
		writeJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("destination %q not found", slug)))
		return
	}

	d, err := s.dests.GetBySlug(r.Context(), slug)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody(fmt.Sprintf("destination %q not found", slug)))
		return
	}

	resp := detailResponse{
		Destination: d,
		Hero:        gallery.Hero(d.Slug, d.Images),
		Gallery:     gallery.Gallery(d.Slug, d.Images),
		Fee:         domain.FormatFee(d.EntranceFee),
		Hours:       domain.FormatHours(d.Hours),
		Related:     summarize(s.dests.Related(r.Context(), d)),
	}
	if pt, ok := geo.Resolve(d.GoogleMapsLink, d.Latitude, d.Longitude); ok {
		resp.Coordinate = &pt
	}
	writeJSON(w, http.StatusOK, resp)
}

// mapState handles GET /api/map. Unknown focus or style values are ignored.
func (s *Server) mapState(w http.ResponseWriter, r *http.Request) {
	var q mapQuery
	if err := bindQuery(r, param{"focus", &q.Focus}, param{"style", &q.Style}); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	all, err := s.dests.List(r.Context())
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapview.Build(all, q.Style, q.Focus))
}

// apiError logs an unexpected failure and answers 500.
func (s *Server) apiError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	s.log.ErrorContext(r.Context(), "api request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, internalBody())
}

// param names a query parameter and the pointer it binds into.
type param struct {
	name string
	dest any
}

// bindQuery binds optional form-style query parameters in order and stops at
// the first malformed one.
func bindQuery(r *http.Request, params ...param) error {
	values := r.URL.Query()
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, values, p.dest); err != nil {
			return fmt.Errorf("%w: invalid %s parameter", domain.ErrValidation, p.name)
		}
	}
	return nil
}

func summarize(dests []domain.Destination) []destinationSummary {
	out := make([]destinationSummary, len(dests))
	for i, d := range dests {
		out[i] = destinationSummary{
			Destination: d,
			Cover:       gallery.Cover(d.Slug, d.Name, d.Images),
		}
		if pt, ok := geo.Resolve(d.GoogleMapsLink, d.Latitude, d.Longitude); ok {
			out[i].Coordinate = &pt
		}
	}
	return out
}
