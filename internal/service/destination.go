// Package service contains the read-side logic for the Lakbay Region 8 site.
// Services sanitize inputs, guard store calls with a circuit breaker and
// decide which failures reach the caller. No SQL lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/metrics"
	"github.com/nightowldevx/lakbayregion8/internal/repo"
)

const (
	// RelatedLimit caps the "more in this province" list on a detail page.
	RelatedLimit = 3

	// MaxQueryRunes caps a sanitized search query.
	MaxQueryRunes = 100

	breakerName = "store"
)

// Cache is an optional shared copy of the full destination collection.
type Cache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, bool, error)
	SetDestinations(ctx context.Context, dests []domain.Destination) error
}

// Option configures a DestinationService.
type Option func(*DestinationService)

// WithCache serves List from c when it holds a copy.
func WithCache(c Cache) Option {
	return func(s *DestinationService) { s.cache = c }
}

// WithBreakerSettings overrides the store circuit breaker thresholds.
// Name and OnStateChange are always set by the service.
func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(s *DestinationService) { s.breaker = st }
}

// DestinationService implements the destination queries used by pages and the API.
type DestinationService struct {
	repo    repo.DestinationRepo
	cache   Cache
	log     *slog.Logger
	breaker gobreaker.Settings
	cb      *gobreaker.CircuitBreaker[any]
}

// NewDestinationService constructs a DestinationService backed by r.
func NewDestinationService(r repo.DestinationRepo, log *slog.Logger, opts ...Option) *DestinationService {
	s := &DestinationService{
		repo: r,
		log:  log,
		breaker: gobreaker.Settings{
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	st := s.breaker
	st.Name = breakerName
	// A missing row or an abandoned request says nothing about store health.
	st.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, context.Canceled)
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		s.log.Warn("circuit breaker state change",
			"breaker", name,
			"from", from.String(),
			"to", to.String(),
		)
		metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to))
		metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
	}
	s.cb = gobreaker.NewCircuitBreaker[any](st)
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return s
}

// List returns every destination with images. Errors propagate: the listing
// page has nothing to show without the collection.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		dests, ok, err := s.cache.GetDestinations(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "destination cache read failed", "error", err)
		} else if ok {
			return dests, nil
		}
	}

	dests, err := execute(s.cb, func() ([]domain.Destination, error) {
		return s.repo.ListAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetDestinations(ctx, dests); err != nil {
			s.log.WarnContext(ctx, "destination cache write failed", "error", err)
		}
	}
	return dests, nil
}

// GetBySlug returns a single destination. Any failure is reported as
// domain.ErrNotFound so the caller renders the not-found page; store errors
// are logged, not returned.
func (s *DestinationService) GetBySlug(ctx context.Context, slug string) (domain.Destination, error) {
	d, err := execute(s.cb, func() (domain.Destination, error) {
		return s.repo.GetBySlug(ctx, slug)
	})
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "destination lookup failed", "slug", slug, "error", err)
	}
	return domain.Destination{}, fmt.Errorf("service.DestinationService.GetBySlug: %q: %w", slug, domain.ErrNotFound)
}

// Related returns up to RelatedLimit other destinations in d's province.
// It never fails: related content is secondary, so errors are logged and an
// empty slice is returned.
func (s *DestinationService) Related(ctx context.Context, d domain.Destination) []domain.Destination {
	related, err := execute(s.cb, func() ([]domain.Destination, error) {
		return s.repo.ListByProvince(ctx, d.Province, d.Slug, RelatedLimit)
	})
	if err != nil {
		s.log.WarnContext(ctx, "related destinations failed", "slug", d.Slug, "error", err)
		return []domain.Destination{}
	}
	if related == nil {
		return []domain.Destination{}
	}
	return related
}

// Search sanitizes query and runs a store-side name search narrowed by the
// optional province and category. Errors propagate.
func (s *DestinationService) Search(ctx context.Context, query string, province domain.Province, category domain.Category) ([]domain.Destination, error) {
	p := repo.SearchParams{
		Query:    SanitizeQuery(query),
		Province: province,
		Category: category,
	}
	dests, err := execute(s.cb, func() ([]domain.Destination, error) {
		return s.repo.Search(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.Search: %w", err)
	}
	return dests, nil
}

// SanitizeQuery strips C0 and C1 control characters, trims surrounding
// whitespace and caps the result at MaxQueryRunes runes.
func SanitizeQuery(q string) string {
	q = strings.Map(func(r rune) rune {
		if r <= 0x1f || (r >= 0x7f && r <= 0x9f) {
			return -1
		}
		return r
	}, q)
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > MaxQueryRunes {
		q = string([]rune(q)[:MaxQueryRunes])
	}
	return q
}

func execute[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}
