// Package filter derives the visible subset of destinations from the
// listing's search box, category pills and province select.
package filter

import (
	"net/url"
	"strings"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

// Criteria is the listing's filter state. The zero value matches everything.
// An empty Category or Province means that predicate is inactive.
type Criteria struct {
	Query    string
	Category domain.Category
	Province domain.Province
}

// Active reports whether any predicate is set.
func (c Criteria) Active() bool {
	return c.Query != "" || c.Category != "" || c.Province != ""
}

// ToggleCategory returns c with cat selected, or with the category predicate
// cleared when cat is already selected.
func (c Criteria) ToggleCategory(cat domain.Category) Criteria {
	if c.Category == cat {
		c.Category = ""
	} else {
		c.Category = cat
	}
	return c
}

// ToggleProvince returns c with p selected, or with the province predicate
// cleared when p is already selected.
func (c Criteria) ToggleProvince(p domain.Province) Criteria {
	if c.Province == p {
		c.Province = ""
	} else {
		c.Province = p
	}
	return c
}

// Match reports whether d satisfies every active predicate.
func (c Criteria) Match(d domain.Destination) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(string(d.Province)), q) {
			return false
		}
	}
	if c.Category != "" && d.Category != c.Category {
		return false
	}
	if c.Province != "" && d.Province != c.Province {
		return false
	}
	return true
}

// Apply returns the destinations matching c in their original order.
// The result is never nil; an empty result is a normal "no results" state.
func Apply(dests []domain.Destination, c Criteria) []domain.Destination {
	out := make([]domain.Destination, 0, len(dests))
	for _, d := range dests {
		if c.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// FromQuery reads criteria from the q, category and province query
// parameters. Unknown category or province values are dropped so a stale
// link degrades to a wider listing instead of an empty one.
func FromQuery(v url.Values) Criteria {
	c := Criteria{Query: v.Get("q")}
	if cat := domain.Category(v.Get("category")); cat.Valid() {
		c.Category = cat
	}
	if p := domain.Province(v.Get("province")); p.Valid() {
		c.Province = p
	}
	return c
}

// Values encodes c as query parameters, omitting inactive predicates.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if c.Category != "" {
		v.Set("category", string(c.Category))
	}
	if c.Province != "" {
		v.Set("province", string(c.Province))
	}
	return v
}

// URL returns the listing path for c, e.g. "/?category=Beach".
func (c Criteria) URL() string {
	if enc := c.Values().Encode(); enc != "" {
		return "/?" + enc
	}
	return "/"
}
