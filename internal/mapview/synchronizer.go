// Package mapview keeps the map page consistent: the highlighted
// destination in the sidebar, the map camera and the active tile style.
//
// The tile engine itself is external. Synchronizer drives it through the
// Engine interface, which mirrors the parts of the MapLibre API the page
// uses (marker placement, animated camera moves and style swaps).
package mapview

import (
	"fmt"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/geo"
)

// Camera move used when a destination is picked from the sidebar.
const (
	FocusZoom  = 13.0
	FocusSpeed = 1.4
	FocusCurve = 1.2
)

// FlyOptions is an animated camera transition.
type FlyOptions struct {
	Center geo.Point `json:"center"`
	Zoom   float64   `json:"zoom"`
	Speed  float64   `json:"speed"`
	Curve  float64   `json:"curve"`
}

// Engine is the tile renderer the synchronizer drives.
type Engine interface {
	AddMarker(m Marker)
	FlyTo(opts FlyOptions)
	SetStyle(url string)
}

// Synchronizer owns the map page selection state. It is not safe for
// concurrent use; one instance serves one page view.
type Synchronizer struct {
	engine      Engine
	dests       map[string]domain.Destination
	markers     []Marker
	activeSlug  string
	activeStyle Style
}

// NewSynchronizer places one marker per destination with a resolvable
// position, in input order. Destinations without one are left off the map.
// The engine is assumed to have been created with style already applied.
func NewSynchronizer(engine Engine, dests []domain.Destination, style Style) *Synchronizer {
	s := &Synchronizer{
		engine:      engine,
		dests:       make(map[string]domain.Destination, len(dests)),
		activeStyle: style,
	}
	for _, d := range dests {
		s.dests[d.Slug] = d
		pos, ok := geo.Resolve(d.GoogleMapsLink, d.Latitude, d.Longitude)
		if !ok {
			continue
		}
		m := Marker{
			Slug:     d.Slug,
			Position: pos,
			Popup: Popup{
				Name:     d.Name,
				Province: string(d.Province),
				Category: string(d.Category),
				Href:     "/destinations/" + d.Slug,
			},
			Element: DefaultElement,
		}
		s.markers = append(s.markers, m)
		engine.AddMarker(m)
	}
	return s
}

// SelectFromList highlights slug and flies the camera to it. The camera is
// left alone when the destination has no resolvable position. It reports
// whether the camera moved.
func (s *Synchronizer) SelectFromList(slug string) bool {
	s.activeSlug = slug
	d, ok := s.dests[slug]
	if !ok {
		return false
	}
	pos, ok := geo.Resolve(d.GoogleMapsLink, d.Latitude, d.Longitude)
	if !ok {
		return false
	}
	s.engine.FlyTo(FlyOptions{Center: pos, Zoom: FocusZoom, Speed: FocusSpeed, Curve: FocusCurve})
	return true
}

// SelectFromMarker highlights slug after a marker click. The camera does
// not move; the clicked marker is already in view.
func (s *Synchronizer) SelectFromMarker(slug string) {
	s.activeSlug = slug
}

// ChangeStyle re-skins the map. Markers, selection and camera are kept.
// Requesting the active style does nothing.
func (s *Synchronizer) ChangeStyle(id string) error {
	style, ok := LookupStyle(id)
	if !ok {
		return fmt.Errorf("mapview.Synchronizer.ChangeStyle: %w: %q", ErrUnknownStyle, id)
	}
	s.applyStyle(style)
	return nil
}

func (s *Synchronizer) applyStyle(style Style) {
	if style.ID == s.activeStyle.ID {
		return
	}
	s.activeStyle = style
	s.engine.SetStyle(style.URL)
}

// Has reports whether slug belongs to a destination on this page, with or
// without a marker.
func (s *Synchronizer) Has(slug string) bool {
	_, ok := s.dests[slug]
	return ok
}

// ActiveSlug returns the highlighted destination, "" when none.
func (s *Synchronizer) ActiveSlug() string { return s.activeSlug }

// ActiveStyle returns the current tile style.
func (s *Synchronizer) ActiveStyle() Style { return s.activeStyle }

// Markers returns the placed markers in placement order.
func (s *Synchronizer) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}
