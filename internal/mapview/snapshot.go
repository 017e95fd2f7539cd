package mapview

import (
	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/geo"
)

// Snapshot is an in-memory Engine. It records what the browser map should
// show so the server can hand the initial state to the page script.
type Snapshot struct {
	Markers  []Marker  `json:"markers"`
	Center   geo.Point `json:"center"`
	Zoom     float64   `json:"zoom"`
	StyleURL string    `json:"style_url"`
	// Fly is the pending camera animation, nil when the camera is at rest.
	Fly *FlyOptions `json:"fly,omitempty"`
}

// NewSnapshot returns a Snapshot at the Region 8 overview camera.
func NewSnapshot(style Style) *Snapshot {
	return &Snapshot{
		Markers:  []Marker{},
		Center:   geo.Region8Center,
		Zoom:     geo.Region8Zoom,
		StyleURL: style.URL,
	}
}

func (s *Snapshot) AddMarker(m Marker) {
	s.Markers = append(s.Markers, m)
}

func (s *Snapshot) FlyTo(opts FlyOptions) {
	s.Center = opts.Center
	s.Zoom = opts.Zoom
	s.Fly = &opts
}

func (s *Snapshot) SetStyle(url string) {
	s.StyleURL = url
}

// State is the serialized map page state.
type State struct {
	Map        *Snapshot `json:"map"`
	ActiveSlug string    `json:"active_slug,omitempty"`
	Style      Style     `json:"style"`
	Styles     []Style   `json:"styles"`
}

// Build creates a synchronizer over a fresh snapshot, applies the deep link
// (style first, then focus) and returns the resulting state. An unknown
// style id keeps the default style; an unknown focus slug is ignored.
func Build(dests []domain.Destination, styleID, focus string) State {
	snap := NewSnapshot(DefaultStyle())
	syncer := NewSynchronizer(snap, dests, DefaultStyle())
	if style, ok := LookupStyle(styleID); ok {
		syncer.applyStyle(style)
	}
	if syncer.Has(focus) {
		syncer.SelectFromList(focus)
	}
	return State{
		Map:        snap,
		ActiveSlug: syncer.ActiveSlug(),
		Style:      syncer.ActiveStyle(),
		Styles:     Styles,
	}
}
