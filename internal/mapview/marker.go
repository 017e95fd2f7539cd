package mapview

import "github.com/nightowldevx/lakbayregion8/internal/geo"

// Marker is a destination pin with its popup.
type Marker struct {
	Slug     string    `json:"slug"`
	Position geo.Point `json:"position"`
	Popup    Popup     `json:"popup"`
	Element  Element   `json:"element"`
}

// Popup is the info bubble opened when a marker is clicked.
type Popup struct {
	Name     string `json:"name"`
	Province string `json:"province"`
	Category string `json:"category"`
	Href     string `json:"href"`
}

// Element describes the marker's DOM element.
//
// HitSize is the wrapper that receives pointer events and never transforms.
// The pin inside is purely visual, ignores pointer events and is the only
// part scaled on hover, so the hit region stays fixed while hovered and
// mouseenter/mouseleave do not flap.
type Element struct {
	HitSize    int     `json:"hit_size"`
	PinSize    int     `json:"pin_size"`
	HoverScale float64 `json:"hover_scale"`
	Color      string  `json:"color"`
}

// DefaultElement is the pin used for every destination.
var DefaultElement = Element{HitSize: 32, PinSize: 28, HoverScale: 1.2, Color: "#16a34a"}
