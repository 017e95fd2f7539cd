package mapview

import "errors"

// ErrUnknownStyle is returned by ChangeStyle for an id missing from Styles.
var ErrUnknownStyle = errors.New("unknown map style")

// Style is a tile theme the map can be re-skinned with.
type Style struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// Styles is the style switcher catalog. The first entry is the default.
var Styles = []Style{
	{ID: "street", Label: "Classic Street", URL: "https://tiles.openfreemap.org/styles/liberty", Icon: "🗺️"},
	{ID: "dark", Label: "Midnight Dark", URL: "https://tiles.openfreemap.org/styles/dark", Icon: "🌑"},
	{ID: "minimal", Label: "Minimal White", URL: "https://tiles.openfreemap.org/styles/bright", Icon: "⬜"},
	{ID: "satellite", Label: "Satellite", URL: "https://basemaps.cartocdn.com/gl/voyager-gl-style/style.json", Icon: "🛰️"},
}

// DefaultStyle returns the first catalog entry.
func DefaultStyle() Style {
	return Styles[0]
}

// LookupStyle finds a catalog entry by id.
func LookupStyle(id string) (Style, bool) {
	for _, s := range Styles {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}
