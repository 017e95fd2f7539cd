// Package geo resolves the map position of a destination.
//
// A position comes from the destination's Google Maps embed link when that
// link encodes a point inside Region 8, otherwise from the stored
// latitude/longitude columns. Nothing in this package returns an error:
// anything that cannot be resolved is reported as "no point".
package geo

import (
	"regexp"
	"strconv"
)

// Point is a WGS84 position. Field order follows the tile engine's
// [lng, lat] convention.
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// BoundingBox is an open latitude/longitude rectangle: points on an edge
// are outside.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether p lies strictly inside b.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat > b.MinLat && p.Lat < b.MaxLat && p.Lng > b.MinLng && p.Lng < b.MaxLng
}

// Region8 is the sanity box applied to coordinates parsed from embed links.
var Region8 = BoundingBox{MinLat: 10, MaxLat: 13, MinLng: 123, MaxLng: 126}

// Region8Center and Region8Zoom are the initial map camera.
var Region8Center = Point{Lng: 125.0, Lat: 11.5}

const Region8Zoom = 8.0

// Embed links carry the point in the pb= blob as !2d<lng>!3d<lat>.
var (
	embedLng = regexp.MustCompile(`!2d(-?\d+\.\d+)`)
	embedLat = regexp.MustCompile(`!3d(-?\d+\.\d+)`)
)

// ExtractFromEmbed parses the point encoded in a Google Maps embed link.
// It returns false when either marker is missing, fails to parse, or the
// point falls outside Region8.
func ExtractFromEmbed(link string) (Point, bool) {
	if link == "" {
		return Point{}, false
	}
	lngMatch := embedLng.FindStringSubmatch(link)
	latMatch := embedLat.FindStringSubmatch(link)
	if lngMatch == nil || latMatch == nil {
		return Point{}, false
	}
	lng, err := strconv.ParseFloat(lngMatch[1], 64)
	if err != nil {
		return Point{}, false
	}
	lat, err := strconv.ParseFloat(latMatch[1], 64)
	if err != nil {
		return Point{}, false
	}
	p := Point{Lng: lng, Lat: lat}
	if !Region8.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// Resolve picks a destination's map position: the embed link point first,
// then the stored pair, then nothing.
//
// The stored pair is returned verbatim without the Region8 check applied to
// embed links. Whether stored values should be bounded too is still an open
// product question; callers must not assume a resolved point is in Region8.
func Resolve(link string, lat, lng *float64) (Point, bool) {
	if p, ok := ExtractFromEmbed(link); ok {
		return p, true
	}
	if lat != nil && lng != nil {
		return Point{Lng: *lng, Lat: *lat}, true
	}
	return Point{}, false
}
