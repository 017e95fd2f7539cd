// Package brand holds the site logo labels and their rotation period.
// The rotation itself runs per page view in the browser; the server only
// renders the first label and hands the rest to the page.
package brand

import (
	"slices"
	"time"
)

// Labels are shown in order, wrapping around.
var Labels = []string{
	"Lakbay Region 8",
	"Explore Region 8",
	"지역 8 탐험",
	"探索區域 8",
	"Erkunden Sie Region 8",
	"исследовать регион 8",
	"地域8を探索する",
}

// Rotation describes how the navbar label cycles on a page.
type Rotation struct {
	labels   []string
	interval time.Duration
}

// NewRotation returns a Rotation over labels. It panics on an empty label
// list or a non-positive interval.
func NewRotation(labels []string, interval time.Duration) Rotation {
	if len(labels) == 0 {
		panic("brand.NewRotation: no labels")
	}
	if interval <= 0 {
		panic("brand.NewRotation: interval must be positive")
	}
	return Rotation{labels: slices.Clone(labels), interval: interval}
}

// Current returns the label rendered before any rotation has happened.
func (r Rotation) Current() string { return r.labels[0] }

// Labels returns a copy of the labels in display order.
func (r Rotation) Labels() []string { return slices.Clone(r.labels) }

// Interval is how long each label stays on screen.
func (r Rotation) Interval() time.Duration { return r.interval }
