// Package domain contains the core data types for the Lakbay Region 8 site.
// This package has no dependencies beyond google/uuid and is imported by
// every other internal package (repo, service, handler, and the derivation
// packages geo, filter, gallery, mapview).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Province is one of the six provinces of Eastern Visayas.
type Province string

const (
	Leyte         Province = "Leyte"
	SouthernLeyte Province = "Southern Leyte"
	EasternSamar  Province = "Eastern Samar"
	NorthernSamar Province = "Northern Samar"
	WesternSamar  Province = "Western Samar"
	Biliran       Province = "Biliran"
)

// Provinces lists every province in display order.
var Provinces = []Province{Leyte, SouthernLeyte, EasternSamar, NorthernSamar, WesternSamar, Biliran}

// Valid reports whether p is one of the known provinces.
func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}

// Category classifies a destination.
type Category string

const (
	Beach     Category = "Beach"
	Nature    Category = "Nature"
	Heritage  Category = "Heritage"
	Adventure Category = "Adventure"
)

// Categories lists every category in display order.
var Categories = []Category{Beach, Nature, Heritage, Adventure}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Destination is a single place listed in the guide.
// Records are owned by the database and read-only from the site's perspective.
// Latitude and Longitude are nil when the coordinates were never recorded.
type Destination struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Province       Province  `json:"province"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	EntranceFee    string    `json:"entrance_fee"`
	Hours          string    `json:"hours"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	GoogleMapsLink string    `json:"google_maps_link"`
	TravelTips     string    `json:"travel_tips,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Images are ordered by SortOrder as returned by the repo.
	Images []Image `json:"images"`
}

// Image is a photo attached to exactly one destination.
// AltText is empty when none was recorded.
type Image struct {
	ID            uuid.UUID `json:"id"`
	DestinationID uuid.UUID `json:"destination_id"`
	URL           string    `json:"image_url"`
	IsHero        bool      `json:"is_hero"`
	SortOrder     int       `json:"sort_order"`
	AltText       string    `json:"alt_text,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
