// Package gallery picks a destination's hero image and photo gallery,
// substituting deterministic placeholder photos when the database has none.
package gallery

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

// PlaceholderCount is the number of placeholder photos in an empty gallery.
const PlaceholderCount = 4

const placeholderBase = "https://picsum.photos/seed/"

// Image is a resolved photo ready for rendering.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// pickHero returns the first hero-flagged image, else the first image.
func pickHero(images []domain.Image) (domain.Image, bool) {
	for _, img := range images {
		if img.IsHero {
			return img, true
		}
	}
	if len(images) > 0 {
		return images[0], true
	}
	return domain.Image{}, false
}

// Hero returns the detail page hero image.
// The same slug always yields the same placeholder.
func Hero(slug string, images []domain.Image) Image {
	img, ok := pickHero(images)
	if !ok {
		return Image{URL: placeholder(slug, 1200, 600), Alt: "Hero photo of " + slug}
	}
	alt := img.AltText
	if alt == "" {
		alt = "Hero photo of " + slug
	}
	return Image{URL: img.URL, Alt: alt}
}

// Cover returns the listing card image. It follows the same precedence as
// Hero with a smaller placeholder and a name-based alt text.
func Cover(slug, name string, images []domain.Image) Image {
	img, ok := pickHero(images)
	if !ok {
		return Image{URL: placeholder(slug, 800, 600), Alt: "Photo of " + name}
	}
	alt := img.AltText
	if alt == "" {
		alt = "Photo of " + name
	}
	return Image{URL: img.URL, Alt: alt}
}

// Gallery returns the URLs of every non-hero image ordered by sort order.
// When there are none it returns PlaceholderCount placeholders keyed by
// slug and index.
func Gallery(slug string, images []domain.Image) []string {
	rest := make([]domain.Image, 0, len(images))
	for _, img := range images {
		if !img.IsHero {
			rest = append(rest, img)
		}
	}
	if len(rest) == 0 {
		out := make([]string, PlaceholderCount)
		for i := range out {
			out[i] = placeholder(fmt.Sprintf("%s-%d", slug, i), 800, 600)
		}
		return out
	}

	slices.SortStableFunc(rest, func(a, b domain.Image) int {
		return a.SortOrder - b.SortOrder
	})
	out := make([]string, len(rest))
	for i, img := range rest {
		out[i] = img.URL
	}
	return out
}

func placeholder(seed string, w, h int) string {
	return fmt.Sprintf("%s%s/%d/%d", placeholderBase, url.PathEscape(seed), w, h)
}
