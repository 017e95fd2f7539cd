package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/gallery"
)

func img(url string, hero bool, order int) domain.Image {
	return domain.Image{URL: url, IsHero: hero, SortOrder: order}
}

func TestHero_prefersFlaggedOverSortOrder(t *testing.T) {
	images := []domain.Image{
		img("https://cdn.example.com/2.jpg", false, 2),
		img("https://cdn.example.com/1.jpg", true, 1),
		img("https://cdn.example.com/0.jpg", false, 0),
	}

	hero := gallery.Hero("kalanggaman-island", images)

	assert.Equal(t, "https://cdn.example.com/1.jpg", hero.URL)
}

func TestGallery_nonHeroOrderedBySortOrder(t *testing.T) {
	images := []domain.Image{
		img("https://cdn.example.com/2.jpg", false, 2),
		img("https://cdn.example.com/1.jpg", true, 1),
		img("https://cdn.example.com/0.jpg", false, 0),
	}

	got := gallery.Gallery("kalanggaman-island", images)

	assert.Equal(t, []string{"https://cdn.example.com/0.jpg", "https://cdn.example.com/2.jpg"}, got)
}

func TestHero_firstImageWhenNoneFlagged(t *testing.T) {
	images := []domain.Image{
		img("https://cdn.example.com/a.jpg", false, 0),
		img("https://cdn.example.com/b.jpg", false, 1),
	}

	assert.Equal(t, "https://cdn.example.com/a.jpg", gallery.Hero("x", images).URL)
	// Without a hero flag every image stays in the gallery.
	assert.Len(t, gallery.Gallery("x", images), 2)
}

func TestHero_multipleFlagsPicksFirst(t *testing.T) {
	images := []domain.Image{
		img("https://cdn.example.com/a.jpg", true, 5),
		img("https://cdn.example.com/b.jpg", true, 0),
	}

	assert.Equal(t, "https://cdn.example.com/a.jpg", gallery.Hero("x", images).URL)
}

func TestHero_altText(t *testing.T) {
	withAlt := []domain.Image{{URL: "u", IsHero: true, AltText: "White sandbar at dawn"}}
	assert.Equal(t, "White sandbar at dawn", gallery.Hero("kalanggaman-island", withAlt).Alt)

	withoutAlt := []domain.Image{{URL: "u", IsHero: true}}
	assert.Equal(t, "Hero photo of kalanggaman-island", gallery.Hero("kalanggaman-island", withoutAlt).Alt)
}

func TestHero_placeholderIsDeterministic(t *testing.T) {
	first := gallery.Hero("kalanggaman-island", nil)
	second := gallery.Hero("kalanggaman-island", []domain.Image{})

	assert.Equal(t, "https://picsum.photos/seed/kalanggaman-island/1200/600", first.URL)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first.URL, gallery.Hero("calicoan-island", nil).URL)
}

func TestGallery_placeholdersWhenEmpty(t *testing.T) {
	first := gallery.Gallery("sohoton", nil)
	second := gallery.Gallery("sohoton", nil)

	require.Len(t, first, gallery.PlaceholderCount)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		"https://picsum.photos/seed/sohoton-0/800/600",
		"https://picsum.photos/seed/sohoton-1/800/600",
		"https://picsum.photos/seed/sohoton-2/800/600",
		"https://picsum.photos/seed/sohoton-3/800/600",
	}, first)
}

func TestGallery_placeholdersWhenOnlyHero(t *testing.T) {
	images := []domain.Image{img("https://cdn.example.com/hero.jpg", true, 0)}

	got := gallery.Gallery("sohoton", images)

	assert.Len(t, got, gallery.PlaceholderCount)
	assert.NotContains(t, got, "https://cdn.example.com/hero.jpg")
}

func TestCover(t *testing.T) {
	assert.Equal(t, gallery.Image{
		URL: "https://picsum.photos/seed/calicoan-island/800/600",
		Alt: "Photo of Calicoan Island",
	}, gallery.Cover("calicoan-island", "Calicoan Island", nil))

	images := []domain.Image{img("https://cdn.example.com/c.jpg", false, 0)}
	assert.Equal(t, "https://cdn.example.com/c.jpg", gallery.Cover("calicoan-island", "Calicoan Island", images).URL)
}
