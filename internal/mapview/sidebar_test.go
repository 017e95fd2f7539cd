package mapview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
	"github.com/nightowldevx/lakbayregion8/internal/mapview"
)

func TestCategoryIcons_total(t *testing.T) {
	for _, c := range domain.Categories {
		assert.NotEmpty(t, mapview.CategoryIcons[c], "missing icon for %s", c)
	}
}

func TestSidebar_groupsInCategoryOrder(t *testing.T) {
	groups := mapview.Sidebar(destinations())

	require.Len(t, groups, len(domain.Categories))
	assert.Equal(t, domain.Beach, groups[0].Category)
	assert.Len(t, groups[0].Items, 1)
	assert.Equal(t, domain.Nature, groups[1].Category)
	assert.Equal(t, "sohoton-natural-bridge", groups[1].Items[0].Slug)
	assert.Equal(t, "unmapped-falls", groups[1].Items[1].Slug)
	assert.NotNil(t, groups[2].Items)
	assert.Empty(t, groups[2].Items)
}
