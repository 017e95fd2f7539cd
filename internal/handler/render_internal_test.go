package handler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

func TestCategoryBadges_total(t *testing.T) {
	for _, c := range domain.Categories {
		assert.NotEmpty(t, categoryBadges[c], "category %s has no badge class", c)
	}
}

func TestMustParsePages_everyPage(t *testing.T) {
	pages := mustParsePages()
	for _, name := range pageNames {
		tmpl, ok := pages[name]
		if assert.True(t, ok, name) {
			assert.NotNil(t, tmpl.Lookup("layout"), name)
			assert.NotNil(t, tmpl.Lookup("content"), name)
		}
	}
}

func TestUnwrapMessage(t *testing.T) {
	err := fmt.Errorf("service.X: %w: page must be at least 1", domain.ErrValidation)
	assert.Equal(t, "page must be at least 1", unwrapMessage(err))
	assert.Equal(t, "plain", unwrapMessage(errString("plain")))
	assert.Equal(t, "", unwrapMessage(nil))
}

type errString string

func (e errString) Error() string { return string(e) }
