package brand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowldevx/lakbayregion8/internal/brand"
)

func TestRotation_currentIsFirstLabel(t *testing.T) {
	r := brand.NewRotation([]string{"a", "b", "c"}, time.Second)

	assert.Equal(t, "a", r.Current())
}

func TestRotation_valuesAreIndependentPerCaller(t *testing.T) {
	src := []string{"a", "b"}
	r := brand.NewRotation(src, 5*time.Second)
	src[0] = "changed"

	labels := r.Labels()
	labels[1] = "mutated"

	assert.Equal(t, []string{"a", "b"}, r.Labels())
	assert.Equal(t, 5*time.Second, r.Interval())
}

func TestNewRotation_panicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { brand.NewRotation(nil, time.Second) })
	assert.Panics(t, func() { brand.NewRotation(brand.Labels, 0) })
}

func TestLabels_startWithSiteName(t *testing.T) {
	require.Len(t, brand.Labels, 7)
	assert.Equal(t, "Lakbay Region 8", brand.Labels[0])
}
