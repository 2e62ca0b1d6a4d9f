package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(48, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 1, Clamp(-3, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 5, Clamp(9, 5))
}

func TestWindow_ShortListing(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, Window(4, 7))
	assert.Equal(t, []int{1, 2, 3}, Window(1, 3))
	assert.Equal(t, []int{1}, Window(1, 0))
}

func TestWindow_LongListing(t *testing.T) {
	// Middle of a long listing: edges plus the neighborhood of the
	// current page. Gaps are where the UI draws an ellipsis.
	assert.Equal(t, []int{1, 2, 9, 10, 11, 19, 20}, Window(10, 20))

	// Near the front the neighborhoods overlap and deduplicate.
	assert.Equal(t, []int{1, 2, 3, 4, 19, 20}, Window(3, 20))

	// Near the end likewise.
	assert.Equal(t, []int{1, 2, 17, 18, 19, 20}, Window(18, 20))
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(3, 10, 48)

	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 48, meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, meta.Window)
}

func TestNewMeta_ClampsOutOfRangePage(t *testing.T) {
	meta := NewMeta(99, 10, 48)
	assert.Equal(t, 5, meta.Page)

	meta = NewMeta(0, 10, 48)
	assert.Equal(t, 1, meta.Page)
}

func TestNewMeta_DefaultsLimit(t *testing.T) {
	meta := NewMeta(1, 0, 30)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 3, meta.TotalPages)
}
