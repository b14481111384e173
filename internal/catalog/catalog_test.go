package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIntegrity(t *testing.T) {
	all := All()
	require.Len(t, all, 6)

	seenIDs := make(map[string]bool)
	seenSlugs := make(map[string]bool)
	for _, p := range all {
		assert.False(t, seenIDs[p.ID], "id dupliqué: %s", p.ID)
		assert.False(t, seenSlugs[p.Slug], "slug dupliqué: %s", p.Slug)
		seenIDs[p.ID] = true
		seenSlugs[p.Slug] = true

		assert.True(t, ValidCategory(p.Category), p.Slug)
		assert.Greater(t, p.Price, 0, p.Slug)
		assert.NotEmpty(t, p.Images.Mobile, p.Slug)
		assert.Len(t, p.Others, 3, p.Slug)

		// Les suggestions pointent vers des produits existants
		for _, o := range p.Others {
			_, ok := BySlug(o.Slug)
			assert.True(t, ok, "suggestion inconnue %s sur %s", o.Slug, p.Slug)
		}
	}
}

func TestLookups(t *testing.T) {
	p, ok := BySlug("zx9-speaker")
	require.True(t, ok)
	assert.Equal(t, "4", p.ID)
	assert.Equal(t, 4500, p.Price)

	byID, ok := ByID("4")
	require.True(t, ok)
	assert.Equal(t, p, byID)

	_, ok = BySlug("inconnu")
	assert.False(t, ok)
	_, ok = ByID("999")
	assert.False(t, ok)
}

func TestByCategorySortsNewFirstThenPriceDesc(t *testing.T) {
	headphones := ByCategory("headphones")
	require.Len(t, headphones, 3)

	// Le XX99 Mark II est la seule nouveauté du rayon, il passe devant
	assert.Equal(t, "xx99-mark-ii-headphones", headphones[0].Slug)
	assert.Equal(t, "xx99-mark-i-headphones", headphones[1].Slug)
	assert.Equal(t, "xx59-headphones", headphones[2].Slug)

	assert.Empty(t, ByCategory("inexistant"))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("headphones"))
	assert.True(t, ValidCategory("speakers"))
	assert.True(t, ValidCategory("earphones"))
	assert.False(t, ValidCategory("amplifiers"))
	assert.False(t, ValidCategory(""))
}
