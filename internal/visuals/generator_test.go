package visuals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

func stripID(v domain.VisualRecord) domain.VisualRecord {
	v.ID = ""
	return v
}

func TestGenerate_ReturnsFullCatalog(t *testing.T) {
	got := Generate()
	require.Len(t, got, len(Catalog))

	// Every generated record must match a catalog entry on everything but id.
	catalogByURL := make(map[string]domain.VisualRecord, len(Catalog))
	for _, v := range Catalog {
		catalogByURL[v.ImageURL] = v
	}

	seen := make(map[string]bool, len(got))
	for _, v := range got {
		require.NotEmpty(t, v.ID)
		entry, ok := catalogByURL[v.ImageURL]
		require.True(t, ok, "record not drawn from catalog: %s", v.ImageURL)
		assert.Equal(t, entry, stripID(v))
		assert.False(t, seen[v.ImageURL], "catalog entry repeated: %s", v.ImageURL)
		seen[v.ImageURL] = true
	}
}

func TestGenerate_FreshIDsAcrossCalls(t *testing.T) {
	first := Generate()
	second := Generate()

	ids := make(map[string]bool)
	for _, v := range first {
		assert.False(t, ids[v.ID], "duplicate id within call")
		ids[v.ID] = true
	}
	for _, v := range second {
		assert.False(t, ids[v.ID], "id reused across calls")
		ids[v.ID] = true
	}
}

func TestGenerate_DoesNotMutateCatalog(t *testing.T) {
	Generate()
	for _, v := range Catalog {
		assert.Empty(t, v.ID)
	}
}
