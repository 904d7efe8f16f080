package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestNewFileCarriesKindTag(t *testing.T) {
	store := newTestStore(t)
	f, err := NewFile(store)
	require.NoError(t, err)

	assert.Empty(t, f.ID())
	assert.True(t, f.HasType(types.TypeFile))
}

func TestFileSubTypeTags(t *testing.T) {
	store := newTestStore(t)
	f, err := NewFile(store)
	require.NoError(t, err)

	f.Tag("pcdm:use:ExtractedText")
	assert.True(t, f.HasType("pcdm:use:ExtractedText"))
	assert.Contains(t, f.TypeTags(), "pcdm:use:ExtractedText")

	id, err := f.Save()
	require.NoError(t, err)

	stored, err := store.Get(id)
	require.NoError(t, err)
	assert.True(t, stored.HasType("pcdm:use:ExtractedText"))
}

func TestAsFileKindChecked(t *testing.T) {
	store := newTestStore(t)

	obj := saveResource(t, store, types.KindObject)
	_, err := AsFile(store, obj)
	assert.ErrorIs(t, err, types.ErrWrongKind)

	file := saveResource(t, store, types.KindFile)
	wrapped, err := AsFile(store, file)
	assert.NoError(t, err)
	assert.Equal(t, file.ID, wrapped.ID())
}
