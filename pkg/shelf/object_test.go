package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestObjectRejectsCollectionMember(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	col := saveResource(t, store, types.KindCollection)
	err = obj.Members().Add(col)

	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "is-object", ve.Validator)
	assert.ErrorIs(t, err, types.ErrWrongKind)
}

func TestObjectRejectsFileMember(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	file := saveResource(t, store, types.KindFile)
	assert.ErrorIs(t, obj.Members().Add(file), types.ErrWrongKind)
}

func TestBookWithPages(t *testing.T) {
	store := newTestStore(t)

	book, err := NewObject(store)
	require.NoError(t, err)
	page1 := saveResource(t, store, types.KindObject)
	page2 := saveResource(t, store, types.KindObject)

	require.NoError(t, book.Members().Add(page1))
	require.NoError(t, book.Members().Add(page2))

	objects, err := book.Objects()
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, page1.ID, objects[0].ID)
	assert.Equal(t, page2.ID, objects[1].ID)

	ids, err := book.OrderedObjectIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{page1.ID, page2.ID}, ids)
}

func TestObjectMembersCycleBlocked(t *testing.T) {
	store := newTestStore(t)

	// grandparent -> parent -> child; adding grandparent under child would
	// close a multi-hop cycle.
	grandparent, err := NewObject(store)
	require.NoError(t, err)
	parent, err := NewObject(store)
	require.NoError(t, err)
	child, err := NewObject(store)
	require.NoError(t, err)

	require.NoError(t, grandparent.Members().Add(parent.Resource()))
	require.NoError(t, parent.Members().Add(child.Resource()))

	err = child.Members().Add(grandparent.Resource())
	assert.ErrorIs(t, err, types.ErrCycleDetected)

	members, err := child.Members().All()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestUnsavedObjectSelfMembershipBlocked(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	err = obj.Members().Add(obj.Resource())
	assert.ErrorIs(t, err, types.ErrCycleDetected)

	ids, err := obj.OrderedMemberIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestObjectFilesRelation(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	file := saveResource(t, store, types.KindFile)
	require.NoError(t, obj.Files().Add(file))

	files, err := obj.Files().All()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, file.ID, files[0].ID)

	// Files never enter the members relation, and non-files never enter files.
	other := saveResource(t, store, types.KindObject)
	assert.ErrorIs(t, obj.Files().Add(other), types.ErrWrongKind)
}

func TestFilterFilesByType(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	text := mustResource(t, types.KindFile)
	text.Tag("pcdm:use:ExtractedText")
	thumb := mustResource(t, types.KindFile)
	thumb.Tag("pcdm:use:Thumbnail")

	require.NoError(t, obj.Files().Add(text))
	require.NoError(t, obj.Files().Add(thumb))

	matches, err := obj.FilterFilesByType("pcdm:use:ExtractedText")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, text.ID, matches[0].ID)

	none, err := obj.FilterFilesByType("pcdm:use:Transcript")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileOfTypeIdempotent(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	// No match: creates, tags, and attaches exactly one file.
	first, err := obj.FileOfType("pcdm:use:ExtractedText")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID())
	assert.True(t, first.HasType("pcdm:use:ExtractedText"))

	// Match exists: same file back, no new file created.
	second, err := obj.FileOfType("pcdm:use:ExtractedText")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	files, err := obj.Files().All()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestObjectRelatedObjectsRejectsCollection(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	col := saveResource(t, store, types.KindCollection)
	assert.ErrorIs(t, obj.RelatedObjects().Add(col), types.ErrWrongKind)

	other := saveResource(t, store, types.KindObject)
	assert.NoError(t, obj.RelatedObjects().Add(other))
}

func TestAsObjectKindChecked(t *testing.T) {
	store := newTestStore(t)

	col := saveResource(t, store, types.KindCollection)
	_, err := AsObject(store, col)
	assert.ErrorIs(t, err, types.ErrWrongKind)

	obj := saveResource(t, store, types.KindObject)
	wrapped, err := AsObject(store, obj)
	assert.NoError(t, err)
	assert.Equal(t, obj.ID, wrapped.ID())
}

func TestAmbiguouslyTaggedMemberRejected(t *testing.T) {
	store := newTestStore(t)
	obj, err := NewObject(store)
	require.NoError(t, err)

	weird := mustResource(t, types.KindObject)
	weird.Tag(types.TypeCollection)
	_, err = store.Save(weird)
	require.NoError(t, err)

	err = obj.Members().Add(weird)
	assert.ErrorIs(t, err, types.ErrAmbiguousKind)
}
