package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func attached(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { _ = s.Detach() })
	return s
}

func saveKind(t *testing.T, s *Store, kind string) *types.Resource {
	t.Helper()
	r, err := types.NewResource(kind)
	require.NoError(t, err)
	_, err = s.Save(r)
	require.NoError(t, err)
	return r
}

func TestAttachDetachLifecycle(t *testing.T) {
	s := NewStore()

	assert.NoError(t, s.Attach(types.Config{Backend: types.BackendMemory}))
	assert.ErrorIs(t, s.Attach(types.Config{Backend: types.BackendMemory}), types.ErrAlreadyAttached)

	assert.NoError(t, s.Detach())
	assert.NoError(t, s.Detach(), "detach is idempotent")

	_, err := s.Get("anything")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Attach(types.Config{}), types.ErrBackendEmpty)
}

func TestSaveAssignsID(t *testing.T) {
	s := attached(t)

	r, err := types.NewResource(types.KindObject)
	require.NoError(t, err)
	assert.Empty(t, r.ID)

	id, err := s.Save(r)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, r.ID, "ID is written back to the resource")

	// Saving again keeps the same ID.
	id2, err := s.Save(r)
	assert.NoError(t, err)
	assert.Equal(t, id, id2)
}

func TestSaveOwnsTimestamps(t *testing.T) {
	s := attached(t)

	// The store stamps CreatedAt on first save, replacing whatever the
	// caller set, and keeps it on later saves.
	r, err := types.NewResource(types.KindObject)
	require.NoError(t, err)
	r.CreatedAt = time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err = s.Save(r)
	require.NoError(t, err)
	created := r.CreatedAt
	assert.NotEqual(t, 1999, created.Year())
	assert.False(t, r.UpdatedAt.Before(created))

	_, err = s.Save(r)
	require.NoError(t, err)
	assert.Equal(t, created, r.CreatedAt)
}

func TestGetNotFound(t *testing.T) {
	s := attached(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestGetReturnsCopy(t *testing.T) {
	s := attached(t)
	r := saveKind(t, s, types.KindFile)

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	got.Tag("pcdm:use:Thumbnail")

	again, err := s.Get(r.ID)
	require.NoError(t, err)
	assert.False(t, again.HasType("pcdm:use:Thumbnail"), "mutating a returned resource must not affect the store")
}

func TestOrderedEdgePositions(t *testing.T) {
	s := attached(t)
	parent := saveKind(t, s, types.KindObject)
	a := saveKind(t, s, types.KindObject)
	b := saveKind(t, s, types.KindObject)
	c := saveKind(t, s, types.KindObject)

	for _, child := range []*types.Resource{a, b, c} {
		_, err := s.AddEdge(&types.Edge{
			Relation: types.RelationMembers,
			FromID:   parent.ID,
			ToID:     child.ID,
		})
		require.NoError(t, err)
	}

	edges, err := s.Edges(parent.ID, types.RelationMembers)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID},
		[]string{edges[0].ToID, edges[1].ToID, edges[2].ToID})
	assert.Equal(t, 0, edges[0].Position)
	assert.Equal(t, 2, edges[2].Position)
}

func TestRemoveEdgePreservesOrder(t *testing.T) {
	s := attached(t)
	parent := saveKind(t, s, types.KindObject)
	a := saveKind(t, s, types.KindObject)
	b := saveKind(t, s, types.KindObject)
	c := saveKind(t, s, types.KindObject)

	for _, child := range []*types.Resource{a, b, c} {
		_, err := s.AddEdge(&types.Edge{Relation: types.RelationMembers, FromID: parent.ID, ToID: child.ID})
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveEdge(parent.ID, types.RelationMembers, b.ID))

	edges, err := s.Edges(parent.ID, types.RelationMembers)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, a.ID, edges[0].ToID)
	assert.Equal(t, c.ID, edges[1].ToID)

	assert.ErrorIs(t, s.RemoveEdge(parent.ID, types.RelationMembers, b.ID), types.ErrNotFound)
}

func TestRemoveEdgeFirstMatchOnly(t *testing.T) {
	s := attached(t)
	parent := saveKind(t, s, types.KindObject)
	child := saveKind(t, s, types.KindObject)

	// Duplicates are allowed in ordered relations.
	for i := 0; i < 2; i++ {
		_, err := s.AddEdge(&types.Edge{Relation: types.RelationMembers, FromID: parent.ID, ToID: child.ID})
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveEdge(parent.ID, types.RelationMembers, child.ID))

	edges, err := s.Edges(parent.ID, types.RelationMembers)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestQueryByProperty(t *testing.T) {
	s := attached(t)
	p1 := saveKind(t, s, types.KindCollection)
	p2 := saveKind(t, s, types.KindCollection)
	child := saveKind(t, s, types.KindObject)

	for _, parent := range []*types.Resource{p1, p2} {
		_, err := s.AddEdge(&types.Edge{Relation: types.RelationMembers, FromID: parent.ID, ToID: child.ID})
		require.NoError(t, err)
	}

	parents, err := s.QueryByProperty(types.RelationMembers, child.ID)
	require.NoError(t, err)
	require.Len(t, parents, 2)

	ids := map[string]bool{parents[0].ID: true, parents[1].ID: true}
	assert.True(t, ids[p1.ID])
	assert.True(t, ids[p2.ID])

	none, err := s.QueryByProperty(types.RelationMembers, "no-such-id")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProxyLifecycle(t *testing.T) {
	s := attached(t)
	owner := saveKind(t, s, types.KindObject)
	target := saveKind(t, s, types.KindCollection)

	id, err := s.AddProxy(&types.Proxy{
		Relation: types.RelationMemberOfCollections,
		OwnerID:  owner.ID,
		TargetID: target.ID,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	proxies, err := s.Proxies(owner.ID, types.RelationMemberOfCollections)
	require.NoError(t, err)
	require.Len(t, proxies, 1)
	assert.Equal(t, target.ID, proxies[0].TargetID)

	assert.NoError(t, s.RemoveProxy(owner.ID, types.RelationMemberOfCollections, target.ID))
	assert.ErrorIs(t, s.RemoveProxy(owner.ID, types.RelationMemberOfCollections, target.ID), types.ErrNotFound)
}
