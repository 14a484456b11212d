package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	cams      []*CameraEntity
	active    CameraId
	hasActive bool
	sets      int
}

func newFakeRegistry(ids ...CameraId) *fakeRegistry {
	r := &fakeRegistry{}
	for _, id := range ids {
		r.cams = append(r.cams, &CameraEntity{Id: id})
	}
	return r
}

func (r *fakeRegistry) Cameras() []*CameraEntity { return r.cams }

func (r *fakeRegistry) SetActiveCamera(id CameraId) {
	r.active = id
	r.hasActive = true
	r.sets++
}

func (r *fakeRegistry) ActiveCamera() (CameraId, bool) { return r.active, r.hasActive }

func (r *fakeRegistry) marked() []CameraId {
	var out []CameraId
	for _, c := range r.cams {
		if c.IsLatest {
			out = append(out, c.Id)
		}
	}
	return out
}

func TestMarkLatest_MovesMarker(t *testing.T) {
	r := newFakeRegistry("camA", "camB", "camC")

	require.NoError(t, MarkLatest(r, "camA"))
	require.NoError(t, MarkLatest(r, "camB"))

	id, ok := ResolveLatest(r)
	assert.True(t, ok)
	assert.Equal(t, CameraId("camB"), id)
	assert.False(t, r.cams[0].IsLatest, "camA should be unmarked")
	assert.Equal(t, []CameraId{"camB"}, r.marked())
}

func TestMarkLatest_Idempotent(t *testing.T) {
	r := newFakeRegistry("camA", "camB")

	require.NoError(t, MarkLatest(r, "camB"))
	require.NoError(t, MarkLatest(r, "camB"))

	assert.Equal(t, []CameraId{"camB"}, r.marked())
}

func TestMarkLatest_UnknownIdLeavesMarkers(t *testing.T) {
	r := newFakeRegistry("camA", "camB")
	require.NoError(t, MarkLatest(r, "camA"))

	err := MarkLatest(r, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, []CameraId{"camA"}, r.marked())
}

func TestMarkLatest_NormalizesDuplicates(t *testing.T) {
	r := newFakeRegistry("camA", "camB", "camC")
	r.cams[0].IsLatest = true
	r.cams[2].IsLatest = true

	id, ok := ResolveLatest(r)
	assert.True(t, ok)
	assert.Equal(t, CameraId("camA"), id, "first marked camera in order wins")

	require.NoError(t, MarkLatest(r, "camB"))
	assert.Equal(t, []CameraId{"camB"}, r.marked())
}

func TestResolveLatest_None(t *testing.T) {
	_, ok := ResolveLatest(newFakeRegistry())
	assert.False(t, ok, "empty registry")

	_, ok = ResolveLatest(newFakeRegistry("camA", "camB"))
	assert.False(t, ok, "no marker set")
}

func TestResolveLatest_Stable(t *testing.T) {
	r := newFakeRegistry("camA", "camB", "camC")
	require.NoError(t, MarkLatest(r, "camC"))

	first, _ := ResolveLatest(r)
	for i := 0; i < 10; i++ {
		id, ok := ResolveLatest(r)
		require.True(t, ok)
		assert.Equal(t, first, id)
	}
}

func TestActivate(t *testing.T) {
	r := newFakeRegistry("camA", "camB")

	require.NoError(t, Activate(r, "camB"))
	active, ok := r.ActiveCamera()
	assert.True(t, ok)
	assert.Equal(t, CameraId("camB"), active)

	err := Activate(r, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
	active, _ = r.ActiveCamera()
	assert.Equal(t, CameraId("camB"), active, "active camera must not change on failure")
	assert.Equal(t, 1, r.sets)
}

func TestActivateLatest(t *testing.T) {
	r := newFakeRegistry("camA", "camB")

	_, ok, err := ActivateLatest(r)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, r.sets, "nothing marked, nothing activated")

	require.NoError(t, MarkLatest(r, "camA"))
	id, ok, err := ActivateLatest(r)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, CameraId("camA"), id)
	active, _ := r.ActiveCamera()
	assert.Equal(t, CameraId("camA"), active)
}

func TestScenario_MarkerHandOff(t *testing.T) {
	r := newFakeRegistry("camA", "camB")
	r.cams[0].IsLatest = true

	require.NoError(t, MarkLatest(r, "camB"))

	id, ok := ResolveLatest(r)
	require.True(t, ok)
	assert.Equal(t, CameraId("camB"), id)
	assert.False(t, r.cams[0].IsLatest)
}
