package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/common"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedService(t *testing.T, gw *fakeGateway[models.Post], ids ...int) *CollectionService[models.Post] {
	t.Helper()
	gw.FetchAllRet = posts(ids...)
	svc := newPostService(gw, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestCreate_AppendsServerEntity(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1, 2)

	gw.CreateRet = models.Post{ID: 252, Title: "new", Body: "b", AuthorID: 5}
	created, err := svc.Create(context.Background(), models.Post{ID: 99, Title: "new", Body: "b", AuthorID: 5})
	require.NoError(t, err)

	assert.Equal(t, 252, created.ID)
	assert.Equal(t, 0, gw.LastCreate.ID, "payload is sent without an id")
	assert.Equal(t, []int{1, 2, 252}, svc.Snapshot().IDs())
	assert.Equal(t, store.Succeeded, svc.Snapshot().Status)
}

func TestCreate_EchoedIDReplacesAndWarns(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	gw.FetchAllRet = posts(1)
	var buf bytes.Buffer
	svc := NewCollectionService[models.Post](store.NewCache[models.Post](store.KindPosts), gw, nil,
		logging.NewTextLogger(&buf, "warn"))
	require.NoError(t, svc.Load(context.Background()))

	gw.CreateRet = models.Post{ID: 252, Title: "first", Body: "b"}
	_, err := svc.Create(context.Background(), models.Post{Title: "first", Body: "b"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "already cached")

	gw.CreateRet = models.Post{ID: 252, Title: "second", Body: "b"}
	_, err = svc.Create(context.Background(), models.Post{Title: "second", Body: "b"})
	require.NoError(t, err)

	snap := svc.Snapshot()
	assert.Equal(t, []int{1, 252}, snap.IDs())
	assert.Equal(t, "second", snap.Items[1].Title)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "already cached")
	assert.Contains(t, buf.String(), "id=252")
}

func TestCreate_ValidationError_NoGatewayCall(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1)
	callsAfterLoad := gw.calls()

	_, err := svc.Create(context.Background(), models.Post{Title: "  ", Body: "b"})
	require.ErrorIs(t, err, common.ErrValidation)

	assert.Equal(t, callsAfterLoad, gw.calls())
	assert.Equal(t, store.Succeeded, svc.Snapshot().Status)
}

func TestCreate_Failure_LeavesCollectionUntouched(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1)
	before := svc.Snapshot()

	boom := errors.New("server down")
	gw.CreateErr = boom
	_, err := svc.Create(context.Background(), models.Post{Title: "t", Body: "b"})
	require.ErrorIs(t, err, boom)

	var me *MutationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, OpCreate, me.Op)
	assert.Equal(t, "create: server down", err.Error())

	assert.Same(t, before, svc.Snapshot())
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1, 2, 3)

	edited := models.Post{ID: 2, Title: "edited", Body: "new body"}
	got, err := svc.Update(context.Background(), edited)
	require.NoError(t, err)
	assert.Equal(t, edited, got)

	snap := svc.Snapshot()
	assert.Equal(t, []int{1, 2, 3}, snap.IDs())
	if diff := cmp.Diff(edited, snap.Items[1]); diff != "" {
		t.Fatalf("updated entry mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_MissingIDDiscardsResponse(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1)
	before := svc.Snapshot()

	_, err := svc.Update(context.Background(), models.Post{ID: 42, Title: "t", Body: "b"})
	require.NoError(t, err)

	assert.Same(t, before, svc.Snapshot())
	assert.Equal(t, []int{1}, svc.Snapshot().IDs())
}

func TestUpdate_Failure_LeavesEntryAndStatus(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1)
	original := svc.Snapshot().Items[0]

	gw.UpdateErr = errors.New("Post with id '1' not found")
	_, err := svc.Update(context.Background(), models.Post{ID: 1, Title: "x", Body: "y"})
	require.Error(t, err)

	var me *MutationError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, OpUpdate, me.Op)
	assert.Equal(t, 1, me.ID)

	snap := svc.Snapshot()
	assert.Equal(t, original, snap.Items[0])
	assert.Equal(t, store.Succeeded, snap.Status)
	assert.Empty(t, snap.Err)
}

func TestUpdate_RequiresID(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := newPostService(gw, nil)

	_, err := svc.Update(context.Background(), models.Post{Title: "t", Body: "b"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, 0, gw.calls())
}

func TestDelete_RemovesEntry(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1, 2, 3)

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, 2, gw.LastDelete)
	assert.Equal(t, []int{1, 3}, svc.Snapshot().IDs())
}

func TestDelete_MissingIDIsNoop(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1, 2)
	before := svc.Snapshot()

	require.NoError(t, svc.Delete(context.Background(), 77))

	assert.Same(t, before, svc.Snapshot())
	assert.Empty(t, svc.Snapshot().Err)
}

func TestDelete_Failure_LeavesCache(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	svc := loadedService(t, gw, 1, 2)
	before := svc.Snapshot()

	gw.DeleteErr = errors.New("nope")
	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "delete 1: nope", err.Error())
	assert.Same(t, before, svc.Snapshot())
}

func TestMutations_GateDenied(t *testing.T) {
	gw := &fakeGateway[models.Post]{}
	gate := &fakeGate{Err: common.ErrorUnauthorized}
	svc := newPostService(gw, gate)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Post{Title: "t", Body: "b"})
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = svc.Update(ctx, models.Post{ID: 1, Title: "t", Body: "b"})
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	err = svc.Delete(ctx, 1)
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	assert.Equal(t, 0, gw.calls())
	assert.Equal(t, 3, gate.Checks)
}
