package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventcomposer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftServiceFixture struct {
	svc   domain.DraftService
	store *fakeStore
}

func newDraftServiceFixture(t *testing.T, catalog *fakeCatalog) *draftServiceFixture {
	t.Helper()
	store := newFakeStore()
	ids := &seqIDs{prefix: "id"}
	creator := NewEventCreator(store, &fakeBlobStore{}, fakeIdentity{userID: "user-1"}, &seqIDs{prefix: "ev"}, &fakeNotifier{}, testLogger, time.UTC, time.Second)
	svc := NewDraftService(catalog, NewGroupLibrary(ids), creator, ids, testLogger, time.Second)
	return &draftServiceFixture{svc: svc, store: store}
}

func defaultCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[domain.CategoryTag][]domain.ContentItem{
		domain.CategoryArtists:   {{ID: "a1", Name: "DJ One", Type: "dj"}, {ID: "a2", Name: "Band Two", Type: "band"}},
		domain.CategoryVenues:    {{ID: "v1", Name: "Loft", Type: "club"}},
		domain.CategoryResources: {{ID: "r1", Name: "PA", Type: "sound"}},
	}}
}

func TestDraftService_CreateAndGet(t *testing.T) {
	f := newDraftServiceFixture(t, defaultCatalog())
	ctx := context.Background()

	view, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", view.OwnerID)
	assert.Equal(t, domain.StateIdle, view.State)
	assert.Len(t, view.Lists[domain.CategoryArtists], 2)
	assert.Empty(t, view.Lists[domain.CategoryCommunities])

	got, err := f.svc.GetDraft(ctx, "user-1", view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)

	_, err = f.svc.GetDraft(ctx, "user-2", view.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.GetDraft(ctx, "user-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_CreateFailsOnCatalogError(t *testing.T) {
	dbErr := errors.New("catalog down")
	f := newDraftServiceFixture(t, &fakeCatalog{err: dbErr})
	_, err := f.svc.CreateDraft(context.Background(), "user-1")
	require.ErrorIs(t, err, dbErr)
}

func TestDraftService_ComposeAndSubmit(t *testing.T) {
	f := newDraftServiceFixture(t, defaultCatalog())
	ctx := context.Background()
	view, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)
	id := view.ID

	_, err = f.svc.UpdateDetails(ctx, "user-1", id, launchPartyDetails())
	require.NoError(t, err)

	view, err = f.svc.Toggle(ctx, "user-1", id, domain.CategoryArtists, "a1")
	require.NoError(t, err)
	assert.Len(t, view.SelectedObjects[domain.CategoryArtists], 1)

	_, err = f.svc.Toggle(ctx, "user-1", id, "shops", "x")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)

	slot, err := f.svc.AddSlot(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "18:00", slot.StartTime)

	_, err = f.svc.UpdateSlot(ctx, "user-1", id, slot.ID, domain.SlotUpdate{Artists: &[]domain.SelectedObject{{ID: "a2"}}})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "artist must be selected first")
	updated, err := f.svc.UpdateSlot(ctx, "user-1", id, slot.ID, domain.SlotUpdate{Artists: &[]domain.SelectedObject{{ID: "a1", Name: "DJ One"}}})
	require.NoError(t, err)
	assert.Len(t, updated.Artists, 1)

	gallery, err := f.svc.SetGallery(ctx, "user-1", id, []domain.ItemRef{{Category: domain.CategoryArtists, ID: "a1"}})
	require.NoError(t, err)
	assert.Len(t, gallery, 1)

	require.ErrorIs(t, f.svc.AttachPoster(ctx, "user-1", id, domain.PosterFile{Name: "p.png"}), domain.ErrInvalidInput)

	eventID, err := f.svc.Submit(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", eventID)
	assert.Equal(t, 1, f.store.count("insert", domain.TableEvents))

	view, err = f.svc.GetDraft(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, view.State)
	assert.Equal(t, "ev-1", view.LastEventID)

	_, err = f.svc.Submit(ctx, "user-2", id)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_SlotsLifecycle(t *testing.T) {
	f := newDraftServiceFixture(t, defaultCatalog())
	ctx := context.Background()
	view, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)

	late, err := f.svc.AddSlot(ctx, "user-1", view.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateSlot(ctx, "user-1", view.ID, late.ID, domain.SlotUpdate{StartTime: strPtr("22:00")})
	require.NoError(t, err)
	early, err := f.svc.AddSlot(ctx, "user-1", view.ID)
	require.NoError(t, err)
	_, err = f.svc.UpdateSlot(ctx, "user-1", view.ID, early.ID, domain.SlotUpdate{StartTime: strPtr("20:00")})
	require.NoError(t, err)

	sorted, err := f.svc.SortSlots(ctx, "user-1", view.ID)
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, early.ID, sorted[0].ID)

	require.NoError(t, f.svc.RemoveSlot(ctx, "user-1", view.ID, early.ID))
	require.ErrorIs(t, f.svc.RemoveSlot(ctx, "user-1", view.ID, early.ID), domain.ErrNotFound)
}

func TestDraftService_Groups(t *testing.T) {
	f := newDraftServiceFixture(t, defaultCatalog())
	ctx := context.Background()
	first, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)

	_, err = f.svc.SaveGroup(ctx, "user-1", first.ID, "Nothing", "")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = f.svc.Toggle(ctx, "user-1", first.ID, domain.CategoryArtists, "a2")
	require.NoError(t, err)
	_, err = f.svc.Toggle(ctx, "user-1", first.ID, domain.CategoryVenues, "v1")
	require.NoError(t, err)
	group, err := f.svc.SaveGroup(ctx, "user-1", first.ID, "Friday", "")
	require.NoError(t, err)

	groups, err := f.svc.ListGroups(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	second, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)
	view, err := f.svc.ApplyGroup(ctx, "user-1", second.ID, group.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.SelectedObject{{ID: "a2", Name: "Band Two", Type: "band"}}, view.SelectedObjects[domain.CategoryArtists])
	assert.Len(t, view.SelectedObjects[domain.CategoryVenues], 1)

	inline := &domain.ComponentGroup{Components: []domain.GroupComponent{
		{Type: domain.CategoryBrands, Items: []domain.ContentItem{{ID: "b1", Name: "Sponsor"}}},
	}}
	view, err = f.svc.ApplyGroup(ctx, "user-1", second.ID, "", inline)
	require.NoError(t, err)
	assert.Len(t, view.Lists[domain.CategoryBrands], 1)

	_, err = f.svc.ApplyGroup(ctx, "user-1", second.ID, "", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.ApplyGroup(ctx, "user-2", second.ID, group.ID, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.svc.DeleteGroup(ctx, "user-1", group.ID))
	_, err = f.svc.ApplyGroup(ctx, "user-1", second.ID, group.ID, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftService_DiscardRefusedWhileSubmitting(t *testing.T) {
	f := newDraftServiceFixture(t, defaultCatalog())
	ctx := context.Background()
	view, err := f.svc.CreateDraft(ctx, "user-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateDetails(ctx, "user-1", view.ID, launchPartyDetails())
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.store.insertHook = func(table string) {
		if table == domain.TableContentOwnership {
			close(entered)
			<-release
		}
	}
	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(ctx, "user-1", view.ID)
		done <- err
	}()
	<-entered
	require.ErrorIs(t, f.svc.DiscardDraft(ctx, "user-1", view.ID), domain.ErrAlreadyInProgress)
	close(release)
	require.NoError(t, <-done)

	require.NoError(t, f.svc.DiscardDraft(ctx, "user-1", view.ID))
	_, err = f.svc.GetDraft(ctx, "user-1", view.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
