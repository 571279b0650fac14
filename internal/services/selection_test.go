package services

import (
	"testing"

	"eventcomposer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSelection(t *testing.T) *SelectionStore {
	t.Helper()
	s := NewSelectionStore()
	require.NoError(t, s.Load(domain.CategoryArtists, []domain.ContentItem{
		{ID: "a1", Name: "DJ One", Type: "dj"},
		{ID: "a2", Name: "Band Two", Type: "band", Selected: true},
	}))
	require.NoError(t, s.Load(domain.CategoryVenues, []domain.ContentItem{
		{ID: "v1", Name: "Loft", Type: "club", Location: "Downtown"},
	}))
	return s
}

func TestSelectionStore_Toggle(t *testing.T) {
	tests := []struct {
		name     string
		category domain.CategoryTag
		id       string
		want     bool
		wantErr  error
	}{
		{name: "selects unselected item", category: domain.CategoryArtists, id: "a1", want: true},
		{name: "unselects selected item", category: domain.CategoryArtists, id: "a2", want: false},
		{name: "unknown id is a no-op", category: domain.CategoryArtists, id: "missing"},
		{name: "unknown category", category: "shops", id: "a1", wantErr: domain.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededSelection(t)
			before := s.List(domain.CategoryArtists)
			err := s.Toggle(tt.category, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, s.List(domain.CategoryArtists))
				return
			}
			require.NoError(t, err)
			it, ok := s.Find(tt.category, tt.id)
			if !ok {
				assert.Equal(t, before, s.List(domain.CategoryArtists))
				return
			}
			assert.Equal(t, tt.want, it.Selected)
			assert.Equal(t, tt.want, s.IsSelected(tt.category, tt.id))
		})
	}
}

func TestSelectionStore_ToggleTwiceRestores(t *testing.T) {
	for _, id := range []string{"a1", "a2"} {
		s := seededSelection(t)
		before := s.List(domain.CategoryArtists)
		beforeSel := s.SelectedObjects()
		require.NoError(t, s.Toggle(domain.CategoryArtists, id))
		require.NoError(t, s.Toggle(domain.CategoryArtists, id))
		assert.Equal(t, before, s.List(domain.CategoryArtists), id)
		assert.Equal(t, beforeSel, s.SelectedObjects(), id)
	}
}

func TestSelectionStore_ProjectionFollowsEveryChange(t *testing.T) {
	s := seededSelection(t)
	assert.Equal(t, []domain.SelectedObject{{ID: "a2", Name: "Band Two", Type: "band"}}, s.Selected(domain.CategoryArtists))

	require.NoError(t, s.Toggle(domain.CategoryArtists, "a2"))
	assert.Empty(t, s.Selected(domain.CategoryArtists))

	require.NoError(t, s.Toggle(domain.CategoryVenues, "v1"))
	assert.Equal(t, []domain.SelectedObject{{ID: "v1", Name: "Loft", Type: "club", Location: "Downtown"}}, s.Selected(domain.CategoryVenues))

	require.NoError(t, s.Load(domain.CategoryVenues, nil))
	assert.Empty(t, s.Selected(domain.CategoryVenues))
	for _, c := range domain.Categories {
		_, ok := s.SelectedObjects()[c]
		assert.True(t, ok, "projection has category %s", c)
	}
}

func TestSelectionStore_LoadDropsDuplicateIDs(t *testing.T) {
	s := NewSelectionStore()
	require.NoError(t, s.Load(domain.CategoryBrands, []domain.ContentItem{
		{ID: "b1", Name: "First"},
		{ID: "b1", Name: "Second"},
		{ID: "b2", Name: "Other"},
	}))
	list := s.List(domain.CategoryBrands)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name)

	require.ErrorIs(t, s.Load("garages", nil), domain.ErrUnknownCategory)
}

func TestSelectionStore_CopiesAreDetached(t *testing.T) {
	s := seededSelection(t)
	list := s.List(domain.CategoryArtists)
	list[0].Selected = true
	sel := s.SelectedObjects()
	sel[domain.CategoryArtists] = nil

	assert.False(t, s.IsSelected(domain.CategoryArtists, "a1"))
	assert.Len(t, s.Selected(domain.CategoryArtists), 1)
}
