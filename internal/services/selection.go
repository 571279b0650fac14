package services

import (
	"fmt"

	"eventcomposer/internal/domain"
)

// SelectionStore holds the per-category catalog lists of a draft together with the
// derived selected-objects projection. Every mutation recomputes the projection
// before returning. It is not safe for concurrent use; EventDraft serialises access.
type SelectionStore struct {
	lists    map[domain.CategoryTag][]domain.ContentItem
	selected domain.SelectedObjects
}

// NewSelectionStore returns a store with an empty list for every category.
func NewSelectionStore() *SelectionStore {
	s := &SelectionStore{lists: make(map[domain.CategoryTag][]domain.ContentItem, len(domain.Categories))}
	for _, c := range domain.Categories {
		s.lists[c] = []domain.ContentItem{}
	}
	s.recompute()
	return s
}

// Load replaces the list of category with items. Items repeating an earlier id are dropped.
func (s *SelectionStore) Load(category domain.CategoryTag, items []domain.ContentItem) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	seen := make(map[string]struct{}, len(items))
	list := make([]domain.ContentItem, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		list = append(list, it)
	}
	s.lists[category] = list
	s.recompute()
	return nil
}

// Toggle flips the selected flag of the item with id in category. Unknown ids are a no-op.
func (s *SelectionStore) Toggle(category domain.CategoryTag, id string) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	list := s.lists[category]
	for i := range list {
		if list[i].ID == id {
			list[i].Selected = !list[i].Selected
			s.recompute()
			return nil
		}
	}
	return nil
}

// merge marks every item in updates selected, appending the ones not listed yet.
// Callers validate the categories first; the projection is recomputed once at the end.
func (s *SelectionStore) merge(updates []domain.GroupComponent) {
	for _, comp := range updates {
		list := s.lists[comp.Type]
		index := make(map[string]int, len(list))
		for i, it := range list {
			index[it.ID] = i
		}
		for _, it := range comp.Items {
			if i, ok := index[it.ID]; ok {
				list[i].Selected = true
				continue
			}
			it.Selected = true
			index[it.ID] = len(list)
			list = append(list, it)
		}
		s.lists[comp.Type] = list
	}
	s.recompute()
}

// List returns a copy of the list of category.
func (s *SelectionStore) List(category domain.CategoryTag) []domain.ContentItem {
	return append([]domain.ContentItem{}, s.lists[category]...)
}

// Lists returns a copy of every category list.
func (s *SelectionStore) Lists() map[domain.CategoryTag][]domain.ContentItem {
	out := make(map[domain.CategoryTag][]domain.ContentItem, len(s.lists))
	for c := range s.lists {
		out[c] = s.List(c)
	}
	return out
}

// Find returns the item with id in category.
func (s *SelectionStore) Find(category domain.CategoryTag, id string) (domain.ContentItem, bool) {
	for _, it := range s.lists[category] {
		if it.ID == id {
			return it, true
		}
	}
	return domain.ContentItem{}, false
}

// Selected returns the selected projection of category.
func (s *SelectionStore) Selected(category domain.CategoryTag) []domain.SelectedObject {
	return append([]domain.SelectedObject{}, s.selected[category]...)
}

// IsSelected reports whether the item with id in category is currently selected.
func (s *SelectionStore) IsSelected(category domain.CategoryTag, id string) bool {
	for _, o := range s.selected[category] {
		if o.ID == id {
			return true
		}
	}
	return false
}

// SelectedObjects returns a copy of the selected projection of every category.
func (s *SelectionStore) SelectedObjects() domain.SelectedObjects {
	out := make(domain.SelectedObjects, len(s.selected))
	for c := range s.selected {
		out[c] = s.Selected(c)
	}
	return out
}

func (s *SelectionStore) recompute() {
	selected := make(domain.SelectedObjects, len(s.lists))
	for c, list := range s.lists {
		objs := []domain.SelectedObject{}
		for _, it := range list {
			if it.Selected {
				objs = append(objs, it.Object())
			}
		}
		selected[c] = objs
	}
	s.selected = selected
}
