package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"eventcomposer/internal/domain"
)

// ApplyGroup merges group into store in one step: existing ids are marked selected in
// place, unknown ids are appended selected. Unknown categories reject the whole group
// before any list is touched.
func ApplyGroup(store *SelectionStore, group domain.ComponentGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}
	store.merge(group.Components)
	return nil
}

// GroupLibrary keeps the component groups each user has saved.
type GroupLibrary struct {
	mu      sync.RWMutex
	byOwner map[string][]domain.ComponentGroup
	ids     domain.IDGenerator
	now     func() time.Time
}

// NewGroupLibrary returns an empty library.
func NewGroupLibrary(ids domain.IDGenerator) *GroupLibrary {
	return &GroupLibrary{
		byOwner: make(map[string][]domain.ComponentGroup),
		ids:     ids,
		now:     time.Now,
	}
}

// Save stores a snapshot of selection as a named group of ownerID. Empty categories
// are left out; a blank name or an empty selection is rejected.
func (l *GroupLibrary) Save(ownerID, name, description string, selection domain.SelectedObjects) (*domain.ComponentGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "group name is required"}
	}
	if selection.Empty() {
		return nil, &domain.ValidationError{Field: "components", Message: "select at least one component to save"}
	}
	group := domain.ComponentGroup{
		ID:          "group_" + l.ids.NewID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   l.now(),
	}
	for _, c := range domain.Categories {
		objs := selection[c]
		if len(objs) == 0 {
			continue
		}
		items := make([]domain.ContentItem, len(objs))
		for i, o := range objs {
			items[i] = o.Item()
		}
		group.Components = append(group.Components, domain.GroupComponent{Type: c, Items: items})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.byOwner[ownerID] = append(l.byOwner[ownerID], group)
	return &group, nil
}

// List returns the groups of ownerID in the order they were saved.
func (l *GroupLibrary) List(ownerID string) []domain.ComponentGroup {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.ComponentGroup{}, l.byOwner[ownerID]...)
}

// Get returns the group id of ownerID.
func (l *GroupLibrary) Get(ownerID, id string) (domain.ComponentGroup, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, g := range l.byOwner[ownerID] {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.ComponentGroup{}, fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
}

// Delete removes the group id of ownerID.
func (l *GroupLibrary) Delete(ownerID, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	groups := l.byOwner[ownerID]
	for i, g := range groups {
		if g.ID == id {
			l.byOwner[ownerID] = append(groups[:i:i], groups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
}
