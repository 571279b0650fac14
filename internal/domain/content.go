package domain

import (
	"context"
	"fmt"
	"time"
)

// CategoryTag names one of the catalog categories an event can be composed from.
type CategoryTag string

const (
	CategoryArtists     CategoryTag = "artists"
	CategoryVenues      CategoryTag = "venues"
	CategoryResources   CategoryTag = "resources"
	CategoryBrands      CategoryTag = "brands"
	CategoryCommunities CategoryTag = "communities"
)

// Categories lists every CategoryTag in display order.
var Categories = []CategoryTag{
	CategoryArtists,
	CategoryVenues,
	CategoryResources,
	CategoryBrands,
	CategoryCommunities,
}

// Valid reports whether c is one of the known categories.
func (c CategoryTag) Valid() bool {
	switch c {
	case CategoryArtists, CategoryVenues, CategoryResources, CategoryBrands, CategoryCommunities:
		return true
	}
	return false
}

// ParseCategory converts s into a CategoryTag, rejecting anything outside the closed set.
func ParseCategory(s string) (CategoryTag, error) {
	c := CategoryTag(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// ContentItem is a selectable catalog entry owned by someone else.
// swagger:model ContentItem
type ContentItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
	Selected    bool   `json:"selected"`
}

// Object projects the item onto the lighter shape used by slots and event payloads.
func (c ContentItem) Object() SelectedObject {
	return SelectedObject{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Location:    c.Location,
		ImageURL:    c.ImageURL,
		Description: c.Description,
	}
}

// SelectedObject is a selected ContentItem without its selection flag.
// swagger:model SelectedObject
type SelectedObject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Item turns the projection back into a selected ContentItem.
func (o SelectedObject) Item() ContentItem {
	return ContentItem{
		ID:          o.ID,
		Type:        o.Type,
		Name:        o.Name,
		Location:    o.Location,
		ImageURL:    o.ImageURL,
		Description: o.Description,
		Selected:    true,
	}
}

// SelectedObjects holds the selected projection of every category.
type SelectedObjects map[CategoryTag][]SelectedObject

// Empty reports whether no category has a selected item.
func (s SelectedObjects) Empty() bool {
	for _, objs := range s {
		if len(objs) > 0 {
			return false
		}
	}
	return true
}

// ItemRef points at one item of one category.
type ItemRef struct {
	Category CategoryTag `json:"category"`
	ID       string      `json:"id"`
}

// GroupComponent is the slice of a ComponentGroup that belongs to one category.
type GroupComponent struct {
	Type  CategoryTag   `json:"type"`
	Items []ContentItem `json:"items"`
}

// ComponentGroup is a named bundle of selections spanning several categories.
// swagger:model ComponentGroup
type ComponentGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Components  []GroupComponent `json:"components"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Validate rejects groups that reference a category outside the closed set.
func (g ComponentGroup) Validate() error {
	for _, comp := range g.Components {
		if !comp.Type.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, comp.Type)
		}
	}
	return nil
}

// CatalogService reads the selectable items of a category.
type CatalogService interface {
	List(ctx context.Context, category CategoryTag) ([]ContentItem, error)
	// Search returns the items of category whose name, description or location
	// contains query, case-insensitively.
	Search(ctx context.Context, category CategoryTag, query string) ([]ContentItem, error)
}
