package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Table and content type names used by the creation flow.
const (
	TableEvents           = "events"
	TableContentOwnership = "content_ownership"
	ContentTypeEvent      = "event"
)

// Event is a composed event as persisted in the events table.
// swagger:model Event
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Type            string           `json:"type"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	Location        string           `json:"location"`
	Capacity        *int             `json:"capacity,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	Tags            []string         `json:"tags"`
	Slots           []EventSlot      `json:"slots"`
	RequestedItems  []RequestedItem  `json:"requested_items"`
	CreatedBy       string           `json:"created_by"`
	FeaturedArtists []SelectedObject `json:"featured_artists"`
	GalleryItems    []SelectedObject `json:"gallery_items"`
}

// Row converts the event into an events table row. Slots, requested items, featured
// artists and gallery items are embedded as JSON payloads; absent end date and
// capacity are left out of the row.
func (e *Event) Row() (Row, error) {
	row := Row{
		"id":          e.ID,
		"name":        e.Name,
		"description": e.Description,
		"type":        e.Type,
		"start_date":  e.StartDate,
		"location":    e.Location,
		"image_url":   e.ImageURL,
		"tags":        nonNil(e.Tags),
		"created_by":  e.CreatedBy,
	}
	if e.EndDate != nil {
		row["end_date"] = *e.EndDate
	}
	if e.Capacity != nil {
		row["capacity"] = *e.Capacity
	}
	payloads := []struct {
		column string
		value  any
	}{
		{"slots", nonNil(e.Slots)},
		{"requested_items", nonNil(e.RequestedItems)},
		{"featured_artists", nonNil(e.FeaturedArtists)},
		{"gallery_items", nonNil(e.GalleryItems)},
	}
	for _, p := range payloads {
		raw, err := json.Marshal(p.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", p.column, err)
		}
		row[p.column] = json.RawMessage(raw)
	}
	return row, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ContentOwnership binds a content id/type pair to its owner.
// swagger:model ContentOwnership
type ContentOwnership struct {
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
	OwnerID     string `json:"owner_id"`
}

// Row converts the ownership into a content_ownership table row.
func (o ContentOwnership) Row() Row {
	return Row{
		"content_id":   o.ContentID,
		"content_type": o.ContentType,
		"owner_id":     o.OwnerID,
	}
}

// Filter selects the single ownership row of the content.
func (o ContentOwnership) Filter() Filter {
	return Filter{
		"content_id":   o.ContentID,
		"content_type": o.ContentType,
	}
}

// EventRepository reads persisted events.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
}

// EventDetail is a persisted event together with its recorded owner.
type EventDetail struct {
	Event   *Event `json:"event"`
	OwnerID string `json:"owner_id"`
}

// EventService exposes read access to persisted events.
type EventService interface {
	GetEvent(ctx context.Context, eventID string) (*EventDetail, error)
}
