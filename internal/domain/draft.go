package domain

import (
	"context"
	"time"
)

// EventDetails holds the form fields of a draft. Dates use the 2006-01-02 layout and
// times the 15:04 layout; they are combined into timestamps at submission time.
// swagger:model EventDetails
type EventDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	StartTime   string `json:"start_time"`
	EndDate     string `json:"end_date,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location"`
	Capacity    *int   `json:"capacity,omitempty"`
}

// PosterFile is an attached poster image waiting to be uploaded on submit.
type PosterFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// SubmissionState is the position of a draft's creation saga.
type SubmissionState string

const (
	StateIdle               SubmissionState = "idle"
	StateValidating         SubmissionState = "validating"
	StateUploading          SubmissionState = "uploading"
	StateReservingOwnership SubmissionState = "reserving_ownership"
	StatePersistingEvent    SubmissionState = "persisting_event"
	StateCompleted          SubmissionState = "completed"
	StateFailed             SubmissionState = "failed"
)

// SlotUpdate carries the fields to change on a slot; nil fields are left unchanged.
// Setting Venue clears IsRequestOnly and setting IsRequestOnly to true clears the venue.
type SlotUpdate struct {
	StartTime     *string           `json:"startTime,omitempty"`
	EndTime       *string           `json:"endTime,omitempty"`
	Title         *string           `json:"title,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Type          *SlotType         `json:"type,omitempty"`
	Venue         *VenueRef         `json:"venue,omitempty"`
	ClearVenue    bool              `json:"clearVenue,omitempty"`
	Artists       *[]SelectedObject `json:"artists,omitempty"`
	Resources     *[]SelectedObject `json:"resources,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	IsRequestOnly *bool             `json:"isRequestOnly,omitempty"`
}

// DraftView is a consistent snapshot of a draft for presentation.
// swagger:model DraftView
type DraftView struct {
	ID              string                        `json:"id"`
	OwnerID         string                        `json:"owner_id"`
	Details         EventDetails                  `json:"details"`
	Lists           map[CategoryTag][]ContentItem `json:"lists"`
	SelectedObjects SelectedObjects               `json:"selected_objects"`
	Slots           []EventSlot                   `json:"slots"`
	GalleryItems    []SelectedObject              `json:"gallery_items"`
	HasPoster       bool                          `json:"has_poster"`
	Submitting      bool                          `json:"submitting"`
	State           SubmissionState               `json:"state"`
	LastEventID     string                        `json:"last_event_id,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
}

// DraftService defines the business logic for composing and submitting events.
type DraftService interface {
	CreateDraft(ctx context.Context, ownerID string) (*DraftView, error)
	GetDraft(ctx context.Context, ownerID, draftID string) (*DraftView, error)
	DiscardDraft(ctx context.Context, ownerID, draftID string) error
	UpdateDetails(ctx context.Context, ownerID, draftID string, details EventDetails) (*DraftView, error)
	Toggle(ctx context.Context, ownerID, draftID string, category CategoryTag, itemID string) (*DraftView, error)
	ApplyGroup(ctx context.Context, ownerID, draftID, groupID string, inline *ComponentGroup) (*DraftView, error)
	AddSlot(ctx context.Context, ownerID, draftID string) (*EventSlot, error)
	UpdateSlot(ctx context.Context, ownerID, draftID, slotID string, update SlotUpdate) (*EventSlot, error)
	RemoveSlot(ctx context.Context, ownerID, draftID, slotID string) error
	SortSlots(ctx context.Context, ownerID, draftID string) ([]EventSlot, error)
	SetGallery(ctx context.Context, ownerID, draftID string, refs []ItemRef) ([]SelectedObject, error)
	AttachPoster(ctx context.Context, ownerID, draftID string, poster PosterFile) error
	Submit(ctx context.Context, ownerID, draftID string) (eventID string, err error)
	SaveGroup(ctx context.Context, ownerID, draftID, name, description string) (*ComponentGroup, error)
	ListGroups(ctx context.Context, ownerID string) ([]ComponentGroup, error)
	DeleteGroup(ctx context.Context, ownerID, groupID string) error
}
